// This file provides pooled scratch storage for division to reduce GC
// pressure.

package nat

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Word Slice Pools
// ─────────────────────────────────────────────────────────────────────────────

// wordSlicePools pools []Word scratch slices by size class.
// Size classes are powers of 4 from 64 to 1M words.
var wordSlicePools = [...]sync.Pool{
	{New: func() any { return make([]Word, 64) }},
	{New: func() any { return make([]Word, 256) }},
	{New: func() any { return make([]Word, 1024) }},
	{New: func() any { return make([]Word, 4096) }},
	{New: func() any { return make([]Word, 16384) }},
	{New: func() any { return make([]Word, 65536) }},
	{New: func() any { return make([]Word, 262144) }},
	{New: func() any { return make([]Word, 1048576) }}, // 1M words = 8MB on 64-bit
}

// wordSliceSizes defines the size classes for word slice pools.
var wordSliceSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

// getWordSlicePoolIndex returns the pool index for a given size, or -1 if
// the size is too large for pooling.
//
// Index i holds slices of 4^(i+3) words, so bits.Len(size-1) maps directly
// to the index.
func getWordSlicePoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > wordSliceSizes[len(wordSliceSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireWordSlice returns a word slice of the given length without
// clearing it. Every element must be written before it is read. Release it
// with releaseWordSlice:
//
//	slice := acquireWordSlice(size)
//	defer releaseWordSlice(slice)
func acquireWordSlice(size int) []Word {
	idx := getWordSlicePoolIndex(size)
	if idx < 0 {
		return make([]Word, size)
	}
	slice := wordSlicePools[idx].Get().([]Word)
	return slice[:size]
}

// releaseWordSlice returns a slice obtained from acquireWordSlice to its
// pool. Slices whose capacity is not a pool size class are left to the GC.
func releaseWordSlice(slice []Word) {
	if slice == nil {
		return
	}
	c := cap(slice)
	idx := getWordSlicePoolIndex(c)
	if idx >= 0 && wordSliceSizes[idx] == c {
		wordSlicePools[idx].Put(slice[:c])
	}
}
