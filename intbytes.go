// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	apperrors "github.com/agbru/bigint/internal/errors"
	"github.com/agbru/bigint/internal/nat"
)

// Bytes returns the absolute value of x as a big-endian byte slice without
// leading zeros. Zero yields an empty slice.
func (x *Int) Bytes() []byte {
	buf := make([]byte, len(x.abs)*nat.WordBytes)
	return buf[x.abs.Bytes(buf):]
}

// SetBytes interprets buf as the bytes of a big-endian unsigned integer,
// sets z to that value, and returns z.
func (z *Int) SetBytes(buf []byte) *Int {
	z.abs = z.abs.SetBytes(buf)
	z.neg = false
	return z
}

// FillBytes sets buf to the absolute value of x as a zero-extended
// big-endian byte slice and returns buf. It fails with ErrBufferTooSmall,
// carried by a *BufferError, when the value does not fit; buf is left
// unchanged in that case.
func (x *Int) FillBytes(buf []byte) ([]byte, error) {
	need := (x.abs.BitLen() + 7) / 8
	if need > len(buf) {
		be := &BufferError{Need: need, Have: len(buf)}
		collector.ObserveFailure("FillBytes", apperrors.Kind(be))
		return nil, &OpError{Op: "FillBytes", Cause: be}
	}
	clear(buf)
	x.abs.Bytes(buf)
	return buf, nil
}
