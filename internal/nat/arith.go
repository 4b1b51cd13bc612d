// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the portable word and vector primitives.

package nat

import "math/bits"

const (
	_W = bits.UintSize // word size in bits
	_S = _W / 8        // word size in bytes
	_M = 1<<_W - 1     // digit mask
)

// WordBytes is the size of a Word in bytes.
const WordBytes = _S

// ─────────────────────────────────────────────────────────────────────────────
// Word primitives
// ─────────────────────────────────────────────────────────────────────────────

// mulWW returns the double-word product x*y as (hi, lo).
func mulWW(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul(uint(x), uint(y))
	return Word(hi), Word(lo)
}

// mulAddWWW returns x*y + c as (hi, lo).
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul(uint(x), uint(y))
	var cc uint
	lo, cc = bits.Add(lo, uint(c), 0)
	return Word(hi + cc), Word(lo)
}

// divWW returns the quotient and remainder of (x1:x0) / y. It requires x1 < y.
func divWW(x1, x0, y Word) (q, r Word) {
	qq, rr := bits.Div(uint(x1), uint(x0), uint(y))
	return Word(qq), Word(rr)
}

// ─────────────────────────────────────────────────────────────────────────────
// Vector primitives
// ─────────────────────────────────────────────────────────────────────────────

func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return c
}

func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		zi, cc := bits.Sub(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return c
}

// shlVU sets z = x << s for 0 <= s < _W and returns the bits shifted out.
// z may alias x when z's base is at or above x's base.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	s &= _W - 1
	t := (_W - s) & (_W - 1)
	c = x[len(z)-1] >> t
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>t
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for 0 <= s < _W and returns the bits shifted out,
// left-aligned. z may alias x when z's base is at or below x's base.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	s &= _W - 1
	t := (_W - s) & (_W - 1)
	c = x[0] << t
	for i := 1; i < len(z); i++ {
		z[i-1] = x[i-1]>>s | x[i]<<t
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return c
}

func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// divWVW divides (xn:x) by y, stores the quotient in z and returns the
// remainder. It requires xn < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}
