// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversion between magnitudes and digit strings.

package nat

import (
	"math"
	"math/bits"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxBase is the largest supported conversion base.
const MaxBase = len(digits)

// maxBaseSmall is the largest base in which letters are case-insensitive.
const maxBaseSmall = 10 + ('z' - 'a' + 1)

// MaxPow returns (b**n, n) such that b**n is the largest power of b that
// fits in a Word.
func MaxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for limit := _M / b; p <= limit; {
		p *= b
		n++
	}
	return p, n
}

// pow returns x**n for n >= 0, ignoring overflow.
func pow(x Word, n int) (p Word) {
	p = 1
	for n > 0 {
		if n&1 != 0 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return p
}

// DigitValue returns the value of ch as a digit in base, and false if ch is
// not a valid digit there. Letters are case-insensitive up to base 36; above
// it lower case letters map to 10..35 and upper case letters to 36..61.
func DigitValue(ch byte, base int) (Word, bool) {
	var d int
	switch {
	case '0' <= ch && ch <= '9':
		d = int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		d = int(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		if base <= maxBaseSmall {
			d = int(ch-'A') + 10
		} else {
			d = int(ch-'A') + maxBaseSmall
		}
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return Word(d), true
}

// SetDigits sets z to the value of the digit values in digs, most
// significant first, read in the given base.
func (z Nat) SetDigits(digs []byte, base int) Nat {
	z = z[:0]
	b := Word(base)
	bn, n := MaxPow(b)

	var di Word
	i := 0
	for _, d := range digs {
		di = di*b + Word(d)
		i++
		if i == n {
			z = z.MulAddWW(z, bn, di)
			di, i = 0, 0
		}
	}
	if i > 0 {
		z = z.MulAddWW(z, pow(b, i), di)
	}
	return z.Norm()
}

// Utoa returns the digits of x in the given base.
func (x Nat) Utoa(base int) []byte {
	return x.Itoa(false, base)
}

// Itoa returns the digits of x in the given base, with a leading '-' if neg
// is set. Bases above 36 use upper case letters for digit values 36..61.
// It panics if base is outside [2, MaxBase].
func (x Nat) Itoa(neg bool, base int) []byte {
	if base < 2 || base > MaxBase {
		panic("nat: invalid base")
	}
	if len(x) == 0 {
		return []byte("0")
	}

	// Off by one at most.
	i := int(float64(x.BitLen())/math.Log2(float64(base))) + 1
	if neg {
		i++
	}
	s := make([]byte, i)

	if b := Word(base); b == b&-b {
		// Powers of two: emit digits straight from the bits.
		shift := uint(bits.TrailingZeros(uint(b)))
		mask := Word(1<<shift - 1)
		w := x[0]
		nbits := uint(_W)
		for k := 1; k < len(x); k++ {
			for nbits >= shift {
				i--
				s[i] = digits[w&mask]
				w >>= shift
				nbits -= shift
			}
			if nbits == 0 {
				w = x[k]
				nbits = _W
			} else {
				// Straddle a word boundary.
				w |= x[k] << nbits
				i--
				s[i] = digits[w&mask]
				w = x[k] >> (shift - nbits)
				nbits = _W - (shift - nbits)
			}
		}
		for w != 0 {
			i--
			s[i] = digits[w&mask]
			w >>= shift
		}
	} else {
		bb, ndigits := MaxPow(b)
		q := Nat(nil).Set(x)
		for len(q) > 0 {
			var r Word
			q, r = q.DivW(q, bb)
			// Interior chunks keep their leading zeros.
			for j := 0; j < ndigits && (len(q) > 0 || r != 0); j++ {
				i--
				s[i] = digits[r%b]
				r /= b
			}
		}
	}

	if neg {
		i--
		s[i] = '-'
	}
	return s[i:]
}
