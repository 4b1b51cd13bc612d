// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"iter"
	"math"
	"math/big"

	"fortio.org/safecast"

	"github.com/agbru/bigint/internal/nat"
)

// Word is a single digit of a magnitude.
type Word = big.Word

// An Int represents a signed integer of arbitrary size.
// The zero value is 0.
//
// Operations always take pointer arguments (*Int). Copying an Int by value
// shares its magnitude and is not supported; use Set instead.
type Int struct {
	neg bool    // sign
	abs nat.Nat // absolute value, normalized
}

var (
	natOne = nat.Nat{1}
	intOne = &Int{abs: natOne}
)

// ─────────────────────────────────────────────────────────────────────────────
// Construction and access
// ─────────────────────────────────────────────────────────────────────────────

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// Sign returns -1, 0 or +1 as x is negative, zero or positive.
func (x *Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := false
	if x < 0 {
		neg = true
		x = -x
	}
	z.abs = z.abs.SetUint64(uint64(x))
	z.neg = neg
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = z.abs.SetUint64(x)
	z.neg = false
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = z.abs.Set(x.abs)
		z.neg = x.neg
	}
	return z
}

// Bits returns the little-endian magnitude of x. The result shares storage
// with x; it is intended for low-level interoperation.
func (x *Int) Bits() []Word {
	return x.abs
}

// SetBits sets z to the non-negative value whose little-endian magnitude is
// abs, sharing its storage, and returns z.
func (z *Int) SetBits(abs []Word) *Int {
	z.abs = nat.Nat(abs).Norm()
	z.neg = false
	return z
}

// Words returns the magnitude words of x, least significant first. The
// sequence may be ranged over more than once.
func (x *Int) Words() iter.Seq2[int, Word] {
	return func(yield func(int, Word) bool) {
		for i, w := range x.abs {
			if !yield(i, w) {
				return
			}
		}
	}
}

// low64 returns the least significant 64 bits of x.
func low64(x nat.Nat) uint64 {
	if len(x) == 0 {
		return 0
	}
	v := uint64(x[0])
	if nat.WordBytes == 4 && len(x) > 1 {
		v |= uint64(x[1]) << 32
	}
	return v
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	if x.abs.BitLen() <= 63 {
		return true
	}
	return x.neg && x.abs.BitLen() == 64 && x.abs.TrailingZeroBits() == 63
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *Int) IsUint64() bool {
	return !x.neg && x.abs.BitLen() <= 64
}

// Int64 returns the int64 value of x. It fails with ErrInvalidArgument when
// x does not fit.
func (x *Int) Int64() (int64, error) {
	if n := x.abs.BitLen(); n > 64 {
		return 0, newError("Int64", ErrInvalidArgument, "%d bits do not fit in int64", n)
	}
	u := low64(x.abs)
	if x.neg && u == 1<<63 {
		return math.MinInt64, nil
	}
	v, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, newError("Int64", ErrInvalidArgument, "%s does not fit in int64: %v", x, err)
	}
	if x.neg {
		v = -v
	}
	return v, nil
}

// Uint64 returns the uint64 value of x. It fails with ErrInvalidArgument
// when x is negative or does not fit.
func (x *Int) Uint64() (uint64, error) {
	if !x.IsUint64() {
		if x.neg {
			return 0, newError("Uint64", ErrInvalidArgument, "negative value")
		}
		return 0, newError("Uint64", ErrInvalidArgument, "%d bits do not fit in uint64", x.abs.BitLen())
	}
	return low64(x.abs), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Sign-aware arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = len(z.abs) > 0 && !z.neg
	return z
}

// Add sets z to x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = z.abs.Add(x.abs, y.abs)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.abs.Cmp(y.abs) >= 0 {
			z.abs = z.abs.Sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.Sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg
	return z
}

// Sub sets z to x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	neg := x.neg
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		z.abs = z.abs.Add(x.abs, y.abs)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if x.abs.Cmp(y.abs) >= 0 {
			z.abs = z.abs.Sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.Sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg
	return z
}

// Mul sets z to x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	neg := x.neg != y.neg
	z.abs = z.abs.Mul(x.abs, y.abs)
	z.neg = len(z.abs) > 0 && neg
	return z
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x *Int) Cmp(y *Int) (r int) {
	switch {
	case x == y:
		// nothing to do
	case x.neg == y.neg:
		r = x.abs.Cmp(y.abs)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return r
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.Cmp(y.abs)
}

// MulRange sets z to the product of all integers in [a, b] and returns z.
// The empty product (a > b) is 1.
func (z *Int) MulRange(a, b int64) *Int {
	switch {
	case a > b:
		return z.SetInt64(1)
	case a <= 0 && b >= 0:
		return z.SetInt64(0)
	}
	// a <= b && (b < 0 || a > 0)

	neg := false
	lo, hi := uint64(a), uint64(b)
	if a < 0 {
		neg = (b-a)&1 == 0
		// Unsigned negation keeps |math.MinInt64| exact.
		lo, hi = -uint64(b), -uint64(a)
	}

	z.abs = z.abs.MulRange(lo, hi)
	z.neg = neg
	return z
}

// Binomial sets z to the binomial coefficient C(n, k) and returns z.
// It is 0 when k < 0 or k > n.
func (z *Int) Binomial(n, k int64) *Int {
	if k < 0 || k > n {
		return z.SetInt64(0)
	}
	// reduce the number of multiplications by reducing k
	if k > n-k {
		k = n - k
	}
	if k == 0 {
		return z.SetInt64(1)
	}
	var a, b Int
	a.MulRange(n-k+1, n)
	b.MulRange(1, k)
	z.abs, _ = z.abs.Div(nil, a.abs, b.abs)
	z.neg = false
	return z
}

// Sqrt sets z to the floor of the square root of x and returns z. It fails
// with ErrInvalidArgument when x is negative.
func (z *Int) Sqrt(x *Int) (*Int, error) {
	if x.neg {
		return z, newError("Sqrt", ErrInvalidArgument, "square root of negative value")
	}
	z.neg = false
	z.abs = z.abs.Sqrt(x.abs)
	return z, nil
}
