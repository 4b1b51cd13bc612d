// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/agbru/bigint/internal/nat"

// Bit operations on negative values use an infinite two's-complement view:
// -x == ^(x-1), so a negative operand is handled through the magnitude of
// x-1 with its bits inverted.

// Lsh sets z = x << n and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.abs = z.abs.Lsh(x.abs, n)
	z.neg = x.neg
	return z
}

// Rsh sets z = x >> n and returns z. Negative values round toward negative
// infinity.
func (z *Int) Rsh(x *Int, n uint) *Int {
	if x.neg {
		// (-x) >> s == ^(x-1) >> s == ^((x-1) >> s) == -(((x-1) >> s) + 1)
		t := z.abs.SubW(x.abs, 1) // no underflow because |x| > 0
		t = t.Rsh(t, n)
		z.abs = t.AddW(t, 1)
		z.neg = true // z cannot be zero if x is negative
		return z
	}

	z.abs = z.abs.Rsh(x.abs, n)
	z.neg = false
	return z
}

// Bit returns the value of the i'th bit of the two's-complement form of x.
func (x *Int) Bit(i uint) uint {
	if i == 0 {
		// optimization for common case: odd/even test of x
		if len(x.abs) > 0 {
			return uint(x.abs[0] & 1) // bit 0 is same for -x
		}
		return 0
	}
	if x.neg {
		t := nat.Nat(nil).SubW(x.abs, 1)
		return t.Bit(i) ^ 1
	}

	return x.abs.Bit(i)
}

// SetBit sets z to x with its i'th two's-complement bit set to b and returns
// z. It fails with ErrInvalidArgument unless b is 0 or 1.
func (z *Int) SetBit(x *Int, i uint, b uint) (*Int, error) {
	if b > 1 {
		return z, newError("SetBit", ErrInvalidArgument, "bit value %d is not 0 or 1", b)
	}
	if x.neg {
		t := z.abs.SubW(x.abs, 1)
		t = t.SetBit(t, i, b^1)
		z.abs = t.AddW(t, 1)
		z.neg = len(z.abs) > 0
		return z, nil
	}
	z.abs = z.abs.SetBit(x.abs, i, b)
	z.neg = false
	return z, nil
}

// BitLen returns the length of |x| in bits. The bit length of 0 is 0.
func (x *Int) BitLen() int {
	return x.abs.BitLen()
}

// TrailingZeroBits returns the number of consecutive least significant zero
// bits of |x|.
func (x *Int) TrailingZeroBits() uint {
	return x.abs.TrailingZeroBits()
}

// And sets z = x & y and returns z.
func (z *Int) And(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) & (-y) == ^(x-1) & ^(y-1) == ^((x-1) | (y-1)) == -(((x-1) | (y-1)) + 1)
			x1 := nat.Nat(nil).SubW(x.abs, 1)
			y1 := nat.Nat(nil).SubW(y.abs, 1)
			z.abs = z.abs.AddW(z.abs.Or(x1, y1), 1)
			z.neg = true // z cannot be zero if x and y are negative
			return z
		}

		// x & y == x & y
		z.abs = z.abs.And(x.abs, y.abs)
		z.neg = false
		return z
	}

	// x.neg != y.neg
	if x.neg {
		x, y = y, x // & is symmetric
	}

	// x & (-y) == x & ^(y-1) == x &^ (y-1)
	y1 := nat.Nat(nil).SubW(y.abs, 1)
	z.abs = z.abs.AndNot(x.abs, y1)
	z.neg = false
	return z
}

// AndNot sets z = x &^ y and returns z.
func (z *Int) AndNot(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) &^ (-y) == ^(x-1) &^ ^(y-1) == ^(x-1) & (y-1) == (y-1) &^ (x-1)
			x1 := nat.Nat(nil).SubW(x.abs, 1)
			y1 := nat.Nat(nil).SubW(y.abs, 1)
			z.abs = z.abs.AndNot(y1, x1)
			z.neg = false
			return z
		}

		// x &^ y == x &^ y
		z.abs = z.abs.AndNot(x.abs, y.abs)
		z.neg = false
		return z
	}

	if x.neg {
		// (-x) &^ y == ^(x-1) &^ y == ^(x-1) & ^y == ^((x-1) | y) == -(((x-1) | y) + 1)
		x1 := nat.Nat(nil).SubW(x.abs, 1)
		z.abs = z.abs.AddW(z.abs.Or(x1, y.abs), 1)
		z.neg = true // z cannot be zero if x is negative and y is positive
		return z
	}

	// x &^ (-y) == x &^ ^(y-1) == x & (y-1)
	y1 := nat.Nat(nil).SubW(y.abs, 1)
	z.abs = z.abs.And(x.abs, y1)
	z.neg = false
	return z
}

// Or sets z = x | y and returns z.
func (z *Int) Or(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) | (-y) == ^(x-1) | ^(y-1) == ^((x-1) & (y-1)) == -(((x-1) & (y-1)) + 1)
			x1 := nat.Nat(nil).SubW(x.abs, 1)
			y1 := nat.Nat(nil).SubW(y.abs, 1)
			z.abs = z.abs.AddW(z.abs.And(x1, y1), 1)
			z.neg = true // z cannot be zero if x and y are negative
			return z
		}

		// x | y == x | y
		z.abs = z.abs.Or(x.abs, y.abs)
		z.neg = false
		return z
	}

	// x.neg != y.neg
	if x.neg {
		x, y = y, x // | is symmetric
	}

	// x | (-y) == x | ^(y-1) == ^((y-1) &^ x) == -(^((y-1) &^ x) + 1)
	y1 := nat.Nat(nil).SubW(y.abs, 1)
	z.abs = z.abs.AddW(z.abs.AndNot(y1, x.abs), 1)
	z.neg = true // z cannot be zero if one of x or y is negative
	return z
}

// Xor sets z = x ^ y and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) ^ (-y) == ^(x-1) ^ ^(y-1) == (x-1) ^ (y-1)
			x1 := nat.Nat(nil).SubW(x.abs, 1)
			y1 := nat.Nat(nil).SubW(y.abs, 1)
			z.abs = z.abs.Xor(x1, y1)
			z.neg = false
			return z
		}

		// x ^ y == x ^ y
		z.abs = z.abs.Xor(x.abs, y.abs)
		z.neg = false
		return z
	}

	// x.neg != y.neg
	if x.neg {
		x, y = y, x // ^ is symmetric
	}

	// x ^ (-y) == x ^ ^(y-1) == ^(x ^ (y-1)) == -((x ^ (y-1)) + 1)
	y1 := nat.Nat(nil).SubW(y.abs, 1)
	z.abs = z.abs.AddW(z.abs.Xor(x.abs, y1), 1)
	z.neg = true // z cannot be zero if only one of x or y is negative
	return z
}

// Not sets z = ^x and returns z.
func (z *Int) Not(x *Int) *Int {
	if x.neg {
		// ^(-x) == ^(^(x-1)) == x-1
		z.abs = z.abs.SubW(x.abs, 1)
		z.neg = false
		return z
	}

	// ^x == -x-1 == -(x+1)
	z.abs = z.abs.AddW(x.abs, 1)
	z.neg = true // z cannot be zero if x is positive
	return z
}
