// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"github.com/agbru/bigint/internal/logging"
	"github.com/agbru/bigint/internal/nat"
)

// GCDResult holds a greatest common divisor and its Bézout coefficients.
type GCDResult struct {
	D    *Int // gcd(a, b) >= 0
	X, Y *Int // a*X + b*Y == D
}

// ─────────────────────────────────────────────────────────────────────────────
// Greatest common divisor
// ─────────────────────────────────────────────────────────────────────────────

// ExtendedGCD returns gcd(a, b) together with coefficients X and Y such that
// a*X + b*Y == D. Both a and b may have any sign.
//
// If a == b == 0 the result is D = X = Y = 0. If a == 0 and b != 0 it is
// D = |b|, X = 0, Y = sign(b). If a != 0 and b == 0 it is D = |a|,
// X = sign(a), Y = 0.
func ExtendedGCD(a, b *Int) GCDResult {
	switch {
	case len(a.abs) == 0 && len(b.abs) == 0:
		return GCDResult{D: new(Int), X: new(Int), Y: new(Int)}
	case len(a.abs) == 0:
		return GCDResult{D: new(Int).Abs(b), X: new(Int), Y: NewInt(int64(b.Sign()))}
	case len(b.abs) == 0:
		return GCDResult{D: new(Int).Abs(a), X: NewInt(int64(a.Sign())), Y: new(Int)}
	}

	// Euclid on the magnitudes, carrying the cofactors of |a| and |b|.
	r0 := nat.Nat(nil).Set(a.abs)
	r1 := nat.Nat(nil).Set(b.abs)
	s0, s1 := NewInt(1), new(Int)
	t0, t1 := new(Int), NewInt(1)

	var q, rem nat.Nat
	var qi, tmp Int
	for len(r1) > 0 {
		q, rem = q.Div(rem, r0, r1)
		r0, r1, rem = r1, rem, r0

		qi.abs, qi.neg = q, false
		s0.Sub(s0, tmp.Mul(&qi, s1))
		s0, s1 = s1, s0
		t0.Sub(t0, tmp.Mul(&qi, t1))
		t0, t1 = t1, t0
	}

	if a.neg {
		s0.Neg(s0)
	}
	if b.neg {
		t0.Neg(t0)
	}
	return GCDResult{D: &Int{abs: r0}, X: s0, Y: t0}
}

// GCD sets z to the greatest common divisor of a and b and returns z. If x
// or y are not nil, they receive the Bézout coefficients such that
// z = a*x + b*y. The degenerate cases follow ExtendedGCD.
func (z *Int) GCD(x, y, a, b *Int) *Int {
	res := ExtendedGCD(a, b)
	if x != nil {
		x.Set(res.X)
	}
	if y != nil {
		y.Set(res.Y)
	}
	return z.Set(res.D)
}

// ModInverse sets z to the multiplicative inverse of g in the ring ℤ/nℤ and
// returns z. The result lies in [0, |n|). It fails with ErrDivisionByZero
// when n == 0 and with ErrNotInvertible when g and n are not relatively
// prime; z is left unchanged on failure.
func (z *Int) ModInverse(g, n *Int) (*Int, error) {
	if len(n.abs) == 0 {
		return z, newError("ModInverse", ErrDivisionByZero, "")
	}
	m := &Int{abs: nat.Nat(nil).Set(n.abs)}
	g0 := &Int{abs: reduce(g, m.abs)}

	res := ExtendedGCD(g0, m)
	if !res.D.abs.IsOne() {
		return z, newError("ModInverse", ErrNotInvertible, "gcd is %s", res.D)
	}
	x := res.X
	if x.neg {
		x.Add(x, m)
	}
	return z.Set(x), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Exponentiation
// ─────────────────────────────────────────────────────────────────────────────

// Exp sets z = x**y mod |m| and returns z. A nil or zero m means no modulus,
// in which case z = x**y. With a modulus the result lies in [0, |m|).
//
// For y < 0 and a modulus, x is first replaced by its inverse mod |m|; the
// call fails with ErrNotInvertible when no inverse exists. For y < 0 without
// a modulus the result is 1.
func (z *Int) Exp(x, y, m *Int) (*Int, error) {
	var mWords nat.Nat
	if m != nil {
		mWords = m.abs
	}

	xWords, xneg := x.abs, x.neg
	if y.neg {
		if len(mWords) == 0 {
			logger().Debug("negative exponent without modulus yields 1",
				logging.Int("exponent_bits", y.abs.BitLen()))
			return z.SetInt64(1), nil
		}
		inv, err := new(Int).ModInverse(x, m)
		if err != nil {
			return z, newError("Exp", ErrNotInvertible, "base has no inverse modulo %s", m)
		}
		xWords, xneg = inv.abs, false
	}
	yWords := y.abs

	// ExpNN computes into fresh storage when z shares an operand.
	z.abs = z.abs.ExpNN(xWords, yWords, mWords)
	z.neg = len(z.abs) > 0 && xneg && len(yWords) > 0 && yWords[0]&1 == 1
	if z.neg && len(mWords) > 0 {
		z.abs = z.abs.Sub(mWords, z.abs)
		z.neg = false
	}
	return z, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Jacobi symbol
// ─────────────────────────────────────────────────────────────────────────────

// Jacobi returns the Jacobi symbol (x/y), either +1, -1 or 0. It fails with
// ErrInvalidArgument unless y is odd. A negative y contributes a factor of
// -1 when x is negative.
func Jacobi(x, y *Int) (int, error) {
	if len(y.abs) == 0 || y.abs[0]&1 == 0 {
		return 0, newError("Jacobi", ErrInvalidArgument, "%s is not an odd integer", y)
	}
	return jacobi(x, y), nil
}

// jacobi requires y odd.
// See Cohen, "A Course in Computational Algebraic Number Theory",
// Algorithm 1.4.10.
func jacobi(x, y *Int) int {
	var a, b, c Int
	a.Set(x)
	b.Set(y)
	j := 1

	if b.neg {
		if a.neg {
			j = -1
		}
		b.neg = false
	}

	for {
		if b.abs.IsOne() {
			return j
		}
		if len(a.abs) == 0 {
			return 0
		}
		a.abs = reduce(&a, b.abs)
		a.neg = false
		if len(a.abs) == 0 {
			return 0
		}
		// a > 0

		// handle factors of 2 in 'a'
		s := a.abs.TrailingZeroBits()
		if s&1 != 0 {
			bmod8 := b.abs[0] & 7
			if bmod8 == 3 || bmod8 == 5 {
				j = -j
			}
		}
		c.Rsh(&a, s) // a = 2^s*c

		// swap numerator and denominator
		if b.abs[0]&3 == 3 && c.abs[0]&3 == 3 {
			j = -j
		}
		a.Set(&b)
		b.Set(&c)
	}
}
