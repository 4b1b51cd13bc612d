// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/agbru/bigint/internal/nat"

// ─────────────────────────────────────────────────────────────────────────────
// Truncated division
// ─────────────────────────────────────────────────────────────────────────────

// Quo sets z to the quotient x/y truncated toward zero and returns z.
// It fails with ErrDivisionByZero when y == 0, leaving z unchanged.
func (z *Int) Quo(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return z, newError("Quo", ErrDivisionByZero, "")
	}
	return z.quo(x, y), nil
}

// Rem sets z to the remainder x%y and returns z. A non-zero remainder has
// the sign of x. It fails with ErrDivisionByZero when y == 0.
func (z *Int) Rem(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return z, newError("Rem", ErrDivisionByZero, "")
	}
	return z.rem(x, y), nil
}

// QuoRem sets z to x/y and r to x%y using truncated division and returns
// the pair (z, r). It implements
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// It fails with ErrDivisionByZero when y == 0 and with ErrInvalidArgument
// when z and r are the same Int.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int, error) {
	if len(y.abs) == 0 {
		return z, r, newError("QuoRem", ErrDivisionByZero, "")
	}
	if z == r {
		return z, r, newError("QuoRem", ErrInvalidArgument, "quotient and remainder share a destination")
	}
	z.quoRem(x, y, r)
	return z, r, nil
}

func (z *Int) quo(x, y *Int) *Int {
	neg := x.neg != y.neg
	z.abs, _ = z.abs.Div(nil, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && neg
	return z
}

func (z *Int) rem(x, y *Int) *Int {
	neg := x.neg
	_, z.abs = nat.Nat(nil).Div(z.abs, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && neg
	return z
}

func (z *Int) quoRem(x, y, r *Int) (*Int, *Int) {
	xneg, yneg := x.neg, y.neg
	z.abs, r.abs = z.abs.Div(r.abs, x.abs, y.abs)
	z.neg, r.neg = len(z.abs) > 0 && xneg != yneg, len(r.abs) > 0 && xneg
	return z, r
}

// ─────────────────────────────────────────────────────────────────────────────
// Floored division: the modulus takes the sign of the divisor
// ─────────────────────────────────────────────────────────────────────────────

// Div sets z to the quotient x/y rounded toward negative infinity and
// returns z. It fails with ErrDivisionByZero when y == 0.
func (z *Int) Div(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return z, newError("Div", ErrDivisionByZero, "")
	}
	var r Int
	z.divMod(x, y, &r)
	return z, nil
}

// Mod sets z to x mod y and returns z. A non-zero result has the sign of y.
// It fails with ErrDivisionByZero when y == 0.
func (z *Int) Mod(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return z, newError("Mod", ErrDivisionByZero, "")
	}
	var q Int
	q.divMod(x, y, z)
	return z, nil
}

// DivMod sets z to the quotient and m to the modulus of x and y and returns
// the pair (z, m). It implements
//
//	q = floor(x/y)
//	m = x - y*q
//
// so that m is zero or has the sign of y. It fails with ErrDivisionByZero
// when y == 0 and with ErrInvalidArgument when z and m are the same Int.
func (z *Int) DivMod(x, y, m *Int) (*Int, *Int, error) {
	if len(y.abs) == 0 {
		return z, m, newError("DivMod", ErrDivisionByZero, "")
	}
	if z == m {
		return z, m, newError("DivMod", ErrInvalidArgument, "quotient and modulus share a destination")
	}
	z.divMod(x, y, m)
	return z, m, nil
}

// divMod requires y != 0 and z != m.
func (z *Int) divMod(x, y, m *Int) {
	y0 := y
	if z == y || m == y {
		y0 = new(Int).Set(y)
	}
	z.quoRem(x, y0, m)
	if len(m.abs) > 0 && m.neg != y0.neg {
		z.Sub(z, intOne)
		m.Add(m, y0)
	}
}

// reduce returns x mod m in [0, m) for a magnitude m > 0.
func reduce(x *Int, m nat.Nat) nat.Nat {
	var r nat.Nat
	if len(m) == 1 {
		r = r.SetWord(x.abs.ModW(m[0]))
	} else {
		_, r = nat.Nat(nil).Div(nil, x.abs, m)
	}
	if x.neg && len(r) > 0 {
		r = nat.Nat(nil).Sub(m, r)
	}
	return r
}
