// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"github.com/agbru/bigint/internal/logging"
	"github.com/agbru/bigint/internal/nat"
)

// Strategy labels reported in logs and the bigint_modsqrt_strategy_total
// counter.
const (
	strategy3Mod4         = "3-mod-4"
	strategyAtkin         = "atkin"
	strategyTonelliShanks = "tonelli-shanks"
)

// ModSqrt sets z to a square root of x mod p if such a square root exists,
// and returns z. The modulus p must be an odd prime; a composite p is not
// detected and may produce a meaningless result or an ErrInvalidArgument
// from the Tonelli–Shanks search.
//
// It fails with ErrInvalidArgument unless p is odd and greater than one, and
// with ErrNoSquareRoot when x is not a square mod p. z is left unchanged on
// failure.
func (z *Int) ModSqrt(x, p *Int) (*Int, error) {
	if p.neg || len(p.abs) == 0 || p.abs[0]&1 == 0 || p.abs.IsOne() {
		return z, newError("ModSqrt", ErrInvalidArgument, "modulus %s is not an odd integer greater than one", p)
	}
	switch jacobi(x, p) {
	case -1:
		return z, newError("ModSqrt", ErrNoSquareRoot, "")
	case 0:
		return z.SetInt64(0), nil
	}

	xr := reduce(x, p.abs)
	pw := nat.Nat(nil).Set(p.abs)

	var (
		strategy string
		r        nat.Nat
		err      error
	)
	switch {
	case pw[0]%4 == 3:
		strategy = strategy3Mod4
		r = sqrt3Mod4Prime(xr, pw)
	case pw[0]%8 == 5:
		strategy = strategyAtkin
		r = sqrt5Mod8Prime(xr, pw)
	default:
		strategy = strategyTonelliShanks
		r, err = sqrtTonelliShanks(xr, pw)
	}

	logger().Debug("modular square root",
		logging.String("strategy", strategy),
		logging.Int("modulus_bits", pw.BitLen()))
	collector.ObserveSqrtStrategy(strategy)

	if err != nil {
		return z, err
	}
	z.abs = z.abs.Set(r)
	z.neg = false
	return z, nil
}

// mulMod returns x*y mod m.
func mulMod(x, y, m nat.Nat) nat.Nat {
	t := nat.Nat(nil).Mul(x, y)
	_, r := nat.Nat(nil).Div(nil, t, m)
	return r
}

// sqrt3Mod4Prime uses the identity
//
//	(a^((p+1)/4))^2  mod p
//	== u^(p+1)       mod p
//	== u^2           mod p
//
// to calculate the square root of any quadratic residue mod p quickly for
// 3 mod 4 primes.
func sqrt3Mod4Prime(x, p nat.Nat) nat.Nat {
	e := nat.Nat(nil).Rsh(p, 2) // e = (p - 3) / 4
	e = e.AddW(e, 1)            // e = (p + 1) / 4
	return nat.Nat(nil).ExpNN(x, e, p)
}

// sqrt5Mod8Prime uses Atkin's observation that 2 is not a square mod p
//
//	alpha ==  (2*a)^((p-5)/8)    mod p
//	beta  ==  2*a*alpha^2        mod p  is a square root of -1
//	b     ==  a*alpha*(beta-1)   mod p  is a square root of a
//
// to calculate the square root of any quadratic residue mod p quickly for
// 5 mod 8 primes.
func sqrt5Mod8Prime(x, p nat.Nat) nat.Nat {
	e := nat.Nat(nil).Rsh(p, 3) // e = (p - 5) / 8
	tx := nat.Nat(nil).Lsh(x, 1)
	if tx.Cmp(p) >= 0 {
		tx = tx.Sub(tx, p)
	}
	alpha := nat.Nat(nil).ExpNN(tx, e, p)
	beta := mulMod(alpha, alpha, p)
	beta = mulMod(beta, tx, p)
	if len(beta) == 0 {
		beta = beta.SubW(p, 1)
	} else {
		beta = beta.SubW(beta, 1)
	}
	beta = mulMod(beta, x, p)
	return mulMod(beta, alpha, p)
}

// sqrtTonelliShanks uses the Tonelli–Shanks algorithm to find the square
// root of a quadratic residue modulo any odd prime. A composite modulus can
// defeat the search for a non-residue or the order computation; both are
// bounded and reported as ErrInvalidArgument.
func sqrtTonelliShanks(x, p nat.Nat) (nat.Nat, error) {
	// Break p-1 into s*2^e such that s is odd.
	s := nat.Nat(nil).SubW(p, 1)
	e := s.TrailingZeroBits()
	s = s.Rsh(s, e)

	// find some non-square n
	pi := &Int{abs: p}
	n := &Int{abs: nat.Nat{2}}
	for jacobi(n, pi) != -1 {
		n.abs = n.abs.AddW(n.abs, 1)
		if n.abs.Cmp(p) >= 0 {
			return nil, newError("ModSqrt", ErrInvalidArgument, "no quadratic non-residue below modulus")
		}
	}

	// Core of the Tonelli-Shanks algorithm. Follows the description in
	// section 6 of "Square roots from 1; 24, 51, 10 to Dan Shanks" by Ezra
	// Brown:
	// https://www.maa.org/sites/default/files/pdf/upload_library/22/Polya/07468342.di020786.02p0470a.pdf
	h := nat.Nat(nil).AddW(s, 1)
	h = h.Rsh(h, 1)
	y := nat.Nat(nil).ExpNN(x, h, p)      // y = x^((s+1)/2)
	b := nat.Nat(nil).ExpNN(x, s, p)      // b = x^s
	g := nat.Nat(nil).ExpNN(n.abs, s, p) // g = n^s
	r := e
	for {
		// find the least m such that ord_p(b) = 2^m
		var m uint
		t := nat.Nat(nil).Set(b)
		for !t.IsOne() {
			t = mulMod(t, t, p)
			m++
			if m >= r {
				return nil, newError("ModSqrt", ErrInvalidArgument, "element order exceeds 2^%d", r)
			}
		}

		if m == 0 {
			return y, nil
		}

		// t = g^(2^(r-m-1)) mod p
		t = t.Set(g)
		for i := uint(0); i < r-m-1; i++ {
			t = mulMod(t, t, p)
		}
		g = mulMod(t, t, p) // g = g^(2^(r-m)) mod p
		y = mulMod(y, t, p)
		b = mulMod(b, g, p)
		r = m
	}
}
