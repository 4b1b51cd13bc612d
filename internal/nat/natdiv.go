// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements magnitude division (Knuth, TAOCP vol. 2, 4.3.1,
// Algorithm D).

package nat

import "math/bits"

// DivW returns the quotient and remainder of x / y. It panics if y == 0.
func (z Nat) DivW(x Nat, y Word) (q Nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("nat: division by zero")
	case y == 1:
		q = z.Set(x)
		return q, 0
	case m == 0:
		q = z[:0]
		return q, 0
	}
	z = z.Make(m)
	r = divWVW(z, 0, x, y)
	q = z.Norm()
	return q, r
}

// ModW returns x mod d. It panics if d == 0.
func (x Nat) ModW(d Word) Word {
	if d == 0 {
		panic("nat: division by zero")
	}
	if len(x) == 0 {
		return 0
	}
	q := acquireWordSlice(len(x))
	defer releaseWordSlice(q)
	return divWVW(q, 0, x, d)
}

// Div returns the quotient q = u / v and remainder r = u mod v, storing q in
// z and r in z2 when their backing arrays allow it. It panics if v == 0.
func (z Nat) Div(z2, u, v Nat) (q, r Nat) {
	if len(v) == 0 {
		panic("nat: division by zero")
	}
	if alias(z, z2) {
		z2 = nil
	}

	if u.Cmp(v) < 0 {
		q = z[:0]
		r = z2.Set(u)
		return q, r
	}

	if len(v) == 1 {
		var r2 Word
		q, r2 = z.DivW(u, v[0])
		r = z2.SetWord(r2)
		return q, r
	}

	q, r = z.divLarge(z2, u, v)
	return q, r
}

// divLarge implements Div for len(vIn) >= 2 and uIn >= vIn, using u as
// scratch for the remainder.
func (z Nat) divLarge(u, uIn, vIn Nat) (q, r Nat) {
	n := len(vIn)
	m := len(uIn) - n

	// Normalize so the top bit of the divisor is set.
	shift := uint(bits.LeadingZeros(uint(vIn[n-1])))
	vp := acquireWordSlice(n)
	defer releaseWordSlice(vp)
	v := Nat(vp)
	shlVU(v, vIn, shift)

	u = u.Make(len(uIn) + 1)
	u[len(uIn)] = shlVU(u[0:len(uIn)], uIn, shift)

	if alias(z, u) {
		z = nil
	}
	q = z.Make(m + 1)
	divBasic(q, u, v)
	q = q.Norm()

	shrVU(u, u, shift)
	r = u.Norm()
	return q, r
}

// divBasic performs word-by-word division of u by v, leaving the quotient in
// q and the remainder in u. v must be normalized and len(q) = len(u)-len(v).
func divBasic(q, u, v Nat) {
	n := len(v)
	m := len(u) - n

	qhatvp := acquireWordSlice(n + 1)
	defer releaseWordSlice(qhatvp)
	qhatv := Nat(qhatvp)

	vn1 := v[n-1]
	vn2 := v[n-2]
	for j := m; j >= 0; j-- {
		// Estimate the quotient digit from the top two words.
		qhat := Word(_M)
		var ujn Word
		if j+n < len(u) {
			ujn = u[j+n]
		}
		if ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, u[j+n-1], vn1)

			// Refine with the third word: x1:x2 = qhat*vn2.
			x1, x2 := mulWW(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		// u[j:j+n+1] -= qhat*v, adding back once if the estimate was one
		// too large.
		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		qhl := len(qhatv)
		if j+qhl > len(u) && qhatv[n] == 0 {
			qhl--
		}
		c := subVV(u[j:j+qhl], u[j:j+qhl], qhatv[:qhl])
		if c != 0 {
			c := addVV(u[j:j+n], u[j:j+n], v)
			if n < qhl {
				u[j+n] += c
			}
			qhat--
		}

		if j < len(q) {
			q[j] = qhat
		}
	}
}

// greaterThan reports whether the two-word value x1:x2 exceeds y1:y2.
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
