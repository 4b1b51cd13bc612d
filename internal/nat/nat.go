// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import (
	"math/big"
	"math/bits"
	"sync/atomic"
)

// Word is a single digit of a magnitude. It is an alias of big.Word so the
// linked math/big kernels accept our slices directly.
type Word = big.Word

// Nat is an unsigned magnitude stored as little-endian words.
type Nat []Word

// DefaultKaratsubaThreshold is the operand length in words at which Mul
// switches from schoolbook to Karatsuba multiplication.
const DefaultKaratsubaThreshold = 40

// minKaratsubaThreshold keeps the Karatsuba recursion well-founded.
const minKaratsubaThreshold = 8

var karatsubaThreshold atomic.Int64

func init() {
	karatsubaThreshold.Store(DefaultKaratsubaThreshold)
}

// SetKaratsubaThreshold sets the Karatsuba cut-over in words and returns the
// previous value. Values below a small floor are raised to that floor.
func SetKaratsubaThreshold(n int) int {
	n = max(n, minKaratsubaThreshold)
	return int(karatsubaThreshold.Swap(int64(n)))
}

// KaratsubaThreshold returns the active Karatsuba cut-over in words.
func KaratsubaThreshold() int {
	return int(karatsubaThreshold.Load())
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// Norm drops leading zero words.
func (z Nat) Norm() Nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

// Make returns a slice of length n, reusing z's backing array when possible.
func (z Nat) Make(n int) Nat {
	if n <= cap(z) {
		return z[:n]
	}
	if n == 1 {
		return make(Nat, 1)
	}
	const e = 4 // extra capacity
	return make(Nat, n, n+e)
}

func (z Nat) SetWord(x Word) Nat {
	if x == 0 {
		return z[:0]
	}
	z = z.Make(1)
	z[0] = x
	return z
}

func (z Nat) SetUint64(x uint64) Nat {
	if w := Word(x); uint64(w) == x {
		return z.SetWord(w)
	}
	// 32-bit words: x needs both halves.
	z = z.Make(2)
	z[1] = Word(x >> 32)
	z[0] = Word(x)
	return z
}

func (z Nat) Set(x Nat) Nat {
	z = z.Make(len(x))
	copy(z, x)
	return z
}

// alias reports whether x and y share the same base array.
func alias(x, y Nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Nat) Cmp(y Nat) (r int) {
	m, n := len(x), len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return r
	}
	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return r
}

// IsOne reports whether x == 1.
func (x Nat) IsOne() bool {
	return len(x) == 1 && x[0] == 1
}

// ─────────────────────────────────────────────────────────────────────────────
// Addition and subtraction
// ─────────────────────────────────────────────────────────────────────────────

func (z Nat) Add(x, y Nat) Nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.Add(y, x)
	case m == 0:
		return z[:0]
	case n == 0:
		return z.Set(x)
	}
	z = z.Make(m + 1)
	c := addVV(z[0:n], x[0:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.Norm()
}

// Sub returns x - y. It panics if x < y.
func (z Nat) Sub(x, y Nat) Nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		panic("nat: underflow")
	case m == 0:
		return z[:0]
	case n == 0:
		return z.Set(x)
	}
	z = z.Make(m)
	c := subVV(z[0:n], x[0:n], y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("nat: underflow")
	}
	return z.Norm()
}

// AddW returns x + y for a single word y.
func (z Nat) AddW(x Nat, y Word) Nat {
	m := len(x)
	if m == 0 {
		return z.SetWord(y)
	}
	z = z.Make(m + 1)
	z[m] = addVW(z[:m], x, y)
	return z.Norm()
}

// SubW returns x - y for a single word y. It panics if x < y.
func (z Nat) SubW(x Nat, y Word) Nat {
	m := len(x)
	if m == 0 {
		if y == 0 {
			return z[:0]
		}
		panic("nat: underflow")
	}
	z = z.Make(m)
	if subVW(z, x, y) != 0 {
		panic("nat: underflow")
	}
	return z.Norm()
}

// ─────────────────────────────────────────────────────────────────────────────
// Multiplication
// ─────────────────────────────────────────────────────────────────────────────

// MulAddWW returns x*y + r.
func (z Nat) MulAddWW(x Nat, y, r Word) Nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.SetWord(r)
	}
	z = z.Make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)
	return z.Norm()
}

// basicMul sets z = x*y using schoolbook multiplication.
// z must have length len(x)+len(y) and must not alias x or y.
func basicMul(z, x, y Nat) {
	clear(z[0 : len(x)+len(y)])
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

func (z Nat) Mul(x, y Nat) Nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.Mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.MulAddWW(x, y[0], 0)
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	threshold := KaratsubaThreshold()
	if n < threshold {
		z = z.Make(m + n)
		basicMul(z, x, y)
		return z.Norm()
	}
	return mulRec(x, y, threshold)
}

// mulNat returns x*y in fresh storage for operands of any order.
func mulNat(x, y Nat, threshold int) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return nil
	}
	return mulRec(x, y, threshold)
}

// mulRec returns x*y in fresh storage. It requires len(x) >= len(y) > 0 and
// both operands normalized.
func mulRec(x, y Nat, threshold int) Nat {
	m, n := len(x), len(y)
	z := make(Nat, m+n)
	if n < threshold {
		basicMul(z, x, y)
		return z.Norm()
	}

	// Unbalanced operands are multiplied chunk by chunk.
	if m >= 2*n {
		for i := 0; i < m; i += n {
			xi := x[i:min(i+n, m)].Norm()
			if len(xi) == 0 {
				continue
			}
			addAt(z, mulNat(xi, y, threshold), i)
		}
		return z.Norm()
	}

	// x = x1*B^h + x0, y = y1*B^h + y0
	// x*y = z2*B^2h + ((x0+x1)(y0+y1) - z2 - z0)*B^h + z0
	h := n / 2
	x0, x1 := x[:h].Norm(), x[h:]
	y0, y1 := y[:h].Norm(), y[h:]
	z0 := mulNat(x0, y0, threshold)
	z2 := mulNat(x1, y1, threshold)
	z1 := mulNat(Nat(nil).Add(x0, x1), Nat(nil).Add(y0, y1), threshold)
	z1 = z1.Sub(z1, z0)
	z1 = z1.Sub(z1, z2)

	addAt(z, z0, 0)
	addAt(z, z1, h)
	addAt(z, z2, 2*h)
	return z.Norm()
}

// addAt implements z += x << (_W*i). z must be long enough to hold the sum.
func addAt(z, x Nat, i int) {
	n := len(x)
	if n == 0 {
		return
	}
	if c := addVV(z[i:i+n], z[i:i+n], x); c != 0 {
		if j := i + n; j < len(z) {
			addVW(z[j:], z[j:], c)
		}
	}
}

// MulRange returns the product of all integers in [a, b].
func (z Nat) MulRange(a, b uint64) Nat {
	switch {
	case a == 0:
		return z[:0]
	case a > b:
		return z.SetWord(1)
	case a == b:
		return z.SetUint64(a)
	case a+1 == b:
		return z.Mul(Nat(nil).SetUint64(a), Nat(nil).SetUint64(b))
	}
	m := a + (b-a)/2
	return z.Mul(Nat(nil).MulRange(a, m), Nat(nil).MulRange(m+1, b))
}

// ─────────────────────────────────────────────────────────────────────────────
// Shifts and bits
// ─────────────────────────────────────────────────────────────────────────────

// Lsh returns x << s.
func (z Nat) Lsh(x Nat, s uint) Nat {
	if s == 0 {
		return z.Set(x)
	}
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	n := m + int(s/_W)
	z = z.Make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	clear(z[0 : n-m])
	return z.Norm()
}

// Rsh returns x >> s.
func (z Nat) Rsh(x Nat, s uint) Nat {
	if s == 0 {
		return z.Set(x)
	}
	m := len(x)
	if uint(m) <= s/_W {
		return z[:0]
	}
	n := m - int(s/_W)
	z = z.Make(n)
	shrVU(z, x[m-n:], s%_W)
	return z.Norm()
}

// Bit returns the value of bit i of x.
func (x Nat) Bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % _W) & 1)
}

// SetBit returns x with bit i set to b, which must be 0 or 1.
func (z Nat) SetBit(x Nat, i uint, b uint) Nat {
	j := int(i / _W)
	m := Word(1) << (i % _W)
	n := len(x)
	switch b {
	case 0:
		z = z.Make(n)
		copy(z, x)
		if j >= n {
			return z
		}
		z[j] &^= m
		return z.Norm()
	case 1:
		if j >= n {
			z = z.Make(j + 1)
			clear(z[n:])
		} else {
			z = z.Make(n)
		}
		copy(z, x)
		z[j] |= m
		return z
	}
	panic("nat: bit value must be 0 or 1")
}

// BitLen returns the length of x in bits; 0 for x == 0.
func (x Nat) BitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len(uint(x[i]))
	}
	return 0
}

// TrailingZeroBits returns the number of consecutive least significant zero
// bits of x; 0 for x == 0.
func (x Nat) TrailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*_W + uint(bits.TrailingZeros(uint(w)))
		}
	}
	return 0
}

func (z Nat) And(x, y Nat) Nat {
	m := min(len(x), len(y))
	z = z.Make(m)
	for i := 0; i < m; i++ {
		z[i] = x[i] & y[i]
	}
	return z.Norm()
}

// AndNot returns x &^ y.
func (z Nat) AndNot(x, y Nat) Nat {
	m := len(x)
	n := min(len(y), m)
	z = z.Make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:m], x[n:m])
	return z.Norm()
}

func (z Nat) Or(x, y Nat) Nat {
	m, n := len(x), len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	z = z.Make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], s[n:m])
	return z.Norm()
}

func (z Nat) Xor(x, y Nat) Nat {
	m, n := len(x), len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	z = z.Make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], s[n:m])
	return z.Norm()
}

// ─────────────────────────────────────────────────────────────────────────────
// Powers and roots
// ─────────────────────────────────────────────────────────────────────────────

// ExpNN returns x**y mod m, or x**y when m is empty. The result is always
// reduced into [0, m) when m is non-empty.
func (z Nat) ExpNN(x, y, m Nat) Nat {
	if alias(z, x) || alias(z, y) || alias(z, m) {
		z = nil
	}
	if m.IsOne() {
		return z[:0]
	}
	if len(y) == 0 {
		return z.SetWord(1)
	}

	base := x
	if len(m) > 0 && x.Cmp(m) >= 0 {
		_, base = Nat(nil).Div(nil, x, m)
	}
	if len(base) == 0 {
		return z[:0]
	}

	var zz, q, r Nat
	z = z.Set(base)
	for i := y.BitLen() - 2; i >= 0; i-- {
		zz = zz.Mul(z, z)
		zz, z = z, zz
		if y.Bit(uint(i)) == 1 {
			zz = zz.Mul(z, base)
			zz, z = z, zz
		}
		if len(m) > 0 {
			q, r = q.Div(r, z, m)
			z, r = r, z
		}
	}
	return z.Norm()
}

// Sqrt returns floor(sqrt(x)) using Newton's method.
func (z Nat) Sqrt(x Nat) Nat {
	if len(x) == 0 || x.IsOne() {
		return z.Set(x)
	}
	if alias(z, x) {
		z = nil
	}

	// Start above the root and iterate downward until the sequence stops
	// decreasing.
	var z1, z2 Nat
	z1 = z
	z1 = z1.SetWord(1)
	z1 = z1.Lsh(z1, uint(x.BitLen()+1)/2)
	for n := 0; ; n++ {
		z2, _ = z2.Div(nil, x, z1)
		z2 = z2.Add(z2, z1)
		z2 = z2.Rsh(z2, 1)
		if z2.Cmp(z1) >= 0 {
			// z1 is the result; return it in z's storage when possible.
			if n&1 == 0 {
				return z1
			}
			return z.Set(z1)
		}
		z1, z2 = z2, z1
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Byte conversion
// ─────────────────────────────────────────────────────────────────────────────

// Bytes writes x big-endian into the tail of buf and returns the index of
// the first significant byte. It panics if buf is too small.
func (z Nat) Bytes(buf []byte) (i int) {
	i = len(buf)
	for _, d := range z {
		for j := 0; j < _S; j++ {
			i--
			if i >= 0 {
				buf[i] = byte(d)
			} else if byte(d) != 0 {
				panic("nat: buffer too small to fit value")
			}
			d >>= 8
		}
	}
	if i < 0 {
		i = 0
	}
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return i
}

// SetBytes interprets buf as a big-endian unsigned magnitude.
func (z Nat) SetBytes(buf []byte) Nat {
	z = z.Make((len(buf) + _S - 1) / _S)

	var d Word
	k, s := 0, uint(0)
	for i := len(buf); i > 0; i-- {
		d |= Word(buf[i-1]) << s
		if s += 8; s == _S*8 {
			z[k] = d
			k++
			s = 0
			d = 0
		}
	}
	if k < len(z) {
		z[k] = d
	}
	return z.Norm()
}
