package bigint

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/minio/sha256-simd"
)

// toBig converts x to a math/big value for cross-checking.
func toBig(x *Int) *big.Int {
	b := new(big.Int).SetBits(append([]big.Word(nil), x.abs...))
	if x.neg {
		b.Neg(b)
	}
	return b
}

// fromBig converts b to an Int with its own storage.
func fromBig(b *big.Int) *Int {
	z := new(Int).SetBits(append([]Word(nil), b.Bits()...))
	if b.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

// mustParse parses a base-0 literal or fails the test.
func mustParse(tb testing.TB, s string) *Int {
	tb.Helper()
	z, err := Parse(s, 0)
	if err != nil {
		tb.Fatalf("Parse(%q): %v", s, err)
	}
	return z
}

// isNormalized reports whether x satisfies the canonical form invariants.
func isNormalized(x *Int) bool {
	if len(x.abs) == 0 {
		return !x.neg
	}
	return x.abs[len(x.abs)-1] != 0
}

// checkNormalized fails the test when x is not canonical.
func checkNormalized(tb testing.TB, name string, x *Int) {
	tb.Helper()
	if !isNormalized(x) {
		tb.Errorf("%s: %v (neg=%v, words=%v) is not normalized", name, x, x.neg, x.abs)
	}
}

// wideOperand derives a deterministic operand of the given bit length from a
// seed string. The value is chained SHA-256 output truncated to bits, so the
// top bit is set with probability one half.
func wideOperand(seed string, bits int, neg bool) *Int {
	nbytes := (bits + 7) / 8
	buf := make([]byte, 0, nbytes+sha256.Size)
	h := sha256.Sum256([]byte(seed))
	for len(buf) < nbytes {
		buf = append(buf, h[:]...)
		h = sha256.Sum256(h[:])
	}
	buf = buf[:nbytes]
	if extra := nbytes*8 - bits; extra > 0 {
		buf[0] &= byte(0xff >> extra)
	}
	z := new(Int).SetBytes(buf)
	if neg {
		z.Neg(z)
	}
	return z
}

// seededInt64 derives a deterministic int64 from seed and index.
func seededInt64(seed string, i int) int64 {
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], uint64(i))
	h := sha256.Sum256(append([]byte(seed), idx[:]...))
	return int64(binary.LittleEndian.Uint64(h[:8]))
}
