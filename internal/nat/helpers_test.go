package nat

import (
	"math/big"
	"math/rand"
)

// generateRandomWords creates a slice of random words for testing.
func generateRandomWords(n int, seed int64) []Word {
	r := rand.New(rand.NewSource(seed))
	words := make([]Word, n)
	for i := range words {
		words[i] = Word(r.Uint64())
	}
	return words
}

// randNat returns a normalized random magnitude of at most n words.
func randNat(n int, seed int64) Nat {
	return Nat(generateRandomWords(n, seed)).Norm()
}

// toBig converts x to a big.Int without sharing storage.
func toBig(x Nat) *big.Int {
	return new(big.Int).SetBits(append([]big.Word(nil), x...))
}

// fromBig converts a non-negative big.Int to a Nat.
func fromBig(b *big.Int) Nat {
	return Nat(append([]Word(nil), b.Bits()...)).Norm()
}

// natFromString parses a decimal literal for test tables.
func natFromString(s string) Nat {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("bad test literal " + s)
	}
	return fromBig(b)
}

// copyWords creates a copy of a word slice.
func copyWords(src []Word) []Word {
	dst := make([]Word, len(src))
	copy(dst, src)
	return dst
}
