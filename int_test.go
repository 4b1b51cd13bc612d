package bigint

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

// ─────────────────────────────────────────────────────────────────────────────
// Construction and access
// ─────────────────────────────────────────────────────────────────────────────

func TestZeroValue(t *testing.T) {
	t.Parallel()
	var z Int
	if z.Sign() != 0 || z.BitLen() != 0 || z.String() != "0" {
		t.Errorf("zero value: sign=%d bitlen=%d text=%q", z.Sign(), z.BitLen(), z.String())
	}
	z.Add(&z, NewInt(7))
	if z.String() != "7" {
		t.Errorf("0 + 7 = %s", &z)
	}
}

func TestSetInt64AndSign(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   int64
		sign int
		text string
	}{
		{0, 0, "0"},
		{1, 1, "1"},
		{-1, -1, "-1"},
		{math.MaxInt64, 1, "9223372036854775807"},
		{math.MinInt64, -1, "-9223372036854775808"},
	}
	for _, tt := range tests {
		z := NewInt(tt.in)
		checkNormalized(t, "NewInt", z)
		if z.Sign() != tt.sign {
			t.Errorf("NewInt(%d).Sign() = %d, want %d", tt.in, z.Sign(), tt.sign)
		}
		if got := z.String(); got != tt.text {
			t.Errorf("NewInt(%d) = %s, want %s", tt.in, got, tt.text)
		}
	}
}

func TestInt64Uint64(t *testing.T) {
	t.Parallel()
	int64Tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"-1", -1, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
		{"0x10000000000000000", 0, false},
	}
	for _, tt := range int64Tests {
		x := mustParse(t, tt.in)
		if x.IsInt64() != tt.ok {
			t.Errorf("IsInt64(%s) = %v, want %v", tt.in, x.IsInt64(), tt.ok)
		}
		got, err := x.Int64()
		switch {
		case tt.ok && err != nil:
			t.Errorf("Int64(%s): unexpected error %v", tt.in, err)
		case tt.ok && got != tt.want:
			t.Errorf("Int64(%s) = %d, want %d", tt.in, got, tt.want)
		case !tt.ok && !errors.Is(err, ErrInvalidArgument):
			t.Errorf("Int64(%s) error = %v, want ErrInvalidArgument", tt.in, err)
		}
	}

	uint64Tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"0", 0, true},
		{"18446744073709551615", math.MaxUint64, true},
		{"18446744073709551616", 0, false},
		{"-1", 0, false},
	}
	for _, tt := range uint64Tests {
		x := mustParse(t, tt.in)
		if x.IsUint64() != tt.ok {
			t.Errorf("IsUint64(%s) = %v, want %v", tt.in, x.IsUint64(), tt.ok)
		}
		got, err := x.Uint64()
		switch {
		case tt.ok && (err != nil || got != tt.want):
			t.Errorf("Uint64(%s) = %d, %v; want %d", tt.in, got, err, tt.want)
		case !tt.ok && !errors.Is(err, ErrInvalidArgument):
			t.Errorf("Uint64(%s) error = %v, want ErrInvalidArgument", tt.in, err)
		}
	}
}

func TestSetBitsNormalizes(t *testing.T) {
	t.Parallel()
	z := new(Int).SetBits([]Word{5, 0, 0})
	checkNormalized(t, "SetBits", z)
	if z.String() != "5" {
		t.Errorf("SetBits = %s, want 5", z)
	}
	if z = new(Int).SetBits([]Word{0, 0}); z.Sign() != 0 {
		t.Errorf("SetBits(zero words) = %s", z)
	}
}

func TestWordsIsRestartable(t *testing.T) {
	t.Parallel()
	x := new(Int).Lsh(NewInt(3), 130)
	collect := func() []Word {
		var ws []Word
		for i, w := range x.Words() {
			if i != len(ws) {
				t.Fatalf("index %d out of order", i)
			}
			ws = append(ws, w)
		}
		return ws
	}
	first, second := collect(), collect()
	if len(first) != len(x.Bits()) || len(second) != len(first) {
		t.Fatalf("Words yielded %d then %d words, want %d", len(first), len(second), len(x.Bits()))
	}
	for i := range first {
		if first[i] != x.Bits()[i] || second[i] != first[i] {
			t.Errorf("word %d: %x / %x, want %x", i, first[i], second[i], x.Bits()[i])
		}
	}

	// Early termination stops the sequence.
	n := 0
	for range x.Words() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("break after first word visited %d words", n)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sign-aware arithmetic
// ─────────────────────────────────────────────────────────────────────────────

func TestAddSubMulSigns(t *testing.T) {
	t.Parallel()
	values := []string{
		"0", "1", "-1", "123456789", "-987654321",
		"0xffffffffffffffff", "-0x10000000000000000",
		"340282366920938463463374607431768211457",
		"-340282366920938463463374607431768211455",
	}
	for _, xs := range values {
		for _, ys := range values {
			x, y := mustParse(t, xs), mustParse(t, ys)
			bx, by := toBig(x), toBig(y)

			if got, want := new(Int).Add(x, y), new(big.Int).Add(bx, by); toBig(got).Cmp(want) != 0 {
				t.Errorf("%s + %s = %s, want %s", xs, ys, got, want)
			} else {
				checkNormalized(t, "Add", got)
			}
			if got, want := new(Int).Sub(x, y), new(big.Int).Sub(bx, by); toBig(got).Cmp(want) != 0 {
				t.Errorf("%s - %s = %s, want %s", xs, ys, got, want)
			} else {
				checkNormalized(t, "Sub", got)
			}
			if got, want := new(Int).Mul(x, y), new(big.Int).Mul(bx, by); toBig(got).Cmp(want) != 0 {
				t.Errorf("%s * %s = %s, want %s", xs, ys, got, want)
			} else {
				checkNormalized(t, "Mul", got)
			}
			if got, want := x.Cmp(y), bx.Cmp(by); got != want {
				t.Errorf("Cmp(%s, %s) = %d, want %d", xs, ys, got, want)
			}
			if got, want := x.CmpAbs(y), bx.CmpAbs(by); got != want {
				t.Errorf("CmpAbs(%s, %s) = %d, want %d", xs, ys, got, want)
			}
		}
	}
}

func TestAddScenario(t *testing.T) {
	t.Parallel()
	got := new(Int).Add(NewInt(123456789), NewInt(987654321))
	if got.String() != "1111111110" {
		t.Errorf("123456789 + 987654321 = %s, want 1111111110", got)
	}
}

func TestArithmeticAliasing(t *testing.T) {
	t.Parallel()
	x := mustParse(t, "0x1234567890abcdef1234567890abcdef")
	y := mustParse(t, "-0xfedcba0987654321")
	bx, by := toBig(x), toBig(y)

	z := new(Int).Set(x)
	z.Add(z, z)
	if want := new(big.Int).Add(bx, bx); toBig(z).Cmp(want) != 0 {
		t.Errorf("z.Add(z, z) = %s, want %s", z, want)
	}

	z.Set(x)
	z.Mul(z, y)
	if want := new(big.Int).Mul(bx, by); toBig(z).Cmp(want) != 0 {
		t.Errorf("z.Mul(z, y) = %s, want %s", z, want)
	}

	z.Set(y)
	z.Sub(x, z)
	if want := new(big.Int).Sub(bx, by); toBig(z).Cmp(want) != 0 {
		t.Errorf("z.Sub(x, z) = %s, want %s", z, want)
	}

	z.Set(x)
	z.Sub(z, z)
	if z.Sign() != 0 || !isNormalized(z) {
		t.Errorf("z.Sub(z, z) = %s", z)
	}
}

func TestNegAbsZero(t *testing.T) {
	t.Parallel()
	zero := new(Int)
	if n := new(Int).Neg(zero); n.neg {
		t.Error("Neg(0) produced negative zero")
	}
	x := NewInt(-42)
	if a := new(Int).Abs(x); a.String() != "42" {
		t.Errorf("Abs(-42) = %s", a)
	}
	if n := new(Int).Neg(x); n.String() != "42" {
		t.Errorf("Neg(-42) = %s", n)
	}
	// Cancellation must not leave a negative zero.
	s := new(Int).Add(NewInt(-5), NewInt(5))
	checkNormalized(t, "-5 + 5", s)
}

func TestMulRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b int64
		want string
	}{
		{0, 0, "0"},
		{1, 1, "1"},
		{1, 2, "2"},
		{1, 3, "6"},
		{10, 10, "10"},
		{0, 100, "0"},
		{0, 1e9, "0"},
		{-1, 1, "0"},
		{-1e9, 0, "0"},
		{-1e9, 1e9, "0"},
		{5, 4, "1"},
		{-3, -1, "-6"},
		{-4, -1, "24"},
		{-2, -2, "-2"},
		{1, 10, "3628800"},
		{1, 20, "2432902008176640000"},
		{1, 30, "265252859812191058636308480000000"},
		{math.MinInt64, math.MinInt64, "-9223372036854775808"},
		{math.MinInt64, math.MinInt64 + 1, "85070591730234615856620279821087277056"},
		{math.MaxInt64, math.MaxInt64, "9223372036854775807"},
	}
	for _, tt := range tests {
		got := new(Int).MulRange(tt.a, tt.b)
		checkNormalized(t, "MulRange", got)
		if got.String() != tt.want {
			t.Errorf("MulRange(%d, %d) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBinomial(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n, k int64
		want string
	}{
		{0, 0, "1"},
		{0, 1, "0"},
		{1, 0, "1"},
		{1, 1, "1"},
		{1, 10, "0"},
		{4, 0, "1"},
		{4, 1, "4"},
		{4, 2, "6"},
		{4, 3, "4"},
		{4, 4, "1"},
		{10, -1, "0"},
		{10, 1, "10"},
		{10, 5, "252"},
		{10, 9, "10"},
		{10, 10, "1"},
		{11, 5, "462"},
		{11, 6, "462"},
		{100, 10, "17310309456440"},
		{100, 90, "17310309456440"},
		{1000, 10, "263409560461970212832400"},
		{1000, 990, "263409560461970212832400"},
		{math.MaxInt64, 0, "1"},
		{math.MaxInt64, math.MaxInt64, "1"},
		{math.MaxInt64, 1, "9223372036854775807"},
		{math.MaxInt64, math.MaxInt64 - 1, "9223372036854775807"},
	}
	for _, tt := range tests {
		got := new(Int).Binomial(tt.n, tt.k)
		if got.String() != tt.want {
			t.Errorf("Binomial(%d, %d) = %s, want %s", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestSqrt(t *testing.T) {
	t.Parallel()
	for i := 0; i < 200; i++ {
		x := new(Int).Lsh(NewInt(int64(i)+1), uint(i))
		x.Add(x, NewInt(int64(i)))
		got, err := new(Int).Sqrt(x)
		if err != nil {
			t.Fatalf("Sqrt(%s): %v", x, err)
		}
		want := new(big.Int).Sqrt(toBig(x))
		if toBig(got).Cmp(want) != 0 {
			t.Errorf("Sqrt(%s) = %s, want %s", x, got, want)
		}
	}

	z := NewInt(99)
	if _, err := z.Sqrt(NewInt(-4)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Sqrt(-4) error = %v, want ErrInvalidArgument", err)
	}
	if z.String() != "99" {
		t.Errorf("failed Sqrt modified receiver to %s", z)
	}
}
