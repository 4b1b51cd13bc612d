package nat

import (
	"math/big"
	"testing"
)

func TestItoa(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x    string
		neg  bool
		base int
		want string
	}{
		{"0", false, 10, "0"},
		{"0", true, 10, "0"},
		{"255", false, 16, "ff"},
		{"255", true, 2, "-11111111"},
		{"33536793425", false, 62, "ABCXYZ"},
		{"18446744073709551616", false, 36, "3w5e11264sgsg"},
		{"1180591620717411303423", false, 32, "vvvvvvvvvvvvvv"},
		{"1000000000000000000000000000000", false, 7, "243230604464041356413054436032064451"},
	}
	for _, tt := range tests {
		got := string(natFromString(tt.x).Itoa(tt.neg, tt.base))
		if got != tt.want {
			t.Errorf("Itoa(%s, %v, %d) = %q, want %q", tt.x, tt.neg, tt.base, got, tt.want)
		}
	}
}

func TestItoaMatchesBig(t *testing.T) {
	t.Parallel()
	x := randNat(7, 31)
	for base := 2; base <= 36; base++ {
		if got, want := string(x.Utoa(base)), toBig(x).Text(base); got != want {
			t.Errorf("base %d: got %s, want %s", base, got, want)
		}
	}
}

func TestItoaInvalidBasePanics(t *testing.T) {
	t.Parallel()
	for _, base := range []int{0, 1, 63} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Itoa with base %d did not panic", base)
				}
			}()
			Nat{1}.Itoa(false, base)
		}()
	}
}

func TestDigitValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		ch   byte
		base int
		want Word
		ok   bool
	}{
		{'7', 8, 7, true},
		{'8', 8, 0, false},
		{'a', 16, 10, true},
		{'A', 16, 10, true},
		{'Z', 36, 35, true},
		{'A', 37, 36, true},
		{'a', 37, 10, true},
		{'Z', 62, 61, true},
		{'Z', 61, 0, false},
		{'_', 62, 0, false},
		{' ', 10, 0, false},
	}
	for _, tt := range tests {
		got, ok := DigitValue(tt.ch, tt.base)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DigitValue(%q, %d) = (%d, %v), want (%d, %v)", tt.ch, tt.base, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSetDigits(t *testing.T) {
	t.Parallel()
	digs := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4, 5}
	want, _ := new(big.Int).SetString("1234567890123456789012345", 10)
	if got := Nat(nil).SetDigits(digs, 10); toBig(got).Cmp(want) != 0 {
		t.Errorf("SetDigits = %s, want %s", toBig(got), want)
	}
	if got := Nat(nil).SetDigits(nil, 10); len(got) != 0 {
		t.Errorf("SetDigits(nil) = %v", got)
	}
}

func TestMaxPow(t *testing.T) {
	t.Parallel()
	p, n := MaxPow(10)
	if _W == 64 && (n != 19 || toBig(Nat{p}).String() != "10000000000000000000") {
		t.Errorf("MaxPow(10) = (%d, %d)", p, n)
	}
}
