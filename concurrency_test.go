package bigint

import (
	"fmt"
	"math/big"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestIndependentValuesConcurrently runs full operation chains on distinct
// values from many goroutines, sharing only read-only operands.
func TestIndependentValuesConcurrently(t *testing.T) {
	t.Parallel()
	shared := wideOperand("shared", 700, false)
	modulus := mustParse(t, "0xffffffff00000001000000000000000000000000ffffffffffffffffffffffff")

	var g errgroup.Group
	g.SetLimit(8)
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			x := wideOperand(fmt.Sprintf("worker-%d", i), 300+i*17, i%2 == 1)
			bx, bs, bm := toBig(x), toBig(shared), toBig(modulus)

			z := new(Int).Mul(x, shared)
			if want := new(big.Int).Mul(bx, bs); toBig(z).Cmp(want) != 0 {
				return fmt.Errorf("worker %d: Mul mismatch", i)
			}
			if _, err := z.Quo(z, shared); err != nil || z.Cmp(x) != 0 {
				return fmt.Errorf("worker %d: Quo did not undo Mul: %v", i, err)
			}
			e, err := new(Int).Exp(x, NewInt(65537), modulus)
			if err != nil {
				return fmt.Errorf("worker %d: Exp: %w", i, err)
			}
			if want := new(big.Int).Exp(bx, big.NewInt(65537), bm); toBig(e).Cmp(want) != 0 {
				return fmt.Errorf("worker %d: Exp mismatch", i)
			}
			s := x.Text(16)
			back, err := Parse(s, 16)
			if err != nil || back.Cmp(x) != 0 {
				return fmt.Errorf("worker %d: text round trip failed: %v", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if shared.Cmp(wideOperand("shared", 700, false)) != 0 {
		t.Error("shared operand was modified")
	}
}
