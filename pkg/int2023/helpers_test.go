package int2023

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// maxBig is 2^2023 - 1, the largest representable magnitude.
var maxBig = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), Bits), big.NewInt(1))

func mustBig(t testing.TB, b *big.Int) Int {
	t.Helper()
	x, err := FromBig(b)
	if err != nil {
		t.Fatalf("FromBig(%s): %v", b, err)
	}
	return x
}

func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// randomInt returns a value with exactly n significant digits (n <= Digits)
// and a random sign.
func randomInt(r *rand.Rand, n int) Int {
	var d [Digits]byte
	for i := Digits - n; i < Digits; i++ {
		d[i] = byte(r.Intn(Base))
	}
	if n > 0 {
		d[Digits-n] = byte(1 + r.Intn(Base-1))
	}
	d[0] &= topDigitLimit - 1
	x := FromDigits(d)
	if r.Intn(2) == 1 {
		x = x.Neg()
	}
	return x
}

// genInt generates values of up to maxDigits significant digits.
func genInt(maxDigits int) gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(),
		gen.IntRange(0, maxDigits),
		gen.SliceOfN(maxDigits, gen.UInt8()),
	).Map(func(vals []interface{}) Int {
		neg := vals[0].(bool)
		n := vals[1].(int)
		digits := vals[2].([]uint8)

		var d [Digits]byte
		copy(d[Digits-n:], digits[:n])
		d[0] &= topDigitLimit - 1
		x := FromDigits(d)
		if neg {
			x = x.Neg()
		}
		return x
	})
}

// genNonZeroInt generates nonzero values of up to maxDigits digits.
func genNonZeroInt(maxDigits int) gopter.Gen {
	return genInt(maxDigits).SuchThat(func(x Int) bool { return !x.IsZero() })
}
