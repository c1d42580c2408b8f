package golden

import (
	"math/big"
	"math/rand"

	"github.com/agbru/int2023/internal/calculator"
	"github.com/agbru/int2023/pkg/int2023"
)

// edgeOperands are combined pairwise for every operation: zero, small
// values, the int32 boundary, the half-width and top powers of two and the
// extremes of the range.
func edgeOperands() []*big.Int {
	maxMag := new(big.Int).Sub(limit, big.NewInt(1))
	return []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-5),
		big.NewInt(256),
		big.NewInt(-1 << 31),
		new(big.Int).Lsh(big.NewInt(1), 1011),
		new(big.Int).Lsh(big.NewInt(1), int2023.Bits-1),
		maxMag,
		new(big.Int).Neg(maxMag),
	}
}

// GenerateOp returns the edge cases of op followed by count random cases
// drawn from a generator seeded with seed.
func GenerateOp(op calculator.Operation, seed int64, count int) ([]Case, error) {
	r := rand.New(rand.NewSource(seed))
	edges := edgeOperands()
	cases := make([]Case, 0, len(edges)*len(edges)+count)

	for _, x := range edges {
		for _, y := range edges {
			c, err := Oracle(op, x, y)
			if err != nil {
				return nil, err
			}
			cases = append(cases, c)
		}
	}
	for i := 0; i < count; i++ {
		x, y := randomOperands(r, op)
		c, err := Oracle(op, x, y)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// randomOperands picks digit lengths that keep most results in range: the
// factors of a product share 250 digits, other operations use the full width.
func randomOperands(r *rand.Rand, op calculator.Operation) (*big.Int, *big.Int) {
	if op == calculator.OpMul {
		n := 1 + r.Intn(249)
		return randomBig(r, n), randomBig(r, 1+r.Intn(250-n))
	}
	return randomBig(r, 1+r.Intn(int2023.Digits-1)), randomBig(r, 1+r.Intn(int2023.Digits-1))
}

// randomBig returns a value of exactly n base-256 digits with a random sign.
func randomBig(r *rand.Rand, n int) *big.Int {
	buf := make([]byte, n)
	r.Read(buf)
	buf[0] |= 1
	z := new(big.Int).SetBytes(buf)
	if r.Intn(2) == 1 {
		z.Neg(z)
	}
	return z
}
