package int2023

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"
)

func TestQuoRemSigns(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		x, y, q, r int32
	}{
		{100, 7, 14, 2},
		{-100, 7, -14, -2},
		{100, -7, -14, 2},
		{-100, -7, 14, -2},
		{0, 5, 0, 0},
		{5, -7, 0, 5},
		{-5, 7, 0, -5},
		{65536, 256, 256, 0},
		{65535, 255, 257, 0},
	}

	for _, tc := range testCases {
		q, r, err := FromInt(tc.x).QuoRem(FromInt(tc.y))
		if err != nil {
			t.Errorf("QuoRem(%d, %d) error: %v", tc.x, tc.y, err)
			continue
		}
		if !q.Equal(FromInt(tc.q)) || !r.Equal(FromInt(tc.r)) {
			t.Errorf("QuoRem(%d, %d) = (%d, %d), want (%d, %d)", tc.x, tc.y, q, r, tc.q, tc.r)
		}
	}
}

func TestQuoZeroResultIsPositive(t *testing.T) {
	t.Parallel()
	q, err := FromInt(-3).Quo(FromInt(10))
	if err != nil {
		t.Fatalf("Quo: %v", err)
	}
	if q.IsNegative() {
		t.Errorf("-3 / 10 = %v, zero quotient must not be negative", q)
	}
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()
	for _, x := range []Int{Zero, One, FromInt(-1), mustBig(t, maxBig)} {
		if _, err := x.Quo(Zero); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Quo(%d, 0) error = %v, want ErrDivisionByZero", x, err)
		}
		if _, err := x.Rem(Zero.Neg()); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Rem(%d, -0) error = %v, want ErrDivisionByZero", x, err)
		}
	}
}

func TestQuoRemAgainstBig(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 300; i++ {
		a := randomInt(r, 1+r.Intn(Digits))
		b := randomInt(r, 1+r.Intn(Digits))

		q, rem, err := a.QuoRem(b)
		if err != nil {
			t.Fatalf("QuoRem: %v", err)
		}
		wantQ, wantR := new(big.Int).QuoRem(a.BigInt(), b.BigInt(), new(big.Int))
		if q.BigInt().Cmp(wantQ) != 0 || rem.BigInt().Cmp(wantR) != 0 {
			t.Fatalf("QuoRem(%d-digit, %d-digit) = (%d, %d), want (%s, %s)", a.Len(), b.Len(), q, rem, wantQ, wantR)
		}
	}
}

func TestQuoRemReconstructs(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(17))
	for i := 0; i < 100; i++ {
		a := randomInt(r, 1+r.Intn(200))
		b := randomInt(r, 1+r.Intn(120))

		q, rem, err := a.QuoRem(b)
		if err != nil {
			t.Fatalf("QuoRem: %v", err)
		}
		prod, err := q.Mul(b)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		back, err := prod.Add(rem)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if !back.Equal(a) {
			t.Fatalf("q*b + r = %d, want %d", back, a)
		}
		if rem.CmpAbs(b) >= 0 {
			t.Fatalf("|r| = %d not below |b| = %d", rem.Abs(), b.Abs())
		}
	}
}

func TestQuoFullWidthDivisor(t *testing.T) {
	t.Parallel()
	maxInt := mustBig(t, maxBig)
	almost, err := maxInt.Sub(One)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}

	q, r, err := maxInt.QuoRem(almost)
	if err != nil {
		t.Fatalf("QuoRem: %v", err)
	}
	if !q.Equal(One) || !r.Equal(One) {
		t.Errorf("max / (max-1) = (%d, %d), want (1, 1)", q, r)
	}

	q, err = maxInt.Quo(maxInt.Neg())
	if err != nil || !q.Equal(FromInt(-1)) {
		t.Errorf("max / -max = %d, %v; want -1", q, err)
	}
}

func TestBinSearchDigit(t *testing.T) {
	t.Parallel()
	divisor := []byte{1, 0} // 256
	testCases := []struct {
		acc  []byte
		want byte
	}{
		{[]byte{1, 0}, 1},
		{[]byte{1, 255}, 1},
		{[]byte{2, 0}, 2},
		{[]byte{255, 255}, 255},
	}
	for _, tc := range testCases {
		if got := binSearchDigit(tc.acc, divisor); got != tc.want {
			t.Errorf("binSearchDigit(%v, 256) = %d, want %d", tc.acc, got, tc.want)
		}
	}
}
