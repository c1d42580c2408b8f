package int2023

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Division Engine
// ─────────────────────────────────────────────────────────────────────────────

// QuoRem returns the truncated quotient q = x/y and the remainder
// r = x - q·y. The quotient is rounded toward zero, so r has the sign of x
// and |r| < |y|, matching Go's / and % on native integers.
//
// It returns ErrDivisionByZero if y == 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, fmt.Errorf("dividing %d-digit value: %w", x.Len(), ErrDivisionByZero)
	}
	quo, rem := divNat(&x.mag, y.mag.significant())
	return newInt(x.neg != y.neg, quo), newInt(x.neg, rem), nil
}

// Quo returns x/y rounded toward zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x/y, which has the sign of x.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// divNat is schoolbook long division, most significant digit first. The
// running remainder is kept as a variable-length slice so that it can grow
// one digit past the storage width when the divisor is very large.
func divNat(x *nat, divisor []byte) (quo, rem nat) {
	var acc []byte
	for i, d := range x {
		acc = trim(append(acc, d))
		if cmpSlices(acc, divisor) < 0 {
			continue
		}
		q := binSearchDigit(acc, divisor)
		quo[i] = q
		acc = subSlices(acc, mulDigit(divisor, q))
	}
	// acc < divisor, which already fits.
	rem, _ = toNat(acc)
	return quo, rem
}

// binSearchDigit returns the largest d in [0, 256) with d·divisor <= acc,
// narrowing [lo, hi) until the bounds are adjacent.
func binSearchDigit(acc, divisor []byte) byte {
	lo, hi := 0, Base
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if cmpSlices(mulDigit(divisor, byte(mid)), acc) <= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return byte(lo)
}
