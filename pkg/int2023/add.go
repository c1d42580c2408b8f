package int2023

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Addition / Subtraction Engine
// ─────────────────────────────────────────────────────────────────────────────

// Add returns x + y. It returns ErrOverflow if the sum does not fit.
func (x Int) Add(y Int) (Int, error) {
	if x.neg == y.neg {
		mag, carry := addNat(&x.mag, &y.mag)
		if carry {
			return Int{}, fmt.Errorf("adding %d-digit and %d-digit operands: %w", x.Len(), y.Len(), ErrOverflow)
		}
		return newInt(x.neg, mag), nil
	}

	pos, neg := x, y
	if x.neg {
		pos, neg = y, x
	}
	switch pos.CmpAbs(neg) {
	case 1:
		return largerPositiveMinusSmallerNegative(pos, neg), nil
	case -1:
		return smallerPositiveMinusLargerNegative(pos, neg), nil
	default:
		return Zero, nil
	}
}

// Sub returns x - y, computed as x + (-y).
func (x Int) Sub(y Int) (Int, error) {
	return x.Add(y.Neg())
}

// largerPositiveMinusSmallerNegative adds a positive value to a negative one
// of smaller magnitude. The result is positive.
func largerPositiveMinusSmallerNegative(pos, neg Int) Int {
	return newInt(false, subNat(pos.mag, &neg.mag))
}

// smallerPositiveMinusLargerNegative adds a positive value to a negative one
// of larger magnitude. The result is negative.
func smallerPositiveMinusLargerNegative(pos, neg Int) Int {
	return newInt(true, subNat(neg.mag, &pos.mag))
}

// addNat adds two magnitudes digit by digit, least significant first. It
// reports a carry when the sum exceeds the 7-bit top digit.
func addNat(x, y *nat) (nat, bool) {
	var z nat
	carry := 0
	for i := Digits - 1; i >= 0; i-- {
		s := int(x[i]) + int(y[i]) + carry
		z[i] = byte(s % Base)
		carry = s / Base
	}
	return z, carry != 0 || z[0] >= topDigitLimit
}

// subNat returns x - y for x >= y. x is taken by value and serves as the
// scratch minuend for ripple borrows.
func subNat(x nat, y *nat) nat {
	var z nat
	for i := Digits - 1; i >= 0; i-- {
		if x[i] >= y[i] {
			z[i] = x[i] - y[i]
			continue
		}
		// Borrow from the nearest nonzero digit above; every zero digit
		// passed on the way becomes 255.
		j := i - 1
		for x[j] == 0 {
			x[j] = Base - 1
			j--
		}
		x[j]--
		z[i] = byte(Base + int(x[i]) - int(y[i]))
	}
	return z
}
