package int2023

import "fmt"

// ShiftLeft returns x·256^k, moving every digit k places toward the most
// significant end and filling the vacated low digits with zeros.
//
// It returns ErrOverflow if a nonzero digit would be pushed out of the
// magnitude, and ErrShift if k is outside [0, Digits].
func (x Int) ShiftLeft(k int) (Int, error) {
	if k < 0 || k > Digits {
		return Int{}, fmt.Errorf("left shift by %d digits: %w", k, ErrShift)
	}
	if k == 0 {
		return x, nil
	}
	// The leading digit lands at index Digits-l-k and must stay below the
	// 7-bit limit if it reaches digit 0.
	if l := x.mag.len(); !x.mag.isZero() && (l > Digits-k || (l == Digits-k && x.mag[k] >= topDigitLimit)) {
		return Int{}, fmt.Errorf("left shift by %d digits: %w", k, ErrOverflow)
	}
	return newInt(x.neg, shlNat(&x.mag, k)), nil
}

// ShiftRight returns x/256^k for a value whose k low digits are zero,
// moving every digit k places toward the least significant end and filling
// the vacated high digits with zeros.
//
// It returns ErrShift if k is outside [0, Digits] or if a nonzero low digit
// would be discarded.
func (x Int) ShiftRight(k int) (Int, error) {
	if k < 0 || k > Digits {
		return Int{}, fmt.Errorf("right shift by %d digits: %w", k, ErrShift)
	}
	for i := Digits - k; i < Digits; i++ {
		if x.mag[i] != 0 {
			return Int{}, fmt.Errorf("right shift by %d digits discards digit %d: %w", k, i, ErrShift)
		}
	}
	return newInt(x.neg, shrNat(&x.mag, k)), nil
}

// shlNat shifts without any range checks; dropped digits are lost.
func shlNat(x *nat, k int) nat {
	var z nat
	if k < Digits {
		copy(z[:Digits-k], x[k:])
	}
	return z
}

func shrNat(x *nat, k int) nat {
	var z nat
	if k < Digits {
		copy(z[k:], x[:Digits-k])
	}
	return z
}
