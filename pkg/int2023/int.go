// Package int2023 implements a fixed-width signed integer with a 2023-bit
// magnitude.
//
// An Int is stored as a sign flag and 253 base-256 digits, most significant
// digit first. The most significant digit only carries 7 bits of magnitude,
// which gives 7 + 252×8 = 2023 bits. The packed form, with the sign bit
// folded into digit 0, is available through Digits and
// MarshalBinary.
//
// Int is an immutable value type: every operation returns a new Int and no
// operation mutates its receiver or its arguments, so values may be shared
// freely between goroutines. Operations whose result does not fit in 2023
// bits return ErrOverflow; division by zero returns ErrDivisionByZero.
package int2023

import (
	"errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Layout Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// Digits is the number of base-256 digits in an Int.
	Digits = 253
	// Bits is the width of the magnitude in bits.
	Bits = 7 + (Digits-1)*8
	// Base is the radix of a single digit.
	Base = 256
	// KaratsubaThreshold is the operand length, in digits, below which
	// multiplication uses the schoolbook algorithm.
	KaratsubaThreshold = 50

	// topDigitLimit bounds digit 0, which shares its byte with the sign in
	// the packed encoding.
	topDigitLimit = 128
)

var (
	// ErrOverflow is returned when a result needs more than Bits bits.
	ErrOverflow = errors.New("int2023: value overflows 2023 bits")
	// ErrDivisionByZero is returned by Quo, Rem and QuoRem for a zero divisor.
	ErrDivisionByZero = errors.New("int2023: division by zero")
	// ErrSyntax is returned when a string is not a valid decimal integer.
	ErrSyntax = errors.New("int2023: invalid syntax")
	// ErrShift is returned when a shift amount is out of range or would
	// discard nonzero digits.
	ErrShift = errors.New("int2023: shift out of range")
)

// nat is the magnitude of an Int, most significant digit first.
type nat [Digits]byte

// Int is a signed integer with a 2023-bit magnitude. The zero value is 0.
type Int struct {
	neg bool
	mag nat
}

// Zero and One are convenience values.
var (
	Zero = Int{}
	One  = FromInt(1)
)

// newInt builds an Int, clearing the sign of a zero magnitude so that zero
// has exactly one representation.
func newInt(neg bool, mag nat) Int {
	if mag.isZero() {
		neg = false
	}
	return Int{neg: neg, mag: mag}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sign & Magnitude Utilities
// ─────────────────────────────────────────────────────────────────────────────

// IsPositive reports whether x is non-negative. Zero is positive.
func (x Int) IsPositive() bool { return !x.neg }

// IsNegative reports whether x is strictly negative.
func (x Int) IsNegative() bool { return x.neg }

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.mag.isZero() }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case x.mag.isZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -x. The negation of zero is zero.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.mag)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{mag: x.mag}
}

// Len returns the number of significant digits of x, ignoring leading zero
// digits. It returns 1 for zero.
func (x Int) Len() int {
	return x.mag.len()
}

// Digits returns the packed encoding of x: 253 digits, most significant
// first, with the sign stored as +128 in digit 0.
func (x Int) Digits() [Digits]byte {
	d := [Digits]byte(x.mag)
	if x.neg {
		d[0] += topDigitLimit
	}
	return d
}

// FromDigits decodes the packed encoding produced by Digits.
func FromDigits(d [Digits]byte) Int {
	neg := d[0] >= topDigitLimit
	if neg {
		d[0] -= topDigitLimit
	}
	return newInt(neg, nat(d))
}

func (z *nat) isZero() bool {
	for _, d := range z {
		if d != 0 {
			return false
		}
	}
	return true
}

func (z *nat) len() int {
	for i, d := range z {
		if d != 0 {
			return Digits - i
		}
	}
	return 1
}

// significant returns a view of the digits of z without leading zeros. The
// view of zero is empty.
func (z *nat) significant() []byte {
	for i, d := range z {
		if d != 0 {
			return z[i:]
		}
	}
	return z[Digits:]
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparator
// ─────────────────────────────────────────────────────────────────────────────

// CmpAbs compares |x| and |y| and returns -1, 0 or +1.
func (x Int) CmpAbs(y Int) int {
	return cmpNat(&x.mag, &y.mag)
}

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return -cmpNat(&x.mag, &y.mag)
	default:
		return cmpNat(&x.mag, &y.mag)
	}
}

// Equal reports whether x and y have the same sign and the same digits.
func (x Int) Equal(y Int) bool {
	return x.neg == y.neg && x.mag == y.mag
}

// NotEqual reports whether x and y differ.
func (x Int) NotEqual(y Int) bool {
	return !x.Equal(y)
}

func cmpNat(x, y *nat) int {
	for i := 0; i < Digits; i++ {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}
