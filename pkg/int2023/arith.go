package int2023

import "bytes"

// Variable-length magnitude helpers used by multiplication and division.
// Slices are big-endian digit sequences; results are always freshly
// allocated and trimmed of leading zeros, and inputs are never modified.

func trim(x []byte) []byte {
	for len(x) > 0 && x[0] == 0 {
		x = x[1:]
	}
	return x
}

// toNat right-aligns a trimmed slice into a fixed magnitude and reports
// whether it fits in 2023 bits.
func toNat(x []byte) (nat, bool) {
	var z nat
	x = trim(x)
	if len(x) > Digits || (len(x) == Digits && x[0] >= topDigitLimit) {
		return z, false
	}
	copy(z[Digits-len(x):], x)
	return z, true
}

func cmpSlices(x, y []byte) int {
	x, y = trim(x), trim(y)
	switch {
	case len(x) > len(y):
		return 1
	case len(x) < len(y):
		return -1
	}
	return bytes.Compare(x, y)
}

func addSlices(x, y []byte) []byte {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]byte, len(x)+1)
	carry := 0
	for i := 1; i <= len(x); i++ {
		s := int(x[len(x)-i]) + carry
		if i <= len(y) {
			s += int(y[len(y)-i])
		}
		z[len(z)-i] = byte(s)
		carry = s >> 8
	}
	z[0] = byte(carry)
	return trim(z)
}

// subSlices returns x - y. It assumes x >= y.
func subSlices(x, y []byte) []byte {
	z := make([]byte, len(x))
	borrow := 0
	for i := 1; i <= len(x); i++ {
		d := int(x[len(x)-i]) - borrow
		if i <= len(y) {
			d -= int(y[len(y)-i])
		}
		borrow = 0
		if d < 0 {
			d += Base
			borrow = 1
		}
		z[len(z)-i] = byte(d)
	}
	return trim(z)
}

// shiftSlice returns x·256^k.
func shiftSlice(x []byte, k int) []byte {
	x = trim(x)
	if len(x) == 0 {
		return nil
	}
	z := make([]byte, len(x)+k)
	copy(z, x)
	return z
}

// mulDigit returns x·d.
func mulDigit(x []byte, d byte) []byte {
	if d == 0 {
		return nil
	}
	z := make([]byte, len(x)+1)
	carry := 0
	for i := len(x) - 1; i >= 0; i-- {
		t := int(x[i])*int(d) + carry
		z[i+1] = byte(t)
		carry = t >> 8
	}
	z[0] = byte(carry)
	return trim(z)
}
