package int2023

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Multiplication Engine
// ─────────────────────────────────────────────────────────────────────────────

// minKaratsubaLen is the smallest operand length for which splitting makes
// progress: the sum of two halves of an n-digit value has at most
// ceil(n/2)+1 digits, which is shorter than n only from n = 4.
const minKaratsubaLen = 4

// Mul returns x·y. The product is negative iff exactly one operand is
// negative. It returns ErrOverflow if the product does not fit.
func (x Int) Mul(y Int) (Int, error) {
	p := karatsuba(x.mag.significant(), y.mag.significant(), KaratsubaThreshold)
	mag, ok := toNat(p)
	if !ok {
		return Int{}, fmt.Errorf("multiplying %d-digit and %d-digit operands: %w", x.Len(), y.Len(), ErrOverflow)
	}
	return newInt(x.neg != y.neg, mag), nil
}

// karatsuba multiplies two magnitudes. Operands shorter than threshold
// digits are handed to the schoolbook algorithm.
//
//	z2 = xh·yh
//	z0 = xl·yl
//	z1 = (xh+xl)·(yh+yl) - z2 - z0
//	x·y = z0 + z1·256^m + z2·256^(2m)
func karatsuba(x, y []byte, threshold int) []byte {
	x, y = trim(x), trim(y)
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(x) < threshold || len(y) < threshold || len(x) < minKaratsubaLen || len(y) < minKaratsubaLen {
		return schoolbook(x, y)
	}

	m := (max(len(x), len(y)) + 1) / 2
	xh, xl := split(x, m)
	yh, yl := split(y, m)

	z2 := karatsuba(xh, yh, threshold)
	z0 := karatsuba(xl, yl, threshold)
	z1 := karatsuba(addSlices(xh, xl), addSlices(yh, yl), threshold)
	z1 = subSlices(subSlices(z1, z2), z0)

	return addSlices(addSlices(z0, shiftSlice(z1, m)), shiftSlice(z2, 2*m))
}

// split returns the high part and the low m digits of x as views into x.
func split(x []byte, m int) (hi, lo []byte) {
	if len(x) <= m {
		return nil, x
	}
	return x[:len(x)-m], x[len(x)-m:]
}

// schoolbook is the quadratic multiplication used below the threshold. Each
// row accumulates x[i]·y into the product with a running carry.
func schoolbook(x, y []byte) []byte {
	x, y = trim(x), trim(y)
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make([]byte, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		xi := int(x[i])
		if xi == 0 {
			continue
		}
		carry := 0
		for j := len(y) - 1; j >= 0; j-- {
			k := i + j + 1
			t := int(z[k]) + xi*int(y[j]) + carry
			z[k] = byte(t)
			carry = t >> 8
		}
		z[i] = byte(carry)
	}
	return trim(z)
}
