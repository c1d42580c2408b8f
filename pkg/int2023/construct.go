package int2023

import (
	"fmt"
	"math/big"

	"fortio.org/safecast"
)

// ─────────────────────────────────────────────────────────────────────────────
// Construction & Parsing
// ─────────────────────────────────────────────────────────────────────────────

// FromInt returns the Int equal to i. Every int32 is representable.
func FromInt(i int32) Int {
	v := int64(i)
	if v < 0 {
		return fromUint64(true, uint64(-v))
	}
	return fromUint64(false, uint64(v))
}

// FromInt64 returns the Int equal to v.
func FromInt64(v int64) Int {
	if v32, err := safecast.Conv[int32](v); err == nil {
		return FromInt(v32)
	}
	if v < 0 {
		// -(v+1) avoids overflowing on math.MinInt64.
		return fromUint64(true, uint64(-(v+1))+1)
	}
	return fromUint64(false, uint64(v))
}

// fromUint64 fills the low digits by repeated division by the base.
func fromUint64(neg bool, u uint64) Int {
	var mag nat
	for i := Digits - 1; u != 0; i-- {
		mag[i] = byte(u % Base)
		u /= Base
	}
	return newInt(neg, mag)
}

// FromString parses a decimal integer with an optional leading sign.
//
// The decimal digits are converted to base 256 by repeated long division of
// the digit buffer by 256; each pass yields one base-256 digit, least
// significant first.
//
// It returns ErrSyntax for malformed input and ErrOverflow if the value
// needs more than 2023 bits.
func FromString(s string) (Int, error) {
	neg := false
	body := s
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
	}
	if body == "" {
		return Int{}, fmt.Errorf("parsing %q: %w", s, ErrSyntax)
	}

	buf := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return Int{}, fmt.Errorf("parsing %q: unexpected character %q: %w", s, c, ErrSyntax)
		}
		buf[i] = c - '0'
	}

	var mag nat
	pos := Digits - 1
	for buf = trimDecimal(buf); len(buf) > 0; buf = trimDecimal(buf) {
		if pos < 0 {
			return Int{}, fmt.Errorf("parsing %q: %w", s, ErrOverflow)
		}
		mag[pos] = divDecimal256(buf)
		pos--
	}
	if mag[0] >= topDigitLimit {
		return Int{}, fmt.Errorf("parsing %q: %w", s, ErrOverflow)
	}
	return newInt(neg, mag), nil
}

// MustFromString is like FromString but panics on error. It is intended for
// constants and tests.
func MustFromString(s string) Int {
	x, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return x
}

// divDecimal256 divides the decimal digits in buf by 256 in place and
// returns the remainder.
func divDecimal256(buf []byte) byte {
	rem := 0
	for i, d := range buf {
		rem = rem*10 + int(d)
		buf[i] = byte(rem / Base)
		rem %= Base
	}
	return byte(rem)
}

func trimDecimal(buf []byte) []byte {
	for len(buf) > 0 && buf[0] == 0 {
		buf = buf[1:]
	}
	return buf
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversions
// ─────────────────────────────────────────────────────────────────────────────

// FromBig converts b to an Int. It returns ErrOverflow if |b| needs more than
// 2023 bits.
func FromBig(b *big.Int) (Int, error) {
	if b.BitLen() > Bits {
		return Int{}, fmt.Errorf("converting %d-bit integer: %w", b.BitLen(), ErrOverflow)
	}
	var mag nat
	new(big.Int).Abs(b).FillBytes(mag[:])
	return newInt(b.Sign() < 0, mag), nil
}

// BigInt returns x as a newly allocated *big.Int.
func (x Int) BigInt() *big.Int {
	b := new(big.Int).SetBytes(x.mag[:])
	if x.neg {
		b.Neg(b)
	}
	return b
}

// Int64 returns x as an int64 and reports whether the conversion is exact.
func (x Int) Int64() (int64, bool) {
	if x.mag.len() > 8 {
		return 0, false
	}
	var u uint64
	for _, d := range x.mag[Digits-8:] {
		u = u<<8 | uint64(d)
	}
	if x.neg {
		if u == 1<<63 {
			return -1 << 63, true
		}
		v, err := safecast.Conv[int64](u)
		return -v, err == nil
	}
	v, err := safecast.Conv[int64](u)
	return v, err == nil
}
