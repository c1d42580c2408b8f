package int2023

import (
	"fmt"
	"io"
	"strings"
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// String returns x in binary: a '-' for negative values followed by the
// magnitude without leading zero bits. Zero is "0".
func (x Int) String() string {
	sig := x.mag.significant()
	if len(sig) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(len(sig)*8 + 1)
	if x.neg {
		sb.WriteByte('-')
	}
	started := false
	for _, d := range sig {
		for bit := 7; bit >= 0; bit-- {
			b := d >> bit & 1
			if b == 1 {
				started = true
			}
			if started {
				sb.WriteByte('0' + b)
			}
		}
	}
	return sb.String()
}

// Text returns x in the given base, which must be between 2 and 36.
// Digits above 9 are lowercase letters.
func (x Int) Text(base int) string {
	if base < 2 || base > len(digitChars) {
		panic(fmt.Sprintf("int2023: illegal base %d", base))
	}
	mag := append([]byte(nil), x.mag.significant()...)
	if len(mag) == 0 {
		return "0"
	}

	// Repeated short division by base yields the digits in reverse.
	out := make([]byte, 0, len(mag)*8+1)
	for len(mag) > 0 {
		rem := 0
		for i, d := range mag {
			cur := rem*Base + int(d)
			mag[i] = byte(cur / base)
			rem = cur % base
		}
		out = append(out, digitChars[rem])
		mag = trim(mag)
	}
	if x.neg {
		out = append(out, '-')
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Format implements fmt.Formatter. %v, %s and %b print binary like String;
// %d, %o, %x and %X print decimal, octal and hexadecimal. The '+' flag forces
// a sign, and width with the '-' flag pads on the right.
func (x Int) Format(s fmt.State, verb rune) {
	var text string
	switch verb {
	case 'v', 's', 'b':
		text = x.String()
	case 'd':
		text = x.Text(10)
	case 'o':
		text = x.Text(8)
	case 'x':
		text = x.Text(16)
	case 'X':
		text = strings.ToUpper(x.Text(16))
	default:
		fmt.Fprintf(s, "%%!%c(int2023.Int=%s)", verb, x.String())
		return
	}
	if s.Flag('+') && !x.neg {
		text = "+" + text
	}
	if w, ok := s.Width(); ok && w > len(text) {
		pad := strings.Repeat(" ", w-len(text))
		if s.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}
	_, _ = io.WriteString(s, text)
}
