package int2023

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// MarshalText implements encoding.TextMarshaler using the decimal form.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.Text(10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// packed 253-digit form returned by Digits.
func (x Int) MarshalBinary() ([]byte, error) {
	d := x.Digits()
	return d[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) error {
	if len(data) != Digits {
		return fmt.Errorf("unmarshaling %d bytes, want %d: %w", len(data), Digits, ErrSyntax)
	}
	*x = FromDigits([Digits]byte(data))
	return nil
}

// EncodeMsgpack writes x as a msgpack bin payload holding the packed digits.
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	d := x.Digits()
	return enc.EncodeBytes(d[:])
}

// DecodeMsgpack reads a value written by EncodeMsgpack.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	data, err := dec.DecodeBytes()
	if err != nil {
		return fmt.Errorf("decoding int2023: %w", err)
	}
	return x.UnmarshalBinary(data)
}
