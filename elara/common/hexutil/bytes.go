package hexutil

import (
	"encoding/hex"
)

// Bytes marshals/unmarshals as a string with 0x prefix.
// The empty slice marshals as "0x".
type Bytes []byte

const hexPrefix = `0x`

// MarshalText implements encoding.TextMarshaler
func (b Bytes) MarshalText() ([]byte, error) {
	result := make([]byte, len(b)*2+2)
	copy(result, hexPrefix)
	hex.Encode(result[2:], b)
	return result, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes) UnmarshalText(input []byte) error {
	raw, err := checkText(input, true)
	if err != nil {
		return err
	}
	dec := make([]byte, len(raw)/2)
	if _, err = hex.Decode(dec, raw); err == nil {
		*b = dec
	}
	return err
}

// String returns the hex encoding of b.
func (b Bytes) String() string {
	return Encode(b)
}

func (b Bytes) Type() string {
	return "Bytes"
}

func (b *Bytes) Set(val string) error {
	return b.UnmarshalText([]byte(val))
}
