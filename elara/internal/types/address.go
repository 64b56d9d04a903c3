package types

import (
	"encoding/hex"

	"github.com/elaranetwork/elara/elara/common"
	"github.com/elaranetwork/elara/elara/common/hexutil"
)

// AddrSize is the expected length of the address (in bytes)
const AddrSize = 20

// Address represents the 20-byte address of an Ethereum account.
type Address [AddrSize]byte

var EmptyAddress = Address{}

// BytesToAddress returns Address with value b.
// If b is larger than len(h), b will be cropped from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress returns Address with byte values of s.
// If s is larger than len(h), s will be cropped from the left.
func HexToAddress(s string) Address {
	if hexutil.Has0xPrefix(s) {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}
	}

	return BytesToAddress(b)
}

// IsHexAddress verifies whether a string can represent a valid hex-encoded
// Ethereum address or not.
func IsHexAddress(s string) bool {
	if hexutil.Has0xPrefix(s) {
		s = s[2:]
	}
	_, err := hex.DecodeString(s)
	return err == nil && len(s) == AddrSize*2
}

// Bytes gets the string representation of the underlying address.
func (a Address) Bytes() []byte { return a[:] }

// Hash converts an address to a hash by left-padding it with zeros.
func (a Address) Hash() common.Hash { return common.BytesToHash(a[:]) }

func (a Address) Hex() string {
	enc := make([]byte, len(a)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], a[:])
	return string(enc)
}

func (a Address) String() string {
	return a.Hex()
}

// SetBytes sets the address to the value of b.
// If b is larger than len(a), b will be cropped from the left.
func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddrSize:]
	}
	copy(a[AddrSize-len(b):], b)
}

func (a Address) IsEmpty() bool {
	return a == EmptyAddress
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return hexutil.Bytes(a[:]).MarshalText()
}

func (a *Address) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Address", input, a[:])
}

func (a *Address) Set(val string) error {
	return a.UnmarshalText([]byte(val))
}

func (a *Address) Type() string {
	return "Address"
}
