package types

import (
	"encoding"
	"encoding/json"
	"math/big"

	"github.com/elaranetwork/elara/elara/common"
	"github.com/holiman/uint256"
)

// interfaces
var (
	_ json.Marshaler           = (*Uint256)(nil)
	_ json.Unmarshaler         = (*Uint256)(nil)
	_ encoding.TextMarshaler   = (*Uint256)(nil)
	_ encoding.TextUnmarshaler = (*Uint256)(nil)
)

// Uint256 is an immutable-by-convention 256-bit unsigned integer with
// explicit fixed-width big-endian serialization (Bytes32). Signature and key
// code relies on the zero-padding contract of Bytes32; the variable-width
// Bytes form is only used where minimal encoding is wanted.
type Uint256 uint256.Int

func NewUint256(val uint64) *Uint256 {
	return (*Uint256)(uint256.NewInt(val))
}

func NewUint256FromBytes(buf []byte) *Uint256 {
	return (*Uint256)(new(uint256.Int).SetBytes(buf))
}

func NewUint256FromDecimal(str string) (*Uint256, error) {
	v := new(uint256.Int)
	if err := v.SetFromDecimal(str); err != nil {
		return nil, err
	}
	return (*Uint256)(v), nil
}

func CastToUint256(val *uint256.Int) *Uint256 {
	return (*Uint256)(val)
}

func (u *Uint256) Int() *uint256.Int {
	if u == nil {
		return &uint256.Int{}
	}
	return common.CopyPtr((*uint256.Int)(u))
}

func (u *Uint256) safeInt() *uint256.Int {
	if u == nil {
		return &uint256.Int{}
	}
	return (*uint256.Int)(u)
}

func (u *Uint256) ToBig() *big.Int {
	return (*uint256.Int)(u).ToBig()
}

func (u *Uint256) SetFromBig(b *big.Int) bool {
	return (*uint256.Int)(u).SetFromBig(b)
}

func (u *Uint256) IsZero() bool {
	return u.safeInt().IsZero()
}

func (u *Uint256) Eq(other *Uint256) bool {
	return u.safeInt().Eq(other.safeInt())
}

func (u *Uint256) Uint64() uint64 {
	return u.safeInt().Uint64()
}

// Bytes returns the minimal big-endian encoding (no leading zero bytes).
func (u *Uint256) Bytes() []byte {
	return u.safeInt().Bytes()
}

// Bytes32 returns the value as exactly 32 big-endian bytes, zero-padded on
// the left.
func (u *Uint256) Bytes32() [32]byte {
	return u.safeInt().Bytes32()
}

func (u Uint256) MarshalJSON() ([]byte, error) {
	return u.safeInt().MarshalJSON()
}

func (u *Uint256) UnmarshalJSON(input []byte) error {
	return (*uint256.Int)(u).UnmarshalJSON(input)
}

func (u Uint256) MarshalText() ([]byte, error) {
	return u.safeInt().MarshalText()
}

func (u *Uint256) UnmarshalText(input []byte) error {
	return (*uint256.Int)(u).UnmarshalText(input)
}

func (u Uint256) String() string {
	return u.safeInt().String()
}

func (u *Uint256) Set(value string) error {
	return (*uint256.Int)(u).SetFromDecimal(value)
}

func (u *Uint256) Type() string {
	return "Uint256"
}
