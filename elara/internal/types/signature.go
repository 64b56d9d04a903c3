package types

import (
	"fmt"

	"github.com/elaranetwork/elara/elara/common"
	"github.com/elaranetwork/elara/elara/common/hexutil"
	"github.com/elaranetwork/elara/elara/internal/crypto"
	"github.com/holiman/uint256"
)

// Signature holds the (v, r, s) triple of an ECDSA transaction signature.
// Construction never validates: an unsigned transaction legitimately carries
// the r == s == 0 sentinel with v holding the chain id, so invalid-looking
// values must be representable. Callers run IsValid or one of the low-s
// checks before trusting a signature.
type Signature struct {
	V Uint256 `json:"v"`
	R Uint256 `json:"r"`
	S Uint256 `json:"s"`
}

var (
	sigV27 = uint256.NewInt(27)
	sigV28 = uint256.NewInt(28)
)

func NewSignature(v, r, s *Uint256) Signature {
	return Signature{
		V: *CastToUint256(v.safeInt()),
		R: *CastToUint256(r.safeInt()),
		S: *CastToUint256(s.safeInt()),
	}
}

func NewSignatureFromUint64(v, r, s uint64) Signature {
	return Signature{
		V: *NewUint256(v),
		R: *NewUint256(r),
		S: *NewUint256(s),
	}
}

// SignatureFromCanonical parses the 65-byte wire form produced by Canonical:
// r and s as 32 big-endian bytes each, then a single v byte.
func SignatureFromCanonical(b []byte) (Signature, error) {
	if len(b) != common.SignatureSize {
		return Signature{}, fmt.Errorf("%w: signature must be %d bytes, got %d",
			ErrInvalidLength, common.SignatureSize, len(b))
	}
	return Signature{
		V: *NewUint256(uint64(b[64])),
		R: *NewUint256FromBytes(b[:32]),
		S: *NewUint256FromBytes(b[32:64]),
	}, nil
}

// IsValid reports whether both r and s are inside (0, N).
func (s Signature) IsValid() bool {
	return crypto.SignatureIsValid(s.R.safeInt(), s.S.safeInt())
}

// IsUnsigned reports whether the signature is the "no signature yet"
// sentinel, in which case v holds the chain id verbatim.
func (s Signature) IsUnsigned() bool {
	return s.R.IsZero() && s.S.IsZero()
}

// NetworkID extracts the chain id embedded in v, or nil if there is none.
// The unsigned sentinel returns v directly; the legacy values 27 and 28
// predate replay protection and carry no chain id; anything else is decoded
// with the EIP-155 formula chain_id = (v - 35) / 2, computed as
// ((v - 1) / 2) - 17 so that both parities of v land on the same id.
// All arithmetic is unsigned with truncating division.
func (s Signature) NetworkID() *Uint256 {
	if s.IsUnsigned() {
		return CastToUint256(s.V.Int())
	}
	v := s.V.safeInt()
	if v.Eq(sigV27) || v.Eq(sigV28) {
		return nil
	}
	id := new(uint256.Int).SubUint64(v, 1)
	id.Rsh(id, 1)
	id.SubUint64(id, 17)
	return CastToUint256(id)
}

// CheckLowSMetropolis rejects s values in the upper half of the group order.
// A zero s passes here: after Metropolis this check runs in contexts where
// the unsigned sentinel is still in play.
func (s Signature) CheckLowSMetropolis() error {
	if !crypto.IsLowS(s.S.safeInt()) {
		return fmt.Errorf("%w: s exceeds half the group order", ErrInvalidS)
	}
	return nil
}

// CheckLowSHomestead applies the Homestead rule, which additionally rejects
// a zero s.
func (s Signature) CheckLowSHomestead() error {
	sv := s.S.safeInt()
	if sv.IsZero() {
		return fmt.Errorf("%w: s is zero", ErrInvalidS)
	}
	if !crypto.IsLowS(sv) {
		return fmt.Errorf("%w: s exceeds half the group order", ErrInvalidS)
	}
	return nil
}

// Canonical renders the 65-byte wire form: r and s big-endian zero-padded to
// 32 bytes each, followed by the lowest byte of v. No validation happens
// here; the output mirrors the stored values byte for byte.
func (s Signature) Canonical() []byte {
	out := make([]byte, 0, common.SignatureSize)
	r := s.R.Bytes32()
	sv := s.S.Bytes32()
	out = append(out, r[:]...)
	out = append(out, sv[:]...)
	out = append(out, byte(s.V.Uint64()))
	return out
}

// CanonicalHex is Canonical as a 0x-prefixed lowercase hex string,
// 132 characters in total.
func (s Signature) CanonicalHex() string {
	return hexutil.Encode(s.Canonical())
}

func (s Signature) String() string {
	return s.CanonicalHex()
}

// RecoverAddress recovers the address whose key signed digest. It accepts
// legacy signatures (v 27 or 28) as well as EIP-155 ones
// (v = chain_id*2 + 35 or chain_id*2 + 36).
func (s Signature) RecoverAddress(digest common.Hash) (Address, error) {
	if !s.IsValid() {
		return EmptyAddress, ErrInvalidSignature
	}
	sig := make([]byte, common.SignatureSize)
	r := s.R.Bytes32()
	sv := s.S.Bytes32()
	copy(sig[:32], r[:])
	copy(sig[32:64], sv[:])
	// Odd v means recovery id 0 for both the legacy and the EIP-155 layout.
	sig[64] = byte(1 - s.V.Uint64()&1)

	pub, err := crypto.RecoverPublicKey(digest.Bytes(), sig)
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}
	keccak := common.Keccak256(pub[1:])
	return BytesToAddress(keccak[common.HashSize-AddrSize:]), nil
}
