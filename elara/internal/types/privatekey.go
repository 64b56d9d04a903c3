package types

import (
	"bytes"
	"fmt"

	"github.com/elaranetwork/elara/elara/common"
	"github.com/elaranetwork/elara/elara/common/hexutil"
	"github.com/elaranetwork/elara/elara/internal/crypto"
)

// PrivateKey is a raw 32-byte big-endian secp256k1 scalar. Construction only
// checks the length; whether the scalar is actually usable (nonzero, below
// the group order) is decided on first use by the curve library.
type PrivateKey [common.PrivateKeySize]byte

// EmptyPrivateKey is constructible on purpose: unsigned values carry it
// around. Deriving an address or signing with it fails.
var EmptyPrivateKey = PrivateKey{}

// PrivateKeyFromHex parses a key from exactly 64 hex characters, with an
// optional 0x prefix.
func PrivateKeyFromHex(s string) (PrivateKey, error) {
	if hexutil.Has0xPrefix(s) {
		s = s[2:]
	}
	if len(s) != common.PrivateKeySize*2 {
		return PrivateKey{}, fmt.Errorf("%w: private key must be %d hex characters, got %d",
			ErrInvalidLength, common.PrivateKeySize*2, len(s))
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKeyFromBytes(b)
}

func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != common.PrivateKeySize {
		return PrivateKey{}, fmt.Errorf("%w: private key must be %d bytes, got %d",
			ErrInvalidPrivateKey, common.PrivateKeySize, len(b))
	}
	var k PrivateKey
	copy(k[:], b)
	return k, nil
}

// GeneratePrivateKey produces a fresh random key.
func GeneratePrivateKey() (PrivateKey, error) {
	scalar, err := crypto.GenerateScalar()
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKeyFromBytes(scalar)
}

// Bytes gets the raw 32-byte scalar.
func (k PrivateKey) Bytes() []byte { return k[:] }

func (k PrivateKey) Hex() string {
	return hexutil.Encode(k[:])
}

func (k PrivateKey) IsZero() bool {
	return k == EmptyPrivateKey
}

var zeroPublicKey [common.PublicKeySize - 1]byte

// PublicKeyAddress derives the account address controlled by the key: the
// last 20 bytes of Keccak-256 over the uncompressed public key without its
// one-byte prefix. See Appendix F of the Yellow Paper.
func (k PrivateKey) PublicKeyAddress() (Address, error) {
	pub, err := crypto.ScalarToPublicKey(k[:])
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w: %s", ErrInvalidPrivateKey, err)
	}
	// The curve library must never hand back the zero point; refuse the key
	// outright if it ever does.
	if bytes.Equal(pub[1:], zeroPublicKey[:]) {
		return EmptyAddress, ErrZeroPrivateKey
	}
	digest := common.Keccak256(pub[1:])
	return BytesToAddress(digest[common.HashSize-AddrSize:]), nil
}

// SignDigest signs a 32-byte digest, yielding a signature with the legacy
// recovery value v in {27, 28}.
func (k PrivateKey) SignDigest(digest common.Hash) (Signature, error) {
	sig, err := crypto.SignDigest(digest.Bytes(), k[:])
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %s", ErrInvalidPrivateKey, err)
	}
	return Signature{
		V: *NewUint256(uint64(sig[64]) + 27),
		R: *NewUint256FromBytes(sig[:32]),
		S: *NewUint256FromBytes(sig[32:64]),
	}, nil
}
