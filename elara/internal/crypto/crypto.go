package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// This package is the only place that talks to the secp256k1 curve
// implementation. Everything here treats keys as raw big-endian scalars so
// that callers do not depend on the ecdsa package directly.

// GenerateScalar produces a fresh random private scalar, 32 bytes big-endian.
func GenerateScalar() ([]byte, error) {
	privateKey, err := ecdsa.GenerateKey(gethcrypto.S256(), rand.Reader)
	if err != nil {
		return nil, err
	}
	return gethcrypto.FromECDSA(privateKey), nil
}

// ScalarToPublicKey expands a 32-byte private scalar into the corresponding
// uncompressed public key (65 bytes: 0x04 prefix, X, Y). It fails on the zero
// scalar and on scalars not below the group order.
func ScalarToPublicKey(scalar []byte) ([]byte, error) {
	priv, err := gethcrypto.ToECDSA(scalar)
	if err != nil {
		return nil, err
	}
	return gethcrypto.FromECDSAPub(&priv.PublicKey), nil
}

// SignDigest signs a 32-byte digest with the given scalar. The result is the
// 65-byte r || s || v form with the recovery id v in {0, 1}.
func SignDigest(digest, scalar []byte) ([]byte, error) {
	priv, err := gethcrypto.ToECDSA(scalar)
	if err != nil {
		return nil, err
	}
	return gethcrypto.Sign(digest, priv)
}

// RecoverPublicKey recovers the uncompressed public key that signed digest.
// sig must be in the 65-byte r || s || v form with v in {0, 1}.
func RecoverPublicKey(digest, sig []byte) ([]byte, error) {
	return gethcrypto.Ecrecover(digest, sig)
}
