package crypto

import (
	"github.com/elaranetwork/elara/elara/common/hexutil"
	"github.com/holiman/uint256"
)

var (
	secp256k1N     = new(uint256.Int).SetBytes(hexutil.MustDecodeHex("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"))
	secp256k1HalfN = new(uint256.Int).Rsh(secp256k1N, 1)
)

// Secp256k1N returns a copy of the secp256k1 group order.
func Secp256k1N() *uint256.Int {
	return new(uint256.Int).Set(secp256k1N)
}

// Secp256k1HalfN returns a copy of floor(N / 2), the boundary of the low-s rule.
func Secp256k1HalfN() *uint256.Int {
	return new(uint256.Int).Set(secp256k1HalfN)
}

// SignatureIsValid reports whether both signature components are inside (0, N).
// See Appendix F "Signing Transactions" of the Yellow Paper.
func SignatureIsValid(r, s *uint256.Int) bool {
	if r.IsZero() || s.IsZero() {
		return false
	}

	return r.Lt(secp256k1N) && s.Lt(secp256k1N)
}

// IsLowS reports whether s lies in the lower half of the group order.
// High-s signatures are malleable: (r, N-s) verifies whenever (r, s) does.
func IsLowS(s *uint256.Int) bool {
	return !s.Gt(secp256k1HalfN)
}
