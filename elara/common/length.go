package common

const (
	// Hash is the expected length of the hash (in bytes)
	HashSize = 32
	// SignatureSize indicates the byte length required to carry a signature with recovery id.
	SignatureSize = 65 // 64 bytes ECDSA signature + 1 byte recovery id
	// PrivateKeySize is the expected length of a secp256k1 private scalar (in bytes).
	PrivateKeySize = 32
	// PublicKeySize is the expected length of an uncompressed secp256k1 public key,
	// including the 0x04 prefix byte.
	PublicKeySize = 65
)
