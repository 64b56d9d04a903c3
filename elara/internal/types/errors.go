package types

import "errors"

// Key and signature validation failures. All of them are data-validation
// outcomes surfaced to the caller; none is recoverable for the value at hand.
var (
	ErrInvalidLength     = errors.New("input is not the required fixed size")
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrZeroPrivateKey    = errors.New("private key maps to the zero public key")
	ErrInvalidS          = errors.New("signature s violates the low-s rule")
	ErrInvalidSignature  = errors.New("signature r or s is out of range")
)
