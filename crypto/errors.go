package crypto

import "errors"

// ErrCrypto is wrapped by every error returned from this package.
var ErrCrypto = errors.New("cryptography error")

var (
	ErrMalformedPrivateKey = errors.New("malformed private key")
	ErrMalformedPublicKey  = errors.New("malformed public key")
	ErrMalformedSignature  = errors.New("malformed signature")
	ErrSignatureMismatch   = errors.New("signature does not match")
)
