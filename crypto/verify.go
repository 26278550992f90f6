package crypto

import (
	"crypto/ed25519"
	"fmt"
)

// VerifySignature checks signature over message against an arbitrary
// player's public key. The key is checked first, then the signature encoding,
// then the signature itself; each failure wraps its own sentinel.
func VerifySignature(publicKey PlayerID, message, signature []byte) error {
	if err := publicKey.Validate(); err != nil {
		return err
	}
	return verify(publicKey, message, signature)
}

func verify(publicKey PlayerID, message, signature []byte) error {
	if len(signature) != SignatureSize {
		return fmt.Errorf("%w: %w: expected %d bytes, got %d", ErrCrypto, ErrMalformedSignature, SignatureSize, len(signature))
	}
	if !ed25519.Verify(publicKey[:], message, signature) {
		return fmt.Errorf("%w: %w", ErrCrypto, ErrSignatureMismatch)
	}
	return nil
}
