package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

const (
	// PrivateKeySize is the size of the private seed a KeyPair is derived from.
	PrivateKeySize = ed25519.SeedSize
	// PublicKeySize is the size of a PlayerID.
	PublicKeySize = ed25519.PublicKeySize
	// SignatureSize is the size of a signature produced by Sign.
	SignatureSize = ed25519.SignatureSize
)

// KeyPair is a player's Ed25519 signing identity. The public key is derived
// once from the private seed and cached.
//
// The zero value is not usable; obtain key pairs from GenerateKeyPair or
// KeyPairFromPrivateBytes.
type KeyPair struct {
	priv ed25519.PrivateKey
	pub  PlayerID
}

// GenerateKeyPair returns a key pair with a fresh random seed read from
// crypto/rand.
func GenerateKeyPair() *KeyPair {
	var seed [PrivateKeySize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic(fmt.Sprintf("crypto: reading random seed: %v", err))
	}
	return newKeyPair(seed[:])
}

// KeyPairFromPrivateBytes rebuilds the key pair whose seed is b. Every 32-byte
// value is a valid Ed25519 seed, so the only failure is a buffer of the wrong
// length.
func KeyPairFromPrivateBytes(b []byte) (*KeyPair, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: %w: expected %d bytes, got %d", ErrCrypto, ErrMalformedPrivateKey, PrivateKeySize, len(b))
	}
	return newKeyPair(b), nil
}

func newKeyPair(seed []byte) *KeyPair {
	priv := ed25519.NewKeyFromSeed(seed)
	kp := &KeyPair{priv: priv}
	copy(kp.pub[:], priv.Public().(ed25519.PublicKey))
	return kp
}

// PublicKey returns the player identifier of this key pair.
func (kp *KeyPair) PublicKey() PlayerID {
	return kp.pub
}

// PrivateKeyBytes returns a copy of the private seed.
// It is meant for trusted local storage only and must never leave the node.
func (kp *KeyPair) PrivateKeyBytes() [PrivateKeySize]byte {
	var seed [PrivateKeySize]byte
	copy(seed[:], kp.priv.Seed())
	return seed
}

// Clone returns an independent copy of the key pair.
func (kp *KeyPair) Clone() *KeyPair {
	priv := make(ed25519.PrivateKey, len(kp.priv))
	copy(priv, kp.priv)
	return &KeyPair{priv: priv, pub: kp.pub}
}

// Sign signs exactly message. Ed25519 signing is deterministic and constant
// time in the private key.
func (kp *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(kp.priv, message)
}

// Verify checks that signature was produced by this key pair over message.
func (kp *KeyPair) Verify(message, signature []byte) error {
	return verify(kp.pub, message, signature)
}

// String prints the public half only, so key pairs can be logged safely.
func (kp *KeyPair) String() string {
	return "KeyPair(" + kp.pub.String() + ")"
}

// GoString keeps %#v from dumping the private key.
func (kp *KeyPair) GoString() string {
	return kp.String()
}
