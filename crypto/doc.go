// Package crypto provides the identity primitives of a swarmhost player:
// Ed25519 key pairs, signatures over arbitrary payloads and Blake2s-256
// content digests.
//
// # Identities
//
// A KeyPair owns a 32-byte private seed and the public key derived from it.
// The public key doubles as the player's identifier (PlayerID), so the
// identity space is the whole 256-bit Ed25519 public-key space. A KeyPair is
// created either at random (GenerateKeyPair) or deterministically from a
// stored seed (KeyPairFromPrivateBytes); there is no way to set the two halves
// independently.
//
// KeyPair values are immutable and may be shared between goroutines. They
// print only their public half and have no serialized form: persisting the
// seed is an explicit call to PrivateKeyBytes.
//
// # Signatures
//
// Sign produces a 64-byte Ed25519 signature. Verification comes in two forms:
//
//   - (*KeyPair).Verify checks a signature against the key pair's own public key
//   - VerifySignature checks a signature against any PlayerID
//
// Both treat their inputs as untrusted. Malformed encodings and mismatching
// signatures are reported as distinct errors, all wrapping ErrCrypto:
//
//	err := crypto.VerifySignature(author, msg, sig)
//	switch {
//	case errors.Is(err, crypto.ErrSignatureMismatch):
//		// well formed, but not signed by author
//	case errors.Is(err, crypto.ErrMalformedSignature):
//		// garbage on the wire
//	}
//
// # Hashing
//
// HashBytes digests a single buffer; HashMultiple digests an ordered list of
// pieces and is equal to HashBytes over their concatenation.
package crypto
