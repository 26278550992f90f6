package crypto

import (
	"encoding/hex"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// PlayerID identifies a participant. It is the participant's Ed25519 public
// key, so two players are the same player iff their IDs are byte-equal.
type PlayerID [PublicKeySize]byte

// ZeroPlayerID is the all-zero identifier, never produced by a KeyPair in practice.
var ZeroPlayerID PlayerID

// PlayerIDFromBytes copies an untrusted buffer into a PlayerID. Only the
// length is checked; call Validate to check the point encoding.
func PlayerIDFromBytes(b []byte) (PlayerID, error) {
	var id PlayerID
	if len(b) != PublicKeySize {
		return id, fmt.Errorf("%w: %w: expected %d bytes, got %d", ErrCrypto, ErrMalformedPublicKey, PublicKeySize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ParsePlayerID decodes the hex form produced by String.
func ParsePlayerID(s string) (PlayerID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ZeroPlayerID, fmt.Errorf("%w: %w: %v", ErrCrypto, ErrMalformedPublicKey, err)
	}
	return PlayerIDFromBytes(b)
}

// Validate reports whether id decodes to a point of the Ed25519 curve.
func (id PlayerID) Validate() error {
	if err := suite.Point().UnmarshalBinary(id[:]); err != nil {
		return fmt.Errorf("%w: %w: %v", ErrCrypto, ErrMalformedPublicKey, err)
	}
	return nil
}

func (id PlayerID) IsZero() bool {
	return id == ZeroPlayerID
}

func (id PlayerID) String() string {
	return hex.EncodeToString(id[:])
}

// Short returns the first 8 hex characters, for log lines.
func (id PlayerID) Short() string {
	return hex.EncodeToString(id[:4])
}

func (id PlayerID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *PlayerID) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayerID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
