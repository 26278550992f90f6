package node

import (
	"encoding/binary"

	"github.com/luca-patrignani/swarmhost/crypto"
)

// Action is a payload of a given kind signed by the player submitting it.
type Action struct {
	Player    crypto.PlayerID `json:"player"`
	Kind      uint32          `json:"kind"`
	Payload   []byte          `json:"payload"`
	Signature []byte          `json:"sig,omitempty"`
}

// NewAction builds an action authored by kp and signs it.
func NewAction(kp *crypto.KeyPair, kind uint32, payload []byte) Action {
	a := Action{
		Player:  kp.PublicKey(),
		Kind:    kind,
		Payload: payload,
	}
	a.Signature = kp.Sign(a.SigningBytes())
	return a
}

func kindBytes(kind uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, kind)
	return b
}

// SigningBytes returns the signed content: the big-endian kind followed by
// the payload.
func (a Action) SigningBytes() []byte {
	return append(kindBytes(a.Kind), a.Payload...)
}

// Digest identifies the action by author, kind and payload.
func (a Action) Digest() crypto.Hash {
	return crypto.HashMultiple(a.Player[:], kindBytes(a.Kind), a.Payload)
}

// Verify checks the signature against the claimed player.
func (a Action) Verify() error {
	return crypto.VerifySignature(a.Player, a.SigningBytes(), a.Signature)
}
