package node

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/luca-patrignani/swarmhost/crypto"
)

func TestActionSignAndVerify(t *testing.T) {
	kp := crypto.GenerateKeyPair()
	a := NewAction(kp, 7, []byte("move:north"))

	if a.Player != kp.PublicKey() {
		t.Fatal("action not attributed to its signer")
	}
	if err := a.Verify(); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if err := crypto.VerifySignature(kp.PublicKey(), a.SigningBytes(), a.Signature); err != nil {
		t.Fatalf("signature does not cover the signing bytes: %v", err)
	}
}

func TestActionVerifyFailsIfTampered(t *testing.T) {
	kp := crypto.GenerateKeyPair()

	a := NewAction(kp, 7, []byte("move:north"))
	a.Payload = []byte("move:south")
	if err := a.Verify(); !errors.Is(err, crypto.ErrSignatureMismatch) {
		t.Fatalf("expected mismatch for tampered payload, got %v", err)
	}

	b := NewAction(kp, 7, []byte("move:north"))
	b.Kind = 8
	if err := b.Verify(); !errors.Is(err, crypto.ErrSignatureMismatch) {
		t.Fatalf("expected mismatch for tampered kind, got %v", err)
	}

	c := NewAction(kp, 7, []byte("move:north"))
	c.Player = crypto.GenerateKeyPair().PublicKey()
	if err := c.Verify(); !errors.Is(err, crypto.ErrSignatureMismatch) {
		t.Fatalf("expected mismatch for a forged author, got %v", err)
	}

	d := NewAction(kp, 7, []byte("move:north"))
	d.Signature = nil
	if err := d.Verify(); !errors.Is(err, crypto.ErrMalformedSignature) {
		t.Fatalf("expected ErrMalformedSignature for a missing signature, got %v", err)
	}
}

func TestActionDigest(t *testing.T) {
	a := crypto.GenerateKeyPair()
	b := crypto.GenerateKeyPair()

	d1 := NewAction(a, 1, []byte("move:north")).Digest()
	if d1 != NewAction(a, 1, []byte("move:north")).Digest() {
		t.Fatal("digest is not deterministic")
	}
	if d1 == NewAction(b, 1, []byte("move:north")).Digest() {
		t.Fatal("digest ignores the author")
	}
	if d1 == NewAction(a, 2, []byte("move:north")).Digest() {
		t.Fatal("digest ignores the kind")
	}
}

func TestActionJSON(t *testing.T) {
	kp := crypto.GenerateKeyPair()
	a := NewAction(kp, 3, []byte("fold"))

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded Action
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if err := decoded.Verify(); err != nil {
		t.Fatalf("decoded action does not verify: %v", err)
	}
}

func TestSubmitSignedAction(t *testing.T) {
	cfg := NewConfig()
	s := newTestSession(t, cfg)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	act := NewAction(cfg.Identity, 1, []byte("move:north"))
	if err := s.SubmitAction(act.Kind, act.Payload); err != nil {
		t.Fatalf("SubmitAction failed: %v", err)
	}
	if err := act.Verify(); err != nil {
		t.Fatalf("submitted action does not verify: %v", err)
	}
}
