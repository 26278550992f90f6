package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGenerateKeyPair(t *testing.T) {
	kp := GenerateKeyPair()
	id := kp.PublicKey()
	if len(id) != PublicKeySize {
		t.Fatalf("expected public key of %d bytes, got %d", PublicKeySize, len(id))
	}
	if id.IsZero() {
		t.Fatal("generated public key is all zeros")
	}
	if err := id.Validate(); err != nil {
		t.Fatalf("generated public key does not decode: %v", err)
	}
	if other := GenerateKeyPair(); other.PublicKey() == id {
		t.Fatal("two generated key pairs share a public key")
	}
}

func TestKeyPairFromPrivateBytesIsDeterministic(t *testing.T) {
	kp := GenerateKeyPair()
	seed := kp.PrivateKeyBytes()

	restored, err := KeyPairFromPrivateBytes(seed[:])
	if err != nil {
		t.Fatalf("KeyPairFromPrivateBytes failed: %v", err)
	}
	if restored.PublicKey() != kp.PublicKey() {
		t.Fatal("restored key pair derived a different public key")
	}
	if restored.PrivateKeyBytes() != seed {
		t.Fatal("restored key pair returned a different seed")
	}

	msg := []byte("restore me")
	if !bytes.Equal(restored.Sign(msg), kp.Sign(msg)) {
		t.Fatal("restored key pair signs differently")
	}
}

func TestKeyPairFromFixedSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, PrivateKeySize)
	a, err := KeyPairFromPrivateBytes(seed)
	if err != nil {
		t.Fatalf("KeyPairFromPrivateBytes failed: %v", err)
	}
	seed[0] = 8 // the key pair must not alias the caller's buffer
	b, err := KeyPairFromPrivateBytes(bytes.Repeat([]byte{7}, PrivateKeySize))
	if err != nil {
		t.Fatalf("KeyPairFromPrivateBytes failed: %v", err)
	}
	if a.PublicKey() != b.PublicKey() {
		t.Fatal("same seed produced different public keys")
	}
}

func TestKeyPairFromPrivateBytesWrongLength(t *testing.T) {
	for _, n := range []int{0, 31, 33, 64} {
		_, err := KeyPairFromPrivateBytes(make([]byte, n))
		if !errors.Is(err, ErrMalformedPrivateKey) {
			t.Errorf("len %d: expected ErrMalformedPrivateKey, got %v", n, err)
		}
		if !errors.Is(err, ErrCrypto) {
			t.Errorf("len %d: expected error to wrap ErrCrypto, got %v", n, err)
		}
	}
}

func TestSignAndVerify(t *testing.T) {
	kp := GenerateKeyPair()
	msg := []byte("Hello, Swarmhost!")

	sig := kp.Sign(msg)
	if len(sig) != SignatureSize {
		t.Fatalf("expected %d byte signature, got %d", SignatureSize, len(sig))
	}
	if err := kp.Verify(msg, sig); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	err := kp.Verify([]byte("Wrong message"), sig)
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch for wrong message, got %v", err)
	}
}

func TestVerifyMalformedSignature(t *testing.T) {
	kp := GenerateKeyPair()
	msg := []byte("short")
	sig := kp.Sign(msg)

	for _, bad := range [][]byte{nil, sig[:10], append(append([]byte{}, sig...), 0)} {
		err := kp.Verify(msg, bad)
		if !errors.Is(err, ErrMalformedSignature) {
			t.Errorf("len %d: expected ErrMalformedSignature, got %v", len(bad), err)
		}
		if errors.Is(err, ErrSignatureMismatch) {
			t.Errorf("len %d: malformed signature reported as mismatch", len(bad))
		}
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	kp := GenerateKeyPair()
	msg := []byte("tamper")
	sig := kp.Sign(msg)
	sig[0] ^= 0xff

	if err := kp.Verify(msg, sig); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
}

func TestClone(t *testing.T) {
	kp := GenerateKeyPair()
	clone := kp.Clone()
	if clone.PublicKey() != kp.PublicKey() || clone.PrivateKeyBytes() != kp.PrivateKeyBytes() {
		t.Fatal("clone differs from original")
	}
	msg := []byte("clone")
	if err := kp.Verify(msg, clone.Sign(msg)); err != nil {
		t.Fatalf("signature of clone does not verify with original: %v", err)
	}
}

func TestKeyPairDoesNotPrintSecret(t *testing.T) {
	kp := GenerateKeyPair()
	seed := kp.PrivateKeyBytes()
	secret := fmt.Sprintf("%x", seed[:])

	for _, format := range []string{"%v", "%+v", "%#v", "%s"} {
		out := fmt.Sprintf(format, kp)
		if strings.Contains(out, secret) {
			t.Errorf("%s leaks the private seed: %s", format, out)
		}
		if !strings.Contains(out, kp.PublicKey().String()) {
			t.Errorf("%s does not show the public key: %s", format, out)
		}
	}
}
