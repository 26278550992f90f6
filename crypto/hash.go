package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2s"
)

// HashSize is the size of a Blake2s-256 digest.
const HashSize = blake2s.Size

// Hash is a Blake2s-256 content digest.
type Hash [HashSize]byte

// HashBytes digests data.
func HashBytes(data []byte) Hash {
	return Hash(blake2s.Sum256(data))
}

// HashMultiple digests the pieces in order. The result equals HashBytes of
// their concatenation, so reordering pieces changes it.
func HashMultiple(pieces ...[]byte) Hash {
	// New256 only fails for keys longer than 32 bytes.
	h, _ := blake2s.New256(nil)
	for _, piece := range pieces {
		h.Write(piece)
	}
	var hash Hash
	copy(hash[:], h.Sum(nil))
	return hash
}

func (h Hash) Equal(another Hash) bool {
	return h == another
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
