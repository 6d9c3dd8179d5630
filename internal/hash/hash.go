// Package hash computes content digests for the run report.
//
// A repair run reports the SHA-256 of the bytes it read and of the bytes it
// wrote, so two runs over the same input can be compared without diffing
// files. FakeHasher returns fixed digests for tests.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher computes a digest of a byte slice.
type Hasher interface {
	// Sum returns the hex-encoded digest of data.
	Sum(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Sum returns the hex-encoded SHA-256 of data.
func (h *SHA256Hasher) Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher returns the same digest for every input.
type FakeHasher struct {
	Digest string
}

// Sum returns h.Digest, or "fakehash" when it is empty.
func (h *FakeHasher) Sum([]byte) string {
	if h.Digest == "" {
		return "fakehash"
	}
	return h.Digest
}
