package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey builds the cache key for a rendered artifact from the
// encoded diagram document and the output format.
func ArtifactKey(document []byte, format string) string {
	return "artifact:" + format + ":" + Hash(document)
}
