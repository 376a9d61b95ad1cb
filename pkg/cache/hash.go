package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent computes the SHA-256 hash of content as a hex string.
// Returns an empty string for empty content.
func HashContent(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// HashString hashes a string and returns the hex-encoded SHA-256 hash.
func HashString(content string) string {
	return HashContent([]byte(content))
}
