package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns n cryptographically secure random bytes encoded as a
// hex string of length 2n. It is used to mint opaque session tokens.
func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
