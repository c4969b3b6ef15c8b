package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString generates a cryptographically random hexadecimal string.
// The size parameter is the number of random bytes; the resulting string is
// twice that long. Used for opaque refresh tokens.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites the contents of b with zeros. Useful for removing
// passwords from memory after use. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
