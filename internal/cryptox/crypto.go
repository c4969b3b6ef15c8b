// Package cryptox implements the credential verifier used by the account
// directory. Passwords never reach storage; only an argon2id verifier
// derived from password and a per-account salt does.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16

	// argon2id parameters
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// MakeSalt returns a fresh random per-account salt.
func MakeSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveVerifier derives the stored verifier from a password and salt.
func DeriveVerifier(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// CheckVerifier reports whether the candidate password matches the stored
// verifier. The comparison is constant-time.
func CheckVerifier(verifier, password, salt []byte) bool {
	candidate := DeriveVerifier(password, salt)
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}
