// Package models holds the server-side domain records shared by the
// repositories and services.
package models

import "time"

// Account is the persistent identity record for one username. The username
// is the sole identity key and is immutable once created. Credentials are
// stored as an opaque verifier plus per-account salt, never as a password.
type Account struct {
	Username  string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
