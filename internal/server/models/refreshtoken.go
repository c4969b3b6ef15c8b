package models

import "time"

// RefreshToken is an opaque, persisted token that can be exchanged for a new
// access/refresh pair until it expires.
type RefreshToken struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}
