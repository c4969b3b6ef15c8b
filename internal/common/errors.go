// Package common defines shared constants and sentinel errors used across
// client and server layers of chatline. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Account directory errors.
	ErrUsernameTaken  = errors.New("username already taken")
	ErrUnknownUser    = errors.New("unknown user")
	ErrWrongCredential = errors.New("wrong credential")

	// Routing errors.
	ErrUnknownDestination = errors.New("unknown destination")

	// Delivery errors. A closed or dead session channel is never surfaced
	// to other sessions; it only terminates the owning stream.
	ErrChannelClosed = errors.New("channel closed")

	// Session lifecycle. Raised to a delivery stream whose binding was
	// replaced by a newer login for the same username.
	ErrSessionSuperseded = errors.New("session superseded")

	// Generic flow control.
	ErrValidation   = errors.New("validation error")
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
