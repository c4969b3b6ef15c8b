package client

import "errors"

var (
	// ErrUnauthorized: credentials rejected or token no longer valid.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable: server unreachable or request deadline exceeded.
	ErrUnavailable = errors.New("server unavailable")
	// ErrNotFound: destination or account does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists: username is taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput: server rejected the request arguments.
	ErrInvalidInput = errors.New("invalid input")
)
