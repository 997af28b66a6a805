package session

import "errors"

var (
	// ErrSessionExpired is returned when a persisted token no longer
	// authenticates and the session degrades to unauthenticated.
	ErrSessionExpired = errors.New("session expired")
	// ErrValidation is returned when form input is rejected before any
	// network call is made.
	ErrValidation = errors.New("validation failed")
)
