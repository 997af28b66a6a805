package tokenstore

import "errors"

var (
	// ErrSaveFailed is returned when a token pair cannot be persisted.
	// Callers treat this as a degradation, not a fatal error: the next
	// Load simply behaves as unauthenticated.
	ErrSaveFailed = errors.New("failed to save token pair")
	// ErrClearFailed is returned when stored tokens cannot be removed.
	ErrClearFailed = errors.New("failed to clear token pair")
)
