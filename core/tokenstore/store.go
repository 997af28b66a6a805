package tokenstore

// TokenPair holds the two opaque bearer tokens issued by the API. The access
// token has a short server-defined lifetime; the refresh token outlives it
// and is exchanged for a new pair when the access token expires.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IsZero reports whether the pair carries no credentials.
func (p TokenPair) IsZero() bool {
	return p.Access == "" && p.Refresh == ""
}

// Store persists at most one token pair at a time. Writing a new pair
// replaces the previous one atomically. Token contents are never inspected.
//
// Implementations must be safe for concurrent use; writes are
// last-write-wins.
type Store interface {
	// Save replaces the stored pair.
	Save(pair TokenPair) error
	// Load returns the stored pair and whether one is present.
	Load() (TokenPair, bool)
	// Clear removes the stored pair. Clearing an empty store is a no-op.
	Clear() error
}
