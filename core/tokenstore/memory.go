package tokenstore

import "sync"

// MemoryStore keeps the token pair in process memory. Suitable for tests and
// for ephemeral sessions that should not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	pair TokenPair
	set  bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the stored pair.
func (s *MemoryStore) Save(pair TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	s.set = true
	return nil
}

// Load returns the stored pair and whether one is present.
func (s *MemoryStore) Load() (TokenPair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set || s.pair.IsZero() {
		return TokenPair{}, false
	}
	return s.pair, true
}

// Clear removes the stored pair.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = TokenPair{}
	s.set = false
	return nil
}
