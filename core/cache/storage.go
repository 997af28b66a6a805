package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Record is the persisted form of a cache entry. Data is kept as raw JSON
// so storage backends stay type-agnostic; typed access happens in Read.
type Record struct {
	Data      json.RawMessage `json:"data"`
	FetchedAt time.Time       `json:"fetched_at"`
	Stale     bool            `json:"stale"`
}

// Fresh reports whether the record is within its staleness window.
func (r Record) Fresh(ttl time.Duration) bool {
	return !r.Stale && time.Since(r.FetchedAt) < ttl
}

// Storage persists cache records. Implementations must be safe for
// concurrent use.
type Storage interface {
	Get(ctx context.Context, key string) (Record, bool, error)
	Set(ctx context.Context, key string, rec Record) error
	// MarkStale flags an existing record as stale without discarding its
	// data. Unknown keys are a no-op.
	MarkStale(ctx context.Context, key string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage keeps records in a mutex-guarded map. The default backend.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStorage creates an empty in-memory backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string]Record)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[key]
	return rec, ok, nil
}

func (s *MemoryStorage) Set(_ context.Context, key string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = rec
	return nil
}

func (s *MemoryStorage) MarkStale(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[key]; ok {
		rec.Stale = true
		s.records[key] = rec
	}
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
