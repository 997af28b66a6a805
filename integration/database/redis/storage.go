package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/resumeforge/resumeforge-go/core/cache"
)

// Storage implements cache.Storage on Redis so short-lived processes (CLI
// invocations, workers) share one stale-while-revalidate cache instead of
// refetching everything on every start.
type Storage struct {
	client    *redis.Client
	prefix    string
	retention time.Duration
}

// StorageOption configures the cache storage.
type StorageOption func(*Storage)

// WithKeyPrefix namespaces cache keys in a shared Redis instance.
func WithKeyPrefix(prefix string) StorageOption {
	return func(s *Storage) {
		s.prefix = prefix
	}
}

// WithRetention bounds how long a record survives in Redis. Retention is
// independent of per-resource staleness: stale records are still served
// while a refetch runs, so retention only caps overall growth.
func WithRetention(d time.Duration) StorageOption {
	return func(s *Storage) {
		s.retention = d
	}
}

// NewStorage creates a Redis-backed cache storage.
func NewStorage(client *redis.Client, opts ...StorageOption) *Storage {
	s := &Storage{
		client:    client,
		prefix:    "resumeforge:cache:",
		retention: time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) Get(ctx context.Context, key string) (cache.Record, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return cache.Record{}, false, nil
	}
	if err != nil {
		return cache.Record{}, false, err
	}

	var rec cache.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return cache.Record{}, false, err
	}
	return rec, true, nil
}

func (s *Storage) Set(ctx context.Context, key string, rec cache.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+key, data, s.retention).Err()
}

func (s *Storage) MarkStale(ctx context.Context, key string) error {
	rec, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return err
	}

	rec.Stale = true
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	// KeepTTL preserves the remaining retention window.
	return s.client.Set(ctx, s.prefix+key, data, redis.KeepTTL).Err()
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
