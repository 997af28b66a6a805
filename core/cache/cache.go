package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/logger"
	"github.com/resumeforge/resumeforge-go/core/notify"
	"github.com/resumeforge/resumeforge-go/pkg/async"
)

// Store orchestrates the stale-while-revalidate cache: fresh hits are served
// without a network call, stale hits are served immediately while one
// background refetch runs, and misses block on a single shared fetch.
// Concurrent reads of the same key never issue duplicate requests.
type Store struct {
	storage  Storage
	notifier notify.Notifier
	log      *slog.Logger

	retryAttempts  int
	retryBaseDelay time.Duration

	mu       sync.Mutex
	inflight map[string]*flight
	fetchers map[string]rawFetch
}

type rawFetch func(ctx context.Context) (json.RawMessage, error)

// flight is one in-progress fetch; late readers of the same key attach to
// it instead of issuing their own call.
type flight struct {
	done chan struct{}
	data json.RawMessage
	err  error
}

// Option configures the store.
type Option func(*Store)

// WithNotifier routes mutation notifications. Defaults to discarding them.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) {
		s.notifier = n
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithRetry overrides the read retry policy. attempts is the total number
// of tries including the first.
func WithRetry(attempts int, baseDelay time.Duration) Option {
	return func(s *Store) {
		s.retryAttempts = attempts
		s.retryBaseDelay = baseDelay
	}
}

// New creates a store over the given storage backend.
func New(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage:        storage,
		notifier:       notify.Nop{},
		log:            slog.New(slog.DiscardHandler),
		retryAttempts:  3,
		retryBaseDelay: 200 * time.Millisecond,
		inflight:       make(map[string]*flight),
		fetchers:       make(map[string]rawFetch),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key composes a cache key from resource name and identifiers.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// Read returns the value for key, fetching through fetch when the cache
// cannot serve it. Within the staleness window the cached value is returned
// without touching the network; outside it the cached value is still
// returned immediately while a background refetch refreshes the entry.
func Read[T any](ctx context.Context, s *Store, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	raw := func(ctx context.Context) (json.RawMessage, error) {
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(value)
	}
	s.register(key, raw)

	rec, ok, err := s.storage.Get(ctx, key)
	if err != nil {
		s.log.Warn("cache storage read failed", logger.CacheKey(key), logger.Error(err))
		ok = false
	}

	if ok {
		var cached T
		if err := json.Unmarshal(rec.Data, &cached); err == nil {
			if rec.Fresh(ttl) {
				return cached, nil
			}
			// Stale: serve immediately, refresh in the background.
			s.refetchAsync(ctx, key)
			return cached, nil
		}
		// Undecodable entry, treat as a miss.
		s.log.Warn("discarding undecodable cache entry", logger.CacheKey(key))
	}

	data, err := s.fetch(ctx, key)
	if err != nil {
		return zero, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, err
	}
	return value, nil
}

// Invalidate marks the entry stale immediately and starts one background
// refetch for keys that have been read before. Calling it twice in
// succession has the same effect as calling it once: the in-flight refetch
// is shared. The returned future completes when the refetch finishes and
// may be ignored.
func (s *Store) Invalidate(ctx context.Context, key string) *async.ExecFuture {
	if err := s.storage.MarkStale(ctx, key); err != nil {
		s.log.Warn("failed to mark cache entry stale", logger.CacheKey(key), logger.Error(err))
	}

	s.mu.Lock()
	f, inflight := s.inflight[key]
	_, known := s.fetchers[key]
	s.mu.Unlock()

	if inflight {
		// A refetch is already running; attach to it instead of starting
		// another. This is what makes double invalidation idempotent.
		return async.Exec(context.WithoutCancel(ctx), f, func(_ context.Context, fl *flight) error {
			<-fl.done
			return fl.err
		})
	}
	if !known {
		return async.Exec(ctx, key, func(context.Context, string) error { return nil })
	}

	return s.refetchAsync(ctx, key)
}

// register remembers the fetcher for a key so invalidation can refetch it.
func (s *Store) register(key string, fetch rawFetch) {
	s.mu.Lock()
	s.fetchers[key] = fetch
	s.mu.Unlock()
}

// refetchAsync refreshes key in the background, detached from the caller's
// cancellation. Deduplication happens inside fetch.
func (s *Store) refetchAsync(ctx context.Context, key string) *async.ExecFuture {
	return async.Exec(context.WithoutCancel(ctx), key, func(ctx context.Context, key string) error {
		if _, err := s.fetch(ctx, key); err != nil {
			s.log.Warn("background refetch failed", logger.CacheKey(key), logger.Error(err))
			return err
		}
		return nil
	})
}

// fetch performs the deduplicated fetch for key: the first caller runs the
// fetcher with retries and stores the result; concurrent callers block on
// the shared flight.
func (s *Store) fetch(ctx context.Context, key string) (json.RawMessage, error) {
	s.mu.Lock()
	if f, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		select {
		case <-f.done:
			return f.data, f.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	fetcher, ok := s.fetchers[key]
	if !ok {
		s.mu.Unlock()
		return nil, ErrUnknownKey
	}

	f := &flight{done: make(chan struct{})}
	s.inflight[key] = f
	s.mu.Unlock()

	data, err := s.fetchWithRetry(ctx, key, fetcher)
	if err == nil {
		rec := Record{Data: data, FetchedAt: time.Now()}
		if setErr := s.storage.Set(ctx, key, rec); setErr != nil {
			s.log.Warn("cache storage write failed", logger.CacheKey(key), logger.Error(setErr))
		}
	}

	f.data, f.err = data, err
	close(f.done)

	s.mu.Lock()
	delete(s.inflight, key)
	s.mu.Unlock()

	return data, err
}

// fetchWithRetry retries transient failures with exponential backoff.
// 401 responses are never retried here: recovering an expired session is
// the HTTP client's single refresh-and-replay cycle, and retrying above it
// would risk duplicate refresh attempts.
func (s *Store) fetchWithRetry(ctx context.Context, key string, fetch rawFetch) (json.RawMessage, error) {
	var lastErr error
	delay := s.retryBaseDelay

	for attempt := 1; attempt <= s.retryAttempts; attempt++ {
		data, err := fetch(ctx)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if apiclient.IsUnauthorized(err) || !apiclient.IsTransient(err) {
			break
		}
		if attempt == s.retryAttempts {
			break
		}

		s.log.Debug("retrying fetch", logger.CacheKey(key), logger.RetryCount(attempt), logger.Error(err))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, errors.Join(lastErr, ctx.Err())
		}
		delay *= 2
	}

	return nil, lastErr
}
