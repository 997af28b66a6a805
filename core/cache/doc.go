// Package cache implements the client's keyed data cache with
// stale-while-revalidate semantics.
//
// Each resource read declares a staleness window. Within the window a read
// is served from cache with no network call; outside it the cached value is
// still returned immediately while a single background refetch refreshes
// the entry. Concurrent reads of one key share a single in-flight fetch.
//
// Reads retry transient failures (transport errors, 5xx) up to three times
// with exponential backoff. HTTP 401 is never retried at this layer: the
// refresh-and-replay protocol lives in core/apiclient, and retrying above
// it could trigger duplicate refresh attempts.
//
// Mutations declare the keys they invalidate. Invalidation is synchronous
// (entries are stale immediately); refetching is asynchronous. Every
// mutation surfaces exactly one transient notification, preferring the
// server's human-readable message on failure.
//
// Storage backends: an in-memory map by default, or Redis via
// integration/database/redis so short-lived processes can share one cache.
package cache
