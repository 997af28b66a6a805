package cache

import "errors"

// ErrUnknownKey is returned when a fetch is requested for a key no Read
// call has ever observed, so no fetcher is registered for it.
var ErrUnknownKey = errors.New("no fetcher registered for cache key")
