package cache

import (
	"context"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
)

// MutationSpec declares a mutation's side effects: the cache keys it
// invalidates on success and the notification copy for both outcomes.
type MutationSpec struct {
	// Invalidates lists the keys marked stale after a successful write.
	Invalidates []string
	// Success is the notification shown when the mutation succeeds.
	Success string
	// Failure is the fallback notification when the server did not provide
	// a human-readable error message.
	Failure string
}

// Mutate executes a write operation. On success every declared key is
// invalidated synchronously (refetches run in the background) and exactly
// one success notification fires. On failure exactly one error notification
// fires, preferring the server's message, and the error is re-raised to the
// caller so tests can assert on either channel.
func Mutate[T any](ctx context.Context, s *Store, spec MutationSpec, fn func(context.Context) (T, error)) (T, error) {
	result, err := fn(ctx)
	if err != nil {
		var zero T
		s.notifier.Error(apiclient.Message(err, spec.Failure))
		return zero, err
	}

	for _, key := range spec.Invalidates {
		s.Invalidate(ctx, key)
	}

	if spec.Success != "" {
		s.notifier.Success(spec.Success)
	}
	return result, nil
}
