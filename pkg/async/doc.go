// Package async provides a small future abstraction over goroutines for
// fire-and-forget work whose completion callers may still want to observe.
//
//	future := async.Exec(ctx, key, refetch)
//	// ... other work ...
//	if err := future.AwaitWithTimeout(time.Second); err != nil {
//		log.Warn("refetch did not finish", logger.Error(err))
//	}
package async
