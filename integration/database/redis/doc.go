// Package redis provides the Redis connection helper and a Redis-backed
// storage implementation for the data cache layer.
//
// Connect validates the connection URL, establishes a client, and verifies
// connectivity with retried pings before returning. Storage persists cache
// records in Redis so short-lived processes share one cache:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := cache.New(redis.NewStorage(client))
package redis
