// Package redis provides a configured go-redis client with startup retries
// and a health probe. The client backs the Redis state store used for
// pending OAuth flows.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil { ... }
//	states := statestore.NewRedisStore(client)
package redis
