package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "oauth_state:"

// RedisStore implements Store on top of a Redis client. Expiry is delegated
// to Redis key TTLs; Consume relies on GETDEL for single-use atomicity.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed state store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Put stores a new state record with a TTL derived from its expiry.
func (r *RedisStore) Put(ctx context.Context, state *State) error {
	if state == nil || state.Token == "" || state.Verifier == "" {
		return ErrInvalidState
	}

	ttl := time.Until(state.ExpiresAt)
	if ttl <= 0 {
		return ErrInvalidState
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return errors.Join(ErrInvalidState, err)
	}

	return r.client.Set(ctx, redisKeyPrefix+state.Token, payload, ttl).Err()
}

// Consume retrieves and removes the state atomically via GETDEL.
func (r *RedisStore) Consume(ctx context.Context, token string) (*State, error) {
	payload, err := r.client.GetDel(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, errors.Join(ErrStateNotFound, err)
	}

	// Redis TTL normally expires the key first; guard against clock skew.
	if state.IsExpired() {
		return nil, ErrStateNotFound
	}

	return &state, nil
}
