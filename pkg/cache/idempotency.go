package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// IdempotencyTTL is how long a claimed key blocks repeats.
	IdempotencyTTL = 24 * time.Hour

	idempotencyKeyPrefix = "idem"
)

// ErrDuplicateRequest is returned by Claim when the key was already used.
var ErrDuplicateRequest = errors.New("duplicate request")

// IdempotencyStore records Idempotency-Key headers in Redis with SETNX.
// Key format: "idem:{scope}:{key}"
type IdempotencyStore struct {
	client *RedisClient
	ttl    time.Duration
}

func NewIdempotencyStore(r *RedisClient) *IdempotencyStore {
	return &IdempotencyStore{client: r, ttl: IdempotencyTTL}
}

// Claim reserves key within scope. Returns ErrDuplicateRequest if it is held.
func (s *IdempotencyStore) Claim(ctx context.Context, scope, key string) error {
	ok, err := s.client.Client().SetNX(ctx, s.key(scope, key), time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("idempotency claim: %w", err)
	}
	if !ok {
		return ErrDuplicateRequest
	}
	return nil
}

// Release frees key so a failed request can be retried with the same key.
func (s *IdempotencyStore) Release(ctx context.Context, scope, key string) error {
	if err := s.client.Client().Del(ctx, s.key(scope, key)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(scope, key string) string {
	return fmt.Sprintf("%s:%s:%s", idempotencyKeyPrefix, scope, key)
}
