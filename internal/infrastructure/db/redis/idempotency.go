package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers which Idempotency-Key values have already been
// consumed and which product they produced.
// Key format: idem:product:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Seen returns the product id previously recorded under key, or "" when the
// key has not been used.
func (s *IdempotencyStore) Seen(ctx context.Context, key string) (string, error) {
	id, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, nil
}

// Remember records that key produced productID (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key, productID string) error {
	return s.client.Set(ctx, s.key(key), productID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(k string) string {
	return "idem:product:" + k
}
