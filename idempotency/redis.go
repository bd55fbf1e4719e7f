package idempotency

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// keyPrefix namespaces idempotency marks in Redis.
const keyPrefix = "hookrelay:idem:"

// DefaultTTL matches the relay's redelivery horizon: a mark only needs to
// outlive the window in which the relay might resend the same event.
const DefaultTTL = 24 * time.Hour

// compile-time interface check.
var _ Store = (*RedisStore)(nil)

// RedisStore is a Store backed by Redis, for deployments where multiple
// instances receive deliveries behind a load balancer. Marks are written
// with SET NX so exactly one instance wins the first-processing race.
type RedisStore struct {
	rdb goredis.UniversalClient
	ttl time.Duration
}

// NewRedisStore creates a Redis-backed store. A non-positive ttl falls back
// to DefaultTTL.
func NewRedisStore(rdb goredis.UniversalClient, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// MarkProcessed implements Store.
func (s *RedisStore) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	first, err := s.rdb.SetNX(ctx, keyPrefix+eventID, 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency: mark event %s: %w", eventID, err)
	}
	return first, nil
}
