// File: services/scheduler/lock.go
package scheduler

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const lockPrefix = "booking:lock:"

// SlotLock serializes booking attempts per slot start time. It narrows the
// check-then-act window between the availability re-check and the calendar
// insert; the calendar backend remains the final arbiter.
type SlotLock interface {
	Acquire(ctx context.Context, start time.Time) (bool, error)
	Release(ctx context.Context, start time.Time)
}

type RedisSlotLock struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSlotLock(client *redis.Client, ttl time.Duration) *RedisSlotLock {
	return &RedisSlotLock{client: client, ttl: ttl}
}

func lockKey(start time.Time) string {
	return lockPrefix + start.UTC().Format(time.RFC3339)
}

// Acquire takes the lock for a slot start, returning false when another
// booking attempt already holds it. The TTL bounds how long a crashed holder
// can block the slot.
func (l *RedisSlotLock) Acquire(ctx context.Context, start time.Time) (bool, error) {
	return l.client.SetNX(ctx, lockKey(start), "1", l.ttl).Result()
}

// Release drops the lock early; expiry covers the failure path.
func (l *RedisSlotLock) Release(ctx context.Context, start time.Time) {
	l.client.Del(ctx, lockKey(start))
}
