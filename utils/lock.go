// File: utils/lock.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const lockKeyPrefix = "schedlock:"

// RedisLocker serializes the overlap-check-then-write sequence per business
// using a SETNX lock with a TTL safety net.
type RedisLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisLocker() *RedisLocker {
	return &RedisLocker{
		Client: GetLockClient(),
		TTL:    5 * time.Second,
	}
}

// Acquire takes the lock for the given business and returns a release
// function. The returned token guards against releasing a lock that expired
// and was re-acquired by another request.
func (l *RedisLocker) Acquire(ctx context.Context, businessID string) (func(), error) {
	key := lockKeyPrefix + businessID
	token := uuid.New().String()

	deadline := time.Now().Add(l.TTL)
	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, context.DeadlineExceeded
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	release := func() {
		val, err := l.Client.Get(ctx, key).Result()
		if err == nil && val == token {
			if err := l.Client.Del(ctx, key).Err(); err != nil {
				GetLogger().Warn("failed to release scheduling lock", zap.String("business_id", businessID), zap.Error(err))
			}
		}
	}
	return release, nil
}
