package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jala-youth/jala-web/internal/config"
)

// RedisStore keeps the token of one browser admin session in Redis. The key
// expires together with the session cookie.
type RedisStore struct {
	rdb redis.Cmdable
	key string
	ttl time.Duration
}

// NewRedisStore creates a RedisStore scoped to sessionID.
func NewRedisStore(rdb redis.Cmdable, sessionID string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		key: config.CacheKey.AdminTokenKey(sessionID),
		ttl: ttl,
	}
}

func (r *RedisStore) Get(ctx context.Context) (string, error) {
	token, err := r.rdb.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("get admin token: %w", err)
	}
	return token, nil
}

func (r *RedisStore) Set(ctx context.Context, token string) error {
	if err := r.rdb.Set(ctx, r.key, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("store admin token: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clear admin token: %w", err)
	}
	return nil
}
