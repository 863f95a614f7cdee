package slot

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores each slot under its own redis key, no expiry.
type RedisSlot struct {
	rdb *redis.Client
}

func NewRedisSlot(rdb *redis.Client) *RedisSlot {
	return &RedisSlot{rdb: rdb}
}

func (s *RedisSlot) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisSlot) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}
