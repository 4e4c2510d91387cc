package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DEFAULT_REDIS_KEY = "counter_queue:state"

// RedisBackend stores the whole document under one key. SET replaces the
// value atomically, which gives the same all-or-nothing write as the file
// backend.
type RedisBackend struct {
	redis *redis.Client
	key   string
}

func NewRedisBackend(redis *redis.Client, key string) *RedisBackend {
	if key == "" {
		key = DEFAULT_REDIS_KEY
	}
	return &RedisBackend{redis: redis, key: key}
}

func (b *RedisBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := b.redis.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("b.redis.Get(key: %v): %w", b.key, err)
	}
	return data, nil
}

func (b *RedisBackend) Write(ctx context.Context, data []byte) error {
	if err := b.redis.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("b.redis.Set(key: %v): %w", b.key, err)
	}
	return nil
}
