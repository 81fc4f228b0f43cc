package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "lezioni:"

// RedisBackend stores each collection document under one redis key. The
// whole-document GET/SET mirrors the load-mutate-save contract; redis adds
// nothing transactional here, it is just a remote key-value home for the
// same five documents.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(ctx context.Context, addr, password string, db int) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisBackend{client: client}, nil
}

func (b *RedisBackend) Read(ctx context.Context, name string) ([]byte, bool, error) {
	raw, err := b.client.Get(ctx, redisKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s from redis: %w", name, err)
	}
	return raw, true, nil
}

func (b *RedisBackend) Write(ctx context.Context, name string, doc []byte) error {
	if err := b.client.Set(ctx, redisKeyPrefix+name, doc, 0).Err(); err != nil {
		return fmt.Errorf("set %s in redis: %w", name, err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
