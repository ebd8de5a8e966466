package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/linx/internal/shortener"
)

// RedisStore is a Redis implementation of shortener.Repository.
// Links are plain string keys without expiry; SETNX provides the atomic
// insert-if-absent.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a new Redis-backed link store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "link:",
	}
}

// Insert stores url under code unless the key already exists.
func (r *RedisStore) Insert(ctx context.Context, code shortener.Code, url string) error {
	ok, err := r.client.SetNX(ctx, r.prefix+string(code), url, 0).Result()
	if err != nil {
		return fmt.Errorf("insert link: %w", err)
	}

	if !ok {
		return shortener.ErrDuplicateCode
	}

	return nil
}

// Lookup returns the URL stored under code, or shortener.ErrNotFound.
func (r *RedisStore) Lookup(ctx context.Context, code shortener.Code) (string, error) {
	url, err := r.client.Get(ctx, r.prefix+string(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", shortener.ErrNotFound
		}

		return "", fmt.Errorf("lookup link: %w", err)
	}

	return url, nil
}

// Compile-time check.
var _ shortener.Repository = (*RedisStore)(nil)
