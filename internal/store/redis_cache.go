package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/linx/internal/metrics"
	"github.com/serroba/linx/internal/shortener"
)

// RedisCacheRepository wraps a Repository with Redis caching for reads.
// Links never change once created, so cached entries never go stale; the
// TTL only bounds memory use.
type RedisCacheRepository struct {
	store  shortener.Repository
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisCacheRepository creates a new Redis-cached repository decorator.
func NewRedisCacheRepository(
	store shortener.Repository, client redis.UniversalClient, ttl time.Duration,
) *RedisCacheRepository {
	return &RedisCacheRepository{
		store:  store,
		client: client,
		prefix: "cache:link:",
		ttl:    ttl,
	}
}

// Insert stores the link in the underlying store and updates the cache.
func (r *RedisCacheRepository) Insert(ctx context.Context, code shortener.Code, url string) error {
	if err := r.store.Insert(ctx, code, url); err != nil {
		return err
	}

	// Write-through: update cache after successful insert
	r.cacheURL(ctx, code, url)

	return nil
}

// Lookup retrieves a URL by its code, checking cache first.
func (r *RedisCacheRepository) Lookup(ctx context.Context, code shortener.Code) (string, error) {
	if url, err := r.client.Get(ctx, r.prefix+string(code)).Result(); err == nil {
		metrics.RecordCacheHit()

		return url, nil
	}

	metrics.RecordCacheMiss()

	url, err := r.store.Lookup(ctx, code)
	if err != nil {
		return "", err
	}

	r.cacheURL(ctx, code, url)

	return url, nil
}

func (r *RedisCacheRepository) cacheURL(ctx context.Context, code shortener.Code, url string) {
	// Cache failures must not fail the request; the store stays authoritative.
	_ = r.client.Set(ctx, r.prefix+string(code), url, r.ttl).Err()
}

// Compile-time check.
var _ shortener.Repository = (*RedisCacheRepository)(nil)
