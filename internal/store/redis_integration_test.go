//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/serroba/linx/internal/shortener"
	"github.com/serroba/linx/internal/store"
	"github.com/serroba/linx/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: getRedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available: %v", err)
	}

	t.Cleanup(func() { _ = client.Close() })

	return client
}

func cleanupKeys(t *testing.T, client *redis.Client, pattern string) {
	t.Helper()

	t.Cleanup(func() {
		ctx := context.Background()

		keys, _ := client.Keys(ctx, pattern).Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})
}

func TestRedisStoreIntegration(t *testing.T) {
	client := newTestRedis(t)
	prefix := uuid.NewString()[:8]

	cleanupKeys(t, client, "link:"+prefix+"*")

	storetest.Contract{
		NewStore: func(_ *testing.T) shortener.Repository {
			return store.NewRedisStore(client)
		},
		Prefix: prefix,
	}.Test(t)
}

func TestRedisCacheRepositoryIntegration(t *testing.T) {
	client := newTestRedis(t)
	prefix := uuid.NewString()[:8]

	cleanupKeys(t, client, "cache:link:"+prefix+"*")

	storetest.Contract{
		NewStore: func(_ *testing.T) shortener.Repository {
			return store.NewRedisCacheRepository(store.NewMemoryStore(), client, time.Minute)
		},
		Prefix: prefix,
	}.Test(t)

	t.Run("lookup is served from cache after insert", func(t *testing.T) {
		ctx := context.Background()
		backing := store.NewMemoryStore()
		cached := store.NewRedisCacheRepository(backing, client, time.Minute)
		code := shortener.Code(prefix + "cached")

		require.NoError(t, cached.Insert(ctx, code, "https://example.com"))

		ttl, err := client.TTL(ctx, "cache:link:"+string(code)).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))

		url, err := cached.Lookup(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", url)
	})

	t.Run("miss populates cache from store", func(t *testing.T) {
		ctx := context.Background()
		backing := store.NewMemoryStore()
		code := shortener.Code(prefix + "miss")
		require.NoError(t, backing.Insert(ctx, code, "https://example.com/miss"))

		cached := store.NewRedisCacheRepository(backing, client, time.Minute)

		url, err := cached.Lookup(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/miss", url)

		got, err := client.Get(ctx, "cache:link:"+string(code)).Result()
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/miss", got)
	})
}
