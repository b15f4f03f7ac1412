package rcloud_test

import (
	"context"
	"testing"
	"time"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses memory defaults", func(t *testing.T) {
		t.Parallel()

		cache, err := rcloud.NewCacheFromConfig(nil)
		require.NoError(t, err)
		assert.IsType(t, &rcloud.MemoryCache{}, cache)
	})

	t.Run("memory cache", func(t *testing.T) {
		t.Parallel()

		cache, err := rcloud.NewCacheFromConfig(&rcloud.CacheConfig{
			Type:   rcloud.CacheTypeMemory,
			Memory: &rcloud.MemoryCacheConfig{MaxSize: 50},
		})
		require.NoError(t, err)
		assert.IsType(t, &rcloud.MemoryCache{}, cache)
	})

	t.Run("no-op cache", func(t *testing.T) {
		t.Parallel()

		cache, err := rcloud.NewCacheFromConfig(&rcloud.CacheConfig{Type: rcloud.CacheTypeNone})
		require.NoError(t, err)
		assert.IsType(t, &rcloud.NoOpCache{}, cache)
	})

	t.Run("NATS requires configuration", func(t *testing.T) {
		t.Parallel()

		_, err := rcloud.NewCacheFromConfig(&rcloud.CacheConfig{Type: rcloud.CacheTypeNATS})
		require.ErrorIs(t, err, rcloud.ErrNATSConfigRequired)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		_, err := rcloud.NewCacheFromConfig(&rcloud.CacheConfig{Type: rcloud.CacheType("redis")})
		require.ErrorIs(t, err, rcloud.ErrUnsupportedCacheType)
	})
}

func TestCacheBuilder(t *testing.T) {
	t.Parallel()

	cache, err := rcloud.NewCacheBuilder().
		WithType(rcloud.CacheTypeMemory).
		WithMemoryConfig(100, "1m").
		WithOptions(rcloud.DefaultCacheOptions()).
		Build()
	require.NoError(t, err)
	assert.IsType(t, &rcloud.MemoryCache{}, cache)
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := rcloud.NewNoOpCache()

	require.NoError(t, cache.Set(ctx, "key", &rcloud.CacheEntry{Data: []byte("data")}))
	assert.False(t, cache.Has(ctx, "key"))

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, rcloud.ErrCacheDisabled)

	require.NoError(t, cache.Delete(ctx, "key"))
	require.NoError(t, cache.Clear(ctx))
}

func TestCacheChain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("found in later cache populates earlier ones", func(t *testing.T) {
		t.Parallel()

		l1 := rcloud.NewMemoryCache(10)
		l2 := rcloud.NewMemoryCache(10)
		chain := rcloud.NewCacheChain(l1, l2)

		entry := &rcloud.CacheEntry{
			Data:      []byte("shared"),
			ExpiresAt: time.Now().Add(time.Minute),
		}
		require.NoError(t, l2.Set(ctx, "key", entry))

		got, err := chain.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, entry.Data, got.Data)

		// L1 now holds the entry too.
		assert.True(t, l1.Has(ctx, "key"))
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()

		chain := rcloud.NewCacheChain(rcloud.NewMemoryCache(10), rcloud.NewMemoryCache(10))

		_, err := chain.Get(ctx, "missing")
		require.ErrorIs(t, err, rcloud.ErrKeyNotFoundInAnyCache)
		assert.False(t, chain.Has(ctx, "missing"))
	})

	t.Run("set, has, delete, and clear fan out", func(t *testing.T) {
		t.Parallel()

		l1 := rcloud.NewMemoryCache(10)
		l2 := rcloud.NewMemoryCache(10)
		chain := rcloud.NewCacheChain(l1, l2)

		entry := &rcloud.CacheEntry{
			Data:      []byte("fanout"),
			ExpiresAt: time.Now().Add(time.Minute),
		}
		require.NoError(t, chain.Set(ctx, "key", entry))
		assert.True(t, l1.Has(ctx, "key"))
		assert.True(t, l2.Has(ctx, "key"))
		assert.True(t, chain.Has(ctx, "key"))

		require.NoError(t, chain.Delete(ctx, "key"))
		assert.False(t, l1.Has(ctx, "key"))
		assert.False(t, l2.Has(ctx, "key"))

		require.NoError(t, chain.Set(ctx, "other", entry))
		require.NoError(t, chain.Clear(ctx))
		assert.False(t, chain.Has(ctx, "other"))
	})
}
