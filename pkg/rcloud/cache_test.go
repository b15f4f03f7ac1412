package rcloud_test

import (
	"context"
	"testing"
	"time"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		cache := rcloud.NewMemoryCache(10)

		entry := &rcloud.CacheEntry{
			Data:      []byte(`{"regions": []}`),
			ExpiresAt: time.Now().Add(time.Minute),
		}

		require.NoError(t, cache.Set(ctx, "GET:/regions", entry))
		assert.True(t, cache.Has(ctx, "GET:/regions"))

		got, err := cache.Get(ctx, "GET:/regions")
		require.NoError(t, err)
		assert.Equal(t, entry.Data, got.Data)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		cache := rcloud.NewMemoryCache(10)

		_, err := cache.Get(ctx, "GET:/missing")
		require.ErrorIs(t, err, rcloud.ErrCacheKeyNotFound)
		assert.False(t, cache.Has(ctx, "GET:/missing"))
	})

	t.Run("expired entry", func(t *testing.T) {
		t.Parallel()

		cache := rcloud.NewMemoryCache(10)

		require.NoError(t, cache.Set(ctx, "GET:/regions", &rcloud.CacheEntry{
			Data:      []byte("stale"),
			ExpiresAt: time.Now().Add(-time.Second),
		}))

		_, err := cache.Get(ctx, "GET:/regions")
		require.ErrorIs(t, err, rcloud.ErrCacheEntryExpired)

		// A later Get reports not-found since the expired entry was dropped.
		_, err = cache.Get(ctx, "GET:/regions")
		require.ErrorIs(t, err, rcloud.ErrCacheKeyNotFound)
	})

	t.Run("evicts entry closest to expiry when full", func(t *testing.T) {
		t.Parallel()

		cache := rcloud.NewMemoryCache(2)

		require.NoError(t, cache.Set(ctx, "a", &rcloud.CacheEntry{ExpiresAt: time.Now().Add(time.Minute)}))
		require.NoError(t, cache.Set(ctx, "b", &rcloud.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)}))
		require.NoError(t, cache.Set(ctx, "c", &rcloud.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)}))

		assert.False(t, cache.Has(ctx, "a"))
		assert.True(t, cache.Has(ctx, "b"))
		assert.True(t, cache.Has(ctx, "c"))
	})

	t.Run("delete and clear", func(t *testing.T) {
		t.Parallel()

		cache := rcloud.NewMemoryCache(10)

		require.NoError(t, cache.Set(ctx, "a", &rcloud.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)}))
		require.NoError(t, cache.Set(ctx, "b", &rcloud.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)}))

		require.NoError(t, cache.Delete(ctx, "a"))
		assert.False(t, cache.Has(ctx, "a"))

		require.NoError(t, cache.Clear(ctx))
		assert.False(t, cache.Has(ctx, "b"))
	})

	t.Run("cleanup removes expired entries", func(t *testing.T) {
		t.Parallel()

		cache := rcloud.NewMemoryCache(10)

		require.NoError(t, cache.Set(ctx, "live", &rcloud.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)}))
		require.NoError(t, cache.Set(ctx, "stale", &rcloud.CacheEntry{ExpiresAt: time.Now().Add(-time.Second)}))

		cache.Cleanup()

		assert.True(t, cache.Has(ctx, "live"))
		assert.False(t, cache.Has(ctx, "stale"))
	})
}

func TestCachingPolicy_ShouldCache(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		policy     *rcloud.CachingPolicy
		method     string
		path       string
		statusCode int
		expected   bool
	}{
		{
			name:       "default caches GET",
			policy:     rcloud.DefaultCachingPolicy(),
			method:     "GET",
			path:       "/regions",
			statusCode: 200,
			expected:   true,
		},
		{
			name:       "default never caches task polling",
			policy:     rcloud.DefaultCachingPolicy(),
			method:     "GET",
			path:       "/tasks/abc",
			statusCode: 200,
			expected:   false,
		},
		{
			name:       "default skips POST",
			policy:     rcloud.DefaultCachingPolicy(),
			method:     "POST",
			path:       "/subscriptions",
			statusCode: 201,
			expected:   false,
		},
		{
			name:       "default skips errors",
			policy:     rcloud.DefaultCachingPolicy(),
			method:     "GET",
			path:       "/regions",
			statusCode: 404,
			expected:   false,
		},
		{
			name:       "default skips DELETE",
			policy:     rcloud.DefaultCachingPolicy(),
			method:     "DELETE",
			path:       "/subscriptions/1",
			statusCode: 202,
			expected:   false,
		},
		{
			name: "include paths restrict caching",
			policy: &rcloud.CachingPolicy{
				CacheGET:     true,
				IncludePaths: []string{"/regions", "/fixed/plans"},
			},
			method:     "GET",
			path:       "/subscriptions",
			statusCode: 200,
			expected:   false,
		},
		{
			name: "include paths allow listed prefixes",
			policy: &rcloud.CachingPolicy{
				CacheGET:     true,
				IncludePaths: []string{"/regions", "/fixed/plans"},
			},
			method:     "GET",
			path:       "/fixed/plans/123",
			statusCode: 200,
			expected:   true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := testCase.policy.ShouldCache(testCase.method, testCase.path, testCase.statusCode)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestCacheManager(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("tracks hits, misses, and sets", func(t *testing.T) {
		t.Parallel()

		manager := rcloud.NewCacheManager(rcloud.NewMemoryCache(10), nil)

		key := manager.GetCacheKey("GET", "/regions", nil)

		_, err := manager.Get(ctx, key)
		require.Error(t, err)

		require.NoError(t, manager.Set(ctx, key, []byte(`{"regions": []}`), time.Minute))

		data, err := manager.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"regions": []}`), data)

		stats := manager.GetStats()
		assert.Equal(t, int64(1), stats.Hits)
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(1), stats.Sets)
		assert.InDelta(t, 0.5, stats.GetHitRate(), 0.001)
	})

	t.Run("builds stable cache keys", func(t *testing.T) {
		t.Parallel()

		manager := rcloud.NewCacheManager(rcloud.NewMemoryCache(10), nil)

		assert.Equal(t, "GET:/regions", manager.GetCacheKey("GET", "/regions", nil))

		// Parameter order must not matter.
		first := manager.GetCacheKey("GET", "/regions", map[string]string{"provider": "AWS", "zone": "eu"})
		second := manager.GetCacheKey("GET", "/regions", map[string]string{"zone": "eu", "provider": "AWS"})
		assert.Equal(t, first, second)
		assert.Equal(t, "GET:/regions:provider=AWS&zone=eu", first)
	})

	t.Run("zero TTL falls back to policy TTL", func(t *testing.T) {
		t.Parallel()

		manager := rcloud.NewCacheManager(rcloud.NewMemoryCache(10), &rcloud.CachingPolicy{
			CacheGET: true,
			TTL:      time.Hour,
		})

		require.NoError(t, manager.Set(ctx, "key", []byte("data"), 0))

		data, err := manager.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("data"), data)
	})

	t.Run("nil policy uses the default", func(t *testing.T) {
		t.Parallel()

		manager := rcloud.NewCacheManager(rcloud.NewMemoryCache(10), nil)

		assert.True(t, manager.Policy().ShouldCache("GET", "/regions", 200))
		assert.False(t, manager.Policy().ShouldCache("GET", "/tasks/abc", 200))
	})
}

func TestCacheStats_GetHitRate(t *testing.T) {
	t.Parallel()

	stats := &rcloud.CacheStats{}
	assert.Zero(t, stats.GetHitRate())

	stats.Hits = 3
	stats.Misses = 1
	assert.InDelta(t, 0.75, stats.GetHitRate(), 0.001)
}
