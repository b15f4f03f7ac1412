package commands

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

func TestBuildCache(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("defaults to memory", func(t *testing.T) {
		viper.Reset()

		cache, err := buildCache()
		require.NoError(t, err)
		require.NotNil(t, cache)

		ctx := context.Background()
		entry := &rcloud.CacheEntry{
			Data:      []byte(`{"plans":[]}`),
			ExpiresAt: time.Now().Add(time.Minute),
		}

		require.NoError(t, cache.Set(ctx, "GET:/fixed/plans", entry))

		got, err := cache.Get(ctx, "GET:/fixed/plans")
		require.NoError(t, err)
		assert.Equal(t, entry.Data, got.Data)
	})

	t.Run("none disables caching", func(t *testing.T) {
		viper.Reset()
		viper.Set("cache.type", "none")

		cache, err := buildCache()
		require.NoError(t, err)

		ctx := context.Background()
		entry := &rcloud.CacheEntry{
			Data:      []byte(`{}`),
			ExpiresAt: time.Now().Add(time.Minute),
		}

		require.NoError(t, cache.Set(ctx, "GET:/fixed/plans", entry))
		assert.False(t, cache.Has(ctx, "GET:/fixed/plans"))
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		viper.Reset()
		viper.Set("cache.type", "redis")

		_, err := buildCache()
		require.ErrorIs(t, err, rcloud.ErrUnsupportedCacheType)
	})
}
