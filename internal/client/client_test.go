package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rediscloud-community/rediscloud-go/internal/client"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		config := &rcloud.Config{
			APIKey:    "test-key",
			APISecret: "test-secret",
		}

		_, err := client.New(config)
		require.ErrorIs(t, err, client.ErrBaseURLRequired)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Setenv("REDIS_CLOUD_API_KEY", "")
		t.Setenv("REDIS_CLOUD_API_SECRET", "")

		config := &rcloud.Config{
			BaseURL:   "https://api.example.com/v1",
			APISecret: "test-secret",
		}

		_, err := client.New(config)
		require.ErrorIs(t, err, rcloud.ErrAPIKeyRequired)
	})

	t.Run("requires API secret", func(t *testing.T) {
		t.Setenv("REDIS_CLOUD_API_KEY", "")
		t.Setenv("REDIS_CLOUD_API_SECRET", "")

		config := &rcloud.Config{
			BaseURL: "https://api.example.com/v1",
			APIKey:  "test-key",
		}

		_, err := client.New(config)
		require.ErrorIs(t, err, rcloud.ErrAPISecretRequired)
	})

	t.Run("initializes all resource clients", func(t *testing.T) {
		t.Parallel()

		config := &rcloud.Config{
			BaseURL:   "https://api.example.com/v1",
			APIKey:    "test-key",
			APISecret: "test-secret",
		}

		cli, err := client.New(config)
		require.NoError(t, err)

		assert.NotNil(t, cli.Account())
		assert.NotNil(t, cli.Subscriptions())
		assert.NotNil(t, cli.Databases())
		assert.NotNil(t, cli.FixedSubscriptions())
		assert.NotNil(t, cli.FixedDatabases())
		assert.NotNil(t, cli.ACL())
		assert.NotNil(t, cli.Users())
		assert.NotNil(t, cli.CloudAccounts())
		assert.NotNil(t, cli.Tasks())
		assert.NotNil(t, cli.VPCPeerings())
		assert.NotNil(t, cli.TransitGateways())
		assert.NotNil(t, cli.PrivateServiceConnect())
		assert.NotNil(t, cli.PrivateLink())
		assert.NotNil(t, cli.CostReports())
	})

	t.Run("wires the configured interceptor chain", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "trace-1", request.Header.Get("X-Trace-Source"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"tasks": []rcloud.TaskStateUpdate{}})
		}))
		defer server.Close()

		chain := rcloud.NewInterceptorChain()
		chain.AddRequestInterceptor(rcloud.HeaderInterceptor(map[string]string{"X-Trace-Source": "trace-1"}))

		config := &rcloud.Config{
			BaseURL:      server.URL,
			APIKey:       "test-key",
			APISecret:    "test-secret",
			Interceptors: chain,
		}

		cli, err := client.New(config)
		require.NoError(t, err)

		_, err = cli.Tasks().List(context.Background())
		require.NoError(t, err)
	})

	t.Run("applies retry and cache options", func(t *testing.T) {
		t.Parallel()

		config := &rcloud.Config{
			BaseURL:      "https://api.example.com/v1",
			APIKey:       "test-key",
			APISecret:    "test-secret",
			RetryMax:     5,
			RetryWaitMin: 500 * time.Millisecond,
			RetryWaitMax: 10 * time.Second,
			Cache:        rcloud.NewMemoryCache(100),
		}

		cli, err := client.New(config)
		require.NoError(t, err)
		assert.NotNil(t, cli)
	})
}
