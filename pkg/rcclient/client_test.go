package rcclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcclient"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &rcloud.Config{
			APIKey:    "test-key",
			APISecret: "test-secret",
		}

		client, err := rcclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := rcclient.New(nil)
		require.ErrorIs(t, err, rcloud.ErrConfigRequired)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Setenv("REDIS_CLOUD_API_KEY", "")
		t.Setenv("REDIS_CLOUD_API_SECRET", "")

		_, err := rcclient.New(&rcloud.Config{APISecret: "test-secret"})
		require.ErrorIs(t, err, rcloud.ErrAPIKeyRequired)
	})

	t.Run("requires API secret", func(t *testing.T) {
		t.Setenv("REDIS_CLOUD_API_KEY", "")
		t.Setenv("REDIS_CLOUD_API_SECRET", "")

		_, err := rcclient.New(&rcloud.Config{APIKey: "test-key"})
		require.ErrorIs(t, err, rcloud.ErrAPISecretRequired)
	})

	t.Run("falls back to environment credentials", func(t *testing.T) {
		t.Setenv("REDIS_CLOUD_API_KEY", "env-key")
		t.Setenv("REDIS_CLOUD_API_SECRET", "env-secret")

		client, err := rcclient.New(&rcloud.Config{})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("defaults and normalizes base URL", func(t *testing.T) {
		t.Parallel()

		config := &rcloud.Config{
			APIKey:    "test-key",
			APISecret: "test-secret",
			BaseURL:   "api.example.com/v1/",
		}

		_, err := rcclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/v1", config.BaseURL)

		config = &rcloud.Config{APIKey: "test-key", APISecret: "test-secret"}
		_, err = rcclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, rcclient.DefaultBaseURL, config.BaseURL)
	})
}

func TestNewWithKeys(t *testing.T) {
	t.Parallel()

	client, err := rcclient.NewWithKeys("test-key", "test-secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := rcclient.NewWithEndpoint("https://api.example.com/v1", "test-key", "test-secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("REDIS_CLOUD_API_KEY", "env-key")
	t.Setenv("REDIS_CLOUD_API_SECRET", "env-secret")

	client, err := rcclient.NewFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/":
			assert.Equal(t, "test-key", request.Header.Get("x-api-key"))
			assert.Equal(t, "test-secret", request.Header.Get("x-api-secret-key"))

			_ = json.NewEncoder(writer).Encode(map[string]rcloud.Account{
				"account": {ID: 40131, Name: "Example account"},
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := rcclient.NewWithEndpoint(server.URL, "test-key", "test-secret")
	require.NoError(t, err)

	account, err := client.Account().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40131, account.ID)
	assert.Equal(t, "Example account", account.Name)
}
