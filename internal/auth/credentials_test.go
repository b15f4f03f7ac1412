package auth_test

import (
	"context"
	"testing"

	"github.com/rediscloud-community/rediscloud-go/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	t.Run("returns configured key pair", func(t *testing.T) {
		t.Parallel()

		provider := auth.NewStaticProvider("test-key", "test-secret")

		creds, err := provider.Credentials(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "test-key", creds.APIKey)
		assert.Equal(t, "test-secret", creds.APISecret)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		provider := auth.NewStaticProvider("", "test-secret")

		_, err := provider.Credentials(context.Background())
		require.ErrorIs(t, err, auth.ErrMissingAPIKey)
	})

	t.Run("missing API secret", func(t *testing.T) {
		t.Parallel()

		provider := auth.NewStaticProvider("test-key", "")

		_, err := provider.Credentials(context.Background())
		require.ErrorIs(t, err, auth.ErrMissingAPISecret)
	})
}

func TestEnvProvider(t *testing.T) {
	t.Run("reads key pair from environment", func(t *testing.T) {
		t.Setenv(auth.EnvAPIKey, "env-key")
		t.Setenv(auth.EnvAPISecret, "env-secret")

		provider := auth.NewEnvProvider()

		creds, err := provider.Credentials(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "env-key", creds.APIKey)
		assert.Equal(t, "env-secret", creds.APISecret)
	})

	t.Run("picks up rotated keys", func(t *testing.T) {
		t.Setenv(auth.EnvAPIKey, "env-key")
		t.Setenv(auth.EnvAPISecret, "env-secret")

		provider := auth.NewEnvProvider()

		_, err := provider.Credentials(context.Background())
		require.NoError(t, err)

		t.Setenv(auth.EnvAPIKey, "rotated-key")

		creds, err := provider.Credentials(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "rotated-key", creds.APIKey)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Setenv(auth.EnvAPIKey, "")
		t.Setenv(auth.EnvAPISecret, "env-secret")

		provider := auth.NewEnvProvider()

		_, err := provider.Credentials(context.Background())
		require.ErrorIs(t, err, auth.ErrMissingAPIKey)
	})

	t.Run("missing API secret", func(t *testing.T) {
		t.Setenv(auth.EnvAPIKey, "env-key")
		t.Setenv(auth.EnvAPISecret, "")

		provider := auth.NewEnvProvider()

		_, err := provider.Credentials(context.Background())
		require.ErrorIs(t, err, auth.ErrMissingAPISecret)
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("prefers explicit values", func(t *testing.T) {
		t.Setenv(auth.EnvAPIKey, "env-key")
		t.Setenv(auth.EnvAPISecret, "env-secret")

		creds := auth.FromEnv("explicit-key", "explicit-secret")
		assert.Equal(t, "explicit-key", creds.APIKey)
		assert.Equal(t, "explicit-secret", creds.APISecret)
	})

	t.Run("falls back per field", func(t *testing.T) {
		t.Setenv(auth.EnvAPIKey, "env-key")
		t.Setenv(auth.EnvAPISecret, "env-secret")

		creds := auth.FromEnv("explicit-key", "")
		assert.Equal(t, "explicit-key", creds.APIKey)
		assert.Equal(t, "env-secret", creds.APISecret)

		creds = auth.FromEnv("", "explicit-secret")
		assert.Equal(t, "env-key", creds.APIKey)
		assert.Equal(t, "explicit-secret", creds.APISecret)
	})

	t.Run("empty when nothing is set", func(t *testing.T) {
		t.Setenv(auth.EnvAPIKey, "")
		t.Setenv(auth.EnvAPISecret, "")

		creds := auth.FromEnv("", "")
		assert.Empty(t, creds.APIKey)
		assert.Empty(t, creds.APISecret)
	})
}
