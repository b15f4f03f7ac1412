// Package auth supplies the API key pair attached to every request.
package auth

import (
	"context"
	"errors"
	"os"
)

// Environment variables consulted by FromEnv.
const (
	EnvAPIKey    = "REDIS_CLOUD_API_KEY"
	EnvAPISecret = "REDIS_CLOUD_API_SECRET"
)

// Static errors for err113 compliance.
var (
	ErrMissingAPIKey    = errors.New("API key not set")
	ErrMissingAPISecret = errors.New("API secret key not set")
)

// Credentials is one API key pair.
type Credentials struct {
	APIKey    string
	APISecret string
}

// CredentialsProvider supplies the key pair for a request. Implementations
// must be safe for concurrent use.
type CredentialsProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// StaticProvider returns a fixed key pair.
type StaticProvider struct {
	creds Credentials
}

// NewStaticProvider creates a provider over a fixed key pair.
func NewStaticProvider(apiKey, apiSecret string) *StaticProvider {
	return &StaticProvider{
		creds: Credentials{
			APIKey:    apiKey,
			APISecret: apiSecret,
		},
	}
}

// Credentials returns the configured key pair.
func (p *StaticProvider) Credentials(ctx context.Context) (Credentials, error) {
	if p.creds.APIKey == "" {
		return Credentials{}, ErrMissingAPIKey
	}

	if p.creds.APISecret == "" {
		return Credentials{}, ErrMissingAPISecret
	}

	return p.creds, nil
}

// EnvProvider reads the key pair from the environment on every request, so
// rotated keys are picked up without rebuilding the client.
type EnvProvider struct{}

// NewEnvProvider creates a provider reading REDIS_CLOUD_API_KEY and
// REDIS_CLOUD_API_SECRET.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

// Credentials returns the key pair from the environment.
func (p *EnvProvider) Credentials(ctx context.Context) (Credentials, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return Credentials{}, ErrMissingAPIKey
	}

	apiSecret := os.Getenv(EnvAPISecret)
	if apiSecret == "" {
		return Credentials{}, ErrMissingAPISecret
	}

	return Credentials{APIKey: apiKey, APISecret: apiSecret}, nil
}

// FromEnv resolves a key pair, preferring the explicit values and falling
// back to the environment per field.
func FromEnv(apiKey, apiSecret string) Credentials {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}

	if apiSecret == "" {
		apiSecret = os.Getenv(EnvAPISecret)
	}

	return Credentials{APIKey: apiKey, APISecret: apiSecret}
}
