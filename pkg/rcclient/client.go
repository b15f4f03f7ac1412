// Package rcclient provides the main entry point for creating Redis Cloud API clients
package rcclient

import (
	"fmt"
	"strings"

	"github.com/rediscloud-community/rediscloud-go/internal/auth"
	"github.com/rediscloud-community/rediscloud-go/internal/client"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// DefaultBaseURL is the production Redis Cloud API endpoint.
const DefaultBaseURL = "https://api.redislabs.com/v1"

// New creates a new Redis Cloud API client.
//
// The config must carry an API key pair, either directly or via the
// REDIS_CLOUD_API_KEY and REDIS_CLOUD_API_SECRET environment variables.
// BaseURL defaults to DefaultBaseURL when empty.
func New(config *rcloud.Config) (rcloud.Client, error) {
	if config == nil {
		return nil, rcloud.ErrConfigRequired
	}

	creds := auth.FromEnv(config.APIKey, config.APISecret)
	if creds.APIKey == "" {
		return nil, rcloud.ErrAPIKeyRequired
	}

	if creds.APISecret == "" {
		return nil, rcloud.ErrAPISecretRequired
	}

	config.APIKey = creds.APIKey
	config.APISecret = creds.APISecret
	config.BaseURL = normalizeBaseURL(config.BaseURL)

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// normalizeBaseURL applies the default endpoint and canonicalizes the URL so
// request paths can be joined with a plain "+".
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithKeys creates a new client against the production endpoint using an
// API key pair.
func NewWithKeys(apiKey, apiSecret string) (rcloud.Client, error) {
	return New(&rcloud.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})
}

// NewWithEndpoint creates a new client against a non-default endpoint, for
// example a staging deployment or a local test server.
func NewWithEndpoint(endpoint, apiKey, apiSecret string) (rcloud.Client, error) {
	return New(&rcloud.Config{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})
}

// NewFromEnv creates a new client configured entirely from the
// REDIS_CLOUD_API_KEY and REDIS_CLOUD_API_SECRET environment variables.
func NewFromEnv() (rcloud.Client, error) {
	return New(&rcloud.Config{})
}
