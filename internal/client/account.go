package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// AccountClient implements rcloud.AccountClient.
type AccountClient struct {
	httpClient *http.Client
	cache      *rcloud.CacheManager
}

// NewAccountClient creates a new account client. The cache, when non-nil, is
// consulted for the lookup catalogs; those change rarely and are the slowest
// endpoints of the API.
func NewAccountClient(httpClient *http.Client, cache *rcloud.CacheManager) *AccountClient {
	return &AccountClient{
		httpClient: httpClient,
		cache:      cache,
	}
}

// cachedGet fetches path through the cache when one is configured.
func (c *AccountClient) cachedGet(ctx context.Context, path string, query url.Values) ([]byte, error) {
	params := make(map[string]string, len(query))
	for key := range query {
		params[key] = query.Get(key)
	}

	var cacheKey string

	if c.cache != nil {
		cacheKey = c.cache.GetCacheKey("GET", path, params)
		if data, err := c.cache.Get(ctx, cacheKey); err == nil {
			return data, nil
		}
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	if c.cache != nil && c.cache.Policy().ShouldCache("GET", path, resp.StatusCode) {
		_ = c.cache.Set(ctx, cacheKey, resp.Body, 0)
	}

	return resp.Body, nil
}

// Get implements rcloud.AccountClient.Get.
func (c *AccountClient) Get(ctx context.Context) (*rcloud.Account, error) {
	resp, err := c.httpClient.Get(ctx, "/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var result struct {
		Account rcloud.Account `json:"account"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &result.Account, nil
}

// ListPaymentMethods implements rcloud.AccountClient.ListPaymentMethods.
func (c *AccountClient) ListPaymentMethods(ctx context.Context) ([]rcloud.PaymentMethod, error) {
	resp, err := c.httpClient.Get(ctx, "/payment-methods", nil)
	if err != nil {
		return nil, fmt.Errorf("listing payment methods: %w", err)
	}

	var result struct {
		PaymentMethods []rcloud.PaymentMethod `json:"paymentMethods"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing payment methods response: %w", err)
	}

	return result.PaymentMethods, nil
}

// ListRegions implements rcloud.AccountClient.ListRegions. An empty provider
// returns regions of all providers.
func (c *AccountClient) ListRegions(ctx context.Context, provider string) ([]rcloud.Region, error) {
	var query url.Values

	if provider != "" {
		query = url.Values{"provider": []string{provider}}
	}

	body, err := c.cachedGet(ctx, "/regions", query)
	if err != nil {
		return nil, fmt.Errorf("listing regions: %w", err)
	}

	var result struct {
		Regions []rcloud.Region `json:"regions"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing regions response: %w", err)
	}

	return result.Regions, nil
}

// ListDataPersistenceOptions implements rcloud.AccountClient.ListDataPersistenceOptions.
func (c *AccountClient) ListDataPersistenceOptions(ctx context.Context) ([]rcloud.DataPersistenceOption, error) {
	body, err := c.cachedGet(ctx, "/data-persistence", nil)
	if err != nil {
		return nil, fmt.Errorf("listing data persistence options: %w", err)
	}

	var result struct {
		DataPersistence []rcloud.DataPersistenceOption `json:"dataPersistence"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing data persistence response: %w", err)
	}

	return result.DataPersistence, nil
}

// ListDatabaseModules implements rcloud.AccountClient.ListDatabaseModules.
func (c *AccountClient) ListDatabaseModules(ctx context.Context) ([]rcloud.DatabaseModule, error) {
	body, err := c.cachedGet(ctx, "/database-modules", nil)
	if err != nil {
		return nil, fmt.Errorf("listing database modules: %w", err)
	}

	var result struct {
		Modules []rcloud.DatabaseModule `json:"modules"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing database modules response: %w", err)
	}

	return result.Modules, nil
}

// ListSystemLogs implements rcloud.AccountClient.ListSystemLogs.
func (c *AccountClient) ListSystemLogs(ctx context.Context, params *rcloud.QueryParams) ([]rcloud.SystemLogEntry, error) {
	resp, err := c.httpClient.Get(ctx, "/logs", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing system logs: %w", err)
	}

	var result struct {
		Entries []rcloud.SystemLogEntry `json:"entries"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing system logs response: %w", err)
	}

	return result.Entries, nil
}

// ListSessionLogs implements rcloud.AccountClient.ListSessionLogs.
func (c *AccountClient) ListSessionLogs(ctx context.Context, params *rcloud.QueryParams) ([]rcloud.SessionLogEntry, error) {
	resp, err := c.httpClient.Get(ctx, "/session-logs", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing session logs: %w", err)
	}

	var result struct {
		Entries []rcloud.SessionLogEntry `json:"entries"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing session logs response: %w", err)
	}

	return result.Entries, nil
}

// ListQueryPerformanceFactors implements rcloud.AccountClient.ListQueryPerformanceFactors.
func (c *AccountClient) ListQueryPerformanceFactors(ctx context.Context) ([]rcloud.QueryPerformanceFactor, error) {
	body, err := c.cachedGet(ctx, "/query-performance-factors", nil)
	if err != nil {
		return nil, fmt.Errorf("listing query performance factors: %w", err)
	}

	var result struct {
		QueryPerformanceFactors []rcloud.QueryPerformanceFactor `json:"queryPerformanceFactors"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing query performance factors response: %w", err)
	}

	return result.QueryPerformanceFactors, nil
}
