package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// FixedSubscriptionsClient implements rcloud.FixedSubscriptionsClient.
type FixedSubscriptionsClient struct {
	httpClient *http.Client
	cache      *rcloud.CacheManager
}

// NewFixedSubscriptionsClient creates a new fixed subscriptions client. The
// cache, when non-nil, is used for the plan catalog.
func NewFixedSubscriptionsClient(httpClient *http.Client, cache *rcloud.CacheManager) *FixedSubscriptionsClient {
	return &FixedSubscriptionsClient{
		httpClient: httpClient,
		cache:      cache,
	}
}

func (c *FixedSubscriptionsClient) cachedGet(ctx context.Context, path string, query url.Values) ([]byte, error) {
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

// ListPlans implements rcloud.FixedSubscriptionsClient.ListPlans. An empty
// provider returns plans of all providers.
func (c *FixedSubscriptionsClient) ListPlans(ctx context.Context, provider string) ([]rcloud.FixedPlan, error) {
	var query url.Values

	if provider != "" {
		query = url.Values{"provider": []string{provider}}
	}

	body, err := c.cachedGet(ctx, "/fixed/plans", query)
	if err != nil {
		return nil, fmt.Errorf("listing fixed plans: %w", err)
	}

	var result struct {
		Plans []rcloud.FixedPlan `json:"plans"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing fixed plans response: %w", err)
	}

	return result.Plans, nil
}

// GetPlan implements rcloud.FixedSubscriptionsClient.GetPlan.
func (c *FixedSubscriptionsClient) GetPlan(ctx context.Context, planID int) (*rcloud.FixedPlan, error) {
	path := fmt.Sprintf("/fixed/plans/%d", planID)

	body, err := c.cachedGet(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting fixed plan: %w", err)
	}

	var plan rcloud.FixedPlan
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, fmt.Errorf("parsing fixed plan response: %w", err)
	}

	return &plan, nil
}

// ListPlansForSubscription implements rcloud.FixedSubscriptionsClient.ListPlansForSubscription.
// The result is restricted to plans the subscription can resize into.
func (c *FixedSubscriptionsClient) ListPlansForSubscription(ctx context.Context, subscriptionID int) ([]rcloud.FixedPlan, error) {
	path := fmt.Sprintf("/fixed/plans/subscriptions/%d", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing fixed plans for subscription: %w", err)
	}

	var result struct {
		Plans []rcloud.FixedPlan `json:"plans"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing fixed plans response: %w", err)
	}

	return result.Plans, nil
}

// ListRedisVersions implements rcloud.FixedSubscriptionsClient.ListRedisVersions.
// Versions are scoped to the plan of the given subscription.
func (c *FixedSubscriptionsClient) ListRedisVersions(ctx context.Context, subscriptionID int) ([]rcloud.RedisVersion, error) {
	query := url.Values{}
	query.Set("subscriptionId", strconv.Itoa(subscriptionID))

	body, err := c.cachedGet(ctx, "/fixed/redis-versions", query)
	if err != nil {
		return nil, fmt.Errorf("listing fixed redis versions: %w", err)
	}

	var result struct {
		RedisVersions []rcloud.RedisVersion `json:"redisVersions"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing fixed redis versions response: %w", err)
	}

	return result.RedisVersions, nil
}

// List implements rcloud.FixedSubscriptionsClient.List.
func (c *FixedSubscriptionsClient) List(ctx context.Context) ([]rcloud.FixedSubscription, error) {
	resp, err := c.httpClient.Get(ctx, "/fixed/subscriptions", nil)
	if err != nil {
		return nil, fmt.Errorf("listing fixed subscriptions: %w", err)
	}

	var result struct {
		Subscriptions []rcloud.FixedSubscription `json:"subscriptions"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing fixed subscriptions response: %w", err)
	}

	return result.Subscriptions, nil
}

// Get implements rcloud.FixedSubscriptionsClient.Get.
func (c *FixedSubscriptionsClient) Get(ctx context.Context, subscriptionID int) (*rcloud.FixedSubscription, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting fixed subscription: %w", err)
	}

	var subscription rcloud.FixedSubscription
	if err := json.Unmarshal(resp.Body, &subscription); err != nil {
		return nil, fmt.Errorf("parsing fixed subscription response: %w", err)
	}

	return &subscription, nil
}

// Create implements rcloud.FixedSubscriptionsClient.Create.
func (c *FixedSubscriptionsClient) Create(ctx context.Context, request *rcloud.FixedSubscriptionCreateRequest) (*rcloud.TaskStateUpdate, error) {
	resp, err := c.httpClient.Post(ctx, "/fixed/subscriptions", request)
	if err != nil {
		return nil, fmt.Errorf("creating fixed subscription: %w", err)
	}

	return parseTask(resp, "create fixed subscription")
}

// Update implements rcloud.FixedSubscriptionsClient.Update.
func (c *FixedSubscriptionsClient) Update(ctx context.Context, subscriptionID int, request *rcloud.FixedSubscriptionUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d", subscriptionID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating fixed subscription: %w", err)
	}

	return parseTask(resp, "update fixed subscription")
}

// Delete implements rcloud.FixedSubscriptionsClient.Delete.
func (c *FixedSubscriptionsClient) Delete(ctx context.Context, subscriptionID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d", subscriptionID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting fixed subscription: %w", err)
	}

	return parseTask(resp, "delete fixed subscription")
}
