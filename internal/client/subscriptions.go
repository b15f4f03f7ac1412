package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// SubscriptionsClient implements rcloud.SubscriptionsClient.
type SubscriptionsClient struct {
	httpClient *http.Client
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient *http.Client) *SubscriptionsClient {
	return &SubscriptionsClient{
		httpClient: httpClient,
	}
}

// List implements rcloud.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context) ([]rcloud.Subscription, error) {
	resp, err := c.httpClient.Get(ctx, "/subscriptions", nil)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	var result struct {
		Subscriptions []rcloud.Subscription `json:"subscriptions"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing subscriptions list response: %w", err)
	}

	return result.Subscriptions, nil
}

// Get implements rcloud.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, subscriptionID int) (*rcloud.Subscription, error) {
	path := fmt.Sprintf("/subscriptions/%d", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	var subscription rcloud.Subscription
	if err := json.Unmarshal(resp.Body, &subscription); err != nil {
		return nil, fmt.Errorf("parsing subscription response: %w", err)
	}

	return &subscription, nil
}

// Create implements rcloud.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, request *rcloud.SubscriptionCreateRequest) (*rcloud.TaskStateUpdate, error) {
	resp, err := c.httpClient.Post(ctx, "/subscriptions", request)
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	return parseTask(resp, "create subscription")
}

// Update implements rcloud.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, subscriptionID int, request *rcloud.SubscriptionUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d", subscriptionID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	return parseTask(resp, "update subscription")
}

// Delete implements rcloud.SubscriptionsClient.Delete.
func (c *SubscriptionsClient) Delete(ctx context.Context, subscriptionID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d", subscriptionID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting subscription: %w", err)
	}

	return parseTask(resp, "delete subscription")
}

// GetCIDRAllowlist implements rcloud.SubscriptionsClient.GetCIDRAllowlist.
func (c *SubscriptionsClient) GetCIDRAllowlist(ctx context.Context, subscriptionID int) (*rcloud.CIDRAllowlist, error) {
	path := fmt.Sprintf("/subscriptions/%d/cidr", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting CIDR allowlist: %w", err)
	}

	var allowlist rcloud.CIDRAllowlist
	if err := parseTaskResource(resp, "get CIDR allowlist", &allowlist); err != nil {
		return nil, err
	}

	return &allowlist, nil
}

// UpdateCIDRAllowlist implements rcloud.SubscriptionsClient.UpdateCIDRAllowlist.
func (c *SubscriptionsClient) UpdateCIDRAllowlist(ctx context.Context, subscriptionID int, request *rcloud.CIDRAllowlistUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/cidr", subscriptionID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating CIDR allowlist: %w", err)
	}

	return parseTask(resp, "update CIDR allowlist")
}

// GetMaintenanceWindows implements rcloud.SubscriptionsClient.GetMaintenanceWindows.
func (c *SubscriptionsClient) GetMaintenanceWindows(ctx context.Context, subscriptionID int) (*rcloud.MaintenanceWindows, error) {
	path := fmt.Sprintf("/subscriptions/%d/maintenance-windows", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting maintenance windows: %w", err)
	}

	var windows rcloud.MaintenanceWindows
	if err := json.Unmarshal(resp.Body, &windows); err != nil {
		return nil, fmt.Errorf("parsing maintenance windows response: %w", err)
	}

	return &windows, nil
}

// UpdateMaintenanceWindows implements rcloud.SubscriptionsClient.UpdateMaintenanceWindows.
func (c *SubscriptionsClient) UpdateMaintenanceWindows(ctx context.Context, subscriptionID int, request *rcloud.MaintenanceWindowsUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/maintenance-windows", subscriptionID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating maintenance windows: %w", err)
	}

	return parseTask(resp, "update maintenance windows")
}

// GetPricing implements rcloud.SubscriptionsClient.GetPricing.
func (c *SubscriptionsClient) GetPricing(ctx context.Context, subscriptionID int) ([]rcloud.SubscriptionPricing, error) {
	path := fmt.Sprintf("/subscriptions/%d/pricing", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscription pricing: %w", err)
	}

	var result struct {
		Pricing []rcloud.SubscriptionPricing `json:"pricing"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing subscription pricing response: %w", err)
	}

	return result.Pricing, nil
}

// ListRedisVersions implements rcloud.SubscriptionsClient.ListRedisVersions.
// A zero subscription ID lists the versions available for new subscriptions.
func (c *SubscriptionsClient) ListRedisVersions(ctx context.Context, subscriptionID int) ([]rcloud.RedisVersion, error) {
	query := rcloud.NewQueryParams()
	if subscriptionID > 0 {
		query.WithParam("subscriptionId", fmt.Sprintf("%d", subscriptionID))
	}

	resp, err := c.httpClient.Get(ctx, "/subscriptions/redis-versions", query.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing redis versions: %w", err)
	}

	var result struct {
		RedisVersions []rcloud.RedisVersion `json:"redisVersions"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing redis versions response: %w", err)
	}

	return result.RedisVersions, nil
}

// ListActiveActiveRegions implements rcloud.SubscriptionsClient.ListActiveActiveRegions.
func (c *SubscriptionsClient) ListActiveActiveRegions(ctx context.Context, subscriptionID int) ([]rcloud.ActiveActiveRegion, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing active-active regions: %w", err)
	}

	var result struct {
		Regions []rcloud.ActiveActiveRegion `json:"regions"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing active-active regions response: %w", err)
	}

	return result.Regions, nil
}

// AddActiveActiveRegion implements rcloud.SubscriptionsClient.AddActiveActiveRegion.
func (c *SubscriptionsClient) AddActiveActiveRegion(ctx context.Context, subscriptionID int, request *rcloud.ActiveActiveRegionCreateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("adding active-active region: %w", err)
	}

	return parseTask(resp, "add active-active region")
}

// DeleteActiveActiveRegions implements rcloud.SubscriptionsClient.DeleteActiveActiveRegions.
func (c *SubscriptionsClient) DeleteActiveActiveRegions(ctx context.Context, subscriptionID int, request *rcloud.ActiveActiveRegionDeleteRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions", subscriptionID)

	resp, err := c.httpClient.DeleteWithBody(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("deleting active-active regions: %w", err)
	}

	return parseTask(resp, "delete active-active regions")
}
