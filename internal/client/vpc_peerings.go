package client

import (
	"context"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// VPCPeeringClient implements rcloud.VPCPeeringClient.
type VPCPeeringClient struct {
	httpClient *http.Client
}

// NewVPCPeeringClient creates a new VPC peering client.
func NewVPCPeeringClient(httpClient *http.Client) *VPCPeeringClient {
	return &VPCPeeringClient{
		httpClient: httpClient,
	}
}

// List implements rcloud.VPCPeeringClient.List.
func (c *VPCPeeringClient) List(ctx context.Context, subscriptionID int) ([]rcloud.VPCPeering, error) {
	path := fmt.Sprintf("/subscriptions/%d/peerings", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing VPC peerings: %w", err)
	}

	var result struct {
		Peerings []rcloud.VPCPeering `json:"peerings"`
	}

	if err := parseTaskResource(resp, "list VPC peerings", &result); err != nil {
		return nil, err
	}

	return result.Peerings, nil
}

// Create implements rcloud.VPCPeeringClient.Create.
func (c *VPCPeeringClient) Create(ctx context.Context, subscriptionID int, request *rcloud.VPCPeeringCreateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/peerings", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating VPC peering: %w", err)
	}

	return parseTask(resp, "create VPC peering")
}

// Update implements rcloud.VPCPeeringClient.Update.
func (c *VPCPeeringClient) Update(ctx context.Context, subscriptionID, peeringID int, request *rcloud.VPCPeeringUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/peerings/%d", subscriptionID, peeringID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating VPC peering: %w", err)
	}

	return parseTask(resp, "update VPC peering")
}

// Delete implements rcloud.VPCPeeringClient.Delete.
func (c *VPCPeeringClient) Delete(ctx context.Context, subscriptionID, peeringID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/peerings/%d", subscriptionID, peeringID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting VPC peering: %w", err)
	}

	return parseTask(resp, "delete VPC peering")
}

// Active-Active subscriptions share the peering endpoints with standard
// ones; region routing happens through the request payload.

// ListActiveActive implements rcloud.VPCPeeringClient.ListActiveActive.
func (c *VPCPeeringClient) ListActiveActive(ctx context.Context, subscriptionID int) ([]rcloud.VPCPeering, error) {
	return c.List(ctx, subscriptionID)
}

// CreateActiveActive implements rcloud.VPCPeeringClient.CreateActiveActive.
func (c *VPCPeeringClient) CreateActiveActive(ctx context.Context, subscriptionID int, request *rcloud.ActiveActiveVPCPeeringCreateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/peerings", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating Active-Active VPC peering: %w", err)
	}

	return parseTask(resp, "create Active-Active VPC peering")
}

// DeleteActiveActive implements rcloud.VPCPeeringClient.DeleteActiveActive.
func (c *VPCPeeringClient) DeleteActiveActive(ctx context.Context, subscriptionID, peeringID int) (*rcloud.TaskStateUpdate, error) {
	return c.Delete(ctx, subscriptionID, peeringID)
}
