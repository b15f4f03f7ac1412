package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// PrivateLinkClient implements rcloud.PrivateLinkClient.
type PrivateLinkClient struct {
	httpClient *http.Client
}

// NewPrivateLinkClient creates a new PrivateLink client.
func NewPrivateLinkClient(httpClient *http.Client) *PrivateLinkClient {
	return &PrivateLinkClient{
		httpClient: httpClient,
	}
}

// Get implements rcloud.PrivateLinkClient.Get.
func (c *PrivateLinkClient) Get(ctx context.Context, subscriptionID int) (*rcloud.PrivateLink, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-link", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting PrivateLink: %w", err)
	}

	return parsePrivateLink(resp.Body)
}

// Create implements rcloud.PrivateLinkClient.Create.
func (c *PrivateLinkClient) Create(ctx context.Context, subscriptionID int, request *rcloud.PrivateLinkCreateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-link", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating PrivateLink: %w", err)
	}

	return parseTask(resp, "create PrivateLink")
}

// Delete implements rcloud.PrivateLinkClient.Delete.
func (c *PrivateLinkClient) Delete(ctx context.Context, subscriptionID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-link", subscriptionID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting PrivateLink: %w", err)
	}

	return parseTask(resp, "delete PrivateLink")
}

// AddPrincipal implements rcloud.PrivateLinkClient.AddPrincipal.
func (c *PrivateLinkClient) AddPrincipal(ctx context.Context, subscriptionID int, request *rcloud.PrivateLinkPrincipalRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-link/principals", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("adding PrivateLink principal: %w", err)
	}

	return parseTask(resp, "add PrivateLink principal")
}

// RemovePrincipal implements rcloud.PrivateLinkClient.RemovePrincipal.
func (c *PrivateLinkClient) RemovePrincipal(ctx context.Context, subscriptionID int, request *rcloud.PrivateLinkPrincipalRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-link/principals", subscriptionID)

	resp, err := c.httpClient.DeleteWithBody(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("removing PrivateLink principal: %w", err)
	}

	return parseTask(resp, "remove PrivateLink principal")
}

// GetEndpointScript implements rcloud.PrivateLinkClient.GetEndpointScript.
func (c *PrivateLinkClient) GetEndpointScript(ctx context.Context, subscriptionID int) (*rcloud.PrivateLinkEndpointScript, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-link/endpoint-script", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting PrivateLink endpoint script: %w", err)
	}

	return parsePrivateLinkScript(resp.Body)
}

// GetActiveActive implements rcloud.PrivateLinkClient.GetActiveActive.
func (c *PrivateLinkClient) GetActiveActive(ctx context.Context, subscriptionID, regionID int) (*rcloud.PrivateLink, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/private-link", subscriptionID, regionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting Active-Active PrivateLink: %w", err)
	}

	return parsePrivateLink(resp.Body)
}

// CreateActiveActive implements rcloud.PrivateLinkClient.CreateActiveActive.
func (c *PrivateLinkClient) CreateActiveActive(ctx context.Context, subscriptionID, regionID int, request *rcloud.PrivateLinkCreateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/private-link", subscriptionID, regionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating Active-Active PrivateLink: %w", err)
	}

	return parseTask(resp, "create Active-Active PrivateLink")
}

// DeleteActiveActive implements rcloud.PrivateLinkClient.DeleteActiveActive.
func (c *PrivateLinkClient) DeleteActiveActive(ctx context.Context, subscriptionID, regionID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/private-link", subscriptionID, regionID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting Active-Active PrivateLink: %w", err)
	}

	return parseTask(resp, "delete Active-Active PrivateLink")
}

// AddActiveActivePrincipal implements rcloud.PrivateLinkClient.AddActiveActivePrincipal.
func (c *PrivateLinkClient) AddActiveActivePrincipal(ctx context.Context, subscriptionID, regionID int, request *rcloud.PrivateLinkPrincipalRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/private-link/principals", subscriptionID, regionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("adding Active-Active PrivateLink principal: %w", err)
	}

	return parseTask(resp, "add Active-Active PrivateLink principal")
}

// RemoveActiveActivePrincipal implements rcloud.PrivateLinkClient.RemoveActiveActivePrincipal.
func (c *PrivateLinkClient) RemoveActiveActivePrincipal(ctx context.Context, subscriptionID, regionID int, request *rcloud.PrivateLinkPrincipalRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/private-link/principals", subscriptionID, regionID)

	resp, err := c.httpClient.DeleteWithBody(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("removing Active-Active PrivateLink principal: %w", err)
	}

	return parseTask(resp, "remove Active-Active PrivateLink principal")
}

// GetActiveActiveEndpointScript implements rcloud.PrivateLinkClient.GetActiveActiveEndpointScript.
func (c *PrivateLinkClient) GetActiveActiveEndpointScript(ctx context.Context, subscriptionID, regionID int) (*rcloud.PrivateLinkEndpointScript, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/private-link/endpoint-script", subscriptionID, regionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting Active-Active PrivateLink endpoint script: %w", err)
	}

	return parsePrivateLinkScript(resp.Body)
}

func parsePrivateLink(body []byte) (*rcloud.PrivateLink, error) {
	var link rcloud.PrivateLink
	if err := json.Unmarshal(body, &link); err != nil {
		return nil, fmt.Errorf("parsing PrivateLink response: %w", err)
	}

	return &link, nil
}

func parsePrivateLinkScript(body []byte) (*rcloud.PrivateLinkEndpointScript, error) {
	var script rcloud.PrivateLinkEndpointScript
	if err := json.Unmarshal(body, &script); err != nil {
		return nil, fmt.Errorf("parsing PrivateLink endpoint script response: %w", err)
	}

	return &script, nil
}
