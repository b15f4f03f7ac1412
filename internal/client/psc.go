package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// PrivateServiceConnectClient implements rcloud.PrivateServiceConnectClient.
type PrivateServiceConnectClient struct {
	httpClient *http.Client
}

// NewPrivateServiceConnectClient creates a new Private Service Connect client.
func NewPrivateServiceConnectClient(httpClient *http.Client) *PrivateServiceConnectClient {
	return &PrivateServiceConnectClient{
		httpClient: httpClient,
	}
}

// GetService implements rcloud.PrivateServiceConnectClient.GetService.
func (c *PrivateServiceConnectClient) GetService(ctx context.Context, subscriptionID int) (*rcloud.PSCService, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-service-connect", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting Private Service Connect service: %w", err)
	}

	return parsePSCService(resp, "get Private Service Connect service")
}

// CreateService implements rcloud.PrivateServiceConnectClient.CreateService.
func (c *PrivateServiceConnectClient) CreateService(ctx context.Context, subscriptionID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-service-connect", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("creating Private Service Connect service: %w", err)
	}

	return parseTask(resp, "create Private Service Connect service")
}

// DeleteService implements rcloud.PrivateServiceConnectClient.DeleteService.
func (c *PrivateServiceConnectClient) DeleteService(ctx context.Context, subscriptionID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-service-connect", subscriptionID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting Private Service Connect service: %w", err)
	}

	return parseTask(resp, "delete Private Service Connect service")
}

// ListEndpoints implements rcloud.PrivateServiceConnectClient.ListEndpoints.
func (c *PrivateServiceConnectClient) ListEndpoints(ctx context.Context, subscriptionID int) ([]rcloud.PSCEndpoint, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-service-connect/endpoints", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing Private Service Connect endpoints: %w", err)
	}

	return parsePSCEndpoints(resp, "list Private Service Connect endpoints")
}

// CreateEndpoint implements rcloud.PrivateServiceConnectClient.CreateEndpoint.
func (c *PrivateServiceConnectClient) CreateEndpoint(ctx context.Context, subscriptionID int, request *rcloud.PSCEndpointRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-service-connect/endpoints", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating Private Service Connect endpoint: %w", err)
	}

	return parseTask(resp, "create Private Service Connect endpoint")
}

// UpdateEndpoint implements rcloud.PrivateServiceConnectClient.UpdateEndpoint.
// The path names the service the endpoint belongs to, taken from the request.
func (c *PrivateServiceConnectClient) UpdateEndpoint(ctx context.Context, subscriptionID, endpointID int, request *rcloud.PSCEndpointRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-service-connect/%d/endpoints/%d", subscriptionID, request.PSCServiceID, endpointID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating Private Service Connect endpoint: %w", err)
	}

	return parseTask(resp, "update Private Service Connect endpoint")
}

// DeleteEndpoint implements rcloud.PrivateServiceConnectClient.DeleteEndpoint.
func (c *PrivateServiceConnectClient) DeleteEndpoint(ctx context.Context, subscriptionID, endpointID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-service-connect/endpoints/%d", subscriptionID, endpointID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting Private Service Connect endpoint: %w", err)
	}

	return parseTask(resp, "delete Private Service Connect endpoint")
}

// GetEndpointCreationScript implements rcloud.PrivateServiceConnectClient.GetEndpointCreationScript.
func (c *PrivateServiceConnectClient) GetEndpointCreationScript(ctx context.Context, subscriptionID, endpointID int) (*rcloud.PSCEndpointScript, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-service-connect/endpoints/%d/creationScripts", subscriptionID, endpointID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting endpoint creation script: %w", err)
	}

	return parsePSCScript(resp.Body)
}

// GetEndpointDeletionScript implements rcloud.PrivateServiceConnectClient.GetEndpointDeletionScript.
func (c *PrivateServiceConnectClient) GetEndpointDeletionScript(ctx context.Context, subscriptionID, endpointID int) (*rcloud.PSCEndpointScript, error) {
	path := fmt.Sprintf("/subscriptions/%d/private-service-connect/endpoints/%d/deletionScripts", subscriptionID, endpointID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting endpoint deletion script: %w", err)
	}

	return parsePSCScript(resp.Body)
}

// The Active-Active service and its endpoint collection live under a plain
// /regions segment; only per-endpoint operations name a region.

// GetActiveActiveService implements rcloud.PrivateServiceConnectClient.GetActiveActiveService.
func (c *PrivateServiceConnectClient) GetActiveActiveService(ctx context.Context, subscriptionID int) (*rcloud.PSCService, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/private-service-connect", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting Active-Active Private Service Connect service: %w", err)
	}

	return parsePSCService(resp, "get Active-Active Private Service Connect service")
}

// CreateActiveActiveService implements rcloud.PrivateServiceConnectClient.CreateActiveActiveService.
func (c *PrivateServiceConnectClient) CreateActiveActiveService(ctx context.Context, subscriptionID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/private-service-connect", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("creating Active-Active Private Service Connect service: %w", err)
	}

	return parseTask(resp, "create Active-Active Private Service Connect service")
}

// DeleteActiveActiveService implements rcloud.PrivateServiceConnectClient.DeleteActiveActiveService.
func (c *PrivateServiceConnectClient) DeleteActiveActiveService(ctx context.Context, subscriptionID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/private-service-connect", subscriptionID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting Active-Active Private Service Connect service: %w", err)
	}

	return parseTask(resp, "delete Active-Active Private Service Connect service")
}

// ListActiveActiveEndpoints implements rcloud.PrivateServiceConnectClient.ListActiveActiveEndpoints.
func (c *PrivateServiceConnectClient) ListActiveActiveEndpoints(ctx context.Context, subscriptionID int) ([]rcloud.PSCEndpoint, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/private-service-connect/endpoints", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing Active-Active Private Service Connect endpoints: %w", err)
	}

	return parsePSCEndpoints(resp, "list Active-Active Private Service Connect endpoints")
}

// CreateActiveActiveEndpoint implements rcloud.PrivateServiceConnectClient.CreateActiveActiveEndpoint.
func (c *PrivateServiceConnectClient) CreateActiveActiveEndpoint(ctx context.Context, subscriptionID int, request *rcloud.PSCEndpointRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/private-service-connect/endpoints", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating Active-Active Private Service Connect endpoint: %w", err)
	}

	return parseTask(resp, "create Active-Active Private Service Connect endpoint")
}

// UpdateActiveActiveEndpoint implements rcloud.PrivateServiceConnectClient.UpdateActiveActiveEndpoint.
// The upstream service segment repeats the subscription ID.
func (c *PrivateServiceConnectClient) UpdateActiveActiveEndpoint(ctx context.Context, subscriptionID, regionID, endpointID int, request *rcloud.PSCEndpointRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/private-service-connect/%d/endpoints/%d", subscriptionID, regionID, subscriptionID, endpointID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating Active-Active Private Service Connect endpoint: %w", err)
	}

	return parseTask(resp, "update Active-Active Private Service Connect endpoint")
}

// DeleteActiveActiveEndpoint implements rcloud.PrivateServiceConnectClient.DeleteActiveActiveEndpoint.
func (c *PrivateServiceConnectClient) DeleteActiveActiveEndpoint(ctx context.Context, subscriptionID, regionID, endpointID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/private-service-connect/endpoints/%d", subscriptionID, regionID, endpointID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting Active-Active Private Service Connect endpoint: %w", err)
	}

	return parseTask(resp, "delete Active-Active Private Service Connect endpoint")
}

// GetActiveActiveEndpointCreationScript implements rcloud.PrivateServiceConnectClient.GetActiveActiveEndpointCreationScript.
func (c *PrivateServiceConnectClient) GetActiveActiveEndpointCreationScript(ctx context.Context, subscriptionID, regionID, pscServiceID, endpointID int) (*rcloud.PSCEndpointScript, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/private-service-connect/%d/endpoints/%d/creationScripts", subscriptionID, regionID, pscServiceID, endpointID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting Active-Active endpoint creation script: %w", err)
	}

	return parsePSCScript(resp.Body)
}

// GetActiveActiveEndpointDeletionScript implements rcloud.PrivateServiceConnectClient.GetActiveActiveEndpointDeletionScript.
func (c *PrivateServiceConnectClient) GetActiveActiveEndpointDeletionScript(ctx context.Context, subscriptionID, regionID, pscServiceID, endpointID int) (*rcloud.PSCEndpointScript, error) {
	path := fmt.Sprintf("/subscriptions/%d/regions/%d/private-service-connect/%d/endpoints/%d/deletionScripts", subscriptionID, regionID, pscServiceID, endpointID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting Active-Active endpoint deletion script: %w", err)
	}

	return parsePSCScript(resp.Body)
}

func parsePSCService(resp *http.Response, operation string) (*rcloud.PSCService, error) {
	var service rcloud.PSCService
	if err := parseTaskResource(resp, operation, &service); err != nil {
		return nil, err
	}

	return &service, nil
}

func parsePSCEndpoints(resp *http.Response, operation string) ([]rcloud.PSCEndpoint, error) {
	var result struct {
		Endpoints []rcloud.PSCEndpoint `json:"endpoints"`
	}

	if err := parseTaskResource(resp, operation, &result); err != nil {
		return nil, err
	}

	return result.Endpoints, nil
}

func parsePSCScript(body []byte) (*rcloud.PSCEndpointScript, error) {
	var script rcloud.PSCEndpointScript
	if err := json.Unmarshal(body, &script); err != nil {
		return nil, fmt.Errorf("parsing endpoint script response: %w", err)
	}

	return &script, nil
}
