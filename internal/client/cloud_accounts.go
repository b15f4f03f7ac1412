package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// CloudAccountsClient implements rcloud.CloudAccountsClient.
type CloudAccountsClient struct {
	httpClient *http.Client
}

// NewCloudAccountsClient creates a new cloud accounts client.
func NewCloudAccountsClient(httpClient *http.Client) *CloudAccountsClient {
	return &CloudAccountsClient{
		httpClient: httpClient,
	}
}

// List implements rcloud.CloudAccountsClient.List.
func (c *CloudAccountsClient) List(ctx context.Context) ([]rcloud.CloudAccount, error) {
	resp, err := c.httpClient.Get(ctx, "/cloud-accounts", nil)
	if err != nil {
		return nil, fmt.Errorf("listing cloud accounts: %w", err)
	}

	var result struct {
		CloudAccounts []rcloud.CloudAccount `json:"cloudAccounts"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing cloud accounts response: %w", err)
	}

	return result.CloudAccounts, nil
}

// Get implements rcloud.CloudAccountsClient.Get.
func (c *CloudAccountsClient) Get(ctx context.Context, accountID int) (*rcloud.CloudAccount, error) {
	path := fmt.Sprintf("/cloud-accounts/%d", accountID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting cloud account: %w", err)
	}

	var account rcloud.CloudAccount
	if err := json.Unmarshal(resp.Body, &account); err != nil {
		return nil, fmt.Errorf("parsing cloud account response: %w", err)
	}

	return &account, nil
}

// Create implements rcloud.CloudAccountsClient.Create.
func (c *CloudAccountsClient) Create(ctx context.Context, request *rcloud.CloudAccountCreateRequest) (*rcloud.TaskStateUpdate, error) {
	resp, err := c.httpClient.Post(ctx, "/cloud-accounts", request)
	if err != nil {
		return nil, fmt.Errorf("creating cloud account: %w", err)
	}

	return parseTask(resp, "create cloud account")
}

// Update implements rcloud.CloudAccountsClient.Update.
func (c *CloudAccountsClient) Update(ctx context.Context, accountID int, request *rcloud.CloudAccountUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/cloud-accounts/%d", accountID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating cloud account: %w", err)
	}

	return parseTask(resp, "update cloud account")
}

// Delete implements rcloud.CloudAccountsClient.Delete.
func (c *CloudAccountsClient) Delete(ctx context.Context, accountID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/cloud-accounts/%d", accountID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting cloud account: %w", err)
	}

	return parseTask(resp, "delete cloud account")
}
