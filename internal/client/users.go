package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// UsersClient implements rcloud.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new account users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements rcloud.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) ([]rcloud.User, error) {
	resp, err := c.httpClient.Get(ctx, "/users", nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var result struct {
		Users []rcloud.User `json:"users"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing users response: %w", err)
	}

	return result.Users, nil
}

// Get implements rcloud.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int) (*rcloud.User, error) {
	path := fmt.Sprintf("/users/%d", userID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user rcloud.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Update implements rcloud.UsersClient.Update. Unlike most mutating calls
// this endpoint answers with the updated user, not a task envelope.
func (c *UsersClient) Update(ctx context.Context, userID int, request *rcloud.UserUpdateRequest) (*rcloud.User, error) {
	path := fmt.Sprintf("/users/%d", userID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var user rcloud.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Delete implements rcloud.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, userID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/users/%d", userID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting user: %w", err)
	}

	return parseTask(resp, "delete user")
}
