package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// ACLClient implements rcloud.ACLClient.
type ACLClient struct {
	httpClient *http.Client
}

// NewACLClient creates a new ACL client.
func NewACLClient(httpClient *http.Client) *ACLClient {
	return &ACLClient{
		httpClient: httpClient,
	}
}

// ListRedisRules implements rcloud.ACLClient.ListRedisRules.
func (c *ACLClient) ListRedisRules(ctx context.Context) ([]rcloud.ACLRedisRule, error) {
	resp, err := c.httpClient.Get(ctx, "/acl/redisRules", nil)
	if err != nil {
		return nil, fmt.Errorf("listing redis rules: %w", err)
	}

	var result struct {
		RedisRules []rcloud.ACLRedisRule `json:"redisRules"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing redis rules response: %w", err)
	}

	return result.RedisRules, nil
}

// CreateRedisRule implements rcloud.ACLClient.CreateRedisRule.
func (c *ACLClient) CreateRedisRule(ctx context.Context, request *rcloud.ACLRedisRuleCreateRequest) (*rcloud.TaskStateUpdate, error) {
	resp, err := c.httpClient.Post(ctx, "/acl/redisRules", request)
	if err != nil {
		return nil, fmt.Errorf("creating redis rule: %w", err)
	}

	return parseTask(resp, "create redis rule")
}

// UpdateRedisRule implements rcloud.ACLClient.UpdateRedisRule.
func (c *ACLClient) UpdateRedisRule(ctx context.Context, ruleID int, request *rcloud.ACLRedisRuleUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/acl/redisRules/%d", ruleID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating redis rule: %w", err)
	}

	return parseTask(resp, "update redis rule")
}

// DeleteRedisRule implements rcloud.ACLClient.DeleteRedisRule.
func (c *ACLClient) DeleteRedisRule(ctx context.Context, ruleID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/acl/redisRules/%d", ruleID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting redis rule: %w", err)
	}

	return parseTask(resp, "delete redis rule")
}

// ListRoles implements rcloud.ACLClient.ListRoles.
func (c *ACLClient) ListRoles(ctx context.Context) ([]rcloud.ACLRole, error) {
	resp, err := c.httpClient.Get(ctx, "/acl/roles", nil)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	var result struct {
		Roles []rcloud.ACLRole `json:"roles"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing roles response: %w", err)
	}

	return result.Roles, nil
}

// CreateRole implements rcloud.ACLClient.CreateRole.
func (c *ACLClient) CreateRole(ctx context.Context, request *rcloud.ACLRoleCreateRequest) (*rcloud.TaskStateUpdate, error) {
	resp, err := c.httpClient.Post(ctx, "/acl/roles", request)
	if err != nil {
		return nil, fmt.Errorf("creating role: %w", err)
	}

	return parseTask(resp, "create role")
}

// UpdateRole implements rcloud.ACLClient.UpdateRole.
func (c *ACLClient) UpdateRole(ctx context.Context, roleID int, request *rcloud.ACLRoleUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/acl/roles/%d", roleID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating role: %w", err)
	}

	return parseTask(resp, "update role")
}

// DeleteRole implements rcloud.ACLClient.DeleteRole.
func (c *ACLClient) DeleteRole(ctx context.Context, roleID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/acl/roles/%d", roleID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting role: %w", err)
	}

	return parseTask(resp, "delete role")
}

// ListUsers implements rcloud.ACLClient.ListUsers.
func (c *ACLClient) ListUsers(ctx context.Context) ([]rcloud.ACLUser, error) {
	resp, err := c.httpClient.Get(ctx, "/acl/users", nil)
	if err != nil {
		return nil, fmt.Errorf("listing ACL users: %w", err)
	}

	var result struct {
		Users []rcloud.ACLUser `json:"users"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing ACL users response: %w", err)
	}

	return result.Users, nil
}

// GetUser implements rcloud.ACLClient.GetUser.
func (c *ACLClient) GetUser(ctx context.Context, userID int) (*rcloud.ACLUser, error) {
	path := fmt.Sprintf("/acl/users/%d", userID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting ACL user: %w", err)
	}

	var user rcloud.ACLUser
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing ACL user response: %w", err)
	}

	return &user, nil
}

// CreateUser implements rcloud.ACLClient.CreateUser.
func (c *ACLClient) CreateUser(ctx context.Context, request *rcloud.ACLUserCreateRequest) (*rcloud.TaskStateUpdate, error) {
	resp, err := c.httpClient.Post(ctx, "/acl/users", request)
	if err != nil {
		return nil, fmt.Errorf("creating ACL user: %w", err)
	}

	return parseTask(resp, "create ACL user")
}

// UpdateUser implements rcloud.ACLClient.UpdateUser.
func (c *ACLClient) UpdateUser(ctx context.Context, userID int, request *rcloud.ACLUserUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/acl/users/%d", userID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating ACL user: %w", err)
	}

	return parseTask(resp, "update ACL user")
}

// DeleteUser implements rcloud.ACLClient.DeleteUser.
func (c *ACLClient) DeleteUser(ctx context.Context, userID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/acl/users/%d", userID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting ACL user: %w", err)
	}

	return parseTask(resp, "delete ACL user")
}
