package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

func TestACLClient_ListRedisRules(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list redis rules", "/acl/redisRules",
		map[string]interface{}{
			"redisRules": []rcloud.ACLRedisRule{
				{ID: 1, Name: "Full-Access", ACL: "+@all", IsDefault: true},
				{ID: 2, Name: "cache-reader", ACL: "+@read ~cache:*"},
			},
		},
		func(c *Client, ctx context.Context) ([]rcloud.ACLRedisRule, error) {
			return c.ACL().ListRedisRules(ctx)
		},
		2,
		func(rules []rcloud.ACLRedisRule) {
			assert.True(t, rules[0].IsDefault)
			assert.Equal(t, "+@read ~cache:*", rules[1].ACL)
		})
}

func TestACLClient_ListRoles(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list roles", "/acl/roles",
		map[string]interface{}{
			"roles": []rcloud.ACLRole{
				{ID: 1, Name: "cache-admin"},
			},
		},
		func(c *Client, ctx context.Context) ([]rcloud.ACLRole, error) {
			return c.ACL().ListRoles(ctx)
		},
		1,
		func(roles []rcloud.ACLRole) {
			assert.Equal(t, "cache-admin", roles[0].Name)
		})
}

func TestACLClient_GetUser(t *testing.T) {
	t.Parallel()

	RunGetTest(t, "get ACL user", "/acl/users/7",
		rcloud.ACLUser{ID: 7, Name: "app-user", Role: "cache-admin"},
		func(c *Client, ctx context.Context) (*rcloud.ACLUser, error) {
			return c.ACL().GetUser(ctx, 7)
		},
		func(user *rcloud.ACLUser) {
			assert.Equal(t, "app-user", user.Name)
			assert.Equal(t, "cache-admin", user.Role)
		})

	RunNotFoundTest(t, "get missing ACL user", func(c *Client, ctx context.Context) error {
		_, err := c.ACL().GetUser(ctx, 999)

		return err
	})
}

func TestACLClient_TaskOperations(t *testing.T) {
	t.Parallel()

	RunTaskOperationTests(t, []TestTaskOperation{
		{
			Name:         "create redis rule",
			Method:       "POST",
			ExpectedPath: "/acl/redisRules",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-1", "aclRedisRuleCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.ACL().CreateRedisRule(ctx, &rcloud.ACLRedisRuleCreateRequest{
					Name:      "cache-reader",
					RedisRule: "+@read ~cache:*",
				})
			},
		},
		{
			Name:         "update redis rule",
			Method:       "PUT",
			ExpectedPath: "/acl/redisRules/2",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-2", "aclRedisRuleUpdateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.ACL().UpdateRedisRule(ctx, 2, &rcloud.ACLRedisRuleUpdateRequest{
					RedisRule: "+@read ~cache:* ~session:*",
				})
			},
		},
		{
			Name:         "delete redis rule",
			Method:       "DELETE",
			ExpectedPath: "/acl/redisRules/2",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-3", "aclRedisRuleDeleteRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.ACL().DeleteRedisRule(ctx, 2)
			},
		},
		{
			Name:         "create role",
			Method:       "POST",
			ExpectedPath: "/acl/roles",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-4", "aclRoleCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.ACL().CreateRole(ctx, &rcloud.ACLRoleCreateRequest{Name: "cache-admin"})
			},
		},
		{
			Name:         "create ACL user",
			Method:       "POST",
			ExpectedPath: "/acl/users",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-5", "aclUserCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.ACL().CreateUser(ctx, &rcloud.ACLUserCreateRequest{
					Name:     "app-user",
					Role:     "cache-admin",
					Password: "s3cret!pass",
				})
			},
		},
		{
			Name:         "delete ACL user",
			Method:       "DELETE",
			ExpectedPath: "/acl/users/7",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-6", "aclUserDeleteRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.ACL().DeleteUser(ctx, 7)
			},
		},
	})
}
