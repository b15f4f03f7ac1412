package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

func TestFixedDatabasesClient_List(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list fixed databases", "/fixed/subscriptions/80/databases",
		map[string]interface{}{
			"subscription": []map[string]interface{}{
				{
					"subscriptionId": 80,
					"databases": []rcloud.FixedDatabase{
						{DatabaseID: 900, Name: "cache", Status: "active"},
						{DatabaseID: 901, Name: "sessions", Status: "active"},
					},
				},
			},
		},
		func(c *Client, ctx context.Context) ([]rcloud.FixedDatabase, error) {
			return c.FixedDatabases().List(ctx, 80, nil)
		},
		2,
		func(databases []rcloud.FixedDatabase) {
			assert.Equal(t, 900, databases[0].DatabaseID)
			assert.Equal(t, "sessions", databases[1].Name)
		})
}

func TestFixedDatabasesClient_Get(t *testing.T) {
	t.Parallel()

	RunGetTest(t, "get fixed database", "/fixed/subscriptions/80/databases/900",
		rcloud.FixedDatabase{
			DatabaseID:     900,
			Name:           "cache",
			Status:         "active",
			PublicEndpoint: "redis-900.example.com:14900",
		},
		func(c *Client, ctx context.Context) (*rcloud.FixedDatabase, error) {
			return c.FixedDatabases().Get(ctx, 80, 900)
		},
		func(database *rcloud.FixedDatabase) {
			assert.Equal(t, "cache", database.Name)
			assert.Equal(t, "redis-900.example.com:14900", database.PublicEndpoint)
		})

	RunNotFoundTest(t, "get missing fixed database", func(c *Client, ctx context.Context) error {
		_, err := c.FixedDatabases().Get(ctx, 80, 999)

		return err
	})
}

func TestFixedDatabasesClient_TaskOperations(t *testing.T) {
	t.Parallel()

	replication := true

	RunTaskOperationTests(t, []TestTaskOperation{
		{
			Name:         "create fixed database",
			Method:       "POST",
			ExpectedPath: "/fixed/subscriptions/80/databases",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-10", "fixedDatabaseCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.FixedDatabases().Create(ctx, 80, &rcloud.FixedDatabaseCreateRequest{
					Name:        "cache",
					Replication: &replication,
				})
			},
		},
		{
			Name:         "update fixed database",
			Method:       "PUT",
			ExpectedPath: "/fixed/subscriptions/80/databases/900",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-11", "fixedDatabaseUpdateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				name := "cache-v2"

				return c.FixedDatabases().Update(ctx, 80, 900, &rcloud.FixedDatabaseUpdateRequest{Name: &name})
			},
		},
		{
			Name:         "delete fixed database",
			Method:       "DELETE",
			ExpectedPath: "/fixed/subscriptions/80/databases/900",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-12", "fixedDatabaseDeleteRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.FixedDatabases().Delete(ctx, 80, 900)
			},
		},
		{
			Name:         "backup fixed database",
			Method:       "POST",
			ExpectedPath: "/fixed/subscriptions/80/databases/900/backup",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-13", "fixedDatabaseBackupRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.FixedDatabases().Backup(ctx, 80, 900, &rcloud.DatabaseBackupRequest{})
			},
		},
		{
			Name:         "get fixed database backup status",
			Method:       "GET",
			ExpectedPath: "/fixed/subscriptions/80/databases/900/backup",
			StatusCode:   http.StatusOK,
			Response:     taskResponse("task-13", "fixedDatabaseBackupRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.FixedDatabases().GetBackupStatus(ctx, 80, 900)
			},
		},
		{
			Name:         "upgrade fixed database",
			Method:       "POST",
			ExpectedPath: "/fixed/subscriptions/80/databases/900/upgrade",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-15", "fixedDatabaseUpgradeRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.FixedDatabases().Upgrade(ctx, 80, 900, &rcloud.DatabaseUpgradeRequest{TargetRedisVersion: "7.4"})
			},
		},
		{
			Name:         "get fixed database upgrade status",
			Method:       "GET",
			ExpectedPath: "/fixed/subscriptions/80/databases/900/upgrade",
			StatusCode:   http.StatusOK,
			Response:     taskResponse("task-15", "fixedDatabaseUpgradeRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.FixedDatabases().GetUpgradeStatus(ctx, 80, 900)
			},
		},
		{
			Name:         "import into fixed database",
			Method:       "POST",
			ExpectedPath: "/fixed/subscriptions/80/databases/900/import",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-14", "fixedDatabaseImportRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.FixedDatabases().Import(ctx, 80, 900, &rcloud.DatabaseImportRequest{
					SourceType:    "http",
					ImportFromURI: []string{"https://example.com/dump.rdb"},
				})
			},
		},
	})
}

func TestFixedDatabasesClient_ListAvailableVersions(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list available target versions", "/fixed/subscriptions/80/databases/900/available-target-versions",
		map[string]interface{}{
			"redisVersions": []rcloud.RedisVersion{
				{Version: "7.4"},
				{Version: "7.2"},
			},
		},
		func(c *Client, ctx context.Context) ([]rcloud.RedisVersion, error) {
			return c.FixedDatabases().ListAvailableVersions(ctx, 80, 900)
		},
		2,
		func(versions []rcloud.RedisVersion) {
			assert.Equal(t, "7.4", versions[0].Version)
		})
}

func TestFixedDatabasesClient_ListSlowLog(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list fixed database slow log", "/fixed/subscriptions/80/databases/900/slow-log",
		map[string]interface{}{
			"entries": []rcloud.SlowLogEntry{
				{ID: 1, Duration: 12000, Command: "KEYS *"},
			},
		},
		func(c *Client, ctx context.Context) ([]rcloud.SlowLogEntry, error) {
			return c.FixedDatabases().ListSlowLog(ctx, 80, 900, nil)
		},
		1,
		func(entries []rcloud.SlowLogEntry) {
			assert.Equal(t, "KEYS *", entries[0].Command)
		})
}

func TestFixedDatabasesClient_Tags(t *testing.T) {
	t.Parallel()

	t.Run("list tags", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/fixed/subscriptions/80/databases/900/tags", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(rcloud.Tags{
				Tags: []rcloud.Tag{{Key: "env", Value: "staging"}},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tags, err := client.FixedDatabases().ListTags(context.Background(), 80, 900)
		require.NoError(t, err)
		require.Len(t, tags.Tags, 1)
		assert.Equal(t, "env", tags.Tags[0].Key)
	})

	t.Run("update tag", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/fixed/subscriptions/80/databases/900/tags/env", request.URL.Path)
			assert.Equal(t, http.MethodPut, request.Method)

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(rcloud.Tag{Key: "env", Value: "production"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tag, err := client.FixedDatabases().UpdateTag(context.Background(), 80, 900, "env", "production")
		require.NoError(t, err)
		assert.Equal(t, "production", tag.Value)
	})

	t.Run("delete tag", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/fixed/subscriptions/80/databases/900/tags/env", request.URL.Path)
			assert.Equal(t, http.MethodDelete, request.Method)

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		require.NoError(t, client.FixedDatabases().DeleteTag(context.Background(), 80, 900, "env"))
	})
}
