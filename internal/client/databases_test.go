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

func TestDatabasesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/subscriptions/12345/databases", request.URL.Path)
		assert.Equal(t, "40", request.URL.Query().Get("offset"))
		assert.Equal(t, "50", request.URL.Query().Get("limit"))

		// Databases come back grouped per subscription.
		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"subscription": []map[string]interface{}{
				{
					"subscriptionId": 12345,
					"databases": []rcloud.Database{
						{DatabaseID: 1, Name: "cache", Status: rcloud.DatabaseStatusActive},
						{DatabaseID: 2, Name: "sessions", Status: rcloud.DatabaseStatusPending},
					},
				},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := rcloud.NewQueryParams().WithOffset(40).WithLimit(50)

	databases, err := client.Databases().List(context.Background(), 12345, params)
	require.NoError(t, err)
	require.Len(t, databases, 2)
	assert.Equal(t, "cache", databases[0].Name)
	assert.Equal(t, rcloud.DatabaseStatusActive, databases[0].Status)
}

func TestDatabasesClient_Get(t *testing.T) {
	t.Parallel()

	RunGetTest(t, "get database", "/subscriptions/12345/databases/1",
		rcloud.Database{
			DatabaseID:     1,
			Name:           "cache",
			PublicEndpoint: "redis-1.example.com:14000",
			ThroughputMeasurement: &rcloud.ThroughputMeasurement{
				By:    "operations-per-second",
				Value: 10000,
			},
		},
		func(c *Client, ctx context.Context) (*rcloud.Database, error) {
			return c.Databases().Get(ctx, 12345, 1)
		},
		func(database *rcloud.Database) {
			assert.Equal(t, "cache", database.Name)
			require.NotNil(t, database.ThroughputMeasurement)
			assert.Equal(t, 10000, database.ThroughputMeasurement.Value)
		})

	RunNotFoundTest(t, "get missing database", func(c *Client, ctx context.Context) error {
		_, err := c.Databases().Get(ctx, 12345, 999)

		return err
	})
}

func TestDatabasesClient_TaskOperations(t *testing.T) {
	t.Parallel()

	RunTaskOperationTests(t, []TestTaskOperation{
		{
			Name:         "create database",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/databases",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-1", "databaseCreateRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.Databases().Create(ctx, 12345, &rcloud.DatabaseCreateRequest{Name: "cache"})
			},
		},
		{
			Name:         "delete database",
			Method:       "DELETE",
			ExpectedPath: "/subscriptions/12345/databases/1",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-2", "databaseDeleteRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.Databases().Delete(ctx, 12345, 1)
			},
		},
		{
			Name:         "backup database",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/databases/1/backup",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-3", "databaseBackupRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.Databases().Backup(ctx, 12345, 1, nil)
			},
		},
		{
			Name:         "get database backup status",
			Method:       "GET",
			ExpectedPath: "/subscriptions/12345/databases/1/backup",
			StatusCode:   http.StatusOK,
			Response:     taskResponse("task-3", "databaseBackupRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.Databases().GetBackupStatus(ctx, 12345, 1)
			},
		},
		{
			Name:         "import into database",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/databases/1/import",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-4", "databaseImportRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.Databases().Import(ctx, 12345, 1, &rcloud.DatabaseImportRequest{
					SourceType:    "http",
					ImportFromURI: []string{"https://example.com/dump.rdb"},
				})
			},
		},
		{
			Name:         "get database upgrade status",
			Method:       "GET",
			ExpectedPath: "/subscriptions/12345/databases/1/upgrade",
			StatusCode:   http.StatusOK,
			Response:     taskResponse("task-6", "databaseUpgradeRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.Databases().GetUpgradeStatus(ctx, 12345, 1)
			},
		},
		{
			Name:         "flush database",
			Method:       "PUT",
			ExpectedPath: "/subscriptions/12345/databases/1/flush",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-5", "databaseFlushRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.Databases().Flush(ctx, 12345, 1)
			},
		},
		{
			Name:         "upgrade database",
			Method:       "POST",
			ExpectedPath: "/subscriptions/12345/databases/1/upgrade",
			StatusCode:   http.StatusAccepted,
			Response:     taskResponse("task-6", "databaseUpgradeRequest"),
			Call: func(c *Client, ctx context.Context) (*rcloud.TaskStateUpdate, error) {
				return c.Databases().Upgrade(ctx, 12345, 1, &rcloud.DatabaseUpgradeRequest{TargetRedisVersion: "7.4"})
			},
		},
	})
}

func TestDatabasesClient_GetCertificate(t *testing.T) {
	t.Parallel()

	RunGetTest(t, "get certificate", "/subscriptions/12345/databases/1/certificate",
		rcloud.DatabaseCertificate{PublicCertificatePEMString: "-----BEGIN CERTIFICATE-----"},
		func(c *Client, ctx context.Context) (*rcloud.DatabaseCertificate, error) {
			return c.Databases().GetCertificate(ctx, 12345, 1)
		},
		func(cert *rcloud.DatabaseCertificate) {
			assert.Contains(t, cert.PublicCertificatePEMString, "BEGIN CERTIFICATE")
		})
}

func TestDatabasesClient_Tags(t *testing.T) {
	t.Parallel()

	t.Run("list tags", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/subscriptions/12345/databases/1/tags", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			_ = json.NewEncoder(writer).Encode(rcloud.Tags{
				Tags: []rcloud.Tag{{Key: "env", Value: "production"}},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tags, err := client.Databases().ListTags(context.Background(), 12345, 1)
		require.NoError(t, err)
		require.Len(t, tags.Tags, 1)
		assert.Equal(t, "env", tags.Tags[0].Key)
	})

	t.Run("add tag", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/subscriptions/12345/databases/1/tags", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var req rcloud.TagCreateRequest

			err := json.NewDecoder(request.Body).Decode(&req)
			assert.NoError(t, err)
			assert.Equal(t, "team", req.Key)

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(rcloud.Tag{Key: req.Key, Value: req.Value})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tag, err := client.Databases().AddTag(context.Background(), 12345, 1, &rcloud.TagCreateRequest{
			Key:   "team",
			Value: "platform",
		})
		require.NoError(t, err)
		assert.Equal(t, "platform", tag.Value)
	})

	t.Run("update tag", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/subscriptions/12345/databases/1/tags/team", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			var req map[string]string

			err := json.NewDecoder(request.Body).Decode(&req)
			assert.NoError(t, err)
			assert.Equal(t, "infra", req["value"])

			_ = json.NewEncoder(writer).Encode(rcloud.Tag{Key: "team", Value: req["value"]})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tag, err := client.Databases().UpdateTag(context.Background(), 12345, 1, "team", "infra")
		require.NoError(t, err)
		assert.Equal(t, "infra", tag.Value)
	})

	t.Run("delete tag", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/subscriptions/12345/databases/1/tags/team", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		err := client.Databases().DeleteTag(context.Background(), 12345, 1, "team")
		require.NoError(t, err)
	})
}

func TestDatabasesClient_ListSlowLog(t *testing.T) {
	t.Parallel()

	RunListTest(t, "list slow log", "/subscriptions/12345/databases/1/slow-log",
		map[string]interface{}{
			"entries": []rcloud.SlowLogEntry{
				{ID: 1, Command: "KEYS *", Duration: 125000},
			},
		},
		func(c *Client, ctx context.Context) ([]rcloud.SlowLogEntry, error) {
			return c.Databases().ListSlowLog(ctx, 12345, 1, nil)
		},
		1,
		func(entries []rcloud.SlowLogEntry) {
			assert.Equal(t, "KEYS *", entries[0].Command)
		})
}
