package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// FixedDatabasesClient implements rcloud.FixedDatabasesClient.
type FixedDatabasesClient struct {
	httpClient *http.Client
}

// NewFixedDatabasesClient creates a new fixed databases client.
func NewFixedDatabasesClient(httpClient *http.Client) *FixedDatabasesClient {
	return &FixedDatabasesClient{
		httpClient: httpClient,
	}
}

// List implements rcloud.FixedDatabasesClient.List.
func (c *FixedDatabasesClient) List(ctx context.Context, subscriptionID int, params *rcloud.QueryParams) ([]rcloud.FixedDatabase, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing fixed databases: %w", err)
	}

	var result struct {
		Subscription []struct {
			SubscriptionID int                    `json:"subscriptionId"`
			Databases      []rcloud.FixedDatabase `json:"databases"`
		} `json:"subscription"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing fixed databases list response: %w", err)
	}

	var databases []rcloud.FixedDatabase
	for _, group := range result.Subscription {
		databases = append(databases, group.Databases...)
	}

	return databases, nil
}

// Get implements rcloud.FixedDatabasesClient.Get.
func (c *FixedDatabasesClient) Get(ctx context.Context, subscriptionID, databaseID int) (*rcloud.FixedDatabase, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting fixed database: %w", err)
	}

	var database rcloud.FixedDatabase
	if err := json.Unmarshal(resp.Body, &database); err != nil {
		return nil, fmt.Errorf("parsing fixed database response: %w", err)
	}

	return &database, nil
}

// Create implements rcloud.FixedDatabasesClient.Create.
func (c *FixedDatabasesClient) Create(ctx context.Context, subscriptionID int, request *rcloud.FixedDatabaseCreateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating fixed database: %w", err)
	}

	return parseTask(resp, "create fixed database")
}

// Update implements rcloud.FixedDatabasesClient.Update.
func (c *FixedDatabasesClient) Update(ctx context.Context, subscriptionID, databaseID int, request *rcloud.FixedDatabaseUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d", subscriptionID, databaseID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating fixed database: %w", err)
	}

	return parseTask(resp, "update fixed database")
}

// Delete implements rcloud.FixedDatabasesClient.Delete.
func (c *FixedDatabasesClient) Delete(ctx context.Context, subscriptionID, databaseID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d", subscriptionID, databaseID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting fixed database: %w", err)
	}

	return parseTask(resp, "delete fixed database")
}

// Backup implements rcloud.FixedDatabasesClient.Backup.
func (c *FixedDatabasesClient) Backup(ctx context.Context, subscriptionID, databaseID int, request *rcloud.DatabaseBackupRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/backup", subscriptionID, databaseID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("backing up fixed database: %w", err)
	}

	return parseTask(resp, "backup fixed database")
}

// GetBackupStatus implements rcloud.FixedDatabasesClient.GetBackupStatus. It
// reports on the most recent backup attempt for the database.
func (c *FixedDatabasesClient) GetBackupStatus(ctx context.Context, subscriptionID, databaseID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/backup", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting fixed database backup status: %w", err)
	}

	return parseTask(resp, "fixed database backup status")
}

// Import implements rcloud.FixedDatabasesClient.Import.
func (c *FixedDatabasesClient) Import(ctx context.Context, subscriptionID, databaseID int, request *rcloud.DatabaseImportRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/import", subscriptionID, databaseID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("importing into fixed database: %w", err)
	}

	return parseTask(resp, "import fixed database")
}

// ListSlowLog implements rcloud.FixedDatabasesClient.ListSlowLog.
func (c *FixedDatabasesClient) ListSlowLog(ctx context.Context, subscriptionID, databaseID int, params *rcloud.QueryParams) ([]rcloud.SlowLogEntry, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/slow-log", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing fixed database slow log: %w", err)
	}

	var result struct {
		Entries []rcloud.SlowLogEntry `json:"entries"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing slow log response: %w", err)
	}

	return result.Entries, nil
}

// ListAvailableVersions implements rcloud.FixedDatabasesClient.ListAvailableVersions.
func (c *FixedDatabasesClient) ListAvailableVersions(ctx context.Context, subscriptionID, databaseID int) ([]rcloud.RedisVersion, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/available-target-versions", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing available target versions: %w", err)
	}

	var result struct {
		RedisVersions []rcloud.RedisVersion `json:"redisVersions"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing available target versions response: %w", err)
	}

	return result.RedisVersions, nil
}

// Upgrade implements rcloud.FixedDatabasesClient.Upgrade.
func (c *FixedDatabasesClient) Upgrade(ctx context.Context, subscriptionID, databaseID int, request *rcloud.DatabaseUpgradeRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/upgrade", subscriptionID, databaseID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("upgrading fixed database: %w", err)
	}

	return parseTask(resp, "upgrade fixed database")
}

// GetUpgradeStatus implements rcloud.FixedDatabasesClient.GetUpgradeStatus. It
// reports on the most recent Redis version upgrade attempt.
func (c *FixedDatabasesClient) GetUpgradeStatus(ctx context.Context, subscriptionID, databaseID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/upgrade", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting fixed database upgrade status: %w", err)
	}

	return parseTask(resp, "fixed database upgrade status")
}

// ListTags implements rcloud.FixedDatabasesClient.ListTags.
func (c *FixedDatabasesClient) ListTags(ctx context.Context, subscriptionID, databaseID int) (*rcloud.Tags, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/tags", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags rcloud.Tags
	if err := json.Unmarshal(resp.Body, &tags); err != nil {
		return nil, fmt.Errorf("parsing tags response: %w", err)
	}

	return &tags, nil
}

// AddTag implements rcloud.FixedDatabasesClient.AddTag.
func (c *FixedDatabasesClient) AddTag(ctx context.Context, subscriptionID, databaseID int, tag *rcloud.TagCreateRequest) (*rcloud.Tag, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/tags", subscriptionID, databaseID)

	resp, err := c.httpClient.Post(ctx, path, tag)
	if err != nil {
		return nil, fmt.Errorf("adding tag: %w", err)
	}

	var created rcloud.Tag
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing tag response: %w", err)
	}

	return &created, nil
}

// ReplaceTags implements rcloud.FixedDatabasesClient.ReplaceTags.
func (c *FixedDatabasesClient) ReplaceTags(ctx context.Context, subscriptionID, databaseID int, request *rcloud.TagsUpdateRequest) (*rcloud.Tags, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/tags", subscriptionID, databaseID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("replacing tags: %w", err)
	}

	var tags rcloud.Tags
	if err := json.Unmarshal(resp.Body, &tags); err != nil {
		return nil, fmt.Errorf("parsing tags response: %w", err)
	}

	return &tags, nil
}

// UpdateTag implements rcloud.FixedDatabasesClient.UpdateTag.
func (c *FixedDatabasesClient) UpdateTag(ctx context.Context, subscriptionID, databaseID int, key string, value string) (*rcloud.Tag, error) {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/tags/%s", subscriptionID, databaseID, key)

	resp, err := c.httpClient.Put(ctx, path, map[string]string{"value": value})
	if err != nil {
		return nil, fmt.Errorf("updating tag: %w", err)
	}

	var tag rcloud.Tag
	if err := json.Unmarshal(resp.Body, &tag); err != nil {
		return nil, fmt.Errorf("parsing tag response: %w", err)
	}

	return &tag, nil
}

// DeleteTag implements rcloud.FixedDatabasesClient.DeleteTag.
func (c *FixedDatabasesClient) DeleteTag(ctx context.Context, subscriptionID, databaseID int, key string) error {
	path := fmt.Sprintf("/fixed/subscriptions/%d/databases/%d/tags/%s", subscriptionID, databaseID, key)

	if _, err := c.httpClient.Delete(ctx, path); err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}

	return nil
}
