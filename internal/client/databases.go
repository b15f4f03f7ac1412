package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// DatabasesClient implements rcloud.DatabasesClient.
type DatabasesClient struct {
	httpClient *http.Client
}

// NewDatabasesClient creates a new databases client.
func NewDatabasesClient(httpClient *http.Client) *DatabasesClient {
	return &DatabasesClient{
		httpClient: httpClient,
	}
}

// List implements rcloud.DatabasesClient.List. The endpoint pages with
// offset/limit; use rcloud.FetchAllPages to walk the whole collection.
func (c *DatabasesClient) List(ctx context.Context, subscriptionID int, params *rcloud.QueryParams) ([]rcloud.Database, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases", subscriptionID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}

	// The collection nests databases under per-subscription groups.
	var result struct {
		Subscription []struct {
			SubscriptionID int               `json:"subscriptionId"`
			Databases      []rcloud.Database `json:"databases"`
		} `json:"subscription"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing databases list response: %w", err)
	}

	var databases []rcloud.Database
	for _, group := range result.Subscription {
		databases = append(databases, group.Databases...)
	}

	return databases, nil
}

// Get implements rcloud.DatabasesClient.Get.
func (c *DatabasesClient) Get(ctx context.Context, subscriptionID, databaseID int) (*rcloud.Database, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting database: %w", err)
	}

	var database rcloud.Database
	if err := json.Unmarshal(resp.Body, &database); err != nil {
		return nil, fmt.Errorf("parsing database response: %w", err)
	}

	return &database, nil
}

// Create implements rcloud.DatabasesClient.Create.
func (c *DatabasesClient) Create(ctx context.Context, subscriptionID int, request *rcloud.DatabaseCreateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases", subscriptionID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	return parseTask(resp, "create database")
}

// Update implements rcloud.DatabasesClient.Update.
func (c *DatabasesClient) Update(ctx context.Context, subscriptionID, databaseID int, request *rcloud.DatabaseUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d", subscriptionID, databaseID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating database: %w", err)
	}

	return parseTask(resp, "update database")
}

// Delete implements rcloud.DatabasesClient.Delete.
func (c *DatabasesClient) Delete(ctx context.Context, subscriptionID, databaseID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d", subscriptionID, databaseID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting database: %w", err)
	}

	return parseTask(resp, "delete database")
}

// Backup implements rcloud.DatabasesClient.Backup.
func (c *DatabasesClient) Backup(ctx context.Context, subscriptionID, databaseID int, request *rcloud.DatabaseBackupRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/backup", subscriptionID, databaseID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("backing up database: %w", err)
	}

	return parseTask(resp, "backup database")
}

// GetBackupStatus implements rcloud.DatabasesClient.GetBackupStatus. It
// reports on the most recent backup attempt for the database.
func (c *DatabasesClient) GetBackupStatus(ctx context.Context, subscriptionID, databaseID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/backup", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting backup status: %w", err)
	}

	return parseTask(resp, "backup status")
}

// Import implements rcloud.DatabasesClient.Import.
func (c *DatabasesClient) Import(ctx context.Context, subscriptionID, databaseID int, request *rcloud.DatabaseImportRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/import", subscriptionID, databaseID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("importing into database: %w", err)
	}

	return parseTask(resp, "import database")
}

// GetCertificate implements rcloud.DatabasesClient.GetCertificate.
func (c *DatabasesClient) GetCertificate(ctx context.Context, subscriptionID, databaseID int) (*rcloud.DatabaseCertificate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/certificate", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting database certificate: %w", err)
	}

	var cert rcloud.DatabaseCertificate
	if err := json.Unmarshal(resp.Body, &cert); err != nil {
		return nil, fmt.Errorf("parsing database certificate response: %w", err)
	}

	return &cert, nil
}

// ListSlowLog implements rcloud.DatabasesClient.ListSlowLog.
func (c *DatabasesClient) ListSlowLog(ctx context.Context, subscriptionID, databaseID int, params *rcloud.QueryParams) ([]rcloud.SlowLogEntry, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/slow-log", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing slow log: %w", err)
	}

	var result struct {
		Entries []rcloud.SlowLogEntry `json:"entries"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing slow log response: %w", err)
	}

	return result.Entries, nil
}

// ListAvailableVersions implements rcloud.DatabasesClient.ListAvailableVersions.
func (c *DatabasesClient) ListAvailableVersions(ctx context.Context, subscriptionID, databaseID int) ([]rcloud.RedisVersion, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/available-target-versions", subscriptionID, databaseID)

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

// Upgrade implements rcloud.DatabasesClient.Upgrade.
func (c *DatabasesClient) Upgrade(ctx context.Context, subscriptionID, databaseID int, request *rcloud.DatabaseUpgradeRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/upgrade", subscriptionID, databaseID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("upgrading database: %w", err)
	}

	return parseTask(resp, "upgrade database")
}

// GetUpgradeStatus implements rcloud.DatabasesClient.GetUpgradeStatus. It
// reports on the most recent Redis version upgrade attempt.
func (c *DatabasesClient) GetUpgradeStatus(ctx context.Context, subscriptionID, databaseID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/upgrade", subscriptionID, databaseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting upgrade status: %w", err)
	}

	return parseTask(resp, "upgrade status")
}

// Flush implements rcloud.DatabasesClient.Flush.
func (c *DatabasesClient) Flush(ctx context.Context, subscriptionID, databaseID int) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/flush", subscriptionID, databaseID)

	resp, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("flushing database: %w", err)
	}

	return parseTask(resp, "flush database")
}

// UpdateRegions implements rcloud.DatabasesClient.UpdateRegions.
func (c *DatabasesClient) UpdateRegions(ctx context.Context, subscriptionID, databaseID int, request *rcloud.DatabaseRegionsUpdateRequest) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/regions", subscriptionID, databaseID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating database regions: %w", err)
	}

	return parseTask(resp, "update database regions")
}

// ListTags implements rcloud.DatabasesClient.ListTags.
func (c *DatabasesClient) ListTags(ctx context.Context, subscriptionID, databaseID int) (*rcloud.Tags, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/tags", subscriptionID, databaseID)

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

// AddTag implements rcloud.DatabasesClient.AddTag.
func (c *DatabasesClient) AddTag(ctx context.Context, subscriptionID, databaseID int, tag *rcloud.TagCreateRequest) (*rcloud.Tag, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/tags", subscriptionID, databaseID)

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

// ReplaceTags implements rcloud.DatabasesClient.ReplaceTags.
func (c *DatabasesClient) ReplaceTags(ctx context.Context, subscriptionID, databaseID int, request *rcloud.TagsUpdateRequest) (*rcloud.Tags, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/tags", subscriptionID, databaseID)

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

// UpdateTag implements rcloud.DatabasesClient.UpdateTag.
func (c *DatabasesClient) UpdateTag(ctx context.Context, subscriptionID, databaseID int, key string, value string) (*rcloud.Tag, error) {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/tags/%s", subscriptionID, databaseID, key)

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

// DeleteTag implements rcloud.DatabasesClient.DeleteTag.
func (c *DatabasesClient) DeleteTag(ctx context.Context, subscriptionID, databaseID int, key string) error {
	path := fmt.Sprintf("/subscriptions/%d/databases/%d/tags/%s", subscriptionID, databaseID, key)

	if _, err := c.httpClient.Delete(ctx, path); err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}

	return nil
}
