package rcloud_test

import (
	"encoding/json"
	"testing"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks_Href(t *testing.T) {
	t.Parallel()

	links := rcloud.Links{
		{Rel: "self", Href: "https://api.redislabs.com/v1/tasks/abc", Method: "GET"},
		{Rel: "resource", Href: "https://api.redislabs.com/v1/subscriptions/1", Method: "GET"},
	}

	assert.Equal(t, "https://api.redislabs.com/v1/tasks/abc", links.Href("self"))
	assert.Equal(t, "https://api.redislabs.com/v1/subscriptions/1", links.Href("resource"))
	assert.Empty(t, links.Href("missing"))
	assert.Empty(t, rcloud.Links(nil).Href("self"))
}

func TestTaskDone(t *testing.T) {
	t.Parallel()

	assert.True(t, rcloud.TaskDone(rcloud.TaskStatusProcessingCompleted))
	assert.True(t, rcloud.TaskDone(rcloud.TaskStatusProcessingError))
	assert.False(t, rcloud.TaskDone(rcloud.TaskStatusInitialized))
	assert.False(t, rcloud.TaskDone(rcloud.TaskStatusReceived))
	assert.False(t, rcloud.TaskDone(rcloud.TaskStatusProcessingInProgress))
}

func TestTaskStateUpdate_Helpers(t *testing.T) {
	t.Parallel()

	completed := &rcloud.TaskStateUpdate{Status: rcloud.TaskStatusProcessingCompleted}
	assert.True(t, completed.Done())
	assert.False(t, completed.Failed())

	failed := &rcloud.TaskStateUpdate{Status: rcloud.TaskStatusProcessingError}
	assert.True(t, failed.Done())
	assert.True(t, failed.Failed())

	running := &rcloud.TaskStateUpdate{Status: rcloud.TaskStatusProcessingInProgress}
	assert.False(t, running.Done())
	assert.False(t, running.Failed())
}

func TestTaskStateUpdate_Unmarshal(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"taskId": "e02b40d6-1395-4861-a3b9-ecf829d835fd",
		"commandType": "subscriptionCreateRequest",
		"status": "processing-completed",
		"timestamp": "2026-08-30T11:04:13Z",
		"response": {
			"resourceId": 12345,
			"resource": {"id": 12345}
		},
		"links": [{"rel": "self", "href": "https://api.redislabs.com/v1/tasks/e02b40d6", "method": "GET"}]
	}`)

	var task rcloud.TaskStateUpdate

	require.NoError(t, json.Unmarshal(body, &task))
	assert.Equal(t, "e02b40d6-1395-4861-a3b9-ecf829d835fd", task.TaskID)
	assert.Equal(t, "subscriptionCreateRequest", task.CommandType)
	assert.True(t, task.Done())
	require.NotNil(t, task.Response)
	assert.Equal(t, 12345, task.Response.ResourceID)
	assert.JSONEq(t, `{"id": 12345}`, string(task.Response.Resource))
	assert.Equal(t, "https://api.redislabs.com/v1/tasks/e02b40d6", task.Links.Href("self"))
}

func TestTaskStateUpdate_UnmarshalError(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"taskId": "d5a0a348-55d9-4e4b-9328-1dd19cdca472",
		"status": "processing-error",
		"response": {
			"error": {
				"type": "SUBSCRIPTION_NOT_ACTIVE",
				"status": "403 FORBIDDEN",
				"description": "Subscription is not in an active state"
			}
		}
	}`)

	var task rcloud.TaskStateUpdate

	require.NoError(t, json.Unmarshal(body, &task))
	assert.True(t, task.Failed())
	require.NotNil(t, task.Response)
	require.NotNil(t, task.Response.Error)
	assert.Equal(t, "SUBSCRIPTION_NOT_ACTIVE", task.Response.Error.Type)
	assert.Equal(t, "Subscription is not in an active state", task.Response.Error.Description)
}
