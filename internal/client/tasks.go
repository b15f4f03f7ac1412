package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// TasksClient implements rcloud.TasksClient.
type TasksClient struct {
	httpClient *http.Client
}

// NewTasksClient creates a new tasks client.
func NewTasksClient(httpClient *http.Client) *TasksClient {
	return &TasksClient{
		httpClient: httpClient,
	}
}

// List implements rcloud.TasksClient.List.
func (c *TasksClient) List(ctx context.Context) ([]rcloud.TaskStateUpdate, error) {
	resp, err := c.httpClient.Get(ctx, "/tasks", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	var result rcloud.TasksStateUpdate
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing tasks response: %w", err)
	}

	return result.Tasks, nil
}

// Get implements rcloud.TasksClient.Get.
func (c *TasksClient) Get(ctx context.Context, taskID string) (*rcloud.TaskStateUpdate, error) {
	path := fmt.Sprintf("/tasks/%s", taskID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting task: %w", err)
	}

	var task rcloud.TaskStateUpdate
	if err := json.Unmarshal(resp.Body, &task); err != nil {
		return nil, fmt.Errorf("parsing task response: %w", err)
	}

	return &task, nil
}

// WaitForTask implements rcloud.TasksClient.WaitForTask.
func (c *TasksClient) WaitForTask(ctx context.Context, taskID string, opts *rcloud.WaitOptions) (*rcloud.TaskStateUpdate, error) {
	interval := rcloud.DefaultTaskPollInterval
	if opts != nil && opts.PollInterval > 0 {
		interval = opts.PollInterval
	}

	if opts != nil && opts.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		task, err := c.Get(ctx, taskID)
		if err != nil {
			return nil, err
		}

		if task.Done() {
			if task.Failed() {
				description := task.Description
				if task.Response != nil && task.Response.Error != nil {
					description = task.Response.Error.Description
				}

				return task, fmt.Errorf("task %s: %s: %w", taskID, description, rcloud.ErrTaskFailed)
			}

			return task, nil
		}

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return task, fmt.Errorf("task %s: %w", taskID, rcloud.ErrTaskTimeout)
			}

			return task, fmt.Errorf("waiting for task %s: %w", taskID, ctx.Err())
		case <-ticker.C:
		}
	}
}

// WaitForResourceID implements rcloud.TasksClient.WaitForResourceID.
func (c *TasksClient) WaitForResourceID(ctx context.Context, taskID string, opts *rcloud.WaitOptions) (int, error) {
	task, err := c.WaitForTask(ctx, taskID, opts)
	if err != nil {
		return 0, err
	}

	if task.Response == nil || task.Response.ResourceID == 0 {
		return 0, fmt.Errorf("task %s: %w", taskID, rcloud.ErrTaskMissingResourceID)
	}

	return task.Response.ResourceID, nil
}
