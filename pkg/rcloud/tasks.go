package rcloud

import (
	"context"
	"time"
)

// DefaultTaskPollInterval is the polling cadence used by WaitForTask when no
// interval is configured.
const DefaultTaskPollInterval = 2 * time.Second

// WaitOptions tunes task polling.
type WaitOptions struct {
	// PollInterval is the delay between GET /tasks/{id} calls. Defaults to
	// DefaultTaskPollInterval.
	PollInterval time.Duration

	// Timeout bounds the total wait. Zero means wait until the context is
	// cancelled.
	Timeout time.Duration
}

// TasksClient provides access to asynchronous task tracking.
type TasksClient interface {
	List(ctx context.Context) ([]TaskStateUpdate, error)
	Get(ctx context.Context, taskID string) (*TaskStateUpdate, error)

	// WaitForTask polls the task until it reaches a terminal state. It
	// returns ErrTaskFailed (wrapped with the processing error description)
	// when the task ends in processing-error, and ErrTaskTimeout when
	// WaitOptions.Timeout elapses first.
	WaitForTask(ctx context.Context, taskID string, opts *WaitOptions) (*TaskStateUpdate, error)

	// WaitForResourceID waits for the task and returns the resource ID it
	// produced. It returns ErrTaskMissingResourceID when the completed task
	// carries no resource ID.
	WaitForResourceID(ctx context.Context, taskID string, opts *WaitOptions) (int, error)
}
