package rcloud

import "encoding/json"

// Link is a HATEOAS link attached to most API responses.
type Link struct {
	Rel    string `json:"rel,omitempty"    yaml:"rel,omitempty"`
	Href   string `json:"href,omitempty"   yaml:"href,omitempty"`
	Type   string `json:"type,omitempty"   yaml:"type,omitempty"`
	Method string `json:"method,omitempty" yaml:"method,omitempty"`
}

// Links is the list form the API uses for HATEOAS navigation.
type Links []Link

// Href returns the href of the link with the given rel, or "".
func (l Links) Href(rel string) string {
	for _, link := range l {
		if link.Rel == rel {
			return link.Href
		}
	}

	return ""
}

// Task status values reported in TaskStateUpdate.
const (
	TaskStatusInitialized          = "initialized"
	TaskStatusReceived             = "received"
	TaskStatusProcessingInProgress = "processing-in-progress"
	TaskStatusProcessingCompleted  = "processing-completed"
	TaskStatusProcessingError      = "processing-error"
)

// TaskDone reports whether a task status is terminal.
func TaskDone(status string) bool {
	return status == TaskStatusProcessingCompleted || status == TaskStatusProcessingError
}

// ProcessorError is the error descriptor inside a failed task response.
type ProcessorError struct {
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	Status      string `json:"status,omitempty"      yaml:"status,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ProcessorResponse carries the result of task processing: the ID of the
// resource the task created or changed, or an error.
type ProcessorResponse struct {
	ResourceID           int             `json:"resourceId,omitempty"           yaml:"resourceId,omitempty"`
	AdditionalResourceID int             `json:"additionalResourceId,omitempty" yaml:"additionalResourceId,omitempty"`
	Resource             json.RawMessage `json:"resource,omitempty"             yaml:"resource,omitempty"`
	Error                *ProcessorError `json:"error,omitempty"                yaml:"error,omitempty"`
	AdditionalInfo       string          `json:"additionalInfo,omitempty"       yaml:"additionalInfo,omitempty"`
}

// TaskStateUpdate is the asynchronous operation envelope. Every mutating call
// on subscriptions, databases, and networking resources answers 202 Accepted
// with one of these; poll GET /tasks/{taskId} until the status is terminal.
type TaskStateUpdate struct {
	TaskID      string             `json:"taskId,omitempty"      yaml:"taskId,omitempty"`
	CommandType string             `json:"commandType,omitempty" yaml:"commandType,omitempty"`
	Status      string             `json:"status,omitempty"      yaml:"status,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Timestamp   string             `json:"timestamp,omitempty"   yaml:"timestamp,omitempty"`
	Response    *ProcessorResponse `json:"response,omitempty"    yaml:"response,omitempty"`
	Links       Links              `json:"links,omitempty"       yaml:"links,omitempty"`
}

// Done reports whether the task reached a terminal state.
func (t *TaskStateUpdate) Done() bool {
	return TaskDone(t.Status)
}

// Failed reports whether the task finished with a processing error.
func (t *TaskStateUpdate) Failed() bool {
	return t.Status == TaskStatusProcessingError
}

// TasksStateUpdate is the collection form returned by GET /tasks.
type TasksStateUpdate struct {
	Tasks []TaskStateUpdate `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Links Links             `json:"links,omitempty" yaml:"links,omitempty"`
}

// Tag is a key/value tag attached to databases.
type Tag struct {
	Key       string `json:"key"                 yaml:"key"`
	Value     string `json:"value"               yaml:"value"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
	Links     Links  `json:"links,omitempty"     yaml:"links,omitempty"`
}

// Tags is the collection wrapper used by the tag endpoints.
type Tags struct {
	Tags  []Tag `json:"tags,omitempty"  yaml:"tags,omitempty"`
	Links Links `json:"links,omitempty" yaml:"links,omitempty"`
}

// Cloud provider names accepted by the API.
const (
	ProviderAWS   = "AWS"
	ProviderGCP   = "GCP"
	ProviderAzure = "Azure"
)

// Data persistence modes.
const (
	PersistenceNone                = "none"
	PersistenceAOFEverySecond      = "aof-every-1-sec"
	PersistenceAOFEveryWrite       = "aof-every-write"
	PersistenceSnapshotEveryHour   = "snapshot-every-1-hour"
	PersistenceSnapshotEvery6Hours = "snapshot-every-6-hours"
	PersistenceSnapshotEvery12H    = "snapshot-every-12-hours"
)

// Subscription status values.
const (
	SubscriptionStatusPending  = "pending"
	SubscriptionStatusActive   = "active"
	SubscriptionStatusDeleting = "deleting"
	SubscriptionStatusError    = "error"
)

// Database status values.
const (
	DatabaseStatusPending             = "pending"
	DatabaseStatusActive              = "active"
	DatabaseStatusActiveChangePending = "active-change-pending"
	DatabaseStatusImportPending       = "import-pending"
	DatabaseStatusDeletePending       = "delete-pending"
	DatabaseStatusRecovery            = "recovery"
	DatabaseStatusError               = "error"
)
