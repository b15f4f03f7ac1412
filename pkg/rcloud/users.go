package rcloud

import "context"

// UsersClient provides access to team user management.
type UsersClient interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, userID int) (*User, error)
	Update(ctx context.Context, userID int, request *UserUpdateRequest) (*User, error)
	Delete(ctx context.Context, userID int) (*TaskStateUpdate, error)
}

// User is a team member of the account.
type User struct {
	ID        int          `json:"id"                  yaml:"id"`
	Name      string       `json:"name"                yaml:"name"`
	Email     string       `json:"email,omitempty"     yaml:"email,omitempty"`
	Role      string       `json:"role,omitempty"      yaml:"role,omitempty"`
	UserType  string       `json:"userType,omitempty"  yaml:"userType,omitempty"`
	HasAPIKey bool         `json:"hasApiKey,omitempty" yaml:"hasApiKey,omitempty"`
	Options   *UserOptions `json:"options,omitempty"   yaml:"options,omitempty"`
	Links     Links        `json:"links,omitempty"     yaml:"links,omitempty"`
}

// UserOptions carries per-user notification settings.
type UserOptions struct {
	Billing           bool `json:"billing,omitempty"           yaml:"billing,omitempty"`
	EmailAlerts       bool `json:"emailAlerts,omitempty"       yaml:"emailAlerts,omitempty"`
	OperationalEmails bool `json:"operationalEmails,omitempty" yaml:"operationalEmails,omitempty"`
	MFAEnabled        bool `json:"mfaEnabled,omitempty"        yaml:"mfaEnabled,omitempty"`
}

// UserUpdateRequest updates a team user. Nil fields are left unchanged.
type UserUpdateRequest struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Role *string `json:"role,omitempty" yaml:"role,omitempty"`
}
