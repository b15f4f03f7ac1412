package rcloud

import "context"

// CloudAccountsClient provides access to provider account management. Cloud
// accounts hold the AWS credentials used to provision subscription
// infrastructure in the customer's own account.
type CloudAccountsClient interface {
	List(ctx context.Context) ([]CloudAccount, error)
	Get(ctx context.Context, cloudAccountID int) (*CloudAccount, error)
	Create(ctx context.Context, request *CloudAccountCreateRequest) (*TaskStateUpdate, error)
	Update(ctx context.Context, cloudAccountID int, request *CloudAccountUpdateRequest) (*TaskStateUpdate, error)
	Delete(ctx context.Context, cloudAccountID int) (*TaskStateUpdate, error)
}

// CloudAccount represents a provider account registered with the platform.
type CloudAccount struct {
	ID          int    `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Provider    string `json:"provider,omitempty"    yaml:"provider,omitempty"`
	Status      string `json:"status,omitempty"      yaml:"status,omitempty"`
	AccessKeyID string `json:"accessKeyId,omitempty" yaml:"accessKeyId,omitempty"`
	Links       Links  `json:"links,omitempty"       yaml:"links,omitempty"`
}

// CloudAccountCreateRequest registers a provider account.
type CloudAccountCreateRequest struct {
	Name            string `json:"name"                      yaml:"name"`
	Provider        string `json:"provider,omitempty"        yaml:"provider,omitempty"`
	AccessKeyID     string `json:"accessKeyId"               yaml:"accessKeyId"`
	AccessSecretKey string `json:"accessSecretKey"           yaml:"accessSecretKey"`
	ConsoleUsername string `json:"consoleUsername,omitempty" yaml:"consoleUsername,omitempty"`
	ConsolePassword string `json:"consolePassword,omitempty" yaml:"consolePassword,omitempty"`
	SignInLoginURL  string `json:"signInLoginUrl,omitempty"  yaml:"signInLoginUrl,omitempty"`
}

// CloudAccountUpdateRequest updates a provider account's credentials.
type CloudAccountUpdateRequest struct {
	Name            string `json:"name,omitempty"            yaml:"name,omitempty"`
	AccessKeyID     string `json:"accessKeyId,omitempty"     yaml:"accessKeyId,omitempty"`
	AccessSecretKey string `json:"accessSecretKey,omitempty" yaml:"accessSecretKey,omitempty"`
	ConsoleUsername string `json:"consoleUsername,omitempty" yaml:"consoleUsername,omitempty"`
	ConsolePassword string `json:"consolePassword,omitempty" yaml:"consolePassword,omitempty"`
	SignInLoginURL  string `json:"signInLoginUrl,omitempty"  yaml:"signInLoginUrl,omitempty"`
}
