package rcloud

import "context"

// AccountClient provides access to account-level information and lookup
// catalogs.
type AccountClient interface {
	Get(ctx context.Context) (*Account, error)
	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	ListRegions(ctx context.Context, provider string) ([]Region, error)
	ListDataPersistenceOptions(ctx context.Context) ([]DataPersistenceOption, error)
	ListDatabaseModules(ctx context.Context) ([]DatabaseModule, error)
	ListSystemLogs(ctx context.Context, params *QueryParams) ([]SystemLogEntry, error)
	ListSessionLogs(ctx context.Context, params *QueryParams) ([]SessionLogEntry, error)
	ListQueryPerformanceFactors(ctx context.Context) ([]QueryPerformanceFactor, error)
}

// Account represents the current account.
type Account struct {
	ID        int         `json:"id"                         yaml:"id"`
	Name      string      `json:"name"                       yaml:"name"`
	CreatedAt string      `json:"createdTimestamp,omitempty" yaml:"createdTimestamp,omitempty"`
	UpdatedAt string      `json:"updatedTimestamp,omitempty" yaml:"updatedTimestamp,omitempty"`
	Key       *AccountKey `json:"key,omitempty"              yaml:"key,omitempty"`
	Links     Links       `json:"links,omitempty"            yaml:"links,omitempty"`
}

// AccountKey describes the API key the account was queried with.
type AccountKey struct {
	Name           string           `json:"name,omitempty"             yaml:"name,omitempty"`
	AccountID      int              `json:"accountId,omitempty"        yaml:"accountId,omitempty"`
	AccountName    string           `json:"accountName,omitempty"      yaml:"accountName,omitempty"`
	AllowedSources []string         `json:"allowedSourceIps,omitempty" yaml:"allowedSourceIps,omitempty"`
	CreatedAt      string           `json:"createdTimestamp,omitempty" yaml:"createdTimestamp,omitempty"`
	Owner          *AccountKeyOwner `json:"owner,omitempty"            yaml:"owner,omitempty"`
	HTTPSourceIP   string           `json:"httpSourceIp,omitempty"     yaml:"httpSourceIp,omitempty"`
	GravatarURL    string           `json:"gravatarUrl,omitempty"      yaml:"gravatarUrl,omitempty"`
}

// AccountKeyOwner identifies the user owning an API key.
type AccountKeyOwner struct {
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// PaymentMethod represents a payment method configured on the account.
type PaymentMethod struct {
	ID             int    `json:"id"                           yaml:"id"`
	Type           string `json:"type,omitempty"               yaml:"type,omitempty"`
	CreditCardType string `json:"creditCardType,omitempty"     yaml:"creditCardType,omitempty"`
	EndingNumber   string `json:"creditCardEndsWith,omitempty" yaml:"creditCardEndsWith,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"     yaml:"expirationDate,omitempty"`
	Links          Links  `json:"links,omitempty"              yaml:"links,omitempty"`
}

// Region represents a cloud provider region supported by the platform.
type Region struct {
	Name     string `json:"name"               yaml:"name"`
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Links    Links  `json:"links,omitempty"    yaml:"links,omitempty"`
}

// DataPersistenceOption is one entry of the data persistence catalog.
type DataPersistenceOption struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DatabaseModule is one entry of the database modules catalog.
type DatabaseModule struct {
	Name           string                   `json:"name"                     yaml:"name"`
	Description    string                   `json:"description,omitempty"    yaml:"description,omitempty"`
	Parameters     []map[string]interface{} `json:"parameters,omitempty"     yaml:"parameters,omitempty"`
	CapabilityName string                   `json:"capabilityName,omitempty" yaml:"capabilityName,omitempty"`
}

// SystemLogEntry is one account audit log record.
type SystemLogEntry struct {
	ID          int    `json:"id"                    yaml:"id"`
	Time        string `json:"time,omitempty"        yaml:"time,omitempty"`
	Originator  string `json:"originator,omitempty"  yaml:"originator,omitempty"`
	APIKeyName  string `json:"apiKeyName,omitempty"  yaml:"apiKeyName,omitempty"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Resource    string `json:"resource,omitempty"    yaml:"resource,omitempty"`
}

// SessionLogEntry is one UI/API session log record.
type SessionLogEntry struct {
	ID        int    `json:"id"                  yaml:"id"`
	Time      string `json:"time,omitempty"      yaml:"time,omitempty"`
	UserName  string `json:"userName,omitempty"  yaml:"userName,omitempty"`
	Action    string `json:"action,omitempty"    yaml:"action,omitempty"`
	SourceIP  string `json:"sourceIp,omitempty"  yaml:"sourceIp,omitempty"`
	UserAgent string `json:"userAgent,omitempty" yaml:"userAgent,omitempty"`
}

// QueryPerformanceFactor is one entry of the query performance factor catalog.
type QueryPerformanceFactor struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
