package rcloud

import (
	"errors"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrDeprecatedClientConstructor = errors.New("use github.com/rediscloud-community/rediscloud-go/pkg/rcclient.New to create a client")
)

// CoreResourceClients provides access to the account-level resource clients.
type CoreResourceClients interface {
	Account() AccountClient
	Subscriptions() SubscriptionsClient
	Databases() DatabasesClient
	Tasks() TasksClient
}

// FixedResourceClients provides access to the Essentials (fixed) resource clients.
type FixedResourceClients interface {
	FixedSubscriptions() FixedSubscriptionsClient
	FixedDatabases() FixedDatabasesClient
}

// AccessControlClients provides access to the access-management resource clients.
type AccessControlClients interface {
	ACL() ACLClient
	Users() UsersClient
	CloudAccounts() CloudAccountsClient
}

// ConnectivityClients provides access to the private-connectivity resource clients.
type ConnectivityClients interface {
	VPCPeerings() VPCPeeringClient
	TransitGateways() TransitGatewayClient
	PrivateServiceConnect() PrivateServiceConnectClient
	PrivateLink() PrivateLinkClient
}

// BillingClients provides access to billing and reporting resource clients.
type BillingClients interface {
	CostReports() CostReportsClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	// Composite interfaces for resource groups
	CoreResourceClients
	FixedResourceClients
	AccessControlClients
	ConnectivityClients
	BillingClients
}

type Client interface {
	ResourceClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a rcloud.Client.
//
// # Authentication
//
// The API authenticates every request with a static key pair sent as the
// x-api-key and x-api-secret-key headers. APIKey and APISecret are required;
// rcclient.New falls back to the REDIS_CLOUD_API_KEY and
// REDIS_CLOUD_API_SECRET environment variables when they are empty.
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via context passed to
// client methods. Retry behavior can be tuned via RetryMax/RetryWaitMin/
// RetryWaitMax; rate-limit (429) and server (>=500) responses are retried,
// client errors are not.
type Config struct {
	// APIKey: account API key, sent as the x-api-key header.
	APIKey string
	// APISecret: secret key paired with APIKey, sent as x-api-secret-key.
	APISecret string

	// BaseURL: base URL for the API. Defaults to
	// "https://api.redislabs.com/v1" when empty. rcclient.New normalizes the
	// value by trimming a trailing slash and adding "https://" if no scheme
	// is present.
	BaseURL string

	// Optional configurations
	// HTTPTimeout: optional default HTTP timeout where supported. Most client
	// calls should rely on context timeouts; this may be used by helpers.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500, 429,
	// and connection errors). If 0, a sensible default is used by the client.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and helpers.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Cache: optional cache used by slow, rarely-changing lookups such as
	// regions and plan catalogs. Defaults to no caching.
	Cache Cache
	// Interceptors: optional chain run around every HTTP request. Request
	// interceptors may add headers or rewrite the body before it is sent;
	// response interceptors observe the outcome.
	Interceptors *InterceptorChain
}

// NewClient creates a new API client
// Deprecated: Use github.com/rediscloud-community/rediscloud-go/pkg/rcclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
