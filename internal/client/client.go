// Package client implements the rcloud.Client interface over the REST
// transport.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rediscloud-community/rediscloud-go/internal/auth"
	"github.com/rediscloud-community/rediscloud-go/internal/http"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
)

const defaultRetryWaitMax = 30 * time.Second

// Client implements the rcloud.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     rcloud.Logger
	cache      *rcloud.CacheManager

	// Resource clients
	account            rcloud.AccountClient
	subscriptions      rcloud.SubscriptionsClient
	databases          rcloud.DatabasesClient
	fixedSubscriptions rcloud.FixedSubscriptionsClient
	fixedDatabases     rcloud.FixedDatabasesClient
	acl                rcloud.ACLClient
	users              rcloud.UsersClient
	cloudAccounts      rcloud.CloudAccountsClient
	tasks              rcloud.TasksClient
	vpcPeerings        rcloud.VPCPeeringClient
	transitGateways    rcloud.TransitGatewayClient
	psc                rcloud.PrivateServiceConnectClient
	privateLink        rcloud.PrivateLinkClient
	costReports        rcloud.CostReportsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *rcloud.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := defaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client. The config must carry a base URL and a key
// pair; rcclient.New applies the defaults and environment fallbacks first.
func New(config *rcloud.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	creds := auth.FromEnv(config.APIKey, config.APISecret)
	if creds.APIKey == "" {
		return nil, rcloud.ErrAPIKeyRequired
	}

	if creds.APISecret == "" {
		return nil, rcloud.ErrAPISecretRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.BaseURL, auth.NewStaticProvider(creds.APIKey, creds.APISecret), httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	if config.Cache != nil {
		client.cache = rcloud.NewCacheManager(config.Cache, nil)
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.account = NewAccountClient(c.httpClient, c.cache)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.databases = NewDatabasesClient(c.httpClient)
	c.fixedSubscriptions = NewFixedSubscriptionsClient(c.httpClient, c.cache)
	c.fixedDatabases = NewFixedDatabasesClient(c.httpClient)
	c.acl = NewACLClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.cloudAccounts = NewCloudAccountsClient(c.httpClient)
	c.tasks = NewTasksClient(c.httpClient)
	c.vpcPeerings = NewVPCPeeringClient(c.httpClient)
	c.transitGateways = NewTransitGatewayClient(c.httpClient)
	c.psc = NewPrivateServiceConnectClient(c.httpClient)
	c.privateLink = NewPrivateLinkClient(c.httpClient)
	c.costReports = NewCostReportsClient(c.httpClient)
}

// Resource client accessors

// Account implements rcloud.Client.Account.
func (c *Client) Account() rcloud.AccountClient {
	return c.account
}

// Subscriptions implements rcloud.Client.Subscriptions.
func (c *Client) Subscriptions() rcloud.SubscriptionsClient {
	return c.subscriptions
}

// Databases implements rcloud.Client.Databases.
func (c *Client) Databases() rcloud.DatabasesClient {
	return c.databases
}

// FixedSubscriptions implements rcloud.Client.FixedSubscriptions.
func (c *Client) FixedSubscriptions() rcloud.FixedSubscriptionsClient {
	return c.fixedSubscriptions
}

// FixedDatabases implements rcloud.Client.FixedDatabases.
func (c *Client) FixedDatabases() rcloud.FixedDatabasesClient {
	return c.fixedDatabases
}

// ACL implements rcloud.Client.ACL.
func (c *Client) ACL() rcloud.ACLClient {
	return c.acl
}

// Users implements rcloud.Client.Users.
func (c *Client) Users() rcloud.UsersClient {
	return c.users
}

// CloudAccounts implements rcloud.Client.CloudAccounts.
func (c *Client) CloudAccounts() rcloud.CloudAccountsClient {
	return c.cloudAccounts
}

// Tasks implements rcloud.Client.Tasks.
func (c *Client) Tasks() rcloud.TasksClient {
	return c.tasks
}

// VPCPeerings implements rcloud.Client.VPCPeerings.
func (c *Client) VPCPeerings() rcloud.VPCPeeringClient {
	return c.vpcPeerings
}

// TransitGateways implements rcloud.Client.TransitGateways.
func (c *Client) TransitGateways() rcloud.TransitGatewayClient {
	return c.transitGateways
}

// PrivateServiceConnect implements rcloud.Client.PrivateServiceConnect.
func (c *Client) PrivateServiceConnect() rcloud.PrivateServiceConnectClient {
	return c.psc
}

// PrivateLink implements rcloud.Client.PrivateLink.
func (c *Client) PrivateLink() rcloud.PrivateLinkClient {
	return c.privateLink
}

// CostReports implements rcloud.Client.CostReports.
func (c *Client) CostReports() rcloud.CostReportsClient {
	return c.costReports
}

// parseTask decodes the 202 Accepted task envelope returned by mutating
// operations.
func parseTask(resp *http.Response, operation string) (*rcloud.TaskStateUpdate, error) {
	var task rcloud.TaskStateUpdate

	if err := json.Unmarshal(resp.Body, &task); err != nil {
		return nil, fmt.Errorf("parsing %s task response: %w", operation, err)
	}

	return &task, nil
}

// parseTaskResource decodes GET responses on networking resources, which the
// API answers with the task envelope; the payload rides in response.resource.
func parseTaskResource(resp *http.Response, operation string, out interface{}) error {
	task, err := parseTask(resp, operation)
	if err != nil {
		return err
	}

	if task.Response != nil && task.Response.Error != nil {
		return fmt.Errorf("%s: %s", operation, task.Response.Error.Description)
	}

	if task.Response == nil || len(task.Response.Resource) == 0 {
		return nil
	}

	if err := json.Unmarshal(task.Response.Resource, out); err != nil {
		return fmt.Errorf("parsing %s resource: %w", operation, err)
	}

	return nil
}
