package rcloud

import "context"

// FixedSubscriptionsClient provides access to Essentials (fixed) subscription
// operations and the fixed plan catalog.
type FixedSubscriptionsClient interface {
	ListPlans(ctx context.Context, provider string) ([]FixedPlan, error)
	GetPlan(ctx context.Context, planID int) (*FixedPlan, error)
	ListPlansForSubscription(ctx context.Context, subscriptionID int) ([]FixedPlan, error)
	ListRedisVersions(ctx context.Context, subscriptionID int) ([]RedisVersion, error)

	List(ctx context.Context) ([]FixedSubscription, error)
	Get(ctx context.Context, subscriptionID int) (*FixedSubscription, error)
	Create(ctx context.Context, request *FixedSubscriptionCreateRequest) (*TaskStateUpdate, error)
	Update(ctx context.Context, subscriptionID int, request *FixedSubscriptionUpdateRequest) (*TaskStateUpdate, error)
	Delete(ctx context.Context, subscriptionID int) (*TaskStateUpdate, error)
}

// FixedDatabasesClient provides access to databases inside Essentials
// subscriptions.
type FixedDatabasesClient interface {
	List(ctx context.Context, subscriptionID int, params *QueryParams) ([]FixedDatabase, error)
	Get(ctx context.Context, subscriptionID, databaseID int) (*FixedDatabase, error)
	Create(ctx context.Context, subscriptionID int, request *FixedDatabaseCreateRequest) (*TaskStateUpdate, error)
	Update(ctx context.Context, subscriptionID, databaseID int, request *FixedDatabaseUpdateRequest) (*TaskStateUpdate, error)
	Delete(ctx context.Context, subscriptionID, databaseID int) (*TaskStateUpdate, error)

	Backup(ctx context.Context, subscriptionID, databaseID int, request *DatabaseBackupRequest) (*TaskStateUpdate, error)
	GetBackupStatus(ctx context.Context, subscriptionID, databaseID int) (*TaskStateUpdate, error)
	Import(ctx context.Context, subscriptionID, databaseID int, request *DatabaseImportRequest) (*TaskStateUpdate, error)
	ListSlowLog(ctx context.Context, subscriptionID, databaseID int, params *QueryParams) ([]SlowLogEntry, error)

	// Version management.
	ListAvailableVersions(ctx context.Context, subscriptionID, databaseID int) ([]RedisVersion, error)
	Upgrade(ctx context.Context, subscriptionID, databaseID int, request *DatabaseUpgradeRequest) (*TaskStateUpdate, error)
	GetUpgradeStatus(ctx context.Context, subscriptionID, databaseID int) (*TaskStateUpdate, error)

	ListTags(ctx context.Context, subscriptionID, databaseID int) (*Tags, error)
	AddTag(ctx context.Context, subscriptionID, databaseID int, tag *TagCreateRequest) (*Tag, error)
	ReplaceTags(ctx context.Context, subscriptionID, databaseID int, request *TagsUpdateRequest) (*Tags, error)
	UpdateTag(ctx context.Context, subscriptionID, databaseID int, key string, value string) (*Tag, error)
	DeleteTag(ctx context.Context, subscriptionID, databaseID int, key string) error
}

// FixedPlan is one entry of the Essentials plan catalog.
type FixedPlan struct {
	ID                            int      `json:"id"                                      yaml:"id"`
	Name                          string   `json:"name"                                    yaml:"name"`
	Size                          float64  `json:"size,omitempty"                          yaml:"size,omitempty"`
	SizeMeasurementUnit           string   `json:"sizeMeasurementUnit,omitempty"           yaml:"sizeMeasurementUnit,omitempty"`
	Provider                      string   `json:"provider,omitempty"                      yaml:"provider,omitempty"`
	Region                        string   `json:"region,omitempty"                        yaml:"region,omitempty"`
	RegionID                      int      `json:"regionId,omitempty"                      yaml:"regionId,omitempty"`
	Price                         float64  `json:"price,omitempty"                         yaml:"price,omitempty"`
	PriceCurrency                 string   `json:"priceCurrency,omitempty"                 yaml:"priceCurrency,omitempty"`
	PricePeriod                   string   `json:"pricePeriod,omitempty"                   yaml:"pricePeriod,omitempty"`
	MaximumDatabases              int      `json:"maximumDatabases,omitempty"              yaml:"maximumDatabases,omitempty"`
	MaximumThroughput             int      `json:"maximumThroughput,omitempty"             yaml:"maximumThroughput,omitempty"`
	MaximumBandwidthGB            int      `json:"maximumBandwidthGB,omitempty"            yaml:"maximumBandwidthGB,omitempty"`
	Availability                  string   `json:"availability,omitempty"                  yaml:"availability,omitempty"`
	Connections                   string   `json:"connections,omitempty"                   yaml:"connections,omitempty"`
	CIDRAllowRules                int      `json:"cidrAllowRules,omitempty"                yaml:"cidrAllowRules,omitempty"`
	SupportDataPersistence        bool     `json:"supportDataPersistence,omitempty"        yaml:"supportDataPersistence,omitempty"`
	SupportInstantAndDailyBackups bool     `json:"supportInstantAndDailyBackups,omitempty" yaml:"supportInstantAndDailyBackups,omitempty"`
	SupportReplication            bool     `json:"supportReplication,omitempty"            yaml:"supportReplication,omitempty"`
	SupportClustering             bool     `json:"supportClustering,omitempty"             yaml:"supportClustering,omitempty"`
	SupportedAlerts               []string `json:"supportedAlerts,omitempty"               yaml:"supportedAlerts,omitempty"`
	CustomerSupport               string   `json:"customerSupport,omitempty"               yaml:"customerSupport,omitempty"`
	Links                         Links    `json:"links,omitempty"                         yaml:"links,omitempty"`
}

// FixedSubscription represents an Essentials subscription.
type FixedSubscription struct {
	ID                  int     `json:"id"                            yaml:"id"`
	Name                string  `json:"name"                          yaml:"name"`
	Status              string  `json:"status,omitempty"              yaml:"status,omitempty"`
	PlanID              int     `json:"planId,omitempty"              yaml:"planId,omitempty"`
	PlanName            string  `json:"plan,omitempty"                yaml:"plan,omitempty"`
	Size                float64 `json:"size,omitempty"                yaml:"size,omitempty"`
	SizeMeasurementUnit string  `json:"sizeMeasurementUnit,omitempty" yaml:"sizeMeasurementUnit,omitempty"`
	Provider            string  `json:"provider,omitempty"            yaml:"provider,omitempty"`
	Region              string  `json:"region,omitempty"              yaml:"region,omitempty"`
	Price               float64 `json:"price,omitempty"               yaml:"price,omitempty"`
	PriceCurrency       string  `json:"priceCurrency,omitempty"       yaml:"priceCurrency,omitempty"`
	PricePeriod         string  `json:"pricePeriod,omitempty"         yaml:"pricePeriod,omitempty"`
	PaymentMethodID     int     `json:"paymentMethodId,omitempty"     yaml:"paymentMethodId,omitempty"`
	PaymentMethodType   string  `json:"paymentMethodType,omitempty"   yaml:"paymentMethodType,omitempty"`
	CreationDate        string  `json:"creationDate,omitempty"        yaml:"creationDate,omitempty"`
	Links               Links   `json:"links,omitempty"               yaml:"links,omitempty"`
}

// FixedSubscriptionCreateRequest represents a request to create an Essentials
// subscription.
type FixedSubscriptionCreateRequest struct {
	Name            string `json:"name"                      yaml:"name"`
	PlanID          int    `json:"planId"                    yaml:"planId"`
	PaymentMethod   string `json:"paymentMethod,omitempty"   yaml:"paymentMethod,omitempty"`
	PaymentMethodID int    `json:"paymentMethodId,omitempty" yaml:"paymentMethodId,omitempty"`
}

// FixedSubscriptionUpdateRequest represents a request to update an Essentials
// subscription. A PlanID change resizes the subscription.
type FixedSubscriptionUpdateRequest struct {
	Name            *string `json:"name,omitempty"            yaml:"name,omitempty"`
	PlanID          *int    `json:"planId,omitempty"          yaml:"planId,omitempty"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"   yaml:"paymentMethod,omitempty"`
	PaymentMethodID *int    `json:"paymentMethodId,omitempty" yaml:"paymentMethodId,omitempty"`
}

// FixedDatabase represents a database inside an Essentials subscription.
type FixedDatabase struct {
	DatabaseID                 int                   `json:"databaseId"                           yaml:"databaseId"`
	Name                       string                `json:"name"                                 yaml:"name"`
	Protocol                   string                `json:"protocol,omitempty"                   yaml:"protocol,omitempty"`
	Provider                   string                `json:"provider,omitempty"                   yaml:"provider,omitempty"`
	Region                     string                `json:"region,omitempty"                     yaml:"region,omitempty"`
	Status                     string                `json:"status,omitempty"                     yaml:"status,omitempty"`
	PlanMemoryLimit            float64               `json:"planMemoryLimit,omitempty"            yaml:"planMemoryLimit,omitempty"`
	MemoryLimitMeasurementUnit string                `json:"memoryLimitMeasurementUnit,omitempty" yaml:"memoryLimitMeasurementUnit,omitempty"`
	MemoryUsedInMB             float64               `json:"memoryUsedInMb,omitempty"             yaml:"memoryUsedInMb,omitempty"`
	RespVersion                string                `json:"respVersion,omitempty"                yaml:"respVersion,omitempty"`
	DataPersistence            string                `json:"dataPersistence,omitempty"            yaml:"dataPersistence,omitempty"`
	DataEvictionPolicy         string                `json:"dataEvictionPolicy,omitempty"         yaml:"dataEvictionPolicy,omitempty"`
	Replication                bool                  `json:"replication,omitempty"                yaml:"replication,omitempty"`
	ActivatedOn                string                `json:"activatedOn,omitempty"                yaml:"activatedOn,omitempty"`
	PublicEndpoint             string                `json:"publicEndpoint,omitempty"             yaml:"publicEndpoint,omitempty"`
	PrivateEndpoint            string                `json:"privateEndpoint,omitempty"            yaml:"privateEndpoint,omitempty"`
	Modules                    []DatabaseModuleSpec  `json:"modules,omitempty"                    yaml:"modules,omitempty"`
	Alerts                     []DatabaseAlert       `json:"alerts,omitempty"                     yaml:"alerts,omitempty"`
	Security                   *DatabaseSecurity     `json:"security,omitempty"                   yaml:"security,omitempty"`
	Backup                     *DatabaseBackupConfig `json:"backup,omitempty"                     yaml:"backup,omitempty"`
	Links                      Links                 `json:"links,omitempty"                      yaml:"links,omitempty"`
}

// FixedDatabaseCreateRequest represents a request to create an Essentials
// database.
type FixedDatabaseCreateRequest struct {
	Name               string               `json:"name"                         yaml:"name"`
	Protocol           string               `json:"protocol,omitempty"           yaml:"protocol,omitempty"`
	RespVersion        string               `json:"respVersion,omitempty"        yaml:"respVersion,omitempty"`
	DataPersistence    string               `json:"dataPersistence,omitempty"    yaml:"dataPersistence,omitempty"`
	DataEvictionPolicy string               `json:"dataEvictionPolicy,omitempty" yaml:"dataEvictionPolicy,omitempty"`
	Replication        *bool                `json:"replication,omitempty"        yaml:"replication,omitempty"`
	PeriodicBackupPath string               `json:"periodicBackupPath,omitempty" yaml:"periodicBackupPath,omitempty"`
	SourceIPs          []string             `json:"sourceIps,omitempty"          yaml:"sourceIps,omitempty"`
	Modules            []DatabaseModuleSpec `json:"modules,omitempty"            yaml:"modules,omitempty"`
	Alerts             []DatabaseAlert      `json:"alerts,omitempty"             yaml:"alerts,omitempty"`
	EnableDefaultUser  *bool                `json:"enableDefaultUser,omitempty"  yaml:"enableDefaultUser,omitempty"`
	Password           string               `json:"password,omitempty"           yaml:"password,omitempty"`
	EnableTLS          *bool                `json:"enableTls,omitempty"          yaml:"enableTls,omitempty"`
}

// FixedDatabaseUpdateRequest represents a request to update an Essentials
// database. Nil fields are left unchanged.
type FixedDatabaseUpdateRequest struct {
	Name               *string         `json:"name,omitempty"               yaml:"name,omitempty"`
	RespVersion        *string         `json:"respVersion,omitempty"        yaml:"respVersion,omitempty"`
	DataPersistence    *string         `json:"dataPersistence,omitempty"    yaml:"dataPersistence,omitempty"`
	DataEvictionPolicy *string         `json:"dataEvictionPolicy,omitempty" yaml:"dataEvictionPolicy,omitempty"`
	Replication        *bool           `json:"replication,omitempty"        yaml:"replication,omitempty"`
	PeriodicBackupPath *string         `json:"periodicBackupPath,omitempty" yaml:"periodicBackupPath,omitempty"`
	SourceIPs          []string        `json:"sourceIps,omitempty"          yaml:"sourceIps,omitempty"`
	Alerts             []DatabaseAlert `json:"alerts,omitempty"             yaml:"alerts,omitempty"`
	EnableDefaultUser  *bool           `json:"enableDefaultUser,omitempty"  yaml:"enableDefaultUser,omitempty"`
	Password           *string         `json:"password,omitempty"           yaml:"password,omitempty"`
	EnableTLS          *bool           `json:"enableTls,omitempty"          yaml:"enableTls,omitempty"`
}
