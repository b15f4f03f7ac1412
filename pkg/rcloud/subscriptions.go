package rcloud

import "context"

// SubscriptionsClient provides access to Pro subscription operations. All
// mutating operations are asynchronous and return a TaskStateUpdate; poll the
// task or use TasksClient.WaitForTask to observe completion.
type SubscriptionsClient interface {
	List(ctx context.Context) ([]Subscription, error)
	Get(ctx context.Context, subscriptionID int) (*Subscription, error)
	Create(ctx context.Context, request *SubscriptionCreateRequest) (*TaskStateUpdate, error)
	Update(ctx context.Context, subscriptionID int, request *SubscriptionUpdateRequest) (*TaskStateUpdate, error)
	Delete(ctx context.Context, subscriptionID int) (*TaskStateUpdate, error)

	GetCIDRAllowlist(ctx context.Context, subscriptionID int) (*CIDRAllowlist, error)
	UpdateCIDRAllowlist(ctx context.Context, subscriptionID int, request *CIDRAllowlistUpdateRequest) (*TaskStateUpdate, error)

	GetMaintenanceWindows(ctx context.Context, subscriptionID int) (*MaintenanceWindows, error)
	UpdateMaintenanceWindows(ctx context.Context, subscriptionID int, request *MaintenanceWindowsUpdateRequest) (*TaskStateUpdate, error)

	GetPricing(ctx context.Context, subscriptionID int) ([]SubscriptionPricing, error)
	ListRedisVersions(ctx context.Context, subscriptionID int) ([]RedisVersion, error)

	// Active-Active region management.
	ListActiveActiveRegions(ctx context.Context, subscriptionID int) ([]ActiveActiveRegion, error)
	AddActiveActiveRegion(ctx context.Context, subscriptionID int, request *ActiveActiveRegionCreateRequest) (*TaskStateUpdate, error)
	DeleteActiveActiveRegions(ctx context.Context, subscriptionID int, request *ActiveActiveRegionDeleteRequest) (*TaskStateUpdate, error)
}

// Subscription represents a Pro subscription.
type Subscription struct {
	ID                int                       `json:"id"                          yaml:"id"`
	Name              string                    `json:"name"                        yaml:"name"`
	Status            string                    `json:"status,omitempty"            yaml:"status,omitempty"`
	DeploymentType    string                    `json:"deploymentType,omitempty"    yaml:"deploymentType,omitempty"`
	PaymentMethodID   int                       `json:"paymentMethodId,omitempty"   yaml:"paymentMethodId,omitempty"`
	PaymentMethodType string                    `json:"paymentMethodType,omitempty" yaml:"paymentMethodType,omitempty"`
	MemoryStorage     string                    `json:"memoryStorage,omitempty"     yaml:"memoryStorage,omitempty"`
	NumberOfDatabases int                       `json:"numberOfDatabases,omitempty" yaml:"numberOfDatabases,omitempty"`
	CloudDetails      []SubscriptionCloudDetail `json:"cloudDetails,omitempty"      yaml:"cloudDetails,omitempty"`
	Links             Links                     `json:"links,omitempty"             yaml:"links,omitempty"`
}

// SubscriptionCloudDetail describes the provider placement of a subscription.
type SubscriptionCloudDetail struct {
	Provider       string                     `json:"provider,omitempty"       yaml:"provider,omitempty"`
	CloudAccountID int                        `json:"cloudAccountId,omitempty" yaml:"cloudAccountId,omitempty"`
	TotalSizeInGB  float64                    `json:"totalSizeInGb,omitempty"  yaml:"totalSizeInGb,omitempty"`
	Regions        []SubscriptionRegionDetail `json:"regions,omitempty"        yaml:"regions,omitempty"`
}

// SubscriptionRegionDetail describes one region within a cloud detail.
type SubscriptionRegionDetail struct {
	Region                     string                  `json:"region,omitempty"                     yaml:"region,omitempty"`
	MultipleAvailabilityZones  bool                    `json:"multipleAvailabilityZones,omitempty"  yaml:"multipleAvailabilityZones,omitempty"`
	PreferredAvailabilityZones []string                `json:"preferredAvailabilityZones,omitempty" yaml:"preferredAvailabilityZones,omitempty"`
	Networking                 *SubscriptionNetworking `json:"networking,omitempty"                 yaml:"networking,omitempty"`
}

// SubscriptionNetworking describes the VPC networking of a region.
type SubscriptionNetworking struct {
	DeploymentCIDR string `json:"deploymentCIDR,omitempty" yaml:"deploymentCIDR,omitempty"`
	VPCID          string `json:"vpcId,omitempty"          yaml:"vpcId,omitempty"`
	SubnetID       string `json:"subnetId,omitempty"       yaml:"subnetId,omitempty"`
}

// SubscriptionCreateRequest represents a request to create a subscription.
type SubscriptionCreateRequest struct {
	Name            string                          `json:"name,omitempty"            yaml:"name,omitempty"`
	DryRun          *bool                           `json:"dryRun,omitempty"          yaml:"dryRun,omitempty"`
	DeploymentType  string                          `json:"deploymentType,omitempty"  yaml:"deploymentType,omitempty"`
	PaymentMethod   string                          `json:"paymentMethod,omitempty"   yaml:"paymentMethod,omitempty"`
	PaymentMethodID int                             `json:"paymentMethodId,omitempty" yaml:"paymentMethodId,omitempty"`
	MemoryStorage   string                          `json:"memoryStorage,omitempty"   yaml:"memoryStorage,omitempty"`
	RedisVersion    string                          `json:"redisVersion,omitempty"    yaml:"redisVersion,omitempty"`
	CloudProviders  []SubscriptionCloudProviderSpec `json:"cloudProviders,omitempty"  yaml:"cloudProviders,omitempty"`
	Databases       []SubscriptionDatabaseSpec      `json:"databases,omitempty"       yaml:"databases,omitempty"`
}

// SubscriptionCloudProviderSpec specifies provider placement at creation.
type SubscriptionCloudProviderSpec struct {
	Provider       string                   `json:"provider,omitempty"       yaml:"provider,omitempty"`
	CloudAccountID int                      `json:"cloudAccountId,omitempty" yaml:"cloudAccountId,omitempty"`
	Regions        []SubscriptionRegionSpec `json:"regions,omitempty"        yaml:"regions,omitempty"`
}

// SubscriptionRegionSpec specifies a region at creation.
type SubscriptionRegionSpec struct {
	Region                     string   `json:"region,omitempty"                     yaml:"region,omitempty"`
	MultipleAvailabilityZones  *bool    `json:"multipleAvailabilityZones,omitempty"  yaml:"multipleAvailabilityZones,omitempty"`
	PreferredAvailabilityZones []string `json:"preferredAvailabilityZones,omitempty" yaml:"preferredAvailabilityZones,omitempty"`
	DeploymentCIDR             string   `json:"deploymentCIDR,omitempty"             yaml:"deploymentCIDR,omitempty"`
	NetworkingVPCID            string   `json:"networkingVpcId,omitempty"            yaml:"networkingVpcId,omitempty"`
}

// SubscriptionDatabaseSpec sizes the initial databases of a new subscription.
// It drives capacity planning only; databases are managed afterwards
// through DatabasesClient.
type SubscriptionDatabaseSpec struct {
	Name                   string                 `json:"name,omitempty"                   yaml:"name,omitempty"`
	Protocol               string                 `json:"protocol,omitempty"               yaml:"protocol,omitempty"`
	DatasetSizeInGB        float64                `json:"datasetSizeInGb,omitempty"        yaml:"datasetSizeInGb,omitempty"`
	MemoryLimitInGB        float64                `json:"memoryLimitInGb,omitempty"        yaml:"memoryLimitInGb,omitempty"`
	SupportOSSClusterAPI   *bool                  `json:"supportOSSClusterApi,omitempty"   yaml:"supportOSSClusterApi,omitempty"`
	DataPersistence        string                 `json:"dataPersistence,omitempty"        yaml:"dataPersistence,omitempty"`
	Replication            *bool                  `json:"replication,omitempty"            yaml:"replication,omitempty"`
	ThroughputMeasurement  *ThroughputMeasurement `json:"throughputMeasurement,omitempty"  yaml:"throughputMeasurement,omitempty"`
	Modules                []DatabaseModuleSpec   `json:"modules,omitempty"                yaml:"modules,omitempty"`
	Quantity               int                    `json:"quantity,omitempty"               yaml:"quantity,omitempty"`
	AverageItemSizeInBytes int                    `json:"averageItemSizeInBytes,omitempty" yaml:"averageItemSizeInBytes,omitempty"`
}

// SubscriptionUpdateRequest represents a request to update a subscription.
type SubscriptionUpdateRequest struct {
	Name            *string `json:"name,omitempty"            yaml:"name,omitempty"`
	PaymentMethodID *int    `json:"paymentMethodId,omitempty" yaml:"paymentMethodId,omitempty"`
}

// CIDRAllowlist represents the CIDR allowlist of a subscription.
type CIDRAllowlist struct {
	CIDRIPs          []string `json:"cidr_ips,omitempty"           yaml:"cidr_ips,omitempty"`
	SecurityGroupIDs []string `json:"security_group_ids,omitempty" yaml:"security_group_ids,omitempty"`
	Errors           []string `json:"errors,omitempty"             yaml:"errors,omitempty"`
	Links            Links    `json:"links,omitempty"              yaml:"links,omitempty"`
}

// CIDRAllowlistUpdateRequest replaces the CIDR allowlist of a subscription.
type CIDRAllowlistUpdateRequest struct {
	CIDRIPs          []string `json:"cidrIps,omitempty"          yaml:"cidrIps,omitempty"`
	SecurityGroupIDs []string `json:"securityGroupIds,omitempty" yaml:"securityGroupIds,omitempty"`
}

// MaintenanceWindows represents the maintenance window configuration of a
// subscription.
type MaintenanceWindows struct {
	Mode    string              `json:"mode,omitempty"    yaml:"mode,omitempty"`
	Windows []MaintenanceWindow `json:"windows,omitempty" yaml:"windows,omitempty"`
	Links   Links               `json:"links,omitempty"   yaml:"links,omitempty"`
}

// MaintenanceWindow is one recurring maintenance slot.
type MaintenanceWindow struct {
	Days            []string `json:"days,omitempty"  yaml:"days,omitempty"`
	StartHour       int      `json:"startHour"       yaml:"startHour"`
	DurationInHours int      `json:"durationInHours" yaml:"durationInHours"`
}

// MaintenanceWindowsUpdateRequest replaces the maintenance window
// configuration. Mode is "automatic" or "manual"; Windows is required for
// manual mode.
type MaintenanceWindowsUpdateRequest struct {
	Mode    string              `json:"mode"              yaml:"mode"`
	Windows []MaintenanceWindow `json:"windows,omitempty" yaml:"windows,omitempty"`
}

// SubscriptionPricing is one line of a subscription's pricing breakdown.
type SubscriptionPricing struct {
	Type            string  `json:"type,omitempty"                yaml:"type,omitempty"`
	TypeDetails     string  `json:"typeDetails,omitempty"         yaml:"typeDetails,omitempty"`
	Quantity        int     `json:"quantity,omitempty"            yaml:"quantity,omitempty"`
	QuantityMeasure string  `json:"quantityMeasurement,omitempty" yaml:"quantityMeasurement,omitempty"`
	PricePerUnit    float64 `json:"pricePerUnit,omitempty"        yaml:"pricePerUnit,omitempty"`
	PriceCurrency   string  `json:"priceCurrency,omitempty"       yaml:"priceCurrency,omitempty"`
	PricePeriod     string  `json:"pricePeriod,omitempty"         yaml:"pricePeriod,omitempty"`
	Region          string  `json:"region,omitempty"              yaml:"region,omitempty"`
}

// RedisVersion is one entry of the available Redis versions catalog.
type RedisVersion struct {
	Version   string `json:"version"             yaml:"version"`
	IsDefault bool   `json:"isDefault,omitempty" yaml:"isDefault,omitempty"`
	EOLDate   string `json:"eolDate,omitempty"   yaml:"eolDate,omitempty"`
}

// ActiveActiveRegion is one region of an Active-Active subscription.
type ActiveActiveRegion struct {
	RegionID       int                          `json:"regionId,omitempty"       yaml:"regionId,omitempty"`
	Region         string                       `json:"region,omitempty"         yaml:"region,omitempty"`
	DeploymentCIDR string                       `json:"deploymentCidr,omitempty" yaml:"deploymentCidr,omitempty"`
	VPCID          string                       `json:"vpcId,omitempty"          yaml:"vpcId,omitempty"`
	Databases      []ActiveActiveRegionDatabase `json:"databases,omitempty"      yaml:"databases,omitempty"`
}

// ActiveActiveRegionDatabase describes a database's presence in one region.
type ActiveActiveRegionDatabase struct {
	DatabaseID                 int    `json:"databaseId,omitempty"                 yaml:"databaseId,omitempty"`
	DatabaseName               string `json:"databaseName,omitempty"               yaml:"databaseName,omitempty"`
	ReadOperationsPerSecond    int    `json:"readOperationsPerSecond,omitempty"    yaml:"readOperationsPerSecond,omitempty"`
	WriteOperationsPerSecond   int    `json:"writeOperationsPerSecond,omitempty"   yaml:"writeOperationsPerSecond,omitempty"`
	LocalThroughputMeasurement string `json:"localThroughputMeasurement,omitempty" yaml:"localThroughputMeasurement,omitempty"`
}

// ActiveActiveRegionCreateRequest adds a region to an Active-Active
// subscription.
type ActiveActiveRegionCreateRequest struct {
	Region         string                           `json:"region"              yaml:"region"`
	DeploymentCIDR string                           `json:"deploymentCidr"      yaml:"deploymentCidr"`
	DryRun         *bool                            `json:"dryRun,omitempty"    yaml:"dryRun,omitempty"`
	Databases      []ActiveActiveRegionDatabaseSpec `json:"databases,omitempty" yaml:"databases,omitempty"`
}

// ActiveActiveRegionDatabaseSpec sizes one database in a new region.
type ActiveActiveRegionDatabaseSpec struct {
	Name                       string           `json:"name,omitempty"                       yaml:"name,omitempty"`
	LocalThroughputMeasurement *LocalThroughput `json:"localThroughputMeasurement,omitempty" yaml:"localThroughputMeasurement,omitempty"`
}

// ActiveActiveRegionDeleteRequest removes regions from an Active-Active
// subscription.
type ActiveActiveRegionDeleteRequest struct {
	Regions []ActiveActiveRegionRef `json:"regions" yaml:"regions"`
}

// ActiveActiveRegionRef names one region to delete.
type ActiveActiveRegionRef struct {
	Region string `json:"region" yaml:"region"`
}
