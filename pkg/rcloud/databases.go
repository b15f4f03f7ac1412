package rcloud

import "context"

// DatabasesClient provides access to Pro database operations. Mutating
// operations return a TaskStateUpdate.
type DatabasesClient interface {
	List(ctx context.Context, subscriptionID int, params *QueryParams) ([]Database, error)
	Get(ctx context.Context, subscriptionID, databaseID int) (*Database, error)
	Create(ctx context.Context, subscriptionID int, request *DatabaseCreateRequest) (*TaskStateUpdate, error)
	Update(ctx context.Context, subscriptionID, databaseID int, request *DatabaseUpdateRequest) (*TaskStateUpdate, error)
	Delete(ctx context.Context, subscriptionID, databaseID int) (*TaskStateUpdate, error)

	Backup(ctx context.Context, subscriptionID, databaseID int, request *DatabaseBackupRequest) (*TaskStateUpdate, error)
	GetBackupStatus(ctx context.Context, subscriptionID, databaseID int) (*TaskStateUpdate, error)
	Import(ctx context.Context, subscriptionID, databaseID int, request *DatabaseImportRequest) (*TaskStateUpdate, error)
	GetCertificate(ctx context.Context, subscriptionID, databaseID int) (*DatabaseCertificate, error)
	ListSlowLog(ctx context.Context, subscriptionID, databaseID int, params *QueryParams) ([]SlowLogEntry, error)

	// Version management.
	ListAvailableVersions(ctx context.Context, subscriptionID, databaseID int) ([]RedisVersion, error)
	Upgrade(ctx context.Context, subscriptionID, databaseID int, request *DatabaseUpgradeRequest) (*TaskStateUpdate, error)
	GetUpgradeStatus(ctx context.Context, subscriptionID, databaseID int) (*TaskStateUpdate, error)

	// Active-Active local configuration.
	Flush(ctx context.Context, subscriptionID, databaseID int) (*TaskStateUpdate, error)
	UpdateRegions(ctx context.Context, subscriptionID, databaseID int, request *DatabaseRegionsUpdateRequest) (*TaskStateUpdate, error)

	// Tag management.
	ListTags(ctx context.Context, subscriptionID, databaseID int) (*Tags, error)
	AddTag(ctx context.Context, subscriptionID, databaseID int, tag *TagCreateRequest) (*Tag, error)
	ReplaceTags(ctx context.Context, subscriptionID, databaseID int, request *TagsUpdateRequest) (*Tags, error)
	UpdateTag(ctx context.Context, subscriptionID, databaseID int, key string, value string) (*Tag, error)
	DeleteTag(ctx context.Context, subscriptionID, databaseID int, key string) error
}

// Database represents a Pro database.
type Database struct {
	DatabaseID             int                    `json:"databaseId"                       yaml:"databaseId"`
	Name                   string                 `json:"name"                             yaml:"name"`
	Protocol               string                 `json:"protocol,omitempty"               yaml:"protocol,omitempty"`
	Provider               string                 `json:"provider,omitempty"               yaml:"provider,omitempty"`
	Region                 string                 `json:"region,omitempty"                 yaml:"region,omitempty"`
	RedisVersionCompliance string                 `json:"redisVersionCompliance,omitempty" yaml:"redisVersionCompliance,omitempty"`
	Status                 string                 `json:"status,omitempty"                 yaml:"status,omitempty"`
	DatasetSizeInGB        float64                `json:"datasetSizeInGb,omitempty"        yaml:"datasetSizeInGb,omitempty"`
	MemoryLimitInGB        float64                `json:"memoryLimitInGb,omitempty"        yaml:"memoryLimitInGb,omitempty"`
	MemoryUsedInMB         float64                `json:"memoryUsedInMb,omitempty"         yaml:"memoryUsedInMb,omitempty"`
	SupportOSSClusterAPI   bool                   `json:"supportOSSClusterApi,omitempty"   yaml:"supportOSSClusterApi,omitempty"`
	RespVersion            string                 `json:"respVersion,omitempty"            yaml:"respVersion,omitempty"`
	DataPersistence        string                 `json:"dataPersistence,omitempty"        yaml:"dataPersistence,omitempty"`
	DataEvictionPolicy     string                 `json:"dataEvictionPolicy,omitempty"     yaml:"dataEvictionPolicy,omitempty"`
	Replication            bool                   `json:"replication,omitempty"            yaml:"replication,omitempty"`
	ThroughputMeasurement  *ThroughputMeasurement `json:"throughputMeasurement,omitempty"  yaml:"throughputMeasurement,omitempty"`
	ActivatedOn            string                 `json:"activatedOn,omitempty"            yaml:"activatedOn,omitempty"`
	LastModified           string                 `json:"lastModified,omitempty"           yaml:"lastModified,omitempty"`
	PublicEndpoint         string                 `json:"publicEndpoint,omitempty"         yaml:"publicEndpoint,omitempty"`
	PrivateEndpoint        string                 `json:"privateEndpoint,omitempty"        yaml:"privateEndpoint,omitempty"`
	Clustering             *DatabaseClustering    `json:"clustering,omitempty"             yaml:"clustering,omitempty"`
	Security               *DatabaseSecurity      `json:"security,omitempty"               yaml:"security,omitempty"`
	Modules                []DatabaseModuleSpec   `json:"modules,omitempty"                yaml:"modules,omitempty"`
	Alerts                 []DatabaseAlert        `json:"alerts,omitempty"                 yaml:"alerts,omitempty"`
	Backup                 *DatabaseBackupConfig  `json:"backup,omitempty"                 yaml:"backup,omitempty"`
	Links                  Links                  `json:"links,omitempty"                  yaml:"links,omitempty"`
}

// ThroughputMeasurement sizes database throughput, by
// "operations-per-second" or "number-of-shards".
type ThroughputMeasurement struct {
	By    string `json:"by"    yaml:"by"`
	Value int    `json:"value" yaml:"value"`
}

// LocalThroughput sizes per-region throughput of an Active-Active database.
type LocalThroughput struct {
	Region                   string `json:"region,omitempty"                   yaml:"region,omitempty"`
	ReadOperationsPerSecond  int    `json:"readOperationsPerSecond,omitempty"  yaml:"readOperationsPerSecond,omitempty"`
	WriteOperationsPerSecond int    `json:"writeOperationsPerSecond,omitempty" yaml:"writeOperationsPerSecond,omitempty"`
}

// DatabaseClustering represents clustering configuration.
type DatabaseClustering struct {
	NumberOfShards int                 `json:"numberOfShards,omitempty" yaml:"numberOfShards,omitempty"`
	RegexRules     []DatabaseRegexRule `json:"regexRules,omitempty"     yaml:"regexRules,omitempty"`
	HashingPolicy  string              `json:"hashingPolicy,omitempty"  yaml:"hashingPolicy,omitempty"`
}

// DatabaseRegexRule is one key hashing rule.
type DatabaseRegexRule struct {
	Ordinal int    `json:"ordinal" yaml:"ordinal"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

// DatabaseSecurity represents database security settings.
type DatabaseSecurity struct {
	EnableDefaultUser       bool     `json:"enableDefaultUser,omitempty"       yaml:"enableDefaultUser,omitempty"`
	Password                string   `json:"password,omitempty"                yaml:"password,omitempty"`
	SSLClientAuthentication bool     `json:"sslClientAuthentication,omitempty" yaml:"sslClientAuthentication,omitempty"`
	TLSClientAuthentication bool     `json:"tlsClientAuthentication,omitempty" yaml:"tlsClientAuthentication,omitempty"`
	EnableTLS               bool     `json:"enableTls,omitempty"               yaml:"enableTls,omitempty"`
	SourceIPs               []string `json:"sourceIps,omitempty"               yaml:"sourceIps,omitempty"`
}

// DatabaseModuleSpec enables a module on a database.
type DatabaseModuleSpec struct {
	Name       string                 `json:"name"                 yaml:"name"`
	Parameters map[string]interface{} `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// DatabaseAlert configures one metric alert.
type DatabaseAlert struct {
	Name  string `json:"name"  yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// DatabaseBackupConfig represents remote backup configuration.
type DatabaseBackupConfig struct {
	Active      bool   `json:"active,omitempty"      yaml:"active,omitempty"`
	Interval    string `json:"interval,omitempty"    yaml:"interval,omitempty"`
	TimeUTC     string `json:"timeUTC,omitempty"     yaml:"timeUTC,omitempty"`
	StorageType string `json:"storageType,omitempty" yaml:"storageType,omitempty"`
	StoragePath string `json:"storagePath,omitempty" yaml:"storagePath,omitempty"`
}

// DatabaseCreateRequest represents a request to create a database.
type DatabaseCreateRequest struct {
	Name                                string                 `json:"name"                                          yaml:"name"`
	DryRun                              *bool                  `json:"dryRun,omitempty"                              yaml:"dryRun,omitempty"`
	Protocol                            string                 `json:"protocol,omitempty"                            yaml:"protocol,omitempty"`
	Port                                int                    `json:"port,omitempty"                                yaml:"port,omitempty"`
	DatasetSizeInGB                     float64                `json:"datasetSizeInGb,omitempty"                     yaml:"datasetSizeInGb,omitempty"`
	MemoryLimitInGB                     float64                `json:"memoryLimitInGb,omitempty"                     yaml:"memoryLimitInGb,omitempty"`
	SupportOSSClusterAPI                *bool                  `json:"supportOSSClusterApi,omitempty"                yaml:"supportOSSClusterApi,omitempty"`
	RespVersion                         string                 `json:"respVersion,omitempty"                         yaml:"respVersion,omitempty"`
	UseExternalEndpointForOSSClusterAPI *bool                  `json:"useExternalEndpointForOSSClusterApi,omitempty" yaml:"useExternalEndpointForOSSClusterApi,omitempty"`
	DataPersistence                     string                 `json:"dataPersistence,omitempty"                     yaml:"dataPersistence,omitempty"`
	DataEvictionPolicy                  string                 `json:"dataEvictionPolicy,omitempty"                  yaml:"dataEvictionPolicy,omitempty"`
	Replication                         *bool                  `json:"replication,omitempty"                         yaml:"replication,omitempty"`
	ReplicaOf                           []string               `json:"replicaOf,omitempty"                           yaml:"replicaOf,omitempty"`
	ThroughputMeasurement               *ThroughputMeasurement `json:"throughputMeasurement,omitempty"               yaml:"throughputMeasurement,omitempty"`
	LocalThroughputMeasurement          []LocalThroughput      `json:"localThroughputMeasurement,omitempty"          yaml:"localThroughputMeasurement,omitempty"`
	AverageItemSizeInBytes              int                    `json:"averageItemSizeInBytes,omitempty"              yaml:"averageItemSizeInBytes,omitempty"`
	Modules                             []DatabaseModuleSpec   `json:"modules,omitempty"                             yaml:"modules,omitempty"`
	Alerts                              []DatabaseAlert        `json:"alerts,omitempty"                              yaml:"alerts,omitempty"`
	Security                            *DatabaseSecurity      `json:"security,omitempty"                            yaml:"security,omitempty"`
	Clustering                          *DatabaseClustering    `json:"clustering,omitempty"                          yaml:"clustering,omitempty"`
	Backup                              *DatabaseBackupConfig  `json:"backup,omitempty"                              yaml:"backup,omitempty"`
	SourceIP                            []string               `json:"sourceIp,omitempty"                            yaml:"sourceIp,omitempty"`
	EnableTLS                           *bool                  `json:"enableTls,omitempty"                           yaml:"enableTls,omitempty"`
	Password                            string                 `json:"password,omitempty"                            yaml:"password,omitempty"`
	QueryPerformanceFactor              string                 `json:"queryPerformanceFactor,omitempty"              yaml:"queryPerformanceFactor,omitempty"`
}

// DatabaseUpdateRequest represents a request to update a database. Nil fields
// are left unchanged.
type DatabaseUpdateRequest struct {
	Name                   *string                `json:"name,omitempty"                   yaml:"name,omitempty"`
	DatasetSizeInGB        *float64               `json:"datasetSizeInGb,omitempty"        yaml:"datasetSizeInGb,omitempty"`
	MemoryLimitInGB        *float64               `json:"memoryLimitInGb,omitempty"        yaml:"memoryLimitInGb,omitempty"`
	SupportOSSClusterAPI   *bool                  `json:"supportOSSClusterApi,omitempty"   yaml:"supportOSSClusterApi,omitempty"`
	RespVersion            *string                `json:"respVersion,omitempty"            yaml:"respVersion,omitempty"`
	DataPersistence        *string                `json:"dataPersistence,omitempty"        yaml:"dataPersistence,omitempty"`
	DataEvictionPolicy     *string                `json:"dataEvictionPolicy,omitempty"     yaml:"dataEvictionPolicy,omitempty"`
	Replication            *bool                  `json:"replication,omitempty"            yaml:"replication,omitempty"`
	ReplicaOf              []string               `json:"replicaOf,omitempty"              yaml:"replicaOf,omitempty"`
	ThroughputMeasurement  *ThroughputMeasurement `json:"throughputMeasurement,omitempty"  yaml:"throughputMeasurement,omitempty"`
	Alerts                 []DatabaseAlert        `json:"alerts,omitempty"                 yaml:"alerts,omitempty"`
	Security               *DatabaseSecurity      `json:"security,omitempty"               yaml:"security,omitempty"`
	Clustering             *DatabaseClustering    `json:"clustering,omitempty"             yaml:"clustering,omitempty"`
	Backup                 *DatabaseBackupConfig  `json:"backup,omitempty"                 yaml:"backup,omitempty"`
	EnableTLS              *bool                  `json:"enableTls,omitempty"              yaml:"enableTls,omitempty"`
	Password               *string                `json:"password,omitempty"               yaml:"password,omitempty"`
	QueryPerformanceFactor *string                `json:"queryPerformanceFactor,omitempty" yaml:"queryPerformanceFactor,omitempty"`
}

// DatabaseBackupRequest triggers a manual backup. RegionName is only relevant
// for Active-Active databases.
type DatabaseBackupRequest struct {
	RegionName      string `json:"regionName,omitempty"      yaml:"regionName,omitempty"`
	AdhocBackupPath string `json:"adhocBackupPath,omitempty" yaml:"adhocBackupPath,omitempty"`
}

// DatabaseImportRequest imports a dataset from external storage.
type DatabaseImportRequest struct {
	SourceType    string   `json:"sourceType"    yaml:"sourceType"`
	ImportFromURI []string `json:"importFromUri" yaml:"importFromUri"`
}

// DatabaseCertificate carries the TLS certificate of a database requiring
// client authentication.
type DatabaseCertificate struct {
	PublicCertificatePEMString string `json:"publicCertificatePEMString" yaml:"publicCertificatePEMString"`
}

// SlowLogEntry is one slow-log record.
type SlowLogEntry struct {
	ID       int    `json:"id"                   yaml:"id"`
	Time     string `json:"time,omitempty"       yaml:"time,omitempty"`
	Duration int    `json:"durationUs,omitempty" yaml:"durationUs,omitempty"`
	Command  string `json:"command,omitempty"    yaml:"command,omitempty"`
}

// DatabaseUpgradeRequest upgrades the Redis version of a database.
type DatabaseUpgradeRequest struct {
	TargetRedisVersion string `json:"targetRedisVersion" yaml:"targetRedisVersion"`
}

// DatabaseRegionsUpdateRequest updates per-region properties of an
// Active-Active database.
type DatabaseRegionsUpdateRequest struct {
	Regions []DatabaseRegionProperties `json:"regions" yaml:"regions"`
}

// DatabaseRegionProperties carries the per-region override set.
type DatabaseRegionProperties struct {
	Region                     string                `json:"region"                               yaml:"region"`
	LocalThroughputMeasurement *LocalThroughput      `json:"localThroughputMeasurement,omitempty" yaml:"localThroughputMeasurement,omitempty"`
	DataPersistence            string                `json:"dataPersistence,omitempty"            yaml:"dataPersistence,omitempty"`
	Password                   string                `json:"password,omitempty"                   yaml:"password,omitempty"`
	SourceIP                   []string              `json:"sourceIp,omitempty"                   yaml:"sourceIp,omitempty"`
	RemoteBackup               *DatabaseBackupConfig `json:"remoteBackup,omitempty"               yaml:"remoteBackup,omitempty"`
}

// TagCreateRequest adds one tag to a database.
type TagCreateRequest struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// TagsUpdateRequest replaces the whole tag set of a database.
type TagsUpdateRequest struct {
	Tags []TagCreateRequest `json:"tags" yaml:"tags"`
}
