package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// NewDatabasesCommand creates the databases command group.
func NewDatabasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "databases",
		Aliases: []string{"dbs", "database"},
		Short:   "Manage databases",
		Long:    "List, create, update, and delete databases inside Pro subscriptions",
	}

	cmd.AddCommand(newDatabasesListCommand())
	cmd.AddCommand(newDatabasesGetCommand())
	cmd.AddCommand(newDatabasesCreateCommand())
	cmd.AddCommand(newDatabasesUpdateCommand())
	cmd.AddCommand(newDatabasesDeleteCommand())
	cmd.AddCommand(newDatabasesBackupCommand())
	cmd.AddCommand(newDatabasesImportCommand())
	cmd.AddCommand(newDatabasesFlushCommand())
	cmd.AddCommand(newDatabasesUpgradeCommand())
	cmd.AddCommand(newDatabasesVersionsCommand())
	cmd.AddCommand(newDatabasesCertificateCommand())
	cmd.AddCommand(newDatabasesSlowLogCommand())
	cmd.AddCommand(newDatabasesTagsCommand())

	return cmd
}

// databaseArgs parses the SUBSCRIPTION_ID DATABASE_ID positional pair.
func databaseArgs(args []string) (int, int, error) {
	subscriptionID, err := parseID(args[0], ErrSubscriptionIDRequired)
	if err != nil {
		return 0, 0, err
	}

	databaseID, err := parseID(args[1], ErrDatabaseIDRequired)
	if err != nil {
		return 0, 0, err
	}

	return subscriptionID, databaseID, nil
}

func newDatabasesListCommand() *cobra.Command {
	var (
		offset int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list SUBSCRIPTION_ID",
		Short: "List databases in a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], ErrSubscriptionIDRequired)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := rcloud.NewQueryParams().WithOffset(offset).WithLimit(limit)

			databases, err := client.Databases().List(context.Background(), subscriptionID, params)
			if err != nil {
				return fmt.Errorf("failed to list databases: %w", err)
			}

			return RenderOutput(databases, renderDatabaseTable)
		},
	}

	addPagingFlags(cmd, &offset, &limit)

	return cmd
}

func renderDatabaseTable(databases []rcloud.Database) error {
	if len(databases) == 0 {
		_, _ = os.Stdout.WriteString("No databases found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Status", "Region", "Dataset (GB)", "Endpoint")

	for _, database := range databases {
		_ = table.Append(strconv.Itoa(database.DatabaseID), database.Name,
			database.Status, orNotAvailable(database.Region),
			strconv.FormatFloat(database.DatasetSizeInGB, 'f', -1, 64),
			orNotAvailable(database.PublicEndpoint))
	}

	_ = table.Render()

	return nil
}

func newDatabasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID DATABASE_ID",
		Short: "Get database details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			database, err := client.Databases().Get(context.Background(), subscriptionID, databaseID)
			if err != nil {
				return fmt.Errorf("failed to get database: %w", err)
			}

			return RenderOutput(database, renderDatabaseDetail)
		},
	}
}

func renderDatabaseDetail(database *rcloud.Database) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", strconv.Itoa(database.DatabaseID))
	_ = table.Append("Name", database.Name)
	_ = table.Append("Status", database.Status)
	_ = table.Append("Protocol", orNotAvailable(database.Protocol))
	_ = table.Append("Region", orNotAvailable(database.Region))
	_ = table.Append("Redis Version", orNotAvailable(database.RedisVersionCompliance))
	_ = table.Append("Dataset Size (GB)", strconv.FormatFloat(database.DatasetSizeInGB, 'f', -1, 64))
	_ = table.Append("Data Persistence", orNotAvailable(database.DataPersistence))
	_ = table.Append("Eviction Policy", orNotAvailable(database.DataEvictionPolicy))
	_ = table.Append("Replication", strconv.FormatBool(database.Replication))
	_ = table.Append("Public Endpoint", orNotAvailable(database.PublicEndpoint))
	_ = table.Append("Private Endpoint", orNotAvailable(database.PrivateEndpoint))

	if database.ThroughputMeasurement != nil {
		_ = table.Append("Throughput", fmt.Sprintf("%d %s",
			database.ThroughputMeasurement.Value, database.ThroughputMeasurement.By))
	}

	for _, module := range database.Modules {
		_ = table.Append("Module", module.Name)
	}

	_ = table.Render()

	return nil
}

func newDatabasesCreateCommand() *cobra.Command {
	var (
		name            string
		protocol        string
		datasetSizeGB   float64
		dataPersistence string
		replication     bool
		opsPerSecond    int
		modules         []string
		password        string
		dryRun          bool
		wait            bool
		timeout         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create SUBSCRIPTION_ID",
		Short: "Create a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], ErrSubscriptionIDRequired)
			if err != nil {
				return err
			}

			request := &rcloud.DatabaseCreateRequest{
				Name:            name,
				Protocol:        protocol,
				DatasetSizeInGB: datasetSizeGB,
				DataPersistence: dataPersistence,
				Replication:     &replication,
				Password:        password,
			}
			if opsPerSecond > 0 {
				request.ThroughputMeasurement = &rcloud.ThroughputMeasurement{
					By:    "operations-per-second",
					Value: opsPerSecond,
				}
			}

			for _, module := range modules {
				request.Modules = append(request.Modules, rcloud.DatabaseModuleSpec{Name: module})
			}

			if dryRun {
				request.DryRun = &dryRun
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Databases().Create(ctx, subscriptionID, request)
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "database name (required)")
	cmd.Flags().StringVar(&protocol, "protocol", "redis", "database protocol")
	cmd.Flags().Float64Var(&datasetSizeGB, "dataset-size-gb", 1, "dataset size in GB")
	cmd.Flags().StringVar(&dataPersistence, "data-persistence", "none", "data persistence mode")
	cmd.Flags().BoolVar(&replication, "replication", false, "enable in-region replication")
	cmd.Flags().IntVar(&opsPerSecond, "ops-per-second", 0, "throughput in operations per second")
	cmd.Flags().StringSliceVar(&modules, "module", nil, "capability module to enable (repeatable)")
	cmd.Flags().StringVar(&password, "password", "", "database password")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the request without creating anything")
	_ = cmd.MarkFlagRequired("name")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newDatabasesUpdateCommand() *cobra.Command {
	var (
		name            string
		datasetSizeGB   float64
		dataPersistence string
		evictionPolicy  string
		opsPerSecond    int
		wait            bool
		timeout         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "update SUBSCRIPTION_ID DATABASE_ID",
		Short: "Update a database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			request := &rcloud.DatabaseUpdateRequest{}
			if name != "" {
				request.Name = &name
			}

			if datasetSizeGB > 0 {
				request.DatasetSizeInGB = &datasetSizeGB
			}

			if dataPersistence != "" {
				request.DataPersistence = &dataPersistence
			}

			if evictionPolicy != "" {
				request.DataEvictionPolicy = &evictionPolicy
			}

			if opsPerSecond > 0 {
				request.ThroughputMeasurement = &rcloud.ThroughputMeasurement{
					By:    "operations-per-second",
					Value: opsPerSecond,
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Databases().Update(ctx, subscriptionID, databaseID, request)
			if err != nil {
				return fmt.Errorf("failed to update database: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new database name")
	cmd.Flags().Float64Var(&datasetSizeGB, "dataset-size-gb", 0, "new dataset size in GB")
	cmd.Flags().StringVar(&dataPersistence, "data-persistence", "", "new data persistence mode")
	cmd.Flags().StringVar(&evictionPolicy, "eviction-policy", "", "new data eviction policy")
	cmd.Flags().IntVar(&opsPerSecond, "ops-per-second", 0, "new throughput in operations per second")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newDatabasesDeleteCommand() *cobra.Command {
	var (
		force   bool
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delete SUBSCRIPTION_ID DATABASE_ID",
		Short: "Delete a database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			if !force && !confirmAction(fmt.Sprintf("Really delete database %d?", databaseID)) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Databases().Delete(ctx, subscriptionID, databaseID)
			if err != nil {
				return fmt.Errorf("failed to delete database: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newDatabasesBackupCommand() *cobra.Command {
	var (
		regionName string
		path       string
		wait       bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "backup SUBSCRIPTION_ID DATABASE_ID",
		Short: "Trigger a manual backup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Databases().Backup(ctx, subscriptionID, databaseID,
				&rcloud.DatabaseBackupRequest{RegionName: regionName, AdhocBackupPath: path})
			if err != nil {
				return fmt.Errorf("failed to trigger backup: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&regionName, "region", "", "region to back up (Active-Active only)")
	cmd.Flags().StringVar(&path, "path", "", "destination path overriding the configured backup storage")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newDatabasesImportCommand() *cobra.Command {
	var (
		sourceType string
		uris       []string
		wait       bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "import SUBSCRIPTION_ID DATABASE_ID",
		Short: "Import a dataset",
		Long:  "Import a dataset from external storage, replacing the database contents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Databases().Import(ctx, subscriptionID, databaseID,
				&rcloud.DatabaseImportRequest{SourceType: sourceType, ImportFromURI: uris})
			if err != nil {
				return fmt.Errorf("failed to import dataset: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&sourceType, "source-type", "", "source storage type, e.g. http, redis, aws-s3 (required)")
	cmd.Flags().StringSliceVar(&uris, "uri", nil, "source URI (repeatable, required)")
	_ = cmd.MarkFlagRequired("source-type")
	_ = cmd.MarkFlagRequired("uri")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newDatabasesFlushCommand() *cobra.Command {
	var (
		force   bool
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "flush SUBSCRIPTION_ID DATABASE_ID",
		Short: "Flush an Active-Active database",
		Long:  "Delete all data from an Active-Active database across all of its regions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			if !force && !confirmAction(fmt.Sprintf("Really flush all data from database %d?", databaseID)) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Databases().Flush(ctx, subscriptionID, databaseID)
			if err != nil {
				return fmt.Errorf("failed to flush database: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newDatabasesUpgradeCommand() *cobra.Command {
	var (
		targetVersion string
		wait          bool
		timeout       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "upgrade SUBSCRIPTION_ID DATABASE_ID",
		Short: "Upgrade the Redis version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Databases().Upgrade(ctx, subscriptionID, databaseID,
				&rcloud.DatabaseUpgradeRequest{TargetRedisVersion: targetVersion})
			if err != nil {
				return fmt.Errorf("failed to upgrade database: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&targetVersion, "target-version", "", "Redis version to upgrade to (required)")
	_ = cmd.MarkFlagRequired("target-version")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newDatabasesVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "versions SUBSCRIPTION_ID DATABASE_ID",
		Short: "List Redis versions the database can upgrade to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			versions, err := client.Databases().ListAvailableVersions(context.Background(), subscriptionID, databaseID)
			if err != nil {
				return fmt.Errorf("failed to list versions: %w", err)
			}

			return RenderOutput(versions, renderRedisVersionTable)
		},
	}
}

func newDatabasesCertificateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "certificate SUBSCRIPTION_ID DATABASE_ID",
		Short: "Get the TLS certificate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			certificate, err := client.Databases().GetCertificate(context.Background(), subscriptionID, databaseID)
			if err != nil {
				return fmt.Errorf("failed to get certificate: %w", err)
			}

			return RenderOutput(certificate, func(certificate *rcloud.DatabaseCertificate) error {
				_, _ = os.Stdout.WriteString(certificate.PublicCertificatePEMString)

				return nil
			})
		},
	}
}

func newDatabasesSlowLogCommand() *cobra.Command {
	var (
		offset int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "slowlog SUBSCRIPTION_ID DATABASE_ID",
		Short: "List slow-log entries",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := rcloud.NewQueryParams().WithOffset(offset).WithLimit(limit)

			entries, err := client.Databases().ListSlowLog(context.Background(), subscriptionID, databaseID, params)
			if err != nil {
				return fmt.Errorf("failed to list slow log: %w", err)
			}

			return RenderOutput(entries, renderSlowLogTable)
		},
	}

	addPagingFlags(cmd, &offset, &limit)

	return cmd
}

func renderSlowLogTable(entries []rcloud.SlowLogEntry) error {
	if len(entries) == 0 {
		_, _ = os.Stdout.WriteString("No slow-log entries found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Time", "Duration (us)", "Command")

	for _, entry := range entries {
		_ = table.Append(strconv.Itoa(entry.ID), entry.Time,
			strconv.Itoa(entry.Duration), entry.Command)
	}

	_ = table.Render()

	return nil
}

func newDatabasesTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage database tags",
	}

	cmd.AddCommand(newDatabasesTagsListCommand())
	cmd.AddCommand(newDatabasesTagsAddCommand())
	cmd.AddCommand(newDatabasesTagsSetCommand())
	cmd.AddCommand(newDatabasesTagsDeleteCommand())

	return cmd
}

func newDatabasesTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list SUBSCRIPTION_ID DATABASE_ID",
		Short: "List tags",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Databases().ListTags(context.Background(), subscriptionID, databaseID)
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			return RenderOutput(tags, renderTagsTable)
		},
	}
}

func renderTagsTable(tags *rcloud.Tags) error {
	if len(tags.Tags) == 0 {
		_, _ = os.Stdout.WriteString("No tags found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Key", "Value")

	for _, tag := range tags.Tags {
		_ = table.Append(tag.Key, tag.Value)
	}

	_ = table.Render()

	return nil
}

func newDatabasesTagsAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add SUBSCRIPTION_ID DATABASE_ID KEY VALUE",
		Short: "Add a tag",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Databases().AddTag(context.Background(), subscriptionID, databaseID,
				&rcloud.TagCreateRequest{Key: args[2], Value: args[3]})
			if err != nil {
				return fmt.Errorf("failed to add tag: %w", err)
			}

			return RenderOutput(tag, func(tag *rcloud.Tag) error {
				_, _ = fmt.Fprintf(os.Stdout, "Tag %s=%s added\n", tag.Key, tag.Value)

				return nil
			})
		},
	}
}

func newDatabasesTagsSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set SUBSCRIPTION_ID DATABASE_ID KEY VALUE",
		Short: "Update the value of a tag",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Databases().UpdateTag(context.Background(), subscriptionID, databaseID, args[2], args[3])
			if err != nil {
				return fmt.Errorf("failed to update tag: %w", err)
			}

			return RenderOutput(tag, func(tag *rcloud.Tag) error {
				_, _ = fmt.Fprintf(os.Stdout, "Tag %s=%s updated\n", tag.Key, tag.Value)

				return nil
			})
		},
	}
}

func newDatabasesTagsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SUBSCRIPTION_ID DATABASE_ID KEY",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Databases().DeleteTag(context.Background(), subscriptionID, databaseID, args[2])
			if err != nil {
				return fmt.Errorf("failed to delete tag: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Tag %s deleted\n", args[2])

			return nil
		},
	}
}
