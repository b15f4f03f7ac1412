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

// NewFixedCommand creates the Essentials (fixed) command group.
func NewFixedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fixed",
		Aliases: []string{"essentials"},
		Short:   "Manage Essentials subscriptions",
		Long:    "Browse Essentials plans and manage Essentials subscriptions and their databases",
	}

	cmd.AddCommand(newFixedPlansCommand())
	cmd.AddCommand(newFixedSubscriptionsCommand())
	cmd.AddCommand(newFixedDatabasesCommand())
	cmd.AddCommand(newFixedRedisVersionsCommand())

	return cmd
}

func newFixedPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Browse Essentials plans",
	}

	cmd.AddCommand(newFixedPlansListCommand())
	cmd.AddCommand(newFixedPlansGetCommand())

	return cmd
}

func newFixedPlansListCommand() *cobra.Command {
	var (
		provider       string
		subscriptionID int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Essentials plans",
		Long:  "List all Essentials plans, or the plans a subscription can move to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				plans   []rcloud.FixedPlan
				listErr error
			)
			if subscriptionID > 0 {
				plans, listErr = client.FixedSubscriptions().ListPlansForSubscription(ctx, subscriptionID)
			} else {
				plans, listErr = client.FixedSubscriptions().ListPlans(ctx, provider)
			}

			if listErr != nil {
				return fmt.Errorf("failed to list plans: %w", listErr)
			}

			return RenderOutput(plans, renderFixedPlanTable)
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "filter by cloud provider")
	cmd.Flags().IntVar(&subscriptionID, "subscription-id", 0, "list plans available to this subscription")

	return cmd
}

func renderFixedPlanTable(plans []rcloud.FixedPlan) error {
	if len(plans) == 0 {
		_, _ = os.Stdout.WriteString("No plans found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Provider", "Region", "Size", "Price")

	for _, plan := range plans {
		_ = table.Append(strconv.Itoa(plan.ID), plan.Name, plan.Provider, plan.Region,
			fmt.Sprintf("%g %s", plan.Size, plan.SizeMeasurementUnit),
			fmt.Sprintf("%.2f %s/%s", plan.Price, plan.PriceCurrency, plan.PricePeriod))
	}

	_ = table.Render()

	return nil
}

func newFixedPlansGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PLAN_ID",
		Short: "Get plan details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := parseID(args[0], ErrSubscriptionIDRequired)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			plan, err := client.FixedSubscriptions().GetPlan(context.Background(), planID)
			if err != nil {
				return fmt.Errorf("failed to get plan: %w", err)
			}

			return RenderOutput(plan, func(plan *rcloud.FixedPlan) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")

				_ = table.Append("ID", strconv.Itoa(plan.ID))
				_ = table.Append("Name", plan.Name)
				_ = table.Append("Provider", plan.Provider)
				_ = table.Append("Region", plan.Region)
				_ = table.Append("Size", fmt.Sprintf("%g %s", plan.Size, plan.SizeMeasurementUnit))
				_ = table.Append("Price", fmt.Sprintf("%.2f %s/%s", plan.Price, plan.PriceCurrency, plan.PricePeriod))
				_ = table.Append("Max Databases", strconv.Itoa(plan.MaximumDatabases))
				_ = table.Append("Max Throughput", strconv.Itoa(plan.MaximumThroughput))
				_ = table.Append("Data Persistence", strconv.FormatBool(plan.SupportDataPersistence))
				_ = table.Append("Replication", strconv.FormatBool(plan.SupportReplication))
				_ = table.Append("Clustering", strconv.FormatBool(plan.SupportClustering))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newFixedRedisVersionsCommand() *cobra.Command {
	var subscriptionID int

	cmd := &cobra.Command{
		Use:   "redis-versions",
		Short: "List Redis versions available to an Essentials subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			versions, err := client.FixedSubscriptions().ListRedisVersions(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to list Redis versions: %w", err)
			}

			return RenderOutput(versions, renderRedisVersionTable)
		},
	}

	cmd.Flags().IntVar(&subscriptionID, "subscription-id", 0, "Essentials subscription ID")
	_ = cmd.MarkFlagRequired("subscription-id")

	return cmd
}

func newFixedSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subs"},
		Short:   "Manage Essentials subscriptions",
	}

	cmd.AddCommand(newFixedSubscriptionsListCommand())
	cmd.AddCommand(newFixedSubscriptionsGetCommand())
	cmd.AddCommand(newFixedSubscriptionsCreateCommand())
	cmd.AddCommand(newFixedSubscriptionsUpdateCommand())
	cmd.AddCommand(newFixedSubscriptionsDeleteCommand())

	return cmd
}

func newFixedSubscriptionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Essentials subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscriptions, err := client.FixedSubscriptions().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			return RenderOutput(subscriptions, func(subscriptions []rcloud.FixedSubscription) error {
				if len(subscriptions) == 0 {
					_, _ = os.Stdout.WriteString("No subscriptions found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Status", "Plan", "Provider", "Region")

				for _, subscription := range subscriptions {
					_ = table.Append(strconv.Itoa(subscription.ID), subscription.Name,
						subscription.Status, orNotAvailable(subscription.PlanName),
						orNotAvailable(subscription.Provider), orNotAvailable(subscription.Region))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newFixedSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get Essentials subscription details",
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

			subscription, err := client.FixedSubscriptions().Get(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			return RenderOutput(subscription, func(subscription *rcloud.FixedSubscription) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")

				_ = table.Append("ID", strconv.Itoa(subscription.ID))
				_ = table.Append("Name", subscription.Name)
				_ = table.Append("Status", subscription.Status)
				_ = table.Append("Plan", fmt.Sprintf("%s (%d)", subscription.PlanName, subscription.PlanID))
				_ = table.Append("Provider", orNotAvailable(subscription.Provider))
				_ = table.Append("Region", orNotAvailable(subscription.Region))
				_ = table.Append("Size", fmt.Sprintf("%g %s", subscription.Size, subscription.SizeMeasurementUnit))
				_ = table.Append("Price", fmt.Sprintf("%.2f %s/%s", subscription.Price,
					subscription.PriceCurrency, subscription.PricePeriod))
				_ = table.Append("Created", orNotAvailable(subscription.CreationDate))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newFixedSubscriptionsCreateCommand() *cobra.Command {
	var (
		name            string
		planID          int
		paymentMethodID int
		wait            bool
		timeout         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an Essentials subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrSubscriptionNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.FixedSubscriptions().Create(ctx, &rcloud.FixedSubscriptionCreateRequest{
				Name:            name,
				PlanID:          planID,
				PaymentMethodID: paymentMethodID,
			})
			if err != nil {
				return fmt.Errorf("failed to create subscription: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "subscription name (required)")
	cmd.Flags().IntVar(&planID, "plan-id", 0, "Essentials plan ID (required)")
	cmd.Flags().IntVar(&paymentMethodID, "payment-method-id", 0, "payment method ID")
	_ = cmd.MarkFlagRequired("plan-id")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newFixedSubscriptionsUpdateCommand() *cobra.Command {
	var (
		name    string
		planID  int
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "update SUBSCRIPTION_ID",
		Short: "Update an Essentials subscription",
		Long:  "Rename an Essentials subscription or move it to a different plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], ErrSubscriptionIDRequired)
			if err != nil {
				return err
			}

			request := &rcloud.FixedSubscriptionUpdateRequest{}
			if name != "" {
				request.Name = &name
			}

			if planID != 0 {
				request.PlanID = &planID
			}

			if request.Name == nil && request.PlanID == nil {
				return ErrNoUpdatesSpecified
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.FixedSubscriptions().Update(ctx, subscriptionID, request)
			if err != nil {
				return fmt.Errorf("failed to update subscription: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new subscription name")
	cmd.Flags().IntVar(&planID, "plan-id", 0, "plan to move the subscription to")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newFixedSubscriptionsDeleteCommand() *cobra.Command {
	var (
		force   bool
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delete SUBSCRIPTION_ID",
		Short: "Delete an Essentials subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], ErrSubscriptionIDRequired)
			if err != nil {
				return err
			}

			if !force && !confirmAction(fmt.Sprintf("Really delete subscription %d?", subscriptionID)) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.FixedSubscriptions().Delete(ctx, subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to delete subscription: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newFixedDatabasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "databases",
		Aliases: []string{"dbs"},
		Short:   "Manage Essentials databases",
	}

	cmd.AddCommand(newFixedDatabasesListCommand())
	cmd.AddCommand(newFixedDatabasesGetCommand())
	cmd.AddCommand(newFixedDatabasesCreateCommand())
	cmd.AddCommand(newFixedDatabasesUpdateCommand())
	cmd.AddCommand(newFixedDatabasesDeleteCommand())
	cmd.AddCommand(newFixedDatabasesBackupCommand())
	cmd.AddCommand(newFixedDatabasesImportCommand())
	cmd.AddCommand(newFixedDatabasesSlowLogCommand())

	return cmd
}

func newFixedDatabasesListCommand() *cobra.Command {
	var (
		offset int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list SUBSCRIPTION_ID",
		Short: "List databases in an Essentials subscription",
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

			databases, err := client.FixedDatabases().List(context.Background(), subscriptionID, params)
			if err != nil {
				return fmt.Errorf("failed to list databases: %w", err)
			}

			return RenderOutput(databases, func(databases []rcloud.FixedDatabase) error {
				if len(databases) == 0 {
					_, _ = os.Stdout.WriteString("No databases found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Status", "Region", "Endpoint")

				for _, database := range databases {
					_ = table.Append(strconv.Itoa(database.DatabaseID), database.Name,
						database.Status, orNotAvailable(database.Region),
						orNotAvailable(database.PublicEndpoint))
				}

				_ = table.Render()

				return nil
			})
		},
	}

	addPagingFlags(cmd, &offset, &limit)

	return cmd
}

func newFixedDatabasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID DATABASE_ID",
		Short: "Get Essentials database details",
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

			database, err := client.FixedDatabases().Get(context.Background(), subscriptionID, databaseID)
			if err != nil {
				return fmt.Errorf("failed to get database: %w", err)
			}

			return RenderOutput(database, func(database *rcloud.FixedDatabase) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")

				_ = table.Append("ID", strconv.Itoa(database.DatabaseID))
				_ = table.Append("Name", database.Name)
				_ = table.Append("Status", database.Status)
				_ = table.Append("Protocol", orNotAvailable(database.Protocol))
				_ = table.Append("Region", orNotAvailable(database.Region))
				_ = table.Append("Memory Limit", fmt.Sprintf("%g %s",
					database.PlanMemoryLimit, database.MemoryLimitMeasurementUnit))
				_ = table.Append("Data Persistence", orNotAvailable(database.DataPersistence))
				_ = table.Append("Eviction Policy", orNotAvailable(database.DataEvictionPolicy))
				_ = table.Append("Replication", strconv.FormatBool(database.Replication))
				_ = table.Append("Public Endpoint", orNotAvailable(database.PublicEndpoint))
				_ = table.Append("Private Endpoint", orNotAvailable(database.PrivateEndpoint))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newFixedDatabasesCreateCommand() *cobra.Command {
	var (
		name            string
		protocol        string
		dataPersistence string
		replication     bool
		modules         []string
		password        string
		wait            bool
		timeout         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create SUBSCRIPTION_ID",
		Short: "Create an Essentials database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], ErrSubscriptionIDRequired)
			if err != nil {
				return err
			}

			request := &rcloud.FixedDatabaseCreateRequest{
				Name:            name,
				Protocol:        protocol,
				DataPersistence: dataPersistence,
				Replication:     &replication,
				Password:        password,
			}
			for _, module := range modules {
				request.Modules = append(request.Modules, rcloud.DatabaseModuleSpec{Name: module})
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.FixedDatabases().Create(ctx, subscriptionID, request)
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "database name (required)")
	cmd.Flags().StringVar(&protocol, "protocol", "redis", "database protocol")
	cmd.Flags().StringVar(&dataPersistence, "data-persistence", "none", "data persistence mode")
	cmd.Flags().BoolVar(&replication, "replication", false, "enable replication")
	cmd.Flags().StringSliceVar(&modules, "module", nil, "capability module to enable (repeatable)")
	cmd.Flags().StringVar(&password, "password", "", "database password")
	_ = cmd.MarkFlagRequired("name")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newFixedDatabasesUpdateCommand() *cobra.Command {
	var (
		name            string
		dataPersistence string
		evictionPolicy  string
		wait            bool
		timeout         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "update SUBSCRIPTION_ID DATABASE_ID",
		Short: "Update an Essentials database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, databaseID, err := databaseArgs(args)
			if err != nil {
				return err
			}

			request := &rcloud.FixedDatabaseUpdateRequest{}
			if name != "" {
				request.Name = &name
			}

			if dataPersistence != "" {
				request.DataPersistence = &dataPersistence
			}

			if evictionPolicy != "" {
				request.DataEvictionPolicy = &evictionPolicy
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.FixedDatabases().Update(ctx, subscriptionID, databaseID, request)
			if err != nil {
				return fmt.Errorf("failed to update database: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new database name")
	cmd.Flags().StringVar(&dataPersistence, "data-persistence", "", "new data persistence mode")
	cmd.Flags().StringVar(&evictionPolicy, "eviction-policy", "", "new data eviction policy")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newFixedDatabasesDeleteCommand() *cobra.Command {
	var (
		force   bool
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delete SUBSCRIPTION_ID DATABASE_ID",
		Short: "Delete an Essentials database",
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

			task, err := client.FixedDatabases().Delete(ctx, subscriptionID, databaseID)
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

func newFixedDatabasesBackupCommand() *cobra.Command {
	var (
		path    string
		wait    bool
		timeout time.Duration
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

			task, err := client.FixedDatabases().Backup(ctx, subscriptionID, databaseID,
				&rcloud.DatabaseBackupRequest{AdhocBackupPath: path})
			if err != nil {
				return fmt.Errorf("failed to trigger backup: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "destination path overriding the configured backup storage")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newFixedDatabasesImportCommand() *cobra.Command {
	var (
		sourceType string
		uris       []string
		wait       bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "import SUBSCRIPTION_ID DATABASE_ID",
		Short: "Import a dataset",
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

			task, err := client.FixedDatabases().Import(ctx, subscriptionID, databaseID,
				&rcloud.DatabaseImportRequest{SourceType: sourceType, ImportFromURI: uris})
			if err != nil {
				return fmt.Errorf("failed to import dataset: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&sourceType, "source-type", "", "source storage type (required)")
	cmd.Flags().StringSliceVar(&uris, "uri", nil, "source URI (repeatable, required)")
	_ = cmd.MarkFlagRequired("source-type")
	_ = cmd.MarkFlagRequired("uri")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newFixedDatabasesSlowLogCommand() *cobra.Command {
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

			entries, err := client.FixedDatabases().ListSlowLog(context.Background(), subscriptionID, databaseID, params)
			if err != nil {
				return fmt.Errorf("failed to list slow log: %w", err)
			}

			return RenderOutput(entries, renderSlowLogTable)
		},
	}

	addPagingFlags(cmd, &offset, &limit)

	return cmd
}
