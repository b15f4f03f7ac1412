package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subs", "subscription"},
		Short:   "Manage Pro subscriptions",
		Long:    "List, create, update, and delete Pro subscriptions and their settings",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsUpdateCommand())
	cmd.AddCommand(newSubscriptionsDeleteCommand())
	cmd.AddCommand(newSubscriptionsCIDRCommand())
	cmd.AddCommand(newSubscriptionsMaintenanceCommand())
	cmd.AddCommand(newSubscriptionsPricingCommand())
	cmd.AddCommand(newSubscriptionsRedisVersionsCommand())
	cmd.AddCommand(newSubscriptionsRegionsCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscriptions, err := client.Subscriptions().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			return RenderOutput(subscriptions, renderSubscriptionTable)
		},
	}
}

func renderSubscriptionTable(subscriptions []rcloud.Subscription) error {
	if len(subscriptions) == 0 {
		_, _ = os.Stdout.WriteString("No subscriptions found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Status", "Deployment", "Databases", "Provider")

	for _, subscription := range subscriptions {
		provider := NotAvailable
		if len(subscription.CloudDetails) > 0 {
			provider = subscription.CloudDetails[0].Provider
		}

		_ = table.Append(strconv.Itoa(subscription.ID), subscription.Name,
			subscription.Status, orNotAvailable(subscription.DeploymentType),
			strconv.Itoa(subscription.NumberOfDatabases), provider)
	}

	_ = table.Render()

	return nil
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get subscription details",
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

			subscription, err := client.Subscriptions().Get(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			return RenderOutput(subscription, renderSubscriptionDetail)
		},
	}
}

func renderSubscriptionDetail(subscription *rcloud.Subscription) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", strconv.Itoa(subscription.ID))
	_ = table.Append("Name", subscription.Name)
	_ = table.Append("Status", subscription.Status)
	_ = table.Append("Deployment Type", orNotAvailable(subscription.DeploymentType))
	_ = table.Append("Memory Storage", orNotAvailable(subscription.MemoryStorage))
	_ = table.Append("Databases", strconv.Itoa(subscription.NumberOfDatabases))

	if subscription.PaymentMethodID != 0 {
		_ = table.Append("Payment Method", fmt.Sprintf("%s (%d)",
			subscription.PaymentMethodType, subscription.PaymentMethodID))
	}

	for _, detail := range subscription.CloudDetails {
		regions := make([]string, 0, len(detail.Regions))
		for _, region := range detail.Regions {
			regions = append(regions, region.Region)
		}

		_ = table.Append("Cloud", fmt.Sprintf("%s: %s", detail.Provider, strings.Join(regions, ", ")))
	}

	_ = table.Render()

	return nil
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var (
		name            string
		provider        string
		region          string
		deploymentCIDR  string
		paymentMethodID int
		multiAZ         bool
		dryRun          bool
		dbName          string
		dbSizeGB        float64
		wait            bool
		timeout         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription",
		Long:  "Create a Pro subscription with an initial database sizing the infrastructure",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrSubscriptionNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &rcloud.SubscriptionCreateRequest{
				Name:            name,
				PaymentMethodID: paymentMethodID,
				CloudProviders: []rcloud.SubscriptionCloudProviderSpec{
					{
						Provider: provider,
						Regions: []rcloud.SubscriptionRegionSpec{
							{
								Region:                    region,
								DeploymentCIDR:            deploymentCIDR,
								MultipleAvailabilityZones: &multiAZ,
							},
						},
					},
				},
				Databases: []rcloud.SubscriptionDatabaseSpec{
					{
						Name:            dbName,
						DatasetSizeInGB: dbSizeGB,
					},
				},
			}
			if dryRun {
				request.DryRun = &dryRun
			}

			ctx := context.Background()

			task, err := client.Subscriptions().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create subscription: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "subscription name (required)")
	cmd.Flags().StringVar(&provider, "provider", rcloud.ProviderAWS, "cloud provider")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "deployment region")
	cmd.Flags().StringVar(&deploymentCIDR, "cidr", "10.0.0.0/24", "deployment CIDR block")
	cmd.Flags().IntVar(&paymentMethodID, "payment-method-id", 0, "payment method ID")
	cmd.Flags().BoolVar(&multiAZ, "multi-az", false, "deploy across multiple availability zones")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the request without creating anything")
	cmd.Flags().StringVar(&dbName, "database-name", "default-db", "name of the initial database")
	cmd.Flags().Float64Var(&dbSizeGB, "database-size-gb", 1, "dataset size of the initial database in GB")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newSubscriptionsUpdateCommand() *cobra.Command {
	var (
		name            string
		paymentMethodID int
		wait            bool
		timeout         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "update SUBSCRIPTION_ID",
		Short: "Update a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], ErrSubscriptionIDRequired)
			if err != nil {
				return err
			}

			request := &rcloud.SubscriptionUpdateRequest{}
			if name != "" {
				request.Name = &name
			}

			if paymentMethodID != 0 {
				request.PaymentMethodID = &paymentMethodID
			}

			if request.Name == nil && request.PaymentMethodID == nil {
				return ErrNoUpdatesSpecified
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Subscriptions().Update(ctx, subscriptionID, request)
			if err != nil {
				return fmt.Errorf("failed to update subscription: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new subscription name")
	cmd.Flags().IntVar(&paymentMethodID, "payment-method-id", 0, "new payment method ID")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newSubscriptionsDeleteCommand() *cobra.Command {
	var (
		force   bool
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delete SUBSCRIPTION_ID",
		Short: "Delete a subscription",
		Long:  "Delete a subscription. All of its databases must be deleted first.",
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

			task, err := client.Subscriptions().Delete(ctx, subscriptionID)
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

func newSubscriptionsCIDRCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cidr",
		Short: "Manage the CIDR allowlist",
	}

	cmd.AddCommand(newSubscriptionsCIDRGetCommand())
	cmd.AddCommand(newSubscriptionsCIDRUpdateCommand())

	return cmd
}

func newSubscriptionsCIDRGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get the CIDR allowlist",
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

			allowlist, err := client.Subscriptions().GetCIDRAllowlist(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to get CIDR allowlist: %w", err)
			}

			return RenderOutput(allowlist, func(allowlist *rcloud.CIDRAllowlist) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Type", "Value")

				for _, cidr := range allowlist.CIDRIPs {
					_ = table.Append("CIDR", cidr)
				}

				for _, group := range allowlist.SecurityGroupIDs {
					_ = table.Append("Security Group", group)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newSubscriptionsCIDRUpdateCommand() *cobra.Command {
	var (
		cidrs          []string
		securityGroups []string
		wait           bool
		timeout        time.Duration
	)

	cmd := &cobra.Command{
		Use:   "update SUBSCRIPTION_ID",
		Short: "Replace the CIDR allowlist",
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

			ctx := context.Background()

			task, err := client.Subscriptions().UpdateCIDRAllowlist(ctx, subscriptionID,
				&rcloud.CIDRAllowlistUpdateRequest{
					CIDRIPs:          cidrs,
					SecurityGroupIDs: securityGroups,
				})
			if err != nil {
				return fmt.Errorf("failed to update CIDR allowlist: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringSliceVar(&cidrs, "cidr", nil, "CIDR block to allow (repeatable)")
	cmd.Flags().StringSliceVar(&securityGroups, "security-group", nil, "security group ID to allow (repeatable)")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newSubscriptionsMaintenanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Manage maintenance windows",
	}

	cmd.AddCommand(newSubscriptionsMaintenanceGetCommand())
	cmd.AddCommand(newSubscriptionsMaintenanceUpdateCommand())

	return cmd
}

func newSubscriptionsMaintenanceGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get maintenance windows",
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

			windows, err := client.Subscriptions().GetMaintenanceWindows(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to get maintenance windows: %w", err)
			}

			return RenderOutput(windows, func(windows *rcloud.MaintenanceWindows) error {
				_, _ = fmt.Fprintf(os.Stdout, "Mode: %s\n", windows.Mode)

				if len(windows.Windows) == 0 {
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Days", "Start Hour", "Duration (h)")

				for _, window := range windows.Windows {
					_ = table.Append(strings.Join(window.Days, ", "),
						strconv.Itoa(window.StartHour),
						strconv.Itoa(window.DurationInHours))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newSubscriptionsMaintenanceUpdateCommand() *cobra.Command {
	var (
		mode      string
		days      []string
		startHour int
		duration  int
		wait      bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "update SUBSCRIPTION_ID",
		Short: "Update maintenance windows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], ErrSubscriptionIDRequired)
			if err != nil {
				return err
			}

			request := &rcloud.MaintenanceWindowsUpdateRequest{Mode: mode}
			if mode == "manual" {
				request.Windows = []rcloud.MaintenanceWindow{
					{Days: days, StartHour: startHour, DurationInHours: duration},
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Subscriptions().UpdateMaintenanceWindows(ctx, subscriptionID, request)
			if err != nil {
				return fmt.Errorf("failed to update maintenance windows: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "automatic", "maintenance mode (automatic or manual)")
	cmd.Flags().StringSliceVar(&days, "days", nil, "maintenance days for manual mode (e.g. Monday,Thursday)")
	cmd.Flags().IntVar(&startHour, "start-hour", 0, "window start hour (0-23) for manual mode")
	cmd.Flags().IntVar(&duration, "duration", 8, "window duration in hours for manual mode")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newSubscriptionsPricingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pricing SUBSCRIPTION_ID",
		Short: "Get subscription pricing",
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

			pricing, err := client.Subscriptions().GetPricing(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to get pricing: %w", err)
			}

			return RenderOutput(pricing, func(pricing []rcloud.SubscriptionPricing) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Type", "Details", "Quantity", "Price/Unit", "Period")

				for _, item := range pricing {
					_ = table.Append(item.Type, orNotAvailable(item.TypeDetails),
						fmt.Sprintf("%d %s", item.Quantity, item.QuantityMeasure),
						fmt.Sprintf("%.3f %s", item.PricePerUnit, item.PriceCurrency),
						orNotAvailable(item.PricePeriod))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newSubscriptionsRedisVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "redis-versions SUBSCRIPTION_ID",
		Short: "List Redis versions available to a subscription",
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

			versions, err := client.Subscriptions().ListRedisVersions(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to list Redis versions: %w", err)
			}

			return RenderOutput(versions, renderRedisVersionTable)
		},
	}
}

func renderRedisVersionTable(versions []rcloud.RedisVersion) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Version", "Default", "EOL")

	for _, version := range versions {
		isDefault := ""
		if version.IsDefault {
			isDefault = "yes"
		}

		_ = table.Append(version.Version, isDefault, orNotAvailable(version.EOLDate))
	}

	_ = table.Render()

	return nil
}

func newSubscriptionsRegionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Manage Active-Active regions",
	}

	cmd.AddCommand(newSubscriptionsRegionsListCommand())
	cmd.AddCommand(newSubscriptionsRegionsAddCommand())
	cmd.AddCommand(newSubscriptionsRegionsDeleteCommand())

	return cmd
}

func newSubscriptionsRegionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list SUBSCRIPTION_ID",
		Short: "List Active-Active regions",
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

			regions, err := client.Subscriptions().ListActiveActiveRegions(context.Background(), subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to list regions: %w", err)
			}

			return RenderOutput(regions, func(regions []rcloud.ActiveActiveRegion) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Region ID", "Region", "CIDR", "Databases")

				for _, region := range regions {
					_ = table.Append(strconv.Itoa(region.RegionID), region.Region,
						orNotAvailable(region.DeploymentCIDR),
						strconv.Itoa(len(region.Databases)))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newSubscriptionsRegionsAddCommand() *cobra.Command {
	var (
		region         string
		deploymentCIDR string
		dryRun         bool
		wait           bool
		timeout        time.Duration
	)

	cmd := &cobra.Command{
		Use:   "add SUBSCRIPTION_ID",
		Short: "Add an Active-Active region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], ErrSubscriptionIDRequired)
			if err != nil {
				return err
			}

			request := &rcloud.ActiveActiveRegionCreateRequest{
				Region:         region,
				DeploymentCIDR: deploymentCIDR,
			}
			if dryRun {
				request.DryRun = &dryRun
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Subscriptions().AddActiveActiveRegion(ctx, subscriptionID, request)
			if err != nil {
				return fmt.Errorf("failed to add region: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "region to add (required)")
	cmd.Flags().StringVar(&deploymentCIDR, "cidr", "", "deployment CIDR block (required)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the request without creating anything")
	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("cidr")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newSubscriptionsRegionsDeleteCommand() *cobra.Command {
	var (
		regions []string
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delete SUBSCRIPTION_ID",
		Short: "Delete Active-Active regions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID, err := parseID(args[0], ErrSubscriptionIDRequired)
			if err != nil {
				return err
			}

			request := &rcloud.ActiveActiveRegionDeleteRequest{}
			for _, region := range regions {
				request.Regions = append(request.Regions, rcloud.ActiveActiveRegionRef{Region: region})
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Subscriptions().DeleteActiveActiveRegions(ctx, subscriptionID, request)
			if err != nil {
				return fmt.Errorf("failed to delete regions: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringSliceVar(&regions, "region", nil, "region to remove (repeatable, required)")
	_ = cmd.MarkFlagRequired("region")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}
