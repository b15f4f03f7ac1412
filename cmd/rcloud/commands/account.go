package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect the current account",
		Long:  "Display account details and the lookup catalogs attached to it",
	}

	cmd.AddCommand(newAccountGetCommand())
	cmd.AddCommand(newAccountPaymentMethodsCommand())
	cmd.AddCommand(newAccountRegionsCommand())
	cmd.AddCommand(newAccountDataPersistenceCommand())
	cmd.AddCommand(newAccountModulesCommand())
	cmd.AddCommand(newAccountSystemLogsCommand())
	cmd.AddCommand(newAccountSessionLogsCommand())
	cmd.AddCommand(newAccountQueryPerformanceFactorsCommand())

	return cmd
}

func newAccountGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get account details",
		Long:  "Display the account the configured API key belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.Account().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return RenderOutput(account, renderAccountTable)
		},
	}
}

func renderAccountTable(account *rcloud.Account) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", strconv.Itoa(account.ID))
	_ = table.Append("Name", account.Name)
	_ = table.Append("Created", orNotAvailable(account.CreatedAt))
	_ = table.Append("Updated", orNotAvailable(account.UpdatedAt))

	if account.Key != nil {
		_ = table.Append("API Key", account.Key.Name)

		if account.Key.Owner != nil {
			_ = table.Append("Key Owner", orNotAvailable(account.Key.Owner.Name))
		}
	}

	_ = table.Render()

	return nil
}

func newAccountPaymentMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "payment-methods",
		Short: "List payment methods",
		Long:  "List the payment methods configured on the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			methods, err := client.Account().ListPaymentMethods(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list payment methods: %w", err)
			}

			return RenderOutput(methods, func(methods []rcloud.PaymentMethod) error {
				if len(methods) == 0 {
					_, _ = os.Stdout.WriteString("No payment methods found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Type", "Card", "Ending", "Expires")

				for _, method := range methods {
					_ = table.Append(strconv.Itoa(method.ID), method.Type,
						orNotAvailable(method.CreditCardType),
						orNotAvailable(method.EndingNumber),
						orNotAvailable(method.ExpirationDate))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newAccountRegionsCommand() *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List supported regions",
		Long:  "List the cloud provider regions where subscriptions can be deployed",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			regions, err := client.Account().ListRegions(context.Background(), provider)
			if err != nil {
				return fmt.Errorf("failed to list regions: %w", err)
			}

			return RenderOutput(regions, func(regions []rcloud.Region) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Region", "Provider")

				for _, region := range regions {
					_ = table.Append(region.Name, orNotAvailable(region.Provider))
				}

				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "filter by cloud provider (AWS, GCP)")

	return cmd
}

func newAccountDataPersistenceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "data-persistence",
		Short: "List data persistence options",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			options, err := client.Account().ListDataPersistenceOptions(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list data persistence options: %w", err)
			}

			return RenderOutput(options, func(options []rcloud.DataPersistenceOption) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Description")

				for _, option := range options {
					_ = table.Append(option.Name, option.Description)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newAccountModulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List database modules",
		Long:  "List the capability modules databases can be created with",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			modules, err := client.Account().ListDatabaseModules(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list database modules: %w", err)
			}

			return RenderOutput(modules, func(modules []rcloud.DatabaseModule) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Capability", "Description")

				for _, module := range modules {
					_ = table.Append(module.Name,
						orNotAvailable(module.CapabilityName), module.Description)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newAccountSystemLogsCommand() *cobra.Command {
	var (
		offset int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "system-logs",
		Short: "List account audit logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := rcloud.NewQueryParams().WithOffset(offset).WithLimit(limit)

			entries, err := client.Account().ListSystemLogs(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list system logs: %w", err)
			}

			return RenderOutput(entries, func(entries []rcloud.SystemLogEntry) error {
				if len(entries) == 0 {
					_, _ = os.Stdout.WriteString("No log entries found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Time", "Originator", "Type", "Description")

				for _, entry := range entries {
					_ = table.Append(strconv.Itoa(entry.ID), entry.Time,
						entry.Originator, entry.Type, entry.Description)
				}

				_ = table.Render()

				return nil
			})
		},
	}

	addPagingFlags(cmd, &offset, &limit)

	return cmd
}

func newAccountSessionLogsCommand() *cobra.Command {
	var (
		offset int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "session-logs",
		Short: "List session logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := rcloud.NewQueryParams().WithOffset(offset).WithLimit(limit)

			entries, err := client.Account().ListSessionLogs(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list session logs: %w", err)
			}

			return RenderOutput(entries, func(entries []rcloud.SessionLogEntry) error {
				if len(entries) == 0 {
					_, _ = os.Stdout.WriteString("No log entries found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Time", "User", "Action", "Source IP")

				for _, entry := range entries {
					_ = table.Append(strconv.Itoa(entry.ID), entry.Time,
						entry.UserName, entry.Action, orNotAvailable(entry.SourceIP))
				}

				_ = table.Render()

				return nil
			})
		},
	}

	addPagingFlags(cmd, &offset, &limit)

	return cmd
}

func newAccountQueryPerformanceFactorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query-performance-factors",
		Short: "List query performance factors",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			factors, err := client.Account().ListQueryPerformanceFactors(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list query performance factors: %w", err)
			}

			return RenderOutput(factors, func(factors []rcloud.QueryPerformanceFactor) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Description")

				for _, factor := range factors {
					_ = table.Append(factor.Name, factor.Description)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}
