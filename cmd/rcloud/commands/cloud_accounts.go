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

// NewCloudAccountsCommand creates the cloud accounts command group.
func NewCloudAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cloud-accounts",
		Short: "Manage provider accounts",
		Long:  "Manage the cloud provider accounts subscriptions can be deployed into",
	}

	cmd.AddCommand(newCloudAccountsListCommand())
	cmd.AddCommand(newCloudAccountsGetCommand())
	cmd.AddCommand(newCloudAccountsCreateCommand())
	cmd.AddCommand(newCloudAccountsUpdateCommand())
	cmd.AddCommand(newCloudAccountsDeleteCommand())

	return cmd
}

func newCloudAccountsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List provider accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			accounts, err := client.CloudAccounts().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list cloud accounts: %w", err)
			}

			return RenderOutput(accounts, func(accounts []rcloud.CloudAccount) error {
				if len(accounts) == 0 {
					_, _ = os.Stdout.WriteString("No cloud accounts found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Provider", "Status", "Access Key")

				for _, account := range accounts {
					_ = table.Append(strconv.Itoa(account.ID), account.Name,
						orNotAvailable(account.Provider), account.Status,
						orNotAvailable(account.AccessKeyID))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newCloudAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CLOUD_ACCOUNT_ID",
		Short: "Get provider account details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cloudAccountID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.CloudAccounts().Get(context.Background(), cloudAccountID)
			if err != nil {
				return fmt.Errorf("failed to get cloud account: %w", err)
			}

			return RenderOutput(account, func(account *rcloud.CloudAccount) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")

				_ = table.Append("ID", strconv.Itoa(account.ID))
				_ = table.Append("Name", account.Name)
				_ = table.Append("Provider", orNotAvailable(account.Provider))
				_ = table.Append("Status", account.Status)
				_ = table.Append("Access Key", orNotAvailable(account.AccessKeyID))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newCloudAccountsCreateCommand() *cobra.Command {
	var (
		name            string
		provider        string
		accessKeyID     string
		accessSecretKey string
		consoleUsername string
		consolePassword string
		signInLoginURL  string
		wait            bool
		timeout         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a provider account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if accessSecretKey == "" {
				prompted, err := promptPassword("Access secret key: ")
				if err != nil {
					return err
				}

				accessSecretKey = prompted
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.CloudAccounts().Create(ctx, &rcloud.CloudAccountCreateRequest{
				Name:            name,
				Provider:        provider,
				AccessKeyID:     accessKeyID,
				AccessSecretKey: accessSecretKey,
				ConsoleUsername: consoleUsername,
				ConsolePassword: consolePassword,
				SignInLoginURL:  signInLoginURL,
			})
			if err != nil {
				return fmt.Errorf("failed to create cloud account: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	cmd.Flags().StringVar(&provider, "provider", rcloud.ProviderAWS, "cloud provider")
	cmd.Flags().StringVar(&accessKeyID, "access-key-id", "", "provider access key ID (required)")
	cmd.Flags().StringVar(&accessSecretKey, "access-secret-key", "", "provider secret key (prompted when omitted)")
	cmd.Flags().StringVar(&consoleUsername, "console-username", "", "provider console username")
	cmd.Flags().StringVar(&consolePassword, "console-password", "", "provider console password")
	cmd.Flags().StringVar(&signInLoginURL, "sign-in-url", "", "provider console sign-in URL")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("access-key-id")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newCloudAccountsUpdateCommand() *cobra.Command {
	var (
		name            string
		accessKeyID     string
		accessSecretKey string
		wait            bool
		timeout         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "update CLOUD_ACCOUNT_ID",
		Short: "Update a provider account",
		Long:  "Rotate the credentials of a registered provider account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cloudAccountID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			if name == "" && accessKeyID == "" && accessSecretKey == "" {
				return ErrNoUpdatesSpecified
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.CloudAccounts().Update(ctx, cloudAccountID, &rcloud.CloudAccountUpdateRequest{
				Name:            name,
				AccessKeyID:     accessKeyID,
				AccessSecretKey: accessSecretKey,
			})
			if err != nil {
				return fmt.Errorf("failed to update cloud account: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new account name")
	cmd.Flags().StringVar(&accessKeyID, "access-key-id", "", "new provider access key ID")
	cmd.Flags().StringVar(&accessSecretKey, "access-secret-key", "", "new provider secret key")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newCloudAccountsDeleteCommand() *cobra.Command {
	var (
		force   bool
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delete CLOUD_ACCOUNT_ID",
		Short: "Delete a provider account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cloudAccountID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			if !force && !confirmAction(fmt.Sprintf("Really delete cloud account %d?", cloudAccountID)) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.CloudAccounts().Delete(ctx, cloudAccountID)
			if err != nil {
				return fmt.Errorf("failed to delete cloud account: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}
