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

// NewUsersCommand creates the team users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage team members",
		Long:  "List, inspect, update, and delete the team members of the account",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersUpdateCommand())
	cmd.AddCommand(newUsersDeleteCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			users, err := client.Users().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return RenderOutput(users, func(users []rcloud.User) error {
				if len(users) == 0 {
					_, _ = os.Stdout.WriteString("No users found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Email", "Role", "Type")

				for _, user := range users {
					_ = table.Append(strconv.Itoa(user.ID), user.Name,
						orNotAvailable(user.Email), user.Role,
						orNotAvailable(user.UserType))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get team member details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), userID)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return RenderOutput(user, renderUserDetail)
		},
	}
}

func renderUserDetail(user *rcloud.User) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("ID", strconv.Itoa(user.ID))
	_ = table.Append("Name", user.Name)
	_ = table.Append("Email", orNotAvailable(user.Email))
	_ = table.Append("Role", user.Role)
	_ = table.Append("Type", orNotAvailable(user.UserType))
	_ = table.Append("Has API Key", strconv.FormatBool(user.HasAPIKey))

	if user.Options != nil {
		_ = table.Append("MFA Enabled", strconv.FormatBool(user.Options.MFAEnabled))
		_ = table.Append("Email Alerts", strconv.FormatBool(user.Options.EmailAlerts))
	}

	_ = table.Render()

	return nil
}

func newUsersUpdateCommand() *cobra.Command {
	var (
		name string
		role string
	)

	cmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Update a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			request := &rcloud.UserUpdateRequest{}
			if name != "" {
				request.Name = &name
			}

			if role != "" {
				request.Role = &role
			}

			if request.Name == nil && request.Role == nil {
				return ErrNoUpdatesSpecified
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Update(context.Background(), userID, request)
			if err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}

			return RenderOutput(user, renderUserDetail)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new user name")
	cmd.Flags().StringVar(&role, "role", "", "new management role")

	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	var (
		force   bool
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			if !force && !confirmAction(fmt.Sprintf("Really delete user %d?", userID)) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.Users().Delete(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}
