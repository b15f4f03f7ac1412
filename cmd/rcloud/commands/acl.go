package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
)

// NewACLCommand creates the access-control command group.
func NewACLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "acl",
		Short: "Manage role-based access control",
		Long:  "Manage Redis rules, roles, and database access users",
	}

	cmd.AddCommand(newACLRulesCommand())
	cmd.AddCommand(newACLRolesCommand())
	cmd.AddCommand(newACLUsersCommand())

	return cmd
}

func newACLRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage Redis rules",
	}

	cmd.AddCommand(newACLRulesListCommand())
	cmd.AddCommand(newACLRulesCreateCommand())
	cmd.AddCommand(newACLRulesUpdateCommand())
	cmd.AddCommand(newACLRulesDeleteCommand())

	return cmd
}

func newACLRulesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Redis rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			rules, err := client.ACL().ListRedisRules(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list Redis rules: %w", err)
			}

			return RenderOutput(rules, func(rules []rcloud.ACLRedisRule) error {
				if len(rules) == 0 {
					_, _ = os.Stdout.WriteString("No Redis rules found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Rule", "Default", "Status")

				for _, rule := range rules {
					isDefault := ""
					if rule.IsDefault {
						isDefault = "yes"
					}

					_ = table.Append(strconv.Itoa(rule.ID), rule.Name, rule.ACL,
						isDefault, orNotAvailable(rule.Status))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newACLRulesCreateCommand() *cobra.Command {
	var (
		name    string
		rule    string
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a Redis rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.ACL().CreateRedisRule(ctx, &rcloud.ACLRedisRuleCreateRequest{
				Name:      name,
				RedisRule: rule,
			})
			if err != nil {
				return fmt.Errorf("failed to create Redis rule: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "rule name (required)")
	cmd.Flags().StringVar(&rule, "rule", "", "Redis ACL rule text, e.g. +@read ~cache:* (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("rule")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newACLRulesUpdateCommand() *cobra.Command {
	var (
		name    string
		rule    string
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "update RULE_ID",
		Short: "Update a Redis rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			if name == "" && rule == "" {
				return ErrNoUpdatesSpecified
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.ACL().UpdateRedisRule(ctx, ruleID, &rcloud.ACLRedisRuleUpdateRequest{
				Name:      name,
				RedisRule: rule,
			})
			if err != nil {
				return fmt.Errorf("failed to update Redis rule: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new rule name")
	cmd.Flags().StringVar(&rule, "rule", "", "new Redis ACL rule text")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newACLRulesDeleteCommand() *cobra.Command {
	var (
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delete RULE_ID",
		Short: "Delete a Redis rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.ACL().DeleteRedisRule(ctx, ruleID)
			if err != nil {
				return fmt.Errorf("failed to delete Redis rule: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newACLRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage roles",
	}

	cmd.AddCommand(newACLRolesListCommand())
	cmd.AddCommand(newACLRolesCreateCommand())
	cmd.AddCommand(newACLRolesUpdateCommand())
	cmd.AddCommand(newACLRolesDeleteCommand())

	return cmd
}

func newACLRolesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			roles, err := client.ACL().ListRoles(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list roles: %w", err)
			}

			return RenderOutput(roles, func(roles []rcloud.ACLRole) error {
				if len(roles) == 0 {
					_, _ = os.Stdout.WriteString("No roles found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Rules", "Users", "Status")

				for _, role := range roles {
					ruleNames := make([]string, 0, len(role.RedisRules))
					for _, rule := range role.RedisRules {
						ruleNames = append(ruleNames, rule.RuleName)
					}

					_ = table.Append(strconv.Itoa(role.ID), role.Name,
						strings.Join(ruleNames, ", "),
						strconv.Itoa(len(role.Users)), orNotAvailable(role.Status))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

// parseRoleDatabases turns SUBSCRIPTION_ID:DATABASE_ID pairs into role
// database associations.
func parseRoleDatabases(pairs []string) ([]rcloud.ACLRoleDatabase, error) {
	databases := make([]rcloud.ACLRoleDatabase, 0, len(pairs))

	for _, pair := range pairs {
		subscriptionPart, databasePart, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid database reference %q: expected SUBSCRIPTION_ID:DATABASE_ID", pair)
		}

		subscriptionID, err := strconv.Atoi(subscriptionPart)
		if err != nil {
			return nil, fmt.Errorf("invalid subscription ID in %q: %w", pair, err)
		}

		databaseID, err := strconv.Atoi(databasePart)
		if err != nil {
			return nil, fmt.Errorf("invalid database ID in %q: %w", pair, err)
		}

		databases = append(databases, rcloud.ACLRoleDatabase{
			SubscriptionID: subscriptionID,
			DatabaseID:     databaseID,
		})
	}

	return databases, nil
}

func newACLRolesCreateCommand() *cobra.Command {
	var (
		name      string
		ruleID    int
		databases []string
		wait      bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a role",
		Long:  "Create a role binding one Redis rule to a set of databases",
		RunE: func(cmd *cobra.Command, args []string) error {
			roleDatabases, err := parseRoleDatabases(databases)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.ACL().CreateRole(ctx, &rcloud.ACLRoleCreateRequest{
				Name: name,
				RedisRules: []rcloud.ACLRoleRedisRule{
					{RuleID: ruleID, Databases: roleDatabases},
				},
			})
			if err != nil {
				return fmt.Errorf("failed to create role: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "role name (required)")
	cmd.Flags().IntVar(&ruleID, "rule-id", 0, "Redis rule ID (required)")
	cmd.Flags().StringSliceVar(&databases, "database", nil,
		"database the role covers as SUBSCRIPTION_ID:DATABASE_ID (repeatable, required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("rule-id")
	_ = cmd.MarkFlagRequired("database")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newACLRolesUpdateCommand() *cobra.Command {
	var (
		name      string
		ruleID    int
		databases []string
		wait      bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "update ROLE_ID",
		Short: "Update a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roleID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			request := &rcloud.ACLRoleUpdateRequest{Name: name}
			if ruleID != 0 {
				roleDatabases, err := parseRoleDatabases(databases)
				if err != nil {
					return err
				}

				request.RedisRules = []rcloud.ACLRoleRedisRule{
					{RuleID: ruleID, Databases: roleDatabases},
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.ACL().UpdateRole(ctx, roleID, request)
			if err != nil {
				return fmt.Errorf("failed to update role: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new role name")
	cmd.Flags().IntVar(&ruleID, "rule-id", 0, "Redis rule ID replacing the current binding")
	cmd.Flags().StringSliceVar(&databases, "database", nil,
		"database the role covers as SUBSCRIPTION_ID:DATABASE_ID (repeatable)")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newACLRolesDeleteCommand() *cobra.Command {
	var (
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delete ROLE_ID",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roleID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.ACL().DeleteRole(ctx, roleID)
			if err != nil {
				return fmt.Errorf("failed to delete role: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newACLUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage database access users",
	}

	cmd.AddCommand(newACLUsersListCommand())
	cmd.AddCommand(newACLUsersGetCommand())
	cmd.AddCommand(newACLUsersCreateCommand())
	cmd.AddCommand(newACLUsersUpdateCommand())
	cmd.AddCommand(newACLUsersDeleteCommand())

	return cmd
}

func newACLUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List database access users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			users, err := client.ACL().ListUsers(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return RenderOutput(users, func(users []rcloud.ACLUser) error {
				if len(users) == 0 {
					_, _ = os.Stdout.WriteString("No users found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Role", "Status")

				for _, user := range users {
					_ = table.Append(strconv.Itoa(user.ID), user.Name,
						user.Role, orNotAvailable(user.Status))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newACLUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get database access user details",
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

			user, err := client.ACL().GetUser(context.Background(), userID)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return RenderOutput(user, func(user *rcloud.ACLUser) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")

				_ = table.Append("ID", strconv.Itoa(user.ID))
				_ = table.Append("Name", user.Name)
				_ = table.Append("Role", user.Role)
				_ = table.Append("Status", orNotAvailable(user.Status))

				_ = table.Render()

				return nil
			})
		},
	}
}

// promptPassword reads a password without echoing it.
func promptPassword(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	password, err := term.ReadPassword(syscall.Stdin)

	_, _ = os.Stdout.WriteString("\n")

	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	return string(password), nil
}

func newACLUsersCreateCommand() *cobra.Command {
	var (
		name     string
		role     string
		password string
		wait     bool
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a database access user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				prompted, err := promptPassword("Password: ")
				if err != nil {
					return err
				}

				password = prompted
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.ACL().CreateUser(ctx, &rcloud.ACLUserCreateRequest{
				Name:     name,
				Role:     role,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name (required)")
	cmd.Flags().StringVar(&role, "role", "", "role name (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newACLUsersUpdateCommand() *cobra.Command {
	var (
		role     string
		password string
		wait     bool
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Update a database access user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], ErrResourceIDRequired)
			if err != nil {
				return err
			}

			if role == "" && password == "" {
				return ErrNoUpdatesSpecified
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			task, err := client.ACL().UpdateUser(ctx, userID, &rcloud.ACLUserUpdateRequest{
				Role:     role,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "new role name")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}

func newACLUsersDeleteCommand() *cobra.Command {
	var (
		wait    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a database access user",
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

			ctx := context.Background()

			task, err := client.ACL().DeleteUser(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			return reportTask(ctx, client, task, wait, timeout)
		},
	}

	addWaitFlags(cmd, &wait, &timeout)

	return cmd
}
