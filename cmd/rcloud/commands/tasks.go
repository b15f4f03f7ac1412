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

// NewTasksCommand creates the tasks command group.
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Inspect asynchronous tasks",
		Long:  "List, inspect, and wait for the asynchronous tasks mutating operations produce",
	}

	cmd.AddCommand(newTasksListCommand())
	cmd.AddCommand(newTasksGetCommand())
	cmd.AddCommand(newTasksWaitCommand())

	return cmd
}

func newTasksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recent tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tasks, err := client.Tasks().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			return RenderOutput(tasks, renderTaskTable)
		},
	}
}

func renderTaskTable(tasks []rcloud.TaskStateUpdate) error {
	if len(tasks) == 0 {
		_, _ = os.Stdout.WriteString("No tasks found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Task ID", "Command", "Status", "Timestamp")

	for _, task := range tasks {
		_ = table.Append(task.TaskID, orNotAvailable(task.CommandType),
			task.Status, orNotAvailable(task.Timestamp))
	}

	_ = table.Render()

	return nil
}

func newTasksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TASK_ID",
		Short: "Get task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			task, err := client.Tasks().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			return RenderOutput(task, renderTaskDetail)
		},
	}
}

func renderTaskDetail(task *rcloud.TaskStateUpdate) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("Task ID", task.TaskID)
	_ = table.Append("Command", orNotAvailable(task.CommandType))
	_ = table.Append("Status", task.Status)
	_ = table.Append("Description", orNotAvailable(task.Description))
	_ = table.Append("Timestamp", orNotAvailable(task.Timestamp))

	if task.Response != nil {
		if task.Response.ResourceID != 0 {
			_ = table.Append("Resource ID", strconv.Itoa(task.Response.ResourceID))
		}

		if task.Response.Error != nil {
			_ = table.Append("Error", task.Response.Error.Description)
		}
	}

	_ = table.Render()

	return nil
}

func newTasksWaitCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "wait TASK_ID",
		Short: "Wait for a task to complete",
		Long:  "Poll a task until it reaches a terminal state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			task, err := client.Tasks().WaitForTask(context.Background(), args[0],
				&rcloud.WaitOptions{Timeout: timeout})
			if err != nil {
				return fmt.Errorf("failed waiting for task: %w", err)
			}

			return RenderOutput(task, renderTaskDetail)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "maximum time to wait")

	return cmd
}
