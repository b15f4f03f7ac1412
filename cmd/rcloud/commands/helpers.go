package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcclient"
	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML formatting.
	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrSubscriptionIDRequired   = errors.New("subscription ID is required")
	ErrDatabaseIDRequired       = errors.New("database ID is required")
	ErrResourceIDRequired       = errors.New("resource ID is required")
	ErrSubscriptionNameRequired = errors.New("subscription name is required")
	ErrNoUpdatesSpecified       = errors.New("no updates specified")
)

// CreateClient builds an API client from the resolved CLI configuration.
func CreateClient() (rcloud.Client, error) {
	config := &rcloud.Config{
		APIKey:    viper.GetString("api-key"),
		APISecret: viper.GetString("api-secret"),
		BaseURL:   viper.GetString("api-url"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewZerologAdapter(os.Stderr)
	}

	cache, err := buildCache()
	if err != nil {
		return nil, fmt.Errorf("configuring cache: %w", err)
	}

	config.Cache = cache

	client, err := rcclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// buildCache assembles the client cache from the cache.* configuration keys.
// Plan and version catalogs change rarely, so they are served from this cache
// between calls. A NATS backend is fronted by an in-process layer so repeated
// lookups within one invocation skip the network.
func buildCache() (rcloud.Cache, error) {
	cacheType := rcloud.CacheType(viper.GetString("cache.type"))
	if cacheType == "" {
		cacheType = rcloud.CacheTypeMemory
	}

	builder := rcloud.NewCacheBuilder().WithType(cacheType)

	if maxSize := viper.GetInt("cache.max-size"); maxSize > 0 {
		builder.WithMemoryConfig(maxSize, "1m")
	}

	if cacheType == rcloud.CacheTypeNATS {
		builder.WithNATSConfig(&rcloud.NATSKVConfig{
			URL:    viper.GetString("cache.nats.url"),
			Bucket: viper.GetString("cache.nats.bucket"),
		})
	}

	cache, err := builder.Build()
	if err != nil {
		return nil, err
	}

	if cacheType == rcloud.CacheTypeNATS {
		cache = rcloud.NewCacheChain(rcloud.NewMemoryCache(rcloud.DefaultCacheSize), cache)
	}

	return cache, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// RenderOutput outputs data in the configured format, falling back to the
// given table renderer.
func RenderOutput[T any](data T, renderTable func(T) error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(data)
	default:
		return renderTable(data)
	}
}

// parseID converts a positional argument into a numeric resource ID.
func parseID(arg string, missingErr error) (int, error) {
	if arg == "" {
		return 0, missingErr
	}

	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: %w", arg, err)
	}

	return id, nil
}

// confirmAction asks the user to confirm a destructive action on stdin.
func confirmAction(prompt string) bool {
	_, _ = fmt.Fprintf(os.Stdout, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)

	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}

// addPagingFlags registers the offset/limit flags shared by paged listings.
func addPagingFlags(cmd *cobra.Command, offset, limit *int) {
	cmd.Flags().IntVar(offset, "offset", 0, "number of items to skip")
	cmd.Flags().IntVar(limit, "limit", rcloud.DefaultPageSize, "maximum number of items to return")
}

// addWaitFlags registers the task-waiting flags shared by mutating commands.
func addWaitFlags(cmd *cobra.Command, wait *bool, timeout *time.Duration) {
	cmd.Flags().BoolVar(wait, "wait", false, "wait for the task to complete")
	cmd.Flags().DurationVar(timeout, "timeout", 30*time.Minute, "maximum time to wait with --wait")
}

// reportTask prints the task envelope of a mutating call, optionally waiting
// for the task to settle first.
func reportTask(ctx context.Context, client rcloud.Client, task *rcloud.TaskStateUpdate, wait bool, timeout time.Duration) error {
	if !wait {
		return RenderOutput(task, func(t *rcloud.TaskStateUpdate) error {
			_, _ = fmt.Fprintf(os.Stdout, "Task %s accepted (status: %s)\n", t.TaskID, t.Status)
			_, _ = fmt.Fprintf(os.Stdout, "Monitor with: rcloud tasks get %s\n", t.TaskID)

			return nil
		})
	}

	_, _ = fmt.Fprintf(os.Stdout, "Waiting for task %s...\n", task.TaskID)

	done, err := client.Tasks().WaitForTask(ctx, task.TaskID, &rcloud.WaitOptions{Timeout: timeout})
	if err != nil {
		return fmt.Errorf("waiting for task: %w", err)
	}

	return RenderOutput(done, func(t *rcloud.TaskStateUpdate) error {
		if t.Response != nil && t.Response.ResourceID != 0 {
			_, _ = fmt.Fprintf(os.Stdout, "Task %s completed (resource ID: %d)\n", t.TaskID, t.Response.ResourceID)
		} else {
			_, _ = fmt.Fprintf(os.Stdout, "Task %s completed\n", t.TaskID)
		}

		return nil
	})
}

// orNotAvailable substitutes N/A for empty table cells.
func orNotAvailable(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
