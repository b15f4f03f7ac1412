//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkflow_ReadOnlyJourney walks the read-only surface of the CLI against
// a real account.
func TestWorkflow_ReadOnlyJourney(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	// 1. Account details render as a table
	stdout, stderr, err := runner.Run("account", "get")
	require.NoError(t, err, "Failed to get account: %s", stderr)
	assert.Contains(t, stdout, "Name")

	// 2. And as JSON
	stdout, stderr, err = runner.Run("account", "get", "--output", "json")
	require.NoError(t, err, "Failed to get account with JSON output: %s", stderr)
	AssertJSONOutput(t, stdout)

	// 3. Region catalog
	stdout, stderr, err = runner.Run("account", "regions", "--provider", "AWS")
	require.NoError(t, err, "Failed to list regions: %s", stderr)
	assert.Contains(t, stdout, "us-east-1")

	// 4. Subscriptions listing never errors on an empty account
	stdout, stderr, err = runner.Run("subscriptions", "list")
	require.NoError(t, err, "Failed to list subscriptions: %s", stderr)

	// 5. Essentials plan catalog is always non-empty
	stdout, stderr, err = runner.Run("fixed", "plans", "list", "--output", "json")
	require.NoError(t, err, "Failed to list plans: %s", stderr)
	AssertJSONOutput(t, stdout)

	// 6. Tasks listing
	_, stderr, err = runner.Run("tasks", "list")
	require.NoError(t, err, "Failed to list tasks: %s", stderr)
}

// TestWorkflow_ACLUserLifecycle creates, inspects, and removes a database
// access user.
func TestWorkflow_ACLUserLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	if os.Getenv("RCLOUD_RUN_MUTATING_TESTS") != "true" {
		t.Skip("RCLOUD_RUN_MUTATING_TESTS not set, skipping mutating integration test")
	}

	runner := NewCommandRunner(config, t)

	ruleName := GenerateTestName("itest-rule")

	// 1. Create a read-only Redis rule and wait for the task
	stdout, stderr, err := runner.Run("acl", "rules", "create",
		"--name", ruleName,
		"--rule", "+@read ~*",
		"--wait")
	require.NoError(t, err, "Failed to create Redis rule: %s", stderr)
	assert.Contains(t, stdout, "completed")

	// 2. The rule shows up in the listing
	stdout, stderr, err = runner.Run("acl", "rules", "list", "--output", "json")
	require.NoError(t, err, "Failed to list Redis rules: %s", stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, ruleName)

	// 3. Find its ID and delete it
	ruleID := extractIDForName(t, stdout, ruleName)

	stdout, stderr, err = runner.Run("acl", "rules", "delete", ruleID, "--wait")
	require.NoError(t, err, "Failed to delete Redis rule: %s", stderr)
	assert.Contains(t, stdout, "completed")
}

// extractIDForName pulls the numeric id preceding the given name out of a
// JSON listing.
func extractIDForName(t *testing.T, jsonOutput, name string) string {
	t.Helper()

	var entries []map[string]interface{}

	require.NoError(t, json.Unmarshal([]byte(jsonOutput), &entries))

	for _, entry := range entries {
		if entry["name"] == name {
			id, ok := entry["id"].(float64)
			require.True(t, ok, "entry %q carries no numeric id", name)

			return strconv.Itoa(int(id))
		}
	}

	t.Fatalf("no entry named %q in output:\n%s", name, jsonOutput)

	return ""
}
