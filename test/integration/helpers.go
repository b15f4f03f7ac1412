//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIURL     string
	APIKey     string
	APISecret  string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIURL:     os.Getenv("RCLOUD_API_URL"),
		APIKey:     os.Getenv("REDIS_CLOUD_API_KEY"),
		APISecret:  os.Getenv("REDIS_CLOUD_API_SECRET"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("RCLOUD_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the rcloud binary.
func getBinaryPath() string {
	if path := os.Getenv("RCLOUD_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../rcloud",
		"./rcloud",
		"../rcloud",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "rcloud" // Fallback to PATH
}

// SkipIfMissingConfig skips the test if required config is missing.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.APIKey == "" || config.APISecret == "" {
		t.Skip("REDIS_CLOUD_API_KEY / REDIS_CLOUD_API_SECRET not set, skipping integration test")
	}

	if _, err := os.Stat(config.BinaryPath); os.IsNotExist(err) {
		t.Skipf("rcloud binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs rcloud commands against a real account.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes an rcloud command and returns stdout, stderr, and any error.
func (runner *CommandRunner) Run(args ...string) (string, string, error) {
	if runner.config.APIURL != "" {
		args = append(args, "--api-url", runner.config.APIURL)
	}

	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(),
		"RCLOUD_API_KEY="+runner.config.APIKey,
		"RCLOUD_API_SECRET="+runner.config.APISecret,
	)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// GenerateTestName creates a unique name for throwaway resources.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano()%1000000)
}

// AssertJSONOutput fails the test when the output is not valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	var decoded interface{}
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}
}
