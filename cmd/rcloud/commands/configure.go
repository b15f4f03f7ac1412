package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// cliConfig is the on-disk shape of ~/.rcloud/config.yml.
type cliConfig struct {
	APIURL    string `yaml:"api-url,omitempty"`
	APIKey    string `yaml:"api-key,omitempty"`
	APISecret string `yaml:"api-secret,omitempty"`
	Output    string `yaml:"output,omitempty"`
}

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure API credentials",
		Long: `Store the Redis Cloud API key pair in the CLI config file.

The secret key is prompted for without echo. Credentials can alternatively be
supplied via the RCLOUD_API_KEY and RCLOUD_API_SECRET environment variables,
or REDIS_CLOUD_API_KEY and REDIS_CLOUD_API_SECRET for library compatibility.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigureCommand(apiURL)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "non-default API endpoint URL")

	return cmd
}

func runConfigureCommand(apiURL string) error {
	reader := bufio.NewReader(os.Stdin)

	_, _ = os.Stdout.WriteString("API key: ")

	apiKey, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading API key: %w", err)
	}

	apiKey = strings.TrimSpace(apiKey)

	_, _ = os.Stdout.WriteString("API secret key: ")

	secretBytes, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return fmt.Errorf("reading API secret key: %w", err)
	}

	_, _ = os.Stdout.WriteString("\n")

	config := cliConfig{
		APIURL:    apiURL,
		APIKey:    apiKey,
		APISecret: strings.TrimSpace(string(secretBytes)),
		Output:    viper.GetString("output"),
	}

	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := writeConfigFile(path, &config); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Credentials written to %s\n", path)

	return nil
}

func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".rcloud", "config.yml"), nil
}

func writeConfigFile(path string, config *cliConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The file carries the secret key, keep it private.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
