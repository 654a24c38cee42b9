package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/paykit/internal/constants"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// Config represents the CLI configuration file.
type Config struct {
	APIKey       string `json:"api_key,omitempty"        yaml:"api_key,omitempty"`
	OrgAPIKey    string `json:"org_api_key,omitempty"    yaml:"org_api_key,omitempty"`
	BaseURL      string `json:"base_url,omitempty"       yaml:"base_url,omitempty"`
	Timeout      string `json:"timeout,omitempty"        yaml:"timeout,omitempty"`
	Casing       string `json:"casing,omitempty"         yaml:"casing,omitempty"`
	Output       string `json:"output,omitempty"         yaml:"output,omitempty"`
	AuditNATSURL string `json:"audit_nats_url,omitempty" yaml:"audit_nats_url,omitempty"`
	AuditSubject string `json:"audit_subject,omitempty"  yaml:"audit_subject,omitempty"`
}

// masked returns a copy safe to print.
func (c Config) masked() Config {
	if c.APIKey != "" {
		c.APIKey = maskSecret(c.APIKey)
	}

	if c.OrgAPIKey != "" {
		c.OrgAPIKey = maskSecret(c.OrgAPIKey)
	}

	return c
}

// maskSecret keeps the key prefix so the scope stays recognizable.
func maskSecret(secret string) string {
	for _, prefix := range []string{paykit.ProjectKeyPrefix, paykit.OrganizationKeyPrefix} {
		if strings.HasPrefix(secret, prefix) {
			return prefix + constants.MaskedSecret
		}
	}

	return constants.MaskedSecret
}

// configSetters validate and apply `config set` values.
var configSetters = map[string]func(config *Config, value string) error{
	"api_key": func(c *Config, v string) error {
		c.APIKey = v

		return paykit.ValidateCredential(v, paykit.ScopeProject)
	},
	"org_api_key": func(c *Config, v string) error {
		c.OrgAPIKey = v

		return paykit.ValidateCredential(v, paykit.ScopeOrganization)
	},
	"base_url": func(c *Config, v string) error {
		normalized, err := paykit.NormalizeBaseURL(v)
		c.BaseURL = normalized

		return err
	},
	"timeout": func(c *Config, v string) error {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", v, err)
		}

		if timeout <= 0 {
			return fmt.Errorf("%w: %s", paykit.ErrInvalidTimeout, v)
		}

		c.Timeout = timeout.String()

		return nil
	},
	"casing": func(c *Config, v string) error {
		casing, err := paykit.ParseCasingPolicy(v)
		c.Casing = string(casing)

		return err
	},
	"output": func(c *Config, v string) error {
		c.Output = v

		return validateOutputFormat(v)
	},
	"audit_nats_url": func(c *Config, v string) error {
		c.AuditNATSURL = v

		return nil
	},
	"audit_subject": func(c *Config, v string) error {
		c.AuditSubject = v

		return nil
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the PayKit CLI config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags, environment and config file are merged",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := effectiveConfig().masked()

			return renderOutput(cmd, config, func(table *tablewriter.Table) {
				propertyTable(table,
					"API Key", orNotAvailable(config.APIKey),
					"Org API Key", orNotAvailable(config.OrgAPIKey),
					"Base URL", orDefault(config.BaseURL, paykit.DefaultBaseURL),
					"Timeout", config.Timeout,
					"Casing", orDefault(config.Casing, string(paykit.DefaultCasing)),
					"Output", config.Output,
					"Audit NATS URL", orNotAvailable(config.AuditNATSURL),
					"Audit Subject", config.AuditSubject,
					"Config File", configFileForDisplay(),
				)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: "Set a configuration value in the config file. Keys: " +
			strings.Join(sortedStrings(configKeys()), ", "),
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			setter, ok := configSetters[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			err = setter(config, value)
			if err != nil {
				return err
			}

			err = saveConfigFile(config)
			if err != nil {
				return err
			}

			if key == "api_key" || key == "org_api_key" {
				value = maskSecret(value)
			}

			return outputConfigUpdateResult(cmd, "Set", key, value)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if _, ok := configSetters[key]; !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			clearConfigValue(config, key)

			err = saveConfigFile(config)
			if err != nil {
				return err
			}

			return outputConfigUpdateResult(cmd, "Unset", key, "")
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	var organization bool

	cmd := &cobra.Command{
		Use:   "set-key",
		Short: "Store an API key",
		Long:  "Prompt for an API key without echoing it and store it in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, key := paykit.ScopeProject, "api_key"
			if organization {
				scope, key = paykit.ScopeOrganization, "org_api_key"
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s API key: ", scope)

			secret, err := readSecret(cmd.InOrStdin())
			_, _ = fmt.Fprintln(cmd.ErrOrStderr())

			if err != nil {
				return err
			}

			if secret == "" {
				return constants.ErrEmptyAPIKey
			}

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			err = configSetters[key](config, secret)
			if err != nil {
				return err
			}

			err = saveConfigFile(config)
			if err != nil {
				return err
			}

			return outputConfigUpdateResult(cmd, "Set", key, maskSecret(secret))
		},
	}

	cmd.Flags().BoolVar(&organization, "org", false, "store an organization key instead of a project key")

	return cmd
}

// readSecret reads without echo from a terminal, or one line from in otherwise.
func readSecret(in io.Reader) (string, error) {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		secret, err := term.ReadPassword(int(file.Fd()))
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func configKeys() []string {
	keys := make([]string, 0, len(configSetters))
	for key := range configSetters {
		keys = append(keys, key)
	}

	return keys
}

func clearConfigValue(config *Config, key string) {
	switch key {
	case "api_key":
		config.APIKey = ""
	case "org_api_key":
		config.OrgAPIKey = ""
	case "base_url":
		config.BaseURL = ""
	case "timeout":
		config.Timeout = ""
	case "casing":
		config.Casing = ""
	case "output":
		config.Output = ""
	case "audit_nats_url":
		config.AuditNATSURL = ""
	case "audit_subject":
		config.AuditSubject = ""
	}
}

// effectiveConfig reads the merged settings from viper.
func effectiveConfig() Config {
	return Config{
		APIKey:       viper.GetString("api_key"),
		OrgAPIKey:    viper.GetString("org_api_key"),
		BaseURL:      viper.GetString("base_url"),
		Timeout:      viper.GetDuration("timeout").String(),
		Casing:       viper.GetString("casing"),
		Output:       viper.GetString("output"),
		AuditNATSURL: viper.GetString("audit_nats_url"),
		AuditSubject: viper.GetString("audit_subject"),
	}
}

// configFilePath is the --config file, the file viper loaded, or the default.
func configFilePath() (string, error) {
	if path := viper.GetString("config"); path != "" {
		return path, nil
	}

	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName), nil
}

func configFileForDisplay() string {
	path, err := configFilePath()
	if err != nil {
		return constants.NotAvailable
	}

	return path
}

// loadConfigFile reads only the config file, so saving it never persists
// values that came from flags or the environment.
func loadConfigFile() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	// path comes from the user's own flag or home directory
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

func saveConfigFile(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func outputConfigUpdateResult(cmd *cobra.Command, action, key, value string) error {
	result := map[string]string{
		"action": action,
		"key":    key,
	}

	if value != "" {
		result["value"] = value
	}

	return renderOutput(cmd, result, func(table *tablewriter.Table) {
		propertyTable(table, "Action", action, "Key", key)

		if value != "" {
			_ = table.Append("Value", value)
		}
	})
}

func orNotAvailable(value string) string {
	return orDefault(value, constants.NotAvailable)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
