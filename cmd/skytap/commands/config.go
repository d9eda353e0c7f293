package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the persisted CLI configuration.
type Config struct {
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	APIKey   string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	Output   string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Skytap CLI configuration including credentials and settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(config)
			case constants.FormatYAML:
				return StandardYAMLRenderer(config)
			default:
				return displayConfigTable(config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			return setConfigValue(config, args[0], args[1])
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
			config := loadConfig()

			return unsetConfigValue(config, args[0])
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove all configuration settings including stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := viper.ConfigFileUsed()
			if configFile == "" {
				home, _ := os.UserHomeDir()
				configFile = filepath.Join(home, ".skytap", "config.yml")
			}

			err := os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			return outputConfigUpdateResult("Cleared", "all configuration", "")
		},
	}
}

// loadConfig builds the configuration from the resolved viper settings.
func loadConfig() *Config {
	return &Config{
		BaseURL:  viper.GetString("base_url"),
		Username: viper.GetString("username"),
		APIKey:   viper.GetString("api_key"),
		Output:   viper.GetString("output"),
	}
}

// canonicalConfigKey maps accepted key spellings to the name used in the
// config file. Updates are echoed under the canonical name.
func canonicalConfigKey(key string) (string, error) {
	switch key {
	case "base-url", "base_url":
		return "base_url", nil
	case "username":
		return "username", nil
	case "api-key", "api_key":
		return "api_key", nil
	case "output":
		return "output", nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}
}

func setConfigValue(config *Config, key, value string) error {
	canonical, err := canonicalConfigKey(key)
	if err != nil {
		return err
	}

	switch canonical {
	case "base_url":
		config.BaseURL = value
	case "username":
		config.Username = value
	case "api_key":
		config.APIKey = value
	case "output":
		config.Output = value
	}

	err = saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	displayed := value
	if canonical == "api_key" {
		displayed = constants.MaskedSecret
	}

	return outputConfigUpdateResult("Set", canonical, displayed)
}

func unsetConfigValue(config *Config, key string) error {
	canonical, err := canonicalConfigKey(key)
	if err != nil {
		return err
	}

	switch canonical {
	case "base_url":
		config.BaseURL = ""
	case "username":
		config.Username = ""
	case "api_key":
		config.APIKey = ""
	case "output":
		config.Output = "table"
	}

	err = saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return outputConfigUpdateResult("Unset", canonical, "")
}

func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".skytap")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	// Refuse to clobber anything that is not a plain config file.
	if info, err := os.Stat(configFile); err == nil && !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", constants.ErrNotRegularFile, configFile)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displayConfigTable(config *Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Base URL", formatConfigValue(config.BaseURL))
	_ = table.Append("Username", formatConfigValue(config.Username))

	apiKey := ""
	if config.APIKey != "" {
		apiKey = constants.MaskedSecret
	}

	_ = table.Append("API Key", formatConfigValue(apiKey))
	_ = table.Append("Output", formatConfigValue(config.Output))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func formatConfigValue(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

func outputConfigUpdateResult(action, key, value string) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON, constants.FormatYAML:
		result := map[string]string{
			"action": action,
			"key":    key,
		}
		if value != "" {
			result["value"] = value
		}

		if output == constants.FormatJSON {
			return StandardJSONRenderer(result)
		}

		return StandardYAMLRenderer(result)
	default:
		if value != "" {
			_, _ = fmt.Fprintf(os.Stdout, "%s %s to %s\n", action, key, value)
		} else {
			_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", action, key)
		}

		return nil
	}
}
