package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/skytap-client/cmd/skytap/commands"
	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "skytap",
	Short: "Skytap cloud automation CLI",
	Long: `A command-line interface for the Skytap cloud REST API.

This CLI provides access to Skytap resources including environments,
templates, users, projects, departments, and networking.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.skytap/config.yml)")
	rootCmd.PersistentFlags().StringP("base-url", "a", "", "API endpoint URL")
	rootCmd.PersistentFlags().StringP("username", "u", "", "Skytap login name")
	rootCmd.PersistentFlags().String("api-key", "", "Skytap API security token")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewEnvironmentsCommand())
	rootCmd.AddCommand(commands.NewTemplatesCommand())
	rootCmd.AddCommand(commands.NewProjectsCommand())
	rootCmd.AddCommand(commands.NewDepartmentsCommand())
	rootCmd.AddCommand(commands.NewVMsCommand())
	rootCmd.AddCommand(commands.NewVPNsCommand())
	rootCmd.AddCommand(commands.NewPublicIPsCommand())
	rootCmd.AddCommand(commands.NewPublishSetsCommand())
	rootCmd.AddCommand(commands.NewResourceGetCommand())
	rootCmd.AddCommand(commands.NewResourceListCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.skytap/config.yml
		configDir := filepath.Join(home, ".skytap")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("SKYTAP")
	viper.AutomaticEnv()

	// The hosted endpoint applies unless a flag, env var, or config file
	// overrides it
	viper.SetDefault("base_url", constants.DefaultBaseURL)

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
