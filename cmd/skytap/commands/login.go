package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/pkg/skytapclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		baseURL  string
		username string
		apiKey   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to Skytap",
		Long:  "Verify credentials against a Skytap API endpoint and store them",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			// Get API endpoint
			if baseURL == "" {
				baseURL = viper.GetString("base_url")
			}

			if baseURL == "" {
				fmt.Printf("API endpoint [%s]: ", constants.DefaultBaseURL)
				input, _ := reader.ReadString('\n')

				baseURL = strings.TrimSpace(input)
				if baseURL == "" {
					baseURL = constants.DefaultBaseURL
				}
			}

			// Get login name
			if username == "" {
				username = viper.GetString("username")
			}

			if username == "" {
				fmt.Print("Username: ")
				input, _ := reader.ReadString('\n')
				username = strings.TrimSpace(input)
			}

			if username == "" {
				return ErrUsernameRequired
			}

			// Get API key without echoing it
			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))

				fmt.Println()
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			// Create client
			client, err := skytapclient.NewWithCredentials(baseURL, username, apiKey)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Test the credentials with one authenticated call
			ctx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
			defer cancel()

			projects, err := client.Projects().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			// Save configuration
			err = NewCredentialsPersister().SaveCredentials(baseURL, username, apiKey)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to %s\n", baseURL)

			if len(projects) > 0 {
				fmt.Println("\nAvailable projects:")

				for _, project := range projects {
					fmt.Printf("  - %s\n", project.Name)
				}
			}

			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&baseURL, "base-url", "a", "", "API endpoint URL")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Skytap login name")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Skytap API security token")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of Skytap",
		Long:  "Remove stored credentials from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := NewCredentialsPersister().ClearCredentials()
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
