package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List, create, and update Skytap user accounts",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersUpdateCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List all user accounts visible to the caller",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersListCommand()
		},
	}
}

func runUsersListCommand() error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	users, err := client.Users().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	return outputUsers(users)
}

func outputUsers(users []skytap.User) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(users)
	case constants.FormatYAML:
		return StandardYAMLRenderer(users)
	default:
		return renderUsersTable(users)
	}
}

func renderUsersTable(users []skytap.User) error {
	if len(users) == 0 {
		_, _ = os.Stdout.WriteString("No users found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Login", "Email", "Role", "Last Login")

	for _, user := range users {
		_ = table.Append(user.ID, user.LoginName, user.Email,
			stringOrNA(user.AccountRole), stringOrNA(user.LastLogin))
	}

	_ = table.Render()

	return nil
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user details",
		Long:  "Display detailed information about a specific user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersGetCommand(args[0])
		},
	}
}

func runUsersGetCommand(userID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	user, err := client.Users().Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	return outputUserDetails(user)
}

func outputUserDetails(user *skytap.User) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(user)
	case constants.FormatYAML:
		return StandardYAMLRenderer(user)
	default:
		return renderUserDetailsTable(user)
	}
}

func renderUserDetailsTable(user *skytap.User) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", user.ID)
	_ = table.Append("Login", user.LoginName)
	_ = table.Append("Name", stringOrNA(strings.TrimSpace(user.FirstName+" "+user.LastName)))
	_ = table.Append("Email", user.Email)
	_ = table.Append("Title", stringOrNA(user.Title))
	_ = table.Append("Role", stringOrNA(user.AccountRole))
	_ = table.Append("Time Zone", stringOrNA(user.TimeZone))
	_ = table.Append("Can Import", strconv.FormatBool(user.CanImport))
	_ = table.Append("Can Export", strconv.FormatBool(user.CanExport))
	_ = table.Append("SSO Enabled", strconv.FormatBool(user.SSOEnabled))
	_ = table.Append("Last Login", stringOrNA(user.LastLogin))

	_, _ = os.Stdout.WriteString("User details:\n\n")

	_ = table.Render()

	return nil
}

//nolint:funlen // flag wiring for every user attribute
func newUsersCreateCommand() *cobra.Command {
	var (
		loginName     string
		email         string
		firstName     string
		lastName      string
		title         string
		accountRole   string
		timeZone      string
		canImport     bool
		canExport     bool
		publicLibrary bool
		ssoEnabled    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		Long:  "Create a new Skytap user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &skytap.CreateUserRequest{
				LoginName:   loginName,
				Email:       email,
				FirstName:   firstName,
				LastName:    lastName,
				Title:       title,
				AccountRole: accountRole,
				TimeZone:    timeZone,
			}

			// Only send booleans the caller set so API defaults stay intact
			if cmd.Flags().Changed("can-import") {
				request.CanImport = &canImport
			}

			if cmd.Flags().Changed("can-export") {
				request.CanExport = &canExport
			}

			if cmd.Flags().Changed("public-library") {
				request.HasPublicLibrary = &publicLibrary
			}

			if cmd.Flags().Changed("sso") {
				request.SSOEnabled = &ssoEnabled
			}

			return runUsersCreateCommand(request)
		},
	}

	cmd.Flags().StringVar(&loginName, "login", "", "login name (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name (required)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name (required)")
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&accountRole, "role", "", "account role (default standard_user)")
	cmd.Flags().StringVar(&timeZone, "time-zone", "", "time zone name")
	cmd.Flags().BoolVar(&canImport, "can-import", false, "allow VM imports")
	cmd.Flags().BoolVar(&canExport, "can-export", false, "allow VM exports")
	cmd.Flags().BoolVar(&publicLibrary, "public-library", false, "grant public library access")
	cmd.Flags().BoolVar(&ssoEnabled, "sso", false, "enable single sign-on")

	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")

	return cmd
}

func runUsersCreateCommand(request *skytap.CreateUserRequest) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	user, err := client.Users().Create(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(user)
	case constants.FormatYAML:
		return StandardYAMLRenderer(user)
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Successfully created user '%s' (ID: %s)\n", user.LoginName, user.ID)

		return nil
	}
}

func newUsersUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update USER_ID ATTR=VALUE...",
		Short: "Update a user",
		Long:  "Update attributes of an existing user account",
		Args:  cobra.MinimumNArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersUpdateCommand(args[0], args[1:])
		},
	}
}

func runUsersUpdateCommand(userID string, pairs []string) error {
	updates, err := parseAttributes(pairs)
	if err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	user, err := client.Users().Update(ctx, userID, updates)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(user)
	case constants.FormatYAML:
		return StandardYAMLRenderer(user)
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Successfully updated user '%s' (ID: %s)\n", user.LoginName, user.ID)

		return nil
	}
}
