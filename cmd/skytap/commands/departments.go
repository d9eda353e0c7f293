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

// NewDepartmentsCommand creates the departments command group.
func NewDepartmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"department", "depts"},
		Short:   "Manage departments",
		Long:    "List departments, their members, and their resource quotas",
	}

	cmd.AddCommand(newDepartmentsListCommand())
	cmd.AddCommand(newDepartmentsGetCommand())
	cmd.AddCommand(newDepartmentsUsersCommand())
	cmd.AddCommand(newDepartmentsAddUserCommand())
	cmd.AddCommand(newDepartmentsQuotasCommand())
	cmd.AddCommand(newDepartmentsSetQuotasCommand())
	cmd.AddCommand(newDepartmentsSetDescriptionCommand())

	return cmd
}

func newDepartmentsListCommand() *cobra.Command {
	var (
		count  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List departments",
		Long:  "List the departments of the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDepartmentsListCommand(count, offset)
		},
	}

	cmd.Flags().IntVar(&count, "count", constants.DefaultListCount, "maximum records to return")
	cmd.Flags().IntVar(&offset, "offset", constants.DefaultListOffset, "records to skip")

	return cmd
}

func runDepartmentsListCommand(count, offset int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	opts := skytap.NewListOptions().WithCount(count).WithOffset(offset)

	departments, err := client.Departments().List(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list departments: %w", err)
	}

	return outputDepartments(departments)
}

func outputDepartments(departments []skytap.Department) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(departments)
	case constants.FormatYAML:
		return StandardYAMLRenderer(departments)
	default:
		return renderDepartmentsTable(departments)
	}
}

func renderDepartmentsTable(departments []skytap.Department) error {
	if len(departments) == 0 {
		_, _ = os.Stdout.WriteString("No departments found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Description", "Users")

	for _, department := range departments {
		_ = table.Append(department.ID, department.Name,
			stringOrNA(truncateString(department.Description, constants.DescriptionDisplayLength)),
			strconv.Itoa(department.UserCount))
	}

	_ = table.Render()

	return nil
}

func newDepartmentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DEPARTMENT_ID",
		Short: "Get department details",
		Long:  "Display detailed information about a specific department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDepartmentsGetCommand(args[0])
		},
	}
}

func runDepartmentsGetCommand(departmentID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	department, err := client.Departments().Get(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("failed to get department: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(department)
	case constants.FormatYAML:
		return StandardYAMLRenderer(department)
	default:
		return renderDepartmentDetailsTable(department)
	}
}

func renderDepartmentDetailsTable(department *skytap.Department) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", department.ID)
	_ = table.Append("Name", department.Name)
	_ = table.Append("Description", stringOrNA(department.Description))
	_ = table.Append("Users", strconv.Itoa(department.UserCount))

	_, _ = os.Stdout.WriteString("Department details:\n\n")

	_ = table.Render()

	return nil
}

func newDepartmentsUsersCommand() *cobra.Command {
	var (
		count  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "users DEPARTMENT_ID",
		Short: "List department members",
		Long:  "List the user accounts belonging to a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDepartmentsUsersCommand(args[0], count, offset)
		},
	}

	cmd.Flags().IntVar(&count, "count", constants.DefaultListCount, "maximum records to return")
	cmd.Flags().IntVar(&offset, "offset", constants.DefaultListOffset, "records to skip")

	return cmd
}

func runDepartmentsUsersCommand(departmentID string, count, offset int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	opts := skytap.NewListOptions().WithCount(count).WithOffset(offset)

	users, err := client.Departments().ListUsers(ctx, departmentID, opts)
	if err != nil {
		return fmt.Errorf("failed to list department users: %w", err)
	}

	return outputUsers(users)
}

func newDepartmentsAddUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-user DEPARTMENT_ID USER_ID",
		Short: "Add a user to a department",
		Long:  "Move an existing user account into a department",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDepartmentsAddUserCommand(args[0], args[1])
		},
	}
}

func runDepartmentsAddUserCommand(departmentID, userID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	user, err := client.Departments().AddUser(ctx, departmentID, userID)
	if err != nil {
		return fmt.Errorf("failed to add user to department: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully added user '%s' to department '%s'\n", user.ID, departmentID)

	return nil
}

func newDepartmentsQuotasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quotas DEPARTMENT_ID",
		Short: "Show department quotas",
		Long:  "Display the resource quotas of a department with current usage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDepartmentsQuotasCommand(args[0])
		},
	}
}

func runDepartmentsQuotasCommand(departmentID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	quotas, err := client.Departments().Quotas(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("failed to get department quotas: %w", err)
	}

	return outputQuotas(quotas)
}

func outputQuotas(quotas []skytap.Quota) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(quotas)
	case constants.FormatYAML:
		return StandardYAMLRenderer(quotas)
	default:
		return renderQuotasTable(quotas)
	}
}

func renderQuotasTable(quotas []skytap.Quota) error {
	if len(quotas) == 0 {
		_, _ = os.Stdout.WriteString("No quotas found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Quota", "Limit", "Usage", "Units", "Subscription")

	for _, quota := range quotas {
		subscription := constants.NotAvailable
		if quota.Subscription != nil {
			subscription = strconv.FormatInt(*quota.Subscription, 10)
		}

		_ = table.Append(quota.ID, formatLimit(quota.Limit),
			strconv.FormatInt(quota.Usage, 10),
			stringOrNA(quota.Units), subscription)
	}

	_ = table.Render()

	return nil
}

func newDepartmentsSetQuotasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-quotas DEPARTMENT_ID QUOTA=LIMIT...",
		Short: "Set department quota limits",
		Long: "Update the quota limits of a department. Limits are integers in " +
			"the quota's units, or 'unlimited' to remove the department limit",
		Args: cobra.MinimumNArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDepartmentsSetQuotasCommand(args[0], args[1:])
		},
	}
}

func runDepartmentsSetQuotasCommand(departmentID string, pairs []string) error {
	limits, err := parseQuotaLimits(pairs)
	if err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	quotas, err := client.Departments().SetQuotas(ctx, departmentID, limits)
	if err != nil {
		return fmt.Errorf("failed to set department quotas: %w", err)
	}

	return outputQuotas(quotas)
}

func parseQuotaLimits(pairs []string) ([]skytap.QuotaLimit, error) {
	limits := make([]skytap.QuotaLimit, 0, len(pairs))

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", constants.KeyValueSplitParts)
		if len(parts) != constants.KeyValueSplitParts || parts[0] == "" {
			return nil, fmt.Errorf("%w: %q", ErrQuotaFormatInvalid, pair)
		}

		limit := skytap.QuotaLimit{ID: parts[0]}

		if parts[1] != constants.Unlimited {
			value, err := strconv.ParseInt(parts[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", constants.ErrInvalidQuotaLimit, pair)
			}

			limit.Limit = &value
		}

		limits = append(limits, limit)
	}

	return limits, nil
}

func newDepartmentsSetDescriptionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-description DEPARTMENT_ID DESCRIPTION",
		Short: "Set the department description",
		Long:  "Replace the description of a department",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDepartmentsSetDescriptionCommand(args[0], args[1])
		},
	}
}

func runDepartmentsSetDescriptionCommand(departmentID, description string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	department, err := client.Departments().SetDescription(ctx, departmentID, description)
	if err != nil {
		return fmt.Errorf("failed to set department description: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully updated description of department '%s'\n", department.ID)

	return nil
}
