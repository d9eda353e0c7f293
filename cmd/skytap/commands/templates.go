package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTemplatesCommand creates the templates command group.
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Manage templates",
		Long:    "List, create, and delete Skytap templates",
	}

	cmd.AddCommand(newTemplatesListCommand())
	cmd.AddCommand(newTemplatesGetCommand())
	cmd.AddCommand(newTemplatesCreateCommand())
	cmd.AddCommand(newTemplatesUpdateCommand())
	cmd.AddCommand(newTemplatesDeleteCommand())

	return cmd
}

func newTemplatesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Long:  "List all templates visible to the caller",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesListCommand()
		},
	}
}

func runTemplatesListCommand() error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	templates, err := client.Templates().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	return outputTemplates(templates)
}

func outputTemplates(templates []skytap.Template) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(templates)
	case constants.FormatYAML:
		return StandardYAMLRenderer(templates)
	default:
		return renderTemplatesTable(templates)
	}
}

func renderTemplatesTable(templates []skytap.Template) error {
	if len(templates) == 0 {
		_, _ = os.Stdout.WriteString("No templates found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Region", "Public", "Storage (MB)")

	for _, template := range templates {
		_ = table.Append(template.ID, template.Name, stringOrNA(template.Region),
			strconv.FormatBool(template.Public),
			strconv.FormatInt(template.Storage, 10))
	}

	_ = table.Render()

	return nil
}

func newTemplatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TEMPLATE_ID",
		Short: "Get template details",
		Long:  "Display detailed information about a specific template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesGetCommand(args[0])
		},
	}
}

func runTemplatesGetCommand(templateID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	template, err := client.Templates().Get(ctx, templateID)
	if err != nil {
		return fmt.Errorf("failed to get template: %w", err)
	}

	return outputTemplateDetails(template)
}

func outputTemplateDetails(template *skytap.Template) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(template)
	case constants.FormatYAML:
		return StandardYAMLRenderer(template)
	default:
		return renderTemplateDetailsTable(template)
	}
}

func renderTemplateDetailsTable(template *skytap.Template) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", template.ID)
	_ = table.Append("Name", template.Name)
	_ = table.Append("Description", stringOrNA(truncateString(template.Description, constants.DescriptionDisplayLength)))
	_ = table.Append("Region", stringOrNA(template.Region))
	_ = table.Append("Public", strconv.FormatBool(template.Public))
	_ = table.Append("Busy", strconv.FormatBool(template.Busy))
	_ = table.Append("SVMs", strconv.Itoa(template.SVMs))
	_ = table.Append("Storage (MB)", strconv.FormatInt(template.Storage, 10))
	_ = table.Append("Can Copy", strconv.FormatBool(template.CanCopy))
	_ = table.Append("Can Delete", strconv.FormatBool(template.CanDelete))

	_, _ = os.Stdout.WriteString("Template details:\n\n")

	_ = table.Render()

	renderVMSummaryTable(template.VMs)

	return nil
}

func newTemplatesCreateCommand() *cobra.Command {
	var (
		environmentID string
		vmIDs         []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a template from environment VMs",
		Long:  "Create a new template from selected VMs of an existing environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if environmentID == "" {
				return constants.ErrEnvironmentRequired
			}

			return runTemplatesCreateCommand(environmentID, vmIDs)
		},
	}

	cmd.Flags().StringVar(&environmentID, "environment", "", "source environment ID (required)")
	cmd.Flags().StringArrayVar(&vmIDs, "vm", nil, "VM to include (repeatable, default all)")

	return cmd
}

func runTemplatesCreateCommand(environmentID string, vmIDs []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	template, err := client.Templates().CreateFromVMs(ctx, environmentID, vmIDs)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(template)
	case constants.FormatYAML:
		return StandardYAMLRenderer(template)
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Successfully created template '%s' (ID: %s)\n", template.Name, template.ID)

		return nil
	}
}

func newTemplatesUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update TEMPLATE_ID ATTR=VALUE...",
		Short: "Update a template",
		Long:  "Update attributes of an existing template",
		Args:  cobra.MinimumNArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesUpdateCommand(args[0], args[1:])
		},
	}
}

func runTemplatesUpdateCommand(templateID string, pairs []string) error {
	updates, err := parseAttributes(pairs)
	if err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	template, err := client.Templates().Update(ctx, templateID, updates)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(template)
	case constants.FormatYAML:
		return StandardYAMLRenderer(template)
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Successfully updated template '%s' (ID: %s)\n", template.Name, template.ID)

		return nil
	}
}

func newTemplatesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TEMPLATE_ID",
		Short: "Delete a template",
		Long:  "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmDeletion("template", args[0], force) {
				return nil
			}

			return runTemplatesDeleteCommand(args[0])
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func runTemplatesDeleteCommand(templateID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	err = client.Templates().Delete(ctx, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted template '%s'\n", templateID)

	return nil
}
