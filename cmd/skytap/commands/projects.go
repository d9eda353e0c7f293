package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List projects and the environments and templates they contain",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsEnvironmentsCommand())
	cmd.AddCommand(newProjectsAddEnvironmentCommand())
	cmd.AddCommand(newProjectsTemplatesCommand())
	cmd.AddCommand(newProjectsAddTemplateCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List all projects visible to the caller",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsListCommand()
		},
	}
}

func runProjectsListCommand() error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	projects, err := client.Projects().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	return outputProjects(projects)
}

func outputProjects(projects []skytap.Project) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(projects)
	case constants.FormatYAML:
		return StandardYAMLRenderer(projects)
	default:
		return renderProjectsTable(projects)
	}
}

func renderProjectsTable(projects []skytap.Project) error {
	if len(projects) == 0 {
		_, _ = os.Stdout.WriteString("No projects found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Summary", "Auto-Add Role")

	for _, project := range projects {
		_ = table.Append(project.ID, project.Name,
			stringOrNA(truncateString(project.Summary, constants.DescriptionDisplayLength)),
			stringOrNA(project.AutoAddRoleName))
	}

	_ = table.Render()

	return nil
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
		Long:  "Display detailed information about a specific project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsGetCommand(args[0])
		},
	}
}

func runProjectsGetCommand(projectID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	project, err := client.Projects().Get(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(project)
	case constants.FormatYAML:
		return StandardYAMLRenderer(project)
	default:
		return renderProjectDetailsTable(project)
	}
}

func renderProjectDetailsTable(project *skytap.Project) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", project.ID)
	_ = table.Append("Name", project.Name)
	_ = table.Append("Summary", stringOrNA(project.Summary))
	_ = table.Append("Auto-Add Role", stringOrNA(project.AutoAddRoleName))

	_, _ = os.Stdout.WriteString("Project details:\n\n")

	_ = table.Render()

	return nil
}

func newProjectsEnvironmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "environments PROJECT_ID",
		Short: "List project environments",
		Long:  "List the environments assigned to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsEnvironmentsCommand(args[0])
		},
	}
}

func runProjectsEnvironmentsCommand(projectID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	environments, err := client.Projects().ListEnvironments(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to list project environments: %w", err)
	}

	return outputEnvironments(environments)
}

func newProjectsAddEnvironmentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-environment PROJECT_ID ENVIRONMENT_ID",
		Short: "Add an environment to a project",
		Long:  "Assign an existing environment to a project",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsAddEnvironmentCommand(args[0], args[1])
		},
	}
}

func runProjectsAddEnvironmentCommand(projectID, environmentID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	environment, err := client.Projects().AddEnvironment(ctx, projectID, environmentID)
	if err != nil {
		return fmt.Errorf("failed to add environment to project: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully added environment '%s' to project '%s'\n", environment.ID, projectID)

	return nil
}

func newProjectsTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates PROJECT_ID",
		Short: "List project templates",
		Long:  "List the templates assigned to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsTemplatesCommand(args[0])
		},
	}
}

func runProjectsTemplatesCommand(projectID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	templates, err := client.Projects().ListTemplates(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to list project templates: %w", err)
	}

	return outputTemplates(templates)
}

func newProjectsAddTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-template PROJECT_ID TEMPLATE_ID",
		Short: "Add a template to a project",
		Long:  "Assign an existing template to a project",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsAddTemplateCommand(args[0], args[1])
		},
	}
}

func runProjectsAddTemplateCommand(projectID, templateID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	template, err := client.Projects().AddTemplate(ctx, projectID, templateID)
	if err != nil {
		return fmt.Errorf("failed to add template to project: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully added template '%s' to project '%s'\n", template.ID, projectID)

	return nil
}
