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

// NewEnvironmentsCommand creates the environments command group.
func NewEnvironmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "environments",
		Aliases: []string{"envs", "env"},
		Short:   "Manage environments",
		Long:    "List, create, update, and delete Skytap environments",
	}

	cmd.AddCommand(newEnvironmentsListCommand())
	cmd.AddCommand(newEnvironmentsGetCommand())
	cmd.AddCommand(newEnvironmentsCreateCommand())
	cmd.AddCommand(newEnvironmentsUpdateCommand())
	cmd.AddCommand(newEnvironmentsDeleteCommand())
	cmd.AddCommand(newEnvironmentsRunstateCommand())
	cmd.AddCommand(newEnvironmentsNetworksCommand())

	return cmd
}

func newEnvironmentsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List environments",
		Long:  "List all environments visible to the caller",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvironmentsListCommand()
		},
	}
}

func runEnvironmentsListCommand() error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	environments, err := client.Environments().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list environments: %w", err)
	}

	return outputEnvironments(environments)
}

func outputEnvironments(environments []skytap.Environment) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(environments)
	case constants.FormatYAML:
		return StandardYAMLRenderer(environments)
	default:
		return renderEnvironmentsTable(environments)
	}
}

func renderEnvironmentsTable(environments []skytap.Environment) error {
	if len(environments) == 0 {
		_, _ = os.Stdout.WriteString("No environments found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Runstate", "VMs", "Storage (MB)", "Last Run")

	for _, environment := range environments {
		_ = table.Append(environment.ID, environment.Name, string(environment.Runstate),
			strconv.Itoa(environment.VMCount),
			strconv.FormatInt(environment.Storage, 10),
			stringOrNA(environment.LastRun))
	}

	_ = table.Render()

	return nil
}

func newEnvironmentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENVIRONMENT_ID",
		Short: "Get environment details",
		Long:  "Display detailed information about a specific environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvironmentsGetCommand(args[0])
		},
	}
}

func runEnvironmentsGetCommand(environmentID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	environment, err := client.Environments().Get(ctx, environmentID)
	if err != nil {
		return fmt.Errorf("failed to get environment: %w", err)
	}

	return outputEnvironmentDetails(environment)
}

func outputEnvironmentDetails(environment *skytap.Environment) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(environment)
	case constants.FormatYAML:
		return StandardYAMLRenderer(environment)
	default:
		return renderEnvironmentDetailsTable(environment)
	}
}

func renderEnvironmentDetailsTable(environment *skytap.Environment) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", environment.ID)
	_ = table.Append("Name", environment.Name)
	_ = table.Append("Description", stringOrNA(truncateString(environment.Description, constants.DescriptionDisplayLength)))
	_ = table.Append("Runstate", string(environment.Runstate))

	if environment.Error != "" {
		_ = table.Append("Error", environment.Error)
	}

	_ = table.Append("Owner", stringOrNA(environment.OwnerURL))
	_ = table.Append("Template", stringOrNA(environment.TemplateURL))
	_ = table.Append("VM Count", strconv.Itoa(environment.VMCount))
	_ = table.Append("SVMs", strconv.Itoa(environment.SVMs))
	_ = table.Append("Storage (MB)", strconv.FormatInt(environment.Storage, 10))
	_ = table.Append("Routable", strconv.FormatBool(environment.Routable))
	_ = table.Append("Last Run", stringOrNA(environment.LastRun))

	_, _ = os.Stdout.WriteString("Environment details:\n\n")

	_ = table.Render()

	renderVMSummaryTable(environment.VMs)

	return nil
}

func renderVMSummaryTable(vms []skytap.VM) {
	if len(vms) == 0 {
		return
	}

	_, _ = os.Stdout.WriteString("\nVMs:\n")

	vmTable := tablewriter.NewWriter(os.Stdout)
	vmTable.Header("ID", "Name", "Runstate")

	for _, machine := range vms {
		_ = vmTable.Append(machine.ID, machine.Name, string(machine.Runstate))
	}

	_ = vmTable.Render()
}

func newEnvironmentsCreateCommand() *cobra.Command {
	var (
		templateID string
		name       string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new environment",
		Long:  "Create a new environment from a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if templateID == "" {
				return constants.ErrTemplateRequired
			}

			return runEnvironmentsCreateCommand(templateID, name)
		},
	}

	cmd.Flags().StringVar(&templateID, "template", "", "template ID to create from (required)")
	cmd.Flags().StringVar(&name, "name", "", "name for the new environment")

	return cmd
}

func runEnvironmentsCreateCommand(templateID, name string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	environment, err := client.Environments().Create(ctx, templateID)
	if err != nil {
		return fmt.Errorf("failed to create environment: %w", err)
	}

	// The API names the copy after the template; rename when asked to
	if name != "" {
		environment, err = client.Environments().Update(ctx, environment.ID, map[string]string{"name": name})
		if err != nil {
			return fmt.Errorf("failed to rename environment: %w", err)
		}
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(environment)
	case constants.FormatYAML:
		return StandardYAMLRenderer(environment)
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Successfully created environment '%s' (ID: %s)\n", environment.Name, environment.ID)

		return nil
	}
}

func newEnvironmentsUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update ENVIRONMENT_ID ATTR=VALUE...",
		Short: "Update an environment",
		Long:  "Update attributes of an existing environment",
		Args:  cobra.MinimumNArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvironmentsUpdateCommand(args[0], args[1:])
		},
	}
}

func runEnvironmentsUpdateCommand(environmentID string, pairs []string) error {
	updates, err := parseAttributes(pairs)
	if err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	environment, err := client.Environments().Update(ctx, environmentID, updates)
	if err != nil {
		return fmt.Errorf("failed to update environment: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(environment)
	case constants.FormatYAML:
		return StandardYAMLRenderer(environment)
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Successfully updated environment '%s' (ID: %s)\n", environment.Name, environment.ID)

		return nil
	}
}

func newEnvironmentsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ENVIRONMENT_ID",
		Short: "Delete an environment",
		Long:  "Delete an environment and all of its VMs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmDeletion("environment", args[0], force) {
				return nil
			}

			return runEnvironmentsDeleteCommand(args[0])
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func runEnvironmentsDeleteCommand(environmentID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	err = client.Environments().Delete(ctx, environmentID)
	if err != nil {
		return fmt.Errorf("failed to delete environment: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted environment '%s'\n", environmentID)

	return nil
}

func newEnvironmentsRunstateCommand() *cobra.Command {
	var vmIDs []string

	cmd := &cobra.Command{
		Use:   "runstate ENVIRONMENT_ID STATE",
		Short: "Change the runstate",
		Long: "Transition an environment, or selected VMs within it, to a new " +
			"runstate (running, stopped, suspended, halted, reset)",
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvironmentsRunstateCommand(args[0], args[1], vmIDs)
		},
	}

	cmd.Flags().StringArrayVar(&vmIDs, "vm", nil, "limit the transition to a VM (repeatable)")

	return cmd
}

func newEnvironmentsNetworksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "networks ENVIRONMENT_ID",
		Short: "List environment networks",
		Long:  "List the virtual networks of an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvironmentsNetworksCommand(args[0])
		},
	}
}

func runEnvironmentsNetworksCommand(environmentID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	networks, err := client.Networks().List(ctx, environmentID)
	if err != nil {
		return fmt.Errorf("failed to list networks: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(networks)
	case constants.FormatYAML:
		return StandardYAMLRenderer(networks)
	default:
		return renderNetworksTable(networks)
	}
}

func renderNetworksTable(networks []skytap.Network) error {
	if len(networks) == 0 {
		_, _ = os.Stdout.WriteString("No networks found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Subnet", "Gateway", "Domain")

	for _, network := range networks {
		_ = table.Append(network.ID, network.Name, stringOrNA(network.NetworkType),
			stringOrNA(network.Subnet), stringOrNA(network.Gateway),
			stringOrNA(network.Domain))
	}

	_ = table.Render()

	return nil
}

func runEnvironmentsRunstateCommand(environmentID, state string, vmIDs []string) error {
	runstate, err := parseRunstate(state)
	if err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	environment, err := client.Environments().SetRunstate(ctx, environmentID, runstate, vmIDs...)
	if err != nil {
		return fmt.Errorf("failed to set runstate: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(environment)
	case constants.FormatYAML:
		return StandardYAMLRenderer(environment)
	default:
		if len(vmIDs) > 0 {
			_, _ = fmt.Fprintf(os.Stdout, "Requested runstate '%s' for %d VM(s) of environment '%s'\n",
				runstate, len(vmIDs), environment.ID)
		} else {
			_, _ = fmt.Fprintf(os.Stdout, "Requested runstate '%s' for environment '%s' (current: %s)\n",
				runstate, environment.ID, environment.Runstate)
		}

		return nil
	}
}
