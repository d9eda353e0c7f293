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

// NewVMsCommand creates the vms command group.
func NewVMsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vms",
		Aliases: []string{"vm"},
		Short:   "Manage VMs",
		Long:    "Inspect and update the virtual machines of an environment",
	}

	cmd.AddCommand(newVMsListCommand())
	cmd.AddCommand(newVMsGetCommand())
	cmd.AddCommand(newVMsUpdateCommand())
	cmd.AddCommand(newVMsInterfacesCommand())
	cmd.AddCommand(newVMsAttachCommand())
	cmd.AddCommand(newVMsServicesCommand())
	cmd.AddCommand(newVMsPublishCommand())
	cmd.AddCommand(newVMsUnpublishCommand())

	return cmd
}

func newVMsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list ENVIRONMENT_ID",
		Short: "List VMs",
		Long:  "List the virtual machines of an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVMsListCommand(args[0])
		},
	}
}

func runVMsListCommand(environmentID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	vms, err := client.VMs().List(ctx, environmentID)
	if err != nil {
		return fmt.Errorf("failed to list VMs: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(vms)
	case constants.FormatYAML:
		return StandardYAMLRenderer(vms)
	default:
		if len(vms) == 0 {
			_, _ = os.Stdout.WriteString("No VMs found\n")

			return nil
		}

		renderVMSummaryTable(vms)

		return nil
	}
}

func newVMsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENVIRONMENT_ID VM_ID",
		Short: "Get VM details",
		Long:  "Display detailed information about a specific VM",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVMsGetCommand(args[0], args[1])
		},
	}
}

func runVMsGetCommand(environmentID, vmID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	machine, err := client.VMs().Get(ctx, environmentID, vmID)
	if err != nil {
		return fmt.Errorf("failed to get VM: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(machine)
	case constants.FormatYAML:
		return StandardYAMLRenderer(machine)
	default:
		return renderVMDetailsTable(machine)
	}
}

func renderVMDetailsTable(machine *skytap.VM) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", machine.ID)
	_ = table.Append("Name", machine.Name)
	_ = table.Append("Runstate", string(machine.Runstate))

	if machine.Error != "" {
		_ = table.Append("Error", machine.Error)
	}

	if machine.Hardware != nil {
		_ = table.Append("CPUs", strconv.Itoa(machine.Hardware.CPUs))
		_ = table.Append("RAM (MB)", strconv.Itoa(machine.Hardware.RAM))
		_ = table.Append("Storage (MB)", strconv.FormatInt(machine.Hardware.Storage, 10))
		_ = table.Append("Guest OS", stringOrNA(machine.Hardware.GuestOS))
	}

	_, _ = os.Stdout.WriteString("VM details:\n\n")

	_ = table.Render()

	renderInterfacesTable(machine.Interfaces)

	return nil
}

func renderInterfacesTable(interfaces []skytap.Interface) {
	if len(interfaces) == 0 {
		return
	}

	_, _ = os.Stdout.WriteString("\nNetwork adapters:\n")

	nicTable := tablewriter.NewWriter(os.Stdout)
	nicTable.Header("ID", "IP", "Hostname", "MAC", "Network")

	for _, adapter := range interfaces {
		_ = nicTable.Append(adapter.ID, stringOrNA(adapter.IP),
			stringOrNA(adapter.Hostname), stringOrNA(adapter.MAC),
			stringOrNA(adapter.NetworkID))
	}

	_ = nicTable.Render()
}

func newVMsUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update ENVIRONMENT_ID VM_ID ATTR=VALUE...",
		Short: "Update a VM",
		Long:  "Update attributes of a VM, such as its name or runstate",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVMsUpdateCommand(args[0], args[1], args[2:])
		},
	}
}

func runVMsUpdateCommand(environmentID, vmID string, pairs []string) error {
	updates, err := parseAttributes(pairs)
	if err != nil {
		return err
	}

	if value, ok := updates["runstate"]; ok {
		if _, err := parseRunstate(value); err != nil {
			return err
		}
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	machine, err := client.VMs().Update(ctx, environmentID, vmID, updates)
	if err != nil {
		return fmt.Errorf("failed to update VM: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(machine)
	case constants.FormatYAML:
		return StandardYAMLRenderer(machine)
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Successfully updated VM '%s' (ID: %s)\n", machine.Name, machine.ID)

		return nil
	}
}

func newVMsInterfacesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interfaces ENVIRONMENT_ID VM_ID",
		Short: "List VM network adapters",
		Long:  "List the network adapters of a VM",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVMsInterfacesCommand(args[0], args[1])
		},
	}
}

func runVMsInterfacesCommand(environmentID, vmID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	interfaces, err := client.Interfaces().List(ctx, environmentID, vmID)
	if err != nil {
		return fmt.Errorf("failed to list interfaces: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(interfaces)
	case constants.FormatYAML:
		return StandardYAMLRenderer(interfaces)
	default:
		if len(interfaces) == 0 {
			_, _ = os.Stdout.WriteString("No interfaces found\n")

			return nil
		}

		renderInterfacesTable(interfaces)

		return nil
	}
}

func newVMsAttachCommand() *cobra.Command {
	var networkID string

	cmd := &cobra.Command{
		Use:   "attach ENVIRONMENT_ID VM_ID INTERFACE_ID",
		Short: "Attach a network adapter",
		Long:  "Connect a VM network adapter to an environment network",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if networkID == "" {
				return constants.ErrNetworkRequired
			}

			return runVMsAttachCommand(args[0], args[1], args[2], networkID)
		},
	}

	cmd.Flags().StringVar(&networkID, "network", "", "ID of the network to attach to (required)")

	return cmd
}

func runVMsAttachCommand(environmentID, vmID, interfaceID, networkID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	adapter, err := client.Interfaces().Attach(ctx, environmentID, vmID, interfaceID, networkID)
	if err != nil {
		return fmt.Errorf("failed to attach interface: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(adapter)
	case constants.FormatYAML:
		return StandardYAMLRenderer(adapter)
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Successfully attached interface '%s' to network '%s'\n",
			adapter.ID, networkID)

		return nil
	}
}

func newVMsServicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "services ENVIRONMENT_ID VM_ID INTERFACE_ID",
		Short: "List published services",
		Long:  "List the published services of a VM network adapter",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVMsServicesCommand(args[0], args[1], args[2])
		},
	}
}

func runVMsServicesCommand(environmentID, vmID, interfaceID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	services, err := client.PublishedServices().List(ctx, environmentID, vmID, interfaceID)
	if err != nil {
		return fmt.Errorf("failed to list published services: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(services)
	case constants.FormatYAML:
		return StandardYAMLRenderer(services)
	default:
		return renderServicesTable(services)
	}
}

func renderServicesTable(services []skytap.PublishedService) error {
	if len(services) == 0 {
		_, _ = os.Stdout.WriteString("No published services found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Internal Port", "External IP", "External Port")

	for _, service := range services {
		_ = table.Append(service.ID, strconv.Itoa(service.InternalPort),
			stringOrNA(service.ExternalIP), strconv.Itoa(service.ExternalPort))
	}

	_ = table.Render()

	return nil
}

func newVMsPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish ENVIRONMENT_ID VM_ID INTERFACE_ID PORT",
		Short: "Publish a service port",
		Long:  "Expose an internal port of a VM network adapter on a public address",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVMsPublishCommand(args[0], args[1], args[2], args[3])
		},
	}
}

func runVMsPublishCommand(environmentID, vmID, interfaceID, portArg string) error {
	port, err := strconv.Atoi(portArg)
	if err != nil || port <= 0 {
		return fmt.Errorf("%w, got %q", constants.ErrInvalidPort, portArg)
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	service, err := client.PublishedServices().Create(ctx, environmentID, vmID, interfaceID, port)
	if err != nil {
		return fmt.Errorf("failed to publish service: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(service)
	case constants.FormatYAML:
		return StandardYAMLRenderer(service)
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Successfully published port %d at %s:%d\n",
			service.InternalPort, service.ExternalIP, service.ExternalPort)

		return nil
	}
}

func newVMsUnpublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpublish ENVIRONMENT_ID VM_ID INTERFACE_ID SERVICE_ID",
		Short: "Unpublish a service",
		Long:  "Remove a published service from a VM network adapter",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVMsUnpublishCommand(args[0], args[1], args[2], args[3])
		},
	}
}

func runVMsUnpublishCommand(environmentID, vmID, interfaceID, serviceID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	err = client.PublishedServices().Delete(ctx, environmentID, vmID, interfaceID, serviceID)
	if err != nil {
		return fmt.Errorf("failed to unpublish service: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully unpublished service '%s'\n", serviceID)

	return nil
}
