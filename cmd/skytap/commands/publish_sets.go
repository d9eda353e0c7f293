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

// NewPublishSetsCommand creates the publish-sets command group.
func NewPublishSetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "publish-sets",
		Aliases: []string{"publish-set"},
		Short:   "Manage publish sets",
		Long:    "List and delete the published views of an environment",
	}

	cmd.AddCommand(newPublishSetsListCommand())
	cmd.AddCommand(newPublishSetsGetCommand())
	cmd.AddCommand(newPublishSetsDeleteCommand())

	return cmd
}

func newPublishSetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list ENVIRONMENT_ID",
		Short: "List publish sets",
		Long:  "List the publish sets of an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublishSetsListCommand(args[0])
		},
	}
}

func runPublishSetsListCommand(environmentID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	publishSets, err := client.PublishSets().List(ctx, environmentID)
	if err != nil {
		return fmt.Errorf("failed to list publish sets: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(publishSets)
	case constants.FormatYAML:
		return StandardYAMLRenderer(publishSets)
	default:
		return renderPublishSetsTable(publishSets)
	}
}

func renderPublishSetsTable(publishSets []skytap.PublishSet) error {
	if len(publishSets) == 0 {
		_, _ = os.Stdout.WriteString("No publish sets found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Expiration", "VMs")

	for _, publishSet := range publishSets {
		_ = table.Append(publishSet.ID, publishSet.Name,
			stringOrNA(publishSet.PublishSetType),
			stringOrNA(publishSet.ExpirationDate),
			strconv.Itoa(len(publishSet.VMs)))
	}

	_ = table.Render()

	return nil
}

func newPublishSetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENVIRONMENT_ID PUBLISH_SET_ID",
		Short: "Get publish set details",
		Long:  "Display detailed information about a specific publish set",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublishSetsGetCommand(args[0], args[1])
		},
	}
}

func runPublishSetsGetCommand(environmentID, publishSetID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	publishSet, err := client.PublishSets().Get(ctx, environmentID, publishSetID)
	if err != nil {
		return fmt.Errorf("failed to get publish set: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(publishSet)
	case constants.FormatYAML:
		return StandardYAMLRenderer(publishSet)
	default:
		return renderPublishSetDetailsTable(publishSet)
	}
}

func renderPublishSetDetailsTable(publishSet *skytap.PublishSet) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", publishSet.ID)
	_ = table.Append("Name", publishSet.Name)
	_ = table.Append("Type", stringOrNA(publishSet.PublishSetType))
	_ = table.Append("Desktops URL", stringOrNA(publishSet.DesktopsURL))

	protected := publishSet.Password != nil
	_ = table.Append("Password Protected", strconv.FormatBool(protected))

	runtimeLimit := constants.NotAvailable
	if publishSet.RuntimeLimit != nil {
		runtimeLimit = strconv.Itoa(*publishSet.RuntimeLimit) + " minutes"
	}

	_ = table.Append("Runtime Limit", runtimeLimit)
	_ = table.Append("Expiration", stringOrNA(publishSet.ExpirationDate))

	_, _ = os.Stdout.WriteString("Publish set details:\n\n")

	_ = table.Render()

	if len(publishSet.VMs) > 0 {
		_, _ = os.Stdout.WriteString("\nPublished VMs:\n")

		vmTable := tablewriter.NewWriter(os.Stdout)
		vmTable.Header("VM", "Name", "Access")

		for _, entry := range publishSet.VMs {
			_ = vmTable.Append(entry.VMRef, stringOrNA(entry.Name), stringOrNA(entry.Access))
		}

		_ = vmTable.Render()
	}

	return nil
}

func newPublishSetsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ENVIRONMENT_ID PUBLISH_SET_ID",
		Short: "Delete a publish set",
		Long:  "Remove a publish set from an environment",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmDeletion("publish set", args[1], force) {
				return nil
			}

			return runPublishSetsDeleteCommand(args[0], args[1])
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func runPublishSetsDeleteCommand(environmentID, publishSetID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	err = client.PublishSets().Delete(ctx, environmentID, publishSetID)
	if err != nil {
		return fmt.Errorf("failed to delete publish set: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted publish set '%s'\n", publishSetID)

	return nil
}
