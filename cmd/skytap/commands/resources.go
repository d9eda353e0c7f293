package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewResourceGetCommand creates the generic resource get command.
func NewResourceGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get RESOURCE_TYPE ID",
		Short: "Get any resource by type and ID",
		Long: "Fetch a single resource as its raw JSON fields. The resource type " +
			"is the API path segment, e.g. users, configurations, templates, assets",
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResourceGetCommand(args[0], args[1])
		},
	}
}

func runResourceGetCommand(resourceType, resourceID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	record, err := client.Resources().Get(ctx, resourceType, resourceID)
	if err != nil {
		return fmt.Errorf("failed to get %s/%s: %w", resourceType, resourceID, err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(record)
	case constants.FormatYAML:
		return StandardYAMLRenderer(record)
	default:
		return renderRecordTable(record)
	}
}

func renderRecordTable(record skytap.Record) error {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	for _, key := range keys {
		value := truncateString(fmt.Sprintf("%v", record[key]), rawValueDisplayLength)
		_ = table.Append(key, value)
	}

	_ = table.Render()

	return nil
}

// NewResourceListCommand creates the generic resource list command.
func NewResourceListCommand() *cobra.Command {
	var (
		count  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list RESOURCE_TYPE",
		Short: "List any resource collection",
		Long: "Fetch a resource collection as raw JSON records. The resource type " +
			"is the API path segment, e.g. users, configurations, templates, assets",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts *skytap.ListOptions
			if cmd.Flags().Changed("count") || cmd.Flags().Changed("offset") {
				opts = skytap.NewListOptions().WithCount(count).WithOffset(offset)
			}

			return runResourceListCommand(args[0], opts)
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "maximum records to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "records to skip")

	return cmd
}

func runResourceListCommand(resourceType string, opts *skytap.ListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	records, err := client.Resources().List(ctx, resourceType, opts)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", resourceType, err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(records)
	case constants.FormatYAML:
		return StandardYAMLRenderer(records)
	default:
		return renderRecordsTable(records)
	}
}

func renderRecordsTable(records []skytap.Record) error {
	if len(records) == 0 {
		_, _ = os.Stdout.WriteString("No resources found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name")

	for _, record := range records {
		_ = table.Append(recordField(record, "id"), recordField(record, "name"))
	}

	_ = table.Render()

	_, _ = os.Stdout.WriteString("\nUse --output json for the full records.\n")

	return nil
}

// recordField extracts one field of a raw record for table display.
func recordField(record skytap.Record, key string) string {
	value, ok := record[key]
	if !ok || value == nil {
		return constants.NotAvailable
	}

	return fmt.Sprintf("%v", value)
}
