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

// NewPublicIPsCommand creates the ips command group.
func NewPublicIPsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ips",
		Aliases: []string{"ip", "public-ips"},
		Short:   "Inspect public IPs",
		Long:    "List the static public IP addresses owned by the account",
	}

	cmd.AddCommand(newPublicIPsListCommand())
	cmd.AddCommand(newPublicIPsGetCommand())

	return cmd
}

func newPublicIPsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List public IPs",
		Long:  "List all public IP addresses owned by the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublicIPsListCommand()
		},
	}
}

func runPublicIPsListCommand() error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	ips, err := client.PublicIPs().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list public IPs: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(ips)
	case constants.FormatYAML:
		return StandardYAMLRenderer(ips)
	default:
		return renderPublicIPsTable(ips)
	}
}

func renderPublicIPsTable(ips []skytap.PublicIP) error {
	if len(ips) == 0 {
		_, _ = os.Stdout.WriteString("No public IPs found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Address", "Region", "VPN")

	for _, ip := range ips {
		_ = table.Append(ip.ID, ip.Address, stringOrNA(ip.Region), stringOrNA(ip.VPNID))
	}

	_ = table.Render()

	return nil
}

func newPublicIPsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IP_ID",
		Short: "Get public IP details",
		Long:  "Display detailed information about a specific public IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublicIPsGetCommand(args[0])
		},
	}
}

func runPublicIPsGetCommand(ipID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	ip, err := client.PublicIPs().Get(ctx, ipID)
	if err != nil {
		return fmt.Errorf("failed to get public IP: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(ip)
	case constants.FormatYAML:
		return StandardYAMLRenderer(ip)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", ip.ID)
		_ = table.Append("Address", ip.Address)
		_ = table.Append("Region", stringOrNA(ip.Region))
		_ = table.Append("VPN", stringOrNA(ip.VPNID))

		_, _ = os.Stdout.WriteString("Public IP details:\n\n")

		_ = table.Render()

		return nil
	}
}
