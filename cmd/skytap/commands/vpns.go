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

// NewVPNsCommand creates the vpns command group.
func NewVPNsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vpns",
		Aliases: []string{"vpn"},
		Short:   "Inspect VPN connections",
		Long:    "List the site-to-site VPN connections of the account",
	}

	cmd.AddCommand(newVPNsListCommand())
	cmd.AddCommand(newVPNsGetCommand())

	return cmd
}

func newVPNsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List VPNs",
		Long:  "List all VPN connections visible to the caller",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVPNsListCommand()
		},
	}
}

func runVPNsListCommand() error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	vpns, err := client.VPNs().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list VPNs: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(vpns)
	case constants.FormatYAML:
		return StandardYAMLRenderer(vpns)
	default:
		return renderVPNsTable(vpns)
	}
}

func renderVPNsTable(vpns []skytap.VPN) error {
	if len(vpns) == 0 {
		_, _ = os.Stdout.WriteString("No VPNs found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Enabled", "Region", "Remote Peer")

	for _, vpn := range vpns {
		_ = table.Append(vpn.ID, vpn.Name, strconv.FormatBool(vpn.Enabled),
			stringOrNA(vpn.Region), stringOrNA(vpn.RemotePeerIP))
	}

	_ = table.Render()

	return nil
}

func newVPNsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VPN_ID",
		Short: "Get VPN details",
		Long:  "Display detailed information about a specific VPN connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVPNsGetCommand(args[0])
		},
	}
}

func runVPNsGetCommand(vpnID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	vpn, err := client.VPNs().Get(ctx, vpnID)
	if err != nil {
		return fmt.Errorf("failed to get VPN: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(vpn)
	case constants.FormatYAML:
		return StandardYAMLRenderer(vpn)
	default:
		return renderVPNDetailsTable(vpn)
	}
}

func renderVPNDetailsTable(vpn *skytap.VPN) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", vpn.ID)
	_ = table.Append("Name", vpn.Name)
	_ = table.Append("Enabled", strconv.FormatBool(vpn.Enabled))
	_ = table.Append("NAT Enabled", strconv.FormatBool(vpn.NATEnabled))
	_ = table.Append("Region", stringOrNA(vpn.Region))
	_ = table.Append("Local Peer", stringOrNA(vpn.LocalPeerIP))
	_ = table.Append("Remote Peer", stringOrNA(vpn.RemotePeerIP))
	_ = table.Append("Remote Subnets", stringOrNA(strings.Join(vpn.RemoteSubnets, ", ")))

	_, _ = os.Stdout.WriteString("VPN details:\n\n")

	_ = table.Render()

	return nil
}
