package client

import (
	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// VPNsClient implements skytap.VPNsClient.
type VPNsClient struct {
	*resourceClient[skytap.VPN]
}

// NewVPNsClient creates a new VPNs client.
func NewVPNsClient(httpClient *http.Client) *VPNsClient {
	return &VPNsClient{
		resourceClient: newResourceClient[skytap.VPN](
			httpClient,
			"vpns",
			"VPN",
			"VPNs",
		),
	}
}
