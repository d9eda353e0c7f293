package client

import (
	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// PublicIPsClient implements skytap.PublicIPsClient.
type PublicIPsClient struct {
	*resourceClient[skytap.PublicIP]
}

// NewPublicIPsClient creates a new public IPs client.
func NewPublicIPsClient(httpClient *http.Client) *PublicIPsClient {
	return &PublicIPsClient{
		resourceClient: newResourceClient[skytap.PublicIP](
			httpClient,
			"ips",
			"public IP",
			"public IPs",
		),
	}
}
