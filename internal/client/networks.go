package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// NetworksClient implements skytap.NetworksClient.
type NetworksClient struct {
	httpClient *http.Client
}

// NewNetworksClient creates a new networks client.
func NewNetworksClient(httpClient *http.Client) *NetworksClient {
	return &NetworksClient{
		httpClient: httpClient,
	}
}

// Get implements skytap.NetworksClient.Get.
func (c *NetworksClient) Get(ctx context.Context, environmentID, id string) (*skytap.Network, error) {
	path := "configurations/" + environmentID + "/networks/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting network: %w", err)
	}

	var network skytap.Network

	err = decode(resp.Body, &network)
	if err != nil {
		return nil, fmt.Errorf("parsing network: %w", err)
	}

	return &network, nil
}

// List implements skytap.NetworksClient.List.
func (c *NetworksClient) List(ctx context.Context, environmentID string) ([]skytap.Network, error) {
	path := "configurations/" + environmentID + "/networks"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing networks: %w", err)
	}

	var networks []skytap.Network

	err = decode(resp.Body, &networks)
	if err != nil {
		return nil, fmt.Errorf("parsing networks list: %w", err)
	}

	return networks, nil
}
