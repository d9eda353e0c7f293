package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// InterfacesClient implements skytap.InterfacesClient.
type InterfacesClient struct {
	httpClient *http.Client
}

// NewInterfacesClient creates a new interfaces client.
func NewInterfacesClient(httpClient *http.Client) *InterfacesClient {
	return &InterfacesClient{
		httpClient: httpClient,
	}
}

// Get implements skytap.InterfacesClient.Get.
func (c *InterfacesClient) Get(ctx context.Context, environmentID, vmID, id string) (*skytap.Interface, error) {
	path := "configurations/" + environmentID + "/vms/" + vmID + "/interfaces/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting interface: %w", err)
	}

	var adapter skytap.Interface

	err = decode(resp.Body, &adapter)
	if err != nil {
		return nil, fmt.Errorf("parsing interface: %w", err)
	}

	return &adapter, nil
}

// List implements skytap.InterfacesClient.List.
func (c *InterfacesClient) List(ctx context.Context, environmentID, vmID string) ([]skytap.Interface, error) {
	path := "configurations/" + environmentID + "/vms/" + vmID + "/interfaces"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing interfaces: %w", err)
	}

	var adapters []skytap.Interface

	err = decode(resp.Body, &adapters)
	if err != nil {
		return nil, fmt.Errorf("parsing interfaces list: %w", err)
	}

	return adapters, nil
}

// Create implements skytap.InterfacesClient.Create.
func (c *InterfacesClient) Create(ctx context.Context, environmentID, vmID string) (*skytap.Interface, error) {
	path := "configurations/" + environmentID + "/vms/" + vmID + "/interfaces"

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating interface: %w", err)
	}

	var adapter skytap.Interface

	err = decode(resp.Body, &adapter)
	if err != nil {
		return nil, fmt.Errorf("parsing interface response: %w", err)
	}

	return &adapter, nil
}

// Attach implements skytap.InterfacesClient.Attach.
func (c *InterfacesClient) Attach(ctx context.Context, environmentID, vmID, id, networkID string) (*skytap.Interface, error) {
	path := "configurations/" + environmentID + "/vms/" + vmID + "/interfaces/" + id

	query := url.Values{}
	query.Set("network_id", networkID)

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PUT",
		Path:   path,
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("attaching interface: %w", err)
	}

	var adapter skytap.Interface

	err = decode(resp.Body, &adapter)
	if err != nil {
		return nil, fmt.Errorf("parsing interface response: %w", err)
	}

	return &adapter, nil
}
