package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// VMsClient implements skytap.VMsClient.
type VMsClient struct {
	httpClient *http.Client
}

// NewVMsClient creates a new VMs client.
func NewVMsClient(httpClient *http.Client) *VMsClient {
	return &VMsClient{
		httpClient: httpClient,
	}
}

// Get implements skytap.VMsClient.Get.
func (c *VMsClient) Get(ctx context.Context, environmentID, id string) (*skytap.VM, error) {
	path := "configurations/" + environmentID + "/vms/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting VM: %w", err)
	}

	var machine skytap.VM

	err = decode(resp.Body, &machine)
	if err != nil {
		return nil, fmt.Errorf("parsing VM: %w", err)
	}

	return &machine, nil
}

// List implements skytap.VMsClient.List.
func (c *VMsClient) List(ctx context.Context, environmentID string) ([]skytap.VM, error) {
	path := "configurations/" + environmentID + "/vms"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing VMs: %w", err)
	}

	var machines []skytap.VM

	err = decode(resp.Body, &machines)
	if err != nil {
		return nil, fmt.Errorf("parsing VMs list: %w", err)
	}

	return machines, nil
}

// Update implements skytap.VMsClient.Update.
func (c *VMsClient) Update(ctx context.Context, environmentID, id string, updates map[string]string) (*skytap.VM, error) {
	path := "configurations/" + environmentID + "/vms/" + id

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PUT",
		Path:   path,
		Query:  updateValues(updates),
	})
	if err != nil {
		return nil, fmt.Errorf("updating VM: %w", err)
	}

	var machine skytap.VM

	err = decode(resp.Body, &machine)
	if err != nil {
		return nil, fmt.Errorf("parsing VM response: %w", err)
	}

	return &machine, nil
}
