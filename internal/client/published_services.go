package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// PublishedServicesClient implements skytap.PublishedServicesClient.
type PublishedServicesClient struct {
	httpClient *http.Client
}

// NewPublishedServicesClient creates a new published services client.
func NewPublishedServicesClient(httpClient *http.Client) *PublishedServicesClient {
	return &PublishedServicesClient{
		httpClient: httpClient,
	}
}

// servicesPath builds the path to an interface's services collection.
func servicesPath(environmentID, vmID, interfaceID string) string {
	return "configurations/" + environmentID + "/vms/" + vmID + "/interfaces/" + interfaceID + "/services"
}

// Get implements skytap.PublishedServicesClient.Get.
func (c *PublishedServicesClient) Get(ctx context.Context, environmentID, vmID, interfaceID, id string) (*skytap.PublishedService, error) {
	path := servicesPath(environmentID, vmID, interfaceID) + "/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting published service: %w", err)
	}

	var service skytap.PublishedService

	err = decode(resp.Body, &service)
	if err != nil {
		return nil, fmt.Errorf("parsing published service: %w", err)
	}

	return &service, nil
}

// List implements skytap.PublishedServicesClient.List.
func (c *PublishedServicesClient) List(ctx context.Context, environmentID, vmID, interfaceID string) ([]skytap.PublishedService, error) {
	resp, err := c.httpClient.Get(ctx, servicesPath(environmentID, vmID, interfaceID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing published services: %w", err)
	}

	var services []skytap.PublishedService

	err = decode(resp.Body, &services)
	if err != nil {
		return nil, fmt.Errorf("parsing published services list: %w", err)
	}

	return services, nil
}

// Create implements skytap.PublishedServicesClient.Create.
func (c *PublishedServicesClient) Create(ctx context.Context, environmentID, vmID, interfaceID string, port int) (*skytap.PublishedService, error) {
	query := url.Values{}
	query.Set("port", strconv.Itoa(port))

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "POST",
		Path:   servicesPath(environmentID, vmID, interfaceID),
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("creating published service: %w", err)
	}

	var service skytap.PublishedService

	err = decode(resp.Body, &service)
	if err != nil {
		return nil, fmt.Errorf("parsing published service response: %w", err)
	}

	return &service, nil
}

// Delete implements skytap.PublishedServicesClient.Delete.
func (c *PublishedServicesClient) Delete(ctx context.Context, environmentID, vmID, interfaceID, id string) error {
	path := servicesPath(environmentID, vmID, interfaceID) + "/" + id

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting published service: %w", err)
	}

	return nil
}
