package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// ResourcesClient implements skytap.ResourcesClient, the schema-free
// facade over arbitrary resource collections.
type ResourcesClient struct {
	httpClient *http.Client
}

// NewResourcesClient creates a new generic resources client.
func NewResourcesClient(httpClient *http.Client) *ResourcesClient {
	return &ResourcesClient{
		httpClient: httpClient,
	}
}

// Get implements skytap.ResourcesClient.Get.
func (c *ResourcesClient) Get(ctx context.Context, resourceType, id string) (skytap.Record, error) {
	if resourceType == "" {
		return nil, skytap.ErrResourceTypeRequired
	}

	path := resourceType + "/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s resource: %w", resourceType, err)
	}

	var record skytap.Record

	err = decode(resp.Body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing %s resource: %w", resourceType, err)
	}

	return record, nil
}

// List implements skytap.ResourcesClient.List.
func (c *ResourcesClient) List(ctx context.Context, resourceType string, opts *skytap.ListOptions) ([]skytap.Record, error) {
	if resourceType == "" {
		return nil, skytap.ErrResourceTypeRequired
	}

	var query url.Values
	if opts != nil {
		query = opts.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, resourceType, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s resources: %w", resourceType, err)
	}

	var records []skytap.Record

	err = decode(resp.Body, &records)
	if err != nil {
		return nil, fmt.Errorf("parsing %s resources list: %w", resourceType, err)
	}

	return records, nil
}
