package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// PublishSetsClient implements skytap.PublishSetsClient.
type PublishSetsClient struct {
	httpClient *http.Client
}

// NewPublishSetsClient creates a new publish sets client.
func NewPublishSetsClient(httpClient *http.Client) *PublishSetsClient {
	return &PublishSetsClient{
		httpClient: httpClient,
	}
}

// Get implements skytap.PublishSetsClient.Get.
func (c *PublishSetsClient) Get(ctx context.Context, environmentID, id string) (*skytap.PublishSet, error) {
	path := "configurations/" + environmentID + "/publish_sets/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting publish set: %w", err)
	}

	var publishSet skytap.PublishSet

	err = decode(resp.Body, &publishSet)
	if err != nil {
		return nil, fmt.Errorf("parsing publish set: %w", err)
	}

	return &publishSet, nil
}

// List implements skytap.PublishSetsClient.List.
func (c *PublishSetsClient) List(ctx context.Context, environmentID string) ([]skytap.PublishSet, error) {
	path := "configurations/" + environmentID + "/publish_sets"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing publish sets: %w", err)
	}

	var publishSets []skytap.PublishSet

	err = decode(resp.Body, &publishSets)
	if err != nil {
		return nil, fmt.Errorf("parsing publish sets list: %w", err)
	}

	return publishSets, nil
}

// Delete implements skytap.PublishSetsClient.Delete.
func (c *PublishSetsClient) Delete(ctx context.Context, environmentID, id string) error {
	path := "configurations/" + environmentID + "/publish_sets/" + id

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting publish set: %w", err)
	}

	return nil
}
