package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// EnvironmentsClient implements skytap.EnvironmentsClient. Environments
// are addressed as "configurations" on the wire.
type EnvironmentsClient struct {
	httpClient *http.Client
}

// NewEnvironmentsClient creates a new environments client.
func NewEnvironmentsClient(httpClient *http.Client) *EnvironmentsClient {
	return &EnvironmentsClient{
		httpClient: httpClient,
	}
}

// Get implements skytap.EnvironmentsClient.Get.
func (c *EnvironmentsClient) Get(ctx context.Context, id string) (*skytap.Environment, error) {
	path := "configurations/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting environment: %w", err)
	}

	var environment skytap.Environment

	err = decode(resp.Body, &environment)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return &environment, nil
}

// List implements skytap.EnvironmentsClient.List.
func (c *EnvironmentsClient) List(ctx context.Context) ([]skytap.Environment, error) {
	resp, err := c.httpClient.Get(ctx, "configurations", nil)
	if err != nil {
		return nil, fmt.Errorf("listing environments: %w", err)
	}

	var environments []skytap.Environment

	err = decode(resp.Body, &environments)
	if err != nil {
		return nil, fmt.Errorf("parsing environments list: %w", err)
	}

	return environments, nil
}

// Create implements skytap.EnvironmentsClient.Create.
func (c *EnvironmentsClient) Create(ctx context.Context, templateID string) (*skytap.Environment, error) {
	body := map[string]string{"template_id": templateID}

	resp, err := c.httpClient.Post(ctx, "configurations", body)
	if err != nil {
		return nil, fmt.Errorf("creating environment: %w", err)
	}

	var environment skytap.Environment

	err = decode(resp.Body, &environment)
	if err != nil {
		return nil, fmt.Errorf("parsing environment response: %w", err)
	}

	return &environment, nil
}

// Update implements skytap.EnvironmentsClient.Update.
func (c *EnvironmentsClient) Update(ctx context.Context, id string, updates map[string]string) (*skytap.Environment, error) {
	path := "configurations/" + id

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PUT",
		Path:   path,
		Query:  updateValues(updates),
	})
	if err != nil {
		return nil, fmt.Errorf("updating environment: %w", err)
	}

	var environment skytap.Environment

	err = decode(resp.Body, &environment)
	if err != nil {
		return nil, fmt.Errorf("parsing environment response: %w", err)
	}

	return &environment, nil
}

// Delete implements skytap.EnvironmentsClient.Delete.
func (c *EnvironmentsClient) Delete(ctx context.Context, id string) error {
	path := "configurations/" + id

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting environment: %w", err)
	}

	return nil
}

// SetRunstate implements skytap.EnvironmentsClient.SetRunstate. When vmIDs
// is non-empty the transition applies only to those VMs, passed as a
// multiselect parameter.
func (c *EnvironmentsClient) SetRunstate(ctx context.Context, id string, runstate skytap.Runstate, vmIDs ...string) (*skytap.Environment, error) {
	path := "configurations/" + id

	query := url.Values{}
	query.Set("runstate", string(runstate))

	for _, vmID := range vmIDs {
		query.Add("multiselect", vmID)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PUT",
		Path:   path,
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("setting environment runstate: %w", err)
	}

	var environment skytap.Environment

	err = decode(resp.Body, &environment)
	if err != nil {
		return nil, fmt.Errorf("parsing environment response: %w", err)
	}

	return &environment, nil
}
