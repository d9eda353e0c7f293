package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// TemplatesClient implements skytap.TemplatesClient.
type TemplatesClient struct {
	httpClient *http.Client
}

// NewTemplatesClient creates a new templates client.
func NewTemplatesClient(httpClient *http.Client) *TemplatesClient {
	return &TemplatesClient{
		httpClient: httpClient,
	}
}

// Get implements skytap.TemplatesClient.Get.
func (c *TemplatesClient) Get(ctx context.Context, id string) (*skytap.Template, error) {
	path := "templates/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	var template skytap.Template

	err = decode(resp.Body, &template)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	return &template, nil
}

// List implements skytap.TemplatesClient.List.
func (c *TemplatesClient) List(ctx context.Context) ([]skytap.Template, error) {
	resp, err := c.httpClient.Get(ctx, "templates", nil)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	var templates []skytap.Template

	err = decode(resp.Body, &templates)
	if err != nil {
		return nil, fmt.Errorf("parsing templates list: %w", err)
	}

	return templates, nil
}

// CreateFromVMs implements skytap.TemplatesClient.CreateFromVMs. The
// selected VMs are passed as a vm_instance_multiselect parameter.
func (c *TemplatesClient) CreateFromVMs(ctx context.Context, environmentID string, vmIDs []string) (*skytap.Template, error) {
	query := url.Values{}
	query.Set("configuration_id", environmentID)

	for _, vmID := range vmIDs {
		query.Add("vm_instance_multiselect", vmID)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "POST",
		Path:   "templates",
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}

	var template skytap.Template

	err = decode(resp.Body, &template)
	if err != nil {
		return nil, fmt.Errorf("parsing template response: %w", err)
	}

	return &template, nil
}

// Update implements skytap.TemplatesClient.Update.
func (c *TemplatesClient) Update(ctx context.Context, id string, updates map[string]string) (*skytap.Template, error) {
	path := "templates/" + id

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PUT",
		Path:   path,
		Query:  updateValues(updates),
	})
	if err != nil {
		return nil, fmt.Errorf("updating template: %w", err)
	}

	var template skytap.Template

	err = decode(resp.Body, &template)
	if err != nil {
		return nil, fmt.Errorf("parsing template response: %w", err)
	}

	return &template, nil
}

// Delete implements skytap.TemplatesClient.Delete.
func (c *TemplatesClient) Delete(ctx context.Context, id string) error {
	path := "templates/" + id

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}

	return nil
}
