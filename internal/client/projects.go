package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// ProjectsClient implements skytap.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// Get implements skytap.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, id string) (*skytap.Project, error) {
	path := "projects/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project skytap.Project

	err = decode(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return &project, nil
}

// List implements skytap.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context) ([]skytap.Project, error) {
	resp, err := c.httpClient.Get(ctx, "projects", nil)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var projects []skytap.Project

	err = decode(resp.Body, &projects)
	if err != nil {
		return nil, fmt.Errorf("parsing projects list: %w", err)
	}

	return projects, nil
}

// GetEnvironment implements skytap.ProjectsClient.GetEnvironment.
func (c *ProjectsClient) GetEnvironment(ctx context.Context, projectID, environmentID string) (*skytap.Environment, error) {
	path := "projects/" + projectID + "/configurations/" + environmentID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project environment: %w", err)
	}

	var environment skytap.Environment

	err = decode(resp.Body, &environment)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return &environment, nil
}

// ListEnvironments implements skytap.ProjectsClient.ListEnvironments.
func (c *ProjectsClient) ListEnvironments(ctx context.Context, projectID string) ([]skytap.Environment, error) {
	path := "projects/" + projectID + "/configurations"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing project environments: %w", err)
	}

	var environments []skytap.Environment

	err = decode(resp.Body, &environments)
	if err != nil {
		return nil, fmt.Errorf("parsing environments list: %w", err)
	}

	return environments, nil
}

// ListTemplates implements skytap.ProjectsClient.ListTemplates.
func (c *ProjectsClient) ListTemplates(ctx context.Context, projectID string) ([]skytap.Template, error) {
	path := "projects/" + projectID + "/templates"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing project templates: %w", err)
	}

	var templates []skytap.Template

	err = decode(resp.Body, &templates)
	if err != nil {
		return nil, fmt.Errorf("parsing templates list: %w", err)
	}

	return templates, nil
}

// AddEnvironment implements skytap.ProjectsClient.AddEnvironment.
func (c *ProjectsClient) AddEnvironment(ctx context.Context, projectID, environmentID string) (*skytap.Environment, error) {
	path := "projects/" + projectID + "/configurations/" + environmentID

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("adding project environment: %w", err)
	}

	var environment skytap.Environment

	err = decode(resp.Body, &environment)
	if err != nil {
		return nil, fmt.Errorf("parsing environment response: %w", err)
	}

	return &environment, nil
}

// AddTemplate implements skytap.ProjectsClient.AddTemplate.
func (c *ProjectsClient) AddTemplate(ctx context.Context, projectID, templateID string) (*skytap.Template, error) {
	path := "projects/" + projectID + "/templates/" + templateID

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("adding project template: %w", err)
	}

	var template skytap.Template

	err = decode(resp.Body, &template)
	if err != nil {
		return nil, fmt.Errorf("parsing template response: %w", err)
	}

	return &template, nil
}
