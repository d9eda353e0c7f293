package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// DepartmentsClient implements skytap.DepartmentsClient.
type DepartmentsClient struct {
	httpClient *http.Client
}

// NewDepartmentsClient creates a new departments client.
func NewDepartmentsClient(httpClient *http.Client) *DepartmentsClient {
	return &DepartmentsClient{
		httpClient: httpClient,
	}
}

// Get implements skytap.DepartmentsClient.Get.
func (c *DepartmentsClient) Get(ctx context.Context, id string) (*skytap.Department, error) {
	path := "departments/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting department: %w", err)
	}

	var department skytap.Department

	err = decode(resp.Body, &department)
	if err != nil {
		return nil, fmt.Errorf("parsing department: %w", err)
	}

	return &department, nil
}

// List implements skytap.DepartmentsClient.List.
func (c *DepartmentsClient) List(ctx context.Context, opts *skytap.ListOptions) ([]skytap.Department, error) {
	resp, err := c.httpClient.Get(ctx, "departments", listWindow(opts))
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}

	var departments []skytap.Department

	err = decode(resp.Body, &departments)
	if err != nil {
		return nil, fmt.Errorf("parsing departments list: %w", err)
	}

	return departments, nil
}

// ListUsers implements skytap.DepartmentsClient.ListUsers.
func (c *DepartmentsClient) ListUsers(ctx context.Context, id string, opts *skytap.ListOptions) ([]skytap.User, error) {
	path := "departments/" + id + "/users"

	resp, err := c.httpClient.Get(ctx, path, listWindow(opts))
	if err != nil {
		return nil, fmt.Errorf("listing department users: %w", err)
	}

	var users []skytap.User

	err = decode(resp.Body, &users)
	if err != nil {
		return nil, fmt.Errorf("parsing department users list: %w", err)
	}

	return users, nil
}

// AddUser implements skytap.DepartmentsClient.AddUser.
func (c *DepartmentsClient) AddUser(ctx context.Context, departmentID, userID string) (*skytap.User, error) {
	path := "departments/" + departmentID + "/users/" + userID

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("adding department user: %w", err)
	}

	var user skytap.User

	err = decode(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Quotas implements skytap.DepartmentsClient.Quotas.
func (c *DepartmentsClient) Quotas(ctx context.Context, id string) ([]skytap.Quota, error) {
	path := "departments/" + id + "/quotas"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting department quotas: %w", err)
	}

	var quotas []skytap.Quota

	err = decode(resp.Body, &quotas)
	if err != nil {
		return nil, fmt.Errorf("parsing quotas list: %w", err)
	}

	return quotas, nil
}

// SetQuotas implements skytap.DepartmentsClient.SetQuotas. Limits are sent
// as a JSON array to the v2 API; a nil limit means unlimited.
func (c *DepartmentsClient) SetQuotas(ctx context.Context, id string, limits []skytap.QuotaLimit) ([]skytap.Quota, error) {
	path := "departments/" + id + "/quotas"

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:     "PUT",
		Path:       path,
		Body:       limits,
		APIVersion: constants.APIVersionV2,
	})
	if err != nil {
		return nil, fmt.Errorf("setting department quotas: %w", err)
	}

	var quotas []skytap.Quota

	err = decode(resp.Body, &quotas)
	if err != nil {
		return nil, fmt.Errorf("parsing quotas response: %w", err)
	}

	return quotas, nil
}

// SetDescription implements skytap.DepartmentsClient.SetDescription via
// the v2 API.
func (c *DepartmentsClient) SetDescription(ctx context.Context, id, description string) (*skytap.Department, error) {
	path := "departments/" + id

	query := url.Values{}
	query.Set("description", description)

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:     "PUT",
		Path:       path,
		Query:      query,
		APIVersion: constants.APIVersionV2,
	})
	if err != nil {
		return nil, fmt.Errorf("setting department description: %w", err)
	}

	var department skytap.Department

	err = decode(resp.Body, &department)
	if err != nil {
		return nil, fmt.Errorf("parsing department response: %w", err)
	}

	return &department, nil
}
