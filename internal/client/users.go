package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// UsersClient implements skytap.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// Get implements skytap.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id string) (*skytap.User, error) {
	path := "users/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user skytap.User

	err = decode(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// List implements skytap.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) ([]skytap.User, error) {
	resp, err := c.httpClient.Get(ctx, "users", nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var users []skytap.User

	err = decode(resp.Body, &users)
	if err != nil {
		return nil, fmt.Errorf("parsing users list: %w", err)
	}

	return users, nil
}

// Create implements skytap.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, request *skytap.CreateUserRequest) (*skytap.User, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "POST",
		Path:   "users",
		Query:  createUserValues(request),
	})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var user skytap.User

	err = decode(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Update implements skytap.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, id string, updates map[string]string) (*skytap.User, error) {
	path := "users/" + id

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PUT",
		Path:   path,
		Query:  updateValues(updates),
	})
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var user skytap.User

	err = decode(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// createUserValues converts the request to the parameters the API expects,
// applying account defaults for unset fields.
func createUserValues(request *skytap.CreateUserRequest) url.Values {
	values := url.Values{}
	values.Set("login_name", request.LoginName)
	values.Set("email", request.Email)

	accountRole := request.AccountRole
	if accountRole == "" {
		accountRole = constants.DefaultAccountRole
	}

	values.Set("account_role", accountRole)

	timeZone := request.TimeZone
	if timeZone == "" {
		timeZone = constants.DefaultTimeZone
	}

	values.Set("time_zone", timeZone)

	values.Set("can_import", boolValue(request.CanImport, false))
	values.Set("can_export", boolValue(request.CanExport, false))
	values.Set("has_public_library", boolValue(request.HasPublicLibrary, false))
	values.Set("sso_enabled", boolValue(request.SSOEnabled, true))
	values.Set("title", request.Title)
	values.Set("first_name", request.FirstName)
	values.Set("last_name", request.LastName)

	return values
}
