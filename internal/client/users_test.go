package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/fivetwenty-io/skytap-client/internal/client"
	internalhttp "github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users/123", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		user := skytap.User{
			Resource: skytap.Resource{
				ID:  "123",
				URL: "https://cloud.skytap.com/users/123",
			},
			LoginName:   "jdoe",
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "jdoe@example.com",
			AccountRole: "standard_user",
			TimeZone:    "Pacific Time (US & Canada)",
			SSOEnabled:  true,
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(user)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	user, err := users.Get(context.Background(), "123")
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "123", user.ID)
	assert.Equal(t, "jdoe", user.LoginName)
	assert.Equal(t, "jdoe@example.com", user.Email)
	assert.Equal(t, "standard_user", user.AccountRole)
	assert.True(t, user.SSOEnabled)
}

func TestUsersClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users/999", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"error": "User not found",
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	user, err := users.Get(context.Background(), "999")
	require.Error(t, err)
	assert.Nil(t, user)

	apiErr, ok := skytap.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "User not found", apiErr.Message)
	assert.True(t, skytap.IsNotFound(err))
}

func TestUsersClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		users := []skytap.User{
			{
				Resource:  skytap.Resource{ID: "1"},
				LoginName: "admin",
				Email:     "admin@example.com",
			},
			{
				Resource:  skytap.Resource{ID: "2"},
				LoginName: "jdoe",
				Email:     "jdoe@example.com",
			},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(users)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	list, err := users.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "admin", list[0].LoginName)
	assert.Equal(t, "jdoe", list[1].LoginName)
}

func TestUsersClient_Create_Defaults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		query := request.URL.Query()
		assert.Equal(t, "jdoe", query.Get("login_name"))
		assert.Equal(t, "jdoe@example.com", query.Get("email"))
		assert.Equal(t, "standard_user", query.Get("account_role"))
		assert.Equal(t, "Pacific Time (US & Canada)", query.Get("time_zone"))
		assert.Equal(t, "false", query.Get("can_import"))
		assert.Equal(t, "false", query.Get("can_export"))
		assert.Equal(t, "false", query.Get("has_public_library"))
		assert.Equal(t, "true", query.Get("sso_enabled"))

		user := skytap.User{
			Resource:    skytap.Resource{ID: "42"},
			LoginName:   "jdoe",
			Email:       "jdoe@example.com",
			AccountRole: "standard_user",
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(user)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	req := &skytap.CreateUserRequest{
		LoginName: "jdoe",
		Email:     "jdoe@example.com",
	}

	user, err := users.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "42", user.ID)
	assert.Equal(t, "standard_user", user.AccountRole)
}

func TestUsersClient_Create_ExplicitValues(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		query := request.URL.Query()
		assert.Equal(t, "admin2", query.Get("login_name"))
		assert.Equal(t, "admin", query.Get("account_role"))
		assert.Equal(t, "UTC", query.Get("time_zone"))
		assert.Equal(t, "true", query.Get("can_import"))
		assert.Equal(t, "false", query.Get("sso_enabled"))
		assert.Equal(t, "Dr", query.Get("title"))
		assert.Equal(t, "Ada", query.Get("first_name"))

		user := skytap.User{
			Resource:    skytap.Resource{ID: "7"},
			LoginName:   "admin2",
			AccountRole: "admin",
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(user)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	canImport := true
	ssoEnabled := false
	req := &skytap.CreateUserRequest{
		LoginName:   "admin2",
		Email:       "admin2@example.com",
		AccountRole: "admin",
		TimeZone:    "UTC",
		Title:       "Dr",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		CanImport:   &canImport,
		SSOEnabled:  &ssoEnabled,
	}

	user, err := users.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.AccountRole)
}

func TestUsersClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users/42", request.URL.Path)
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "new@example.com", request.URL.Query().Get("email"))

		user := skytap.User{
			Resource:  skytap.Resource{ID: "42"},
			LoginName: "jdoe",
			Email:     "new@example.com",
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(user)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	user, err := users.Update(context.Background(), "42", map[string]string{
		"email": "new@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
}
