package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

func TestProjectsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[skytap.Project]{
		{
			Name:         "existing project",
			ID:           "31",
			ExpectedPath: "/projects/31",
			StatusCode:   http.StatusOK,
			Response: &skytap.Project{
				Resource: skytap.Resource{ID: "31"},
				Name:     "Release Testing",
			},
		},
		{
			Name:         "missing project",
			ID:           "99",
			ExpectedPath: "/projects/99",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "getting project",
		},
	}

	RunGetTests(t, tests, func(client *Client) func(context.Context, string) (*skytap.Project, error) {
		return client.Projects().Get
	})
}

func TestProjectsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		projects := []skytap.Project{
			{Resource: skytap.Resource{ID: "31"}, Name: "Release Testing"},
			{Resource: skytap.Resource{ID: "32"}, Name: "Training", AutoAddRoleName: "viewer"},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(projects)
	}))
	defer server.Close()

	projects, err := NewTestClient(server.URL).Projects().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, "viewer", projects[1].AutoAddRoleName)
}

func TestProjectsClient_Environments(t *testing.T) {
	t.Parallel()

	t.Run("get one", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects/31/configurations/12345", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			environment := skytap.Environment{
				Resource: skytap.Resource{ID: "12345"},
				Name:     "staging",
			}

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(environment)
		}))
		defer server.Close()

		environment, err := NewTestClient(server.URL).Projects().GetEnvironment(context.Background(), "31", "12345")
		require.NoError(t, err)
		assert.Equal(t, "staging", environment.Name)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects/31/configurations", request.URL.Path)

			environments := []skytap.Environment{
				{Resource: skytap.Resource{ID: "12345"}, Name: "staging"},
			}

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(environments)
		}))
		defer server.Close()

		environments, err := NewTestClient(server.URL).Projects().ListEnvironments(context.Background(), "31")
		require.NoError(t, err)
		assert.Len(t, environments, 1)
	})

	t.Run("add", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects/31/configurations/12345", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			environment := skytap.Environment{
				Resource: skytap.Resource{ID: "12345"},
				Name:     "staging",
			}

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(environment)
		}))
		defer server.Close()

		environment, err := NewTestClient(server.URL).Projects().AddEnvironment(context.Background(), "31", "12345")
		require.NoError(t, err)
		assert.Equal(t, "12345", environment.ID)
	})
}

func TestProjectsClient_Templates(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects/31/templates", request.URL.Path)

			templates := []skytap.Template{
				{Resource: skytap.Resource{ID: "777"}, Name: "Ubuntu 22.04"},
			}

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(templates)
		}))
		defer server.Close()

		templates, err := NewTestClient(server.URL).Projects().ListTemplates(context.Background(), "31")
		require.NoError(t, err)
		assert.Len(t, templates, 1)
	})

	t.Run("add", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects/31/templates/777", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			template := skytap.Template{
				Resource: skytap.Resource{ID: "777"},
				Name:     "Ubuntu 22.04",
			}

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(template)
		}))
		defer server.Close()

		template, err := NewTestClient(server.URL).Projects().AddTemplate(context.Background(), "31", "777")
		require.NoError(t, err)
		assert.Equal(t, "777", template.ID)
	})
}
