package skytapclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/fivetwenty-io/skytap-client/pkg/skytapclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &skytap.Config{
			BaseURL:  "https://cloud.skytap.com",
			Username: "user@example.com",
			APIKey:   "api-key",
		}

		client, err := skytapclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("rejects nil config", func(t *testing.T) {
		t.Parallel()

		client, err := skytapclient.New(nil)
		require.Error(t, err)
		assert.Nil(t, client)
		assert.ErrorIs(t, err, skytap.ErrConfigRequired)
		assert.ErrorIs(t, err, skytap.ErrInvalidConfig)
	})

	t.Run("rejects empty base URL", func(t *testing.T) {
		t.Parallel()

		config := &skytap.Config{
			Username: "user@example.com",
			APIKey:   "api-key",
		}

		_, err := skytapclient.New(config)
		require.Error(t, err)
		assert.ErrorIs(t, err, skytap.ErrBaseURLRequired)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		t.Parallel()

		config := &skytap.Config{
			BaseURL: "https://cloud.skytap.com",
			APIKey:  "api-key",
		}

		_, err := skytapclient.New(config)
		require.Error(t, err)
		assert.ErrorIs(t, err, skytap.ErrUsernameRequired)
	})

	t.Run("rejects empty API key", func(t *testing.T) {
		t.Parallel()

		config := &skytap.Config{
			BaseURL:  "https://cloud.skytap.com",
			Username: "user@example.com",
		}

		_, err := skytapclient.New(config)
		require.Error(t, err)
		assert.ErrorIs(t, err, skytap.ErrAPIKeyRequired)
	})

	t.Run("rejects malformed base URL", func(t *testing.T) {
		t.Parallel()

		config := &skytap.Config{
			BaseURL:  "not a url",
			Username: "user@example.com",
			APIKey:   "api-key",
		}

		_, err := skytapclient.New(config)
		require.Error(t, err)
		assert.ErrorIs(t, err, skytap.ErrInvalidBaseURL)
		assert.ErrorIs(t, err, skytap.ErrInvalidConfig)
	})

	t.Run("rejects non-HTTP scheme", func(t *testing.T) {
		t.Parallel()

		config := &skytap.Config{
			BaseURL:  "ftp://cloud.skytap.com",
			Username: "user@example.com",
			APIKey:   "api-key",
		}

		_, err := skytapclient.New(config)
		require.Error(t, err)
		assert.ErrorIs(t, err, skytap.ErrInvalidBaseURL)
	})

	t.Run("rejects scheme without host", func(t *testing.T) {
		t.Parallel()

		config := &skytap.Config{
			BaseURL:  "https://",
			Username: "user@example.com",
			APIKey:   "api-key",
		}

		_, err := skytapclient.New(config)
		require.Error(t, err)
		assert.ErrorIs(t, err, skytap.ErrInvalidBaseURL)
	})

	t.Run("does not modify the caller's config", func(t *testing.T) {
		t.Parallel()

		config := &skytap.Config{
			BaseURL:  "cloud.skytap.com/",
			Username: "user@example.com",
			APIKey:   "api-key",
		}

		_, err := skytapclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "cloud.skytap.com/", config.BaseURL)
	})
}

func TestNewWithCredentials(t *testing.T) {
	t.Parallel()

	client, err := skytapclient.NewWithCredentials("https://cloud.skytap.com", "user@example.com", "api-key")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "bare host", baseURL: "cloud.skytap.com"},
		{name: "trailing slash", baseURL: "https://cloud.skytap.com/"},
		{name: "multiple trailing slashes", baseURL: "https://cloud.skytap.com///"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client, err := skytapclient.NewWithCredentials(testCase.baseURL, "user@example.com", "api-key")
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/users/1":
			assert.Equal(t, "Basic dXNlcjprZXk=", request.Header.Get("Authorization"))

			user := skytap.User{
				Resource:  skytap.Resource{ID: "1"},
				LoginName: "user",
				Email:     "user@example.com",
			}
			_ = json.NewEncoder(writer).Encode(user)
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := skytapclient.NewWithCredentials(server.URL, "user", "key")
	require.NoError(t, err)

	user, err := client.Users().Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "user", user.LoginName)
	assert.Equal(t, "user@example.com", user.Email)
}
