package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	. "github.com/fivetwenty-io/skytap-client/internal/client"
	internalhttp "github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users/123", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Accept"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"email": "a@b.com"}`))
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	resources := NewResourcesClient(httpClient)

	record, err := resources.Get(context.Background(), "users", "123")
	require.NoError(t, err)
	assert.Equal(t, skytap.Record{"email": "a@b.com"}, record)
}

func TestResourcesClient_Get_Repeated(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests.Add(1)
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"id": "12345", "runstate": "running"}`))
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	resources := NewResourcesClient(httpClient)

	first, err := resources.Get(context.Background(), "configurations", "12345")
	require.NoError(t, err)

	second, err := resources.Get(context.Background(), "configurations", "12345")
	require.NoError(t, err)

	// Each call is one round trip, and equal responses decode equally.
	assert.Equal(t, first, second)
	assert.Equal(t, int64(2), requests.Load())
}

func TestResourcesClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"error": "Resource not found"}`))
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	resources := NewResourcesClient(httpClient)

	record, err := resources.Get(context.Background(), "users", "999")
	require.Error(t, err)
	assert.Nil(t, record)

	apiErr, ok := skytap.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, string(apiErr.Body), "Resource not found")
}

func TestResourcesClient_Get_MalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{not json`))
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	resources := NewResourcesClient(httpClient)

	record, err := resources.Get(context.Background(), "users", "123")
	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, skytap.IsDecodeError(err))

	var decodeErr *skytap.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, `{not json`, string(decodeErr.Body))
}

func TestResourcesClient_Get_RequiresResourceType(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Error("no request should be sent")
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	resources := NewResourcesClient(httpClient)

	_, err := resources.Get(context.Background(), "", "123")
	require.Error(t, err)
	assert.ErrorIs(t, err, skytap.ErrResourceTypeRequired)
}

func TestResourcesClient_List(t *testing.T) {
	t.Parallel()

	t.Run("without options", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/templates", request.URL.Path)
			assert.Empty(t, request.URL.RawQuery)

			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`[{"id": "777"}, {"id": "778"}]`))
		}))
		defer server.Close()

		httpClient := internalhttp.NewClient(server.URL, nil)
		resources := NewResourcesClient(httpClient)

		records, err := resources.List(context.Background(), "templates", nil)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "777", records[0]["id"])
	})

	t.Run("with window options", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/templates", request.URL.Path)
			assert.Equal(t, "5", request.URL.Query().Get("count"))
			assert.Equal(t, "10", request.URL.Query().Get("offset"))

			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`[]`))
		}))
		defer server.Close()

		httpClient := internalhttp.NewClient(server.URL, nil)
		resources := NewResourcesClient(httpClient)

		records, err := resources.List(context.Background(), "templates", skytap.NewListOptions().WithCount(5).WithOffset(10))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("requires resource type", func(t *testing.T) {
		t.Parallel()

		httpClient := internalhttp.NewClient("http://127.0.0.1:1", nil)
		resources := NewResourcesClient(httpClient)

		_, err := resources.List(context.Background(), "", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, skytap.ErrResourceTypeRequired)
	})
}
