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

func TestPublishSetsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/configurations/12345/publish_sets/ps-1", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		runtimeLimit := 480
		publishSet := skytap.PublishSet{
			Resource:       skytap.Resource{ID: "ps-1"},
			Name:           "Class of Monday",
			PublishSetType: "single_url",
			DesktopsURL:    "https://cloud.skytap.com/vms/abc123",
			RuntimeLimit:   &runtimeLimit,
			VMs: []skytap.PublishSetVM{
				{VMRef: "https://cloud.skytap.com/vms/111", Access: "run_and_use", Name: "web"},
			},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(publishSet)
	}))
	defer server.Close()

	publishSet, err := NewTestClient(server.URL).PublishSets().Get(context.Background(), "12345", "ps-1")
	require.NoError(t, err)
	assert.Equal(t, "Class of Monday", publishSet.Name)
	assert.Equal(t, "single_url", publishSet.PublishSetType)
	require.NotNil(t, publishSet.RuntimeLimit)
	assert.Equal(t, 480, *publishSet.RuntimeLimit)
	assert.Len(t, publishSet.VMs, 1)
	assert.Equal(t, "run_and_use", publishSet.VMs[0].Access)
}

func TestPublishSetsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/configurations/12345/publish_sets", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		publishSets := []skytap.PublishSet{
			{Resource: skytap.Resource{ID: "ps-1"}, Name: "Class of Monday"},
			{Resource: skytap.Resource{ID: "ps-2"}, Name: "Class of Tuesday"},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(publishSets)
	}))
	defer server.Close()

	publishSets, err := NewTestClient(server.URL).PublishSets().List(context.Background(), "12345")
	require.NoError(t, err)
	assert.Len(t, publishSets, 2)
	assert.Equal(t, "Class of Tuesday", publishSets[1].Name)
}

func TestPublishSetsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/configurations/12345/publish_sets/ps-1", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := NewTestClient(server.URL).PublishSets().Delete(context.Background(), "12345", "ps-1")
	require.NoError(t, err)
}
