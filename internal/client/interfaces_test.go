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

func TestInterfacesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/configurations/12345/vms/111/interfaces/nic-0", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		adapter := skytap.Interface{
			Resource:  skytap.Resource{ID: "nic-0"},
			IP:        "10.0.0.1",
			Hostname:  "web",
			MAC:       "00:1A:2B:3C:4D:5E",
			NICType:   "vmxnet3",
			NetworkID: "900",
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(adapter)
	}))
	defer server.Close()

	adapter, err := NewTestClient(server.URL).Interfaces().Get(context.Background(), "12345", "111", "nic-0")
	require.NoError(t, err)
	assert.Equal(t, "nic-0", adapter.ID)
	assert.Equal(t, "10.0.0.1", adapter.IP)
	assert.Equal(t, "900", adapter.NetworkID)
}

func TestInterfacesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/configurations/12345/vms/111/interfaces", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		adapters := []skytap.Interface{
			{Resource: skytap.Resource{ID: "nic-0"}, IP: "10.0.0.1"},
			{Resource: skytap.Resource{ID: "nic-1"}, IP: "10.0.1.1"},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(adapters)
	}))
	defer server.Close()

	adapters, err := NewTestClient(server.URL).Interfaces().List(context.Background(), "12345", "111")
	require.NoError(t, err)
	assert.Len(t, adapters, 2)
	assert.Equal(t, "10.0.1.1", adapters[1].IP)
}

func TestInterfacesClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/configurations/12345/vms/111/interfaces", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		adapter := skytap.Interface{
			Resource: skytap.Resource{ID: "nic-2"},
			NICType:  "vmxnet3",
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(adapter)
	}))
	defer server.Close()

	adapter, err := NewTestClient(server.URL).Interfaces().Create(context.Background(), "12345", "111")
	require.NoError(t, err)
	assert.Equal(t, "nic-2", adapter.ID)
}

func TestInterfacesClient_Attach(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/configurations/12345/vms/111/interfaces/nic-2", request.URL.Path)
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "900", request.URL.Query().Get("network_id"))

		adapter := skytap.Interface{
			Resource:  skytap.Resource{ID: "nic-2"},
			NetworkID: "900",
			IP:        "10.0.0.7",
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(adapter)
	}))
	defer server.Close()

	adapter, err := NewTestClient(server.URL).Interfaces().Attach(context.Background(), "12345", "111", "nic-2", "900")
	require.NoError(t, err)
	assert.Equal(t, "900", adapter.NetworkID)
	assert.Equal(t, "10.0.0.7", adapter.IP)
}
