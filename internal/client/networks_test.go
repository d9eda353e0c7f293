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

func TestNetworksClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/configurations/12345/networks/900", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		network := skytap.Network{
			Resource:    skytap.Resource{ID: "900"},
			Name:        "default",
			NetworkType: "automatic",
			Subnet:      "10.0.0.0/24",
			Gateway:     "10.0.0.254",
			Tunnelable:  true,
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(network)
	}))
	defer server.Close()

	network, err := NewTestClient(server.URL).Networks().Get(context.Background(), "12345", "900")
	require.NoError(t, err)
	assert.Equal(t, "900", network.ID)
	assert.Equal(t, "10.0.0.0/24", network.Subnet)
	assert.True(t, network.Tunnelable)
}

func TestNetworksClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/configurations/12345/networks", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		networks := []skytap.Network{
			{Resource: skytap.Resource{ID: "900"}, Name: "default", Subnet: "10.0.0.0/24"},
			{Resource: skytap.Resource{ID: "901"}, Name: "dmz", Subnet: "10.0.1.0/24"},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(networks)
	}))
	defer server.Close()

	networks, err := NewTestClient(server.URL).Networks().List(context.Background(), "12345")
	require.NoError(t, err)
	assert.Len(t, networks, 2)
	assert.Equal(t, "dmz", networks[1].Name)
}

func TestNetworksClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"error": "Network not found"}`))
	}))
	defer server.Close()

	network, err := NewTestClient(server.URL).Networks().Get(context.Background(), "12345", "999")
	require.Error(t, err)
	assert.Nil(t, network)
	assert.True(t, skytap.IsNotFound(err))
}
