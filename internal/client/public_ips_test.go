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

func TestPublicIPsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[skytap.PublicIP]{
		{
			Name:         "existing address",
			ID:           "76.191.118.29",
			ExpectedPath: "/ips/76.191.118.29",
			StatusCode:   http.StatusOK,
			Response: &skytap.PublicIP{
				ID:      "76.191.118.29",
				Address: "76.191.118.29",
				Region:  "US-West",
			},
		},
		{
			Name:         "missing address",
			ID:           "192.0.2.1",
			ExpectedPath: "/ips/192.0.2.1",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "getting public IP",
		},
	}

	RunGetTests(t, tests, func(client *Client) func(context.Context, string) (*skytap.PublicIP, error) {
		return client.PublicIPs().Get
	})
}

func TestPublicIPsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ips", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		ips := []skytap.PublicIP{
			{ID: "76.191.118.29", Address: "76.191.118.29", Region: "US-West"},
			{ID: "76.191.118.30", Address: "76.191.118.30", Region: "US-West", VPNID: "vpn-1"},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(ips)
	}))
	defer server.Close()

	ips, err := NewTestClient(server.URL).PublicIPs().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, ips, 2)
	assert.Equal(t, "vpn-1", ips[1].VPNID)
}
