// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/fivetwenty-io/skytap-client/pkg/skytapclient"
)

func newIntegrationClient(t *testing.T, config *TestConfig) skytap.Client {
	client, err := skytapclient.NewWithCredentials(config.BaseURL, config.Username, config.APIKey)
	require.NoError(t, err, "Failed to create client")

	return client
}

// TestClientWorkflow_ReadOnly walks the read-only surface of the library
// against a live account.
func TestClientWorkflow_ReadOnly(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingCredentials(t)

	client := newIntegrationClient(t, config)
	ctx := context.Background()

	// Environments round trip: list, then fetch the first one by ID
	environments, err := client.Environments().List(ctx)
	require.NoError(t, err, "Failed to list environments")

	if len(environments) > 0 {
		environment, err := client.Environments().Get(ctx, environments[0].ID)
		require.NoError(t, err, "Failed to get environment")
		assert.Equal(t, environments[0].ID, environment.ID)
	}

	// Templates visible to the account
	templates, err := client.Templates().List(ctx)
	require.NoError(t, err, "Failed to list templates")
	t.Logf("Account sees %d environments and %d templates", len(environments), len(templates))

	// Projects
	_, err = client.Projects().List(ctx)
	require.NoError(t, err, "Failed to list projects")

	// Generic resource access against the same account
	records, err := client.Resources().List(ctx, "users", skytap.NewListOptions().WithCount(5))
	require.NoError(t, err, "Failed to list users generically")

	for _, record := range records {
		assert.Contains(t, record, "id")
	}
}

// TestClientWorkflow_EnvironmentLifecycle creates a real environment from
// the configured template, waits until the platform finishes the copy, and
// deletes it again.
func TestClientWorkflow_EnvironmentLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingCredentials(t)
	config.SkipIfMissingTemplate(t)

	client := newIntegrationClient(t, config)
	ctx := context.Background()

	environment, err := client.Environments().Create(ctx, config.TemplateID)
	require.NoError(t, err, "Failed to create environment")
	require.NotEmpty(t, environment.ID)

	defer func() {
		err := client.Environments().Delete(ctx, environment.ID)
		if err != nil {
			t.Logf("Cleanup warning for environment %s: %v", environment.ID, err)
		}
	}()

	WaitForCondition(t, func() bool {
		current, err := client.Environments().Get(ctx, environment.ID)

		return err == nil && current.Runstate != skytap.RunstateBusy
	}, 10*time.Minute, "environment did not settle after creation")

	// The settled copy carries the template's VMs
	settled, err := client.Environments().Get(ctx, environment.ID)
	require.NoError(t, err, "Failed to get settled environment")
	assert.NotEmpty(t, settled.VMs, "Expected the environment to contain VMs")

	// Rename it through the update path
	renamed, err := client.Environments().Update(ctx, environment.ID,
		map[string]string{"name": GenerateTestName("integration-lib")})
	require.NoError(t, err, "Failed to rename environment")
	assert.NotEqual(t, settled.Name, renamed.Name)
}

// TestClientWorkflow_ErrorMapping verifies the error taxonomy against real
// API responses.
func TestClientWorkflow_ErrorMapping(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingCredentials(t)

	ctx := context.Background()

	// A nonsense ID maps to a not-found API error
	client := newIntegrationClient(t, config)

	_, err := client.Environments().Get(ctx, "0")
	require.Error(t, err)
	assert.True(t, skytap.IsNotFound(err), "Expected a not-found error, got %v", err)

	apiErr, ok := skytap.AsAPIError(err)
	require.True(t, ok, "Expected an API error, got %T", err)
	assert.Equal(t, 404, apiErr.StatusCode)

	// Bad credentials map to an unauthorized API error
	badClient, err := skytapclient.NewWithCredentials(config.BaseURL, config.Username, "wrong-token")
	require.NoError(t, err)

	_, err = badClient.Environments().List(ctx)
	require.Error(t, err)
	assert.True(t, skytap.IsUnauthorized(err), "Expected an unauthorized error, got %v", err)

	// An expired context maps to a transport timeout
	shortCtx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()

	_, err = client.Environments().List(shortCtx)
	require.Error(t, err)
	assert.True(t, skytap.IsTimeout(err), "Expected a timeout error, got %v", err)
}
