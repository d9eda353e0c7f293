package commands

import (
	"testing"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	t.Parallel()

	attributes, err := parseAttributes([]string{"name=demo", "description=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"name":        "demo",
		"description": "a=b",
	}, attributes)
}

func TestParseAttributes_Invalid(t *testing.T) {
	t.Parallel()

	_, err := parseAttributes([]string{"name"})
	assert.ErrorIs(t, err, constants.ErrInvalidAttributeFormat)

	_, err = parseAttributes([]string{"=value"})
	assert.ErrorIs(t, err, constants.ErrInvalidAttributeFormat)
}

func TestParseRunstate(t *testing.T) {
	t.Parallel()

	for _, state := range []string{"running", "stopped", "suspended", "halted", "reset"} {
		runstate, err := parseRunstate(state)
		require.NoError(t, err)
		assert.Equal(t, skytap.Runstate(state), runstate)
	}
}

func TestParseRunstate_Invalid(t *testing.T) {
	t.Parallel()

	// "busy" is reported by the API but cannot be requested
	_, err := parseRunstate("busy")
	assert.ErrorIs(t, err, constants.ErrInvalidRunstate)

	_, err = parseRunstate("paused")
	assert.ErrorIs(t, err, constants.ErrInvalidRunstate)
}

func TestFormatLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unlimited", formatLimit(nil))

	limit := int64(2500)
	assert.Equal(t, "2500", formatLimit(&limit))
}

func TestStringOrNA(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", stringOrNA(""))
	assert.Equal(t, "us-west-1", stringOrNA("us-west-1"))
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "exactly-10", truncateString("exactly-10", 10))
	assert.Equal(t, "toolo...", truncateString("toolongvalue", 8))
}

func TestCreateClient_RequiresConfiguration(t *testing.T) {
	viper.Reset()

	_, err := CreateClient()
	assert.ErrorIs(t, err, constants.ErrNoBaseURLConfigured)

	viper.Set("base_url", "https://cloud.skytap.com")

	_, err = CreateClient()
	assert.ErrorIs(t, err, constants.ErrNoCredentialsConfigured)

	viper.Set("username", "user")
	viper.Set("api_key", "key")

	client, err := CreateClient()
	require.NoError(t, err)
	assert.NotNil(t, client)

	viper.Reset()
}
