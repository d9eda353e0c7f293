package commands

import (
	"testing"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDepartmentsCommand(t *testing.T) {
	cmd := NewDepartmentsCommand()
	assert.Equal(t, "departments", cmd.Use)
	assert.Equal(t, []string{"department", "depts"}, cmd.Aliases)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 7)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "users")
	assert.Contains(t, commandNames, "add-user")
	assert.Contains(t, commandNames, "quotas")
	assert.Contains(t, commandNames, "set-quotas")
	assert.Contains(t, commandNames, "set-description")
}

func TestDepartmentsListCommand(t *testing.T) {
	cmd := newDepartmentsListCommand()
	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	countFlag := cmd.Flags().Lookup("count")
	require.NotNil(t, countFlag)
	assert.Equal(t, "100", countFlag.DefValue)

	offsetFlag := cmd.Flags().Lookup("offset")
	require.NotNil(t, offsetFlag)
	assert.Equal(t, "0", offsetFlag.DefValue)
}

func TestParseQuotaLimits(t *testing.T) {
	t.Parallel()

	limits, err := parseQuotaLimits([]string{"svm_hours=5000", "storage=unlimited"})
	require.NoError(t, err)
	require.Len(t, limits, 2)

	assert.Equal(t, "svm_hours", limits[0].ID)
	require.NotNil(t, limits[0].Limit)
	assert.Equal(t, int64(5000), *limits[0].Limit)

	assert.Equal(t, "storage", limits[1].ID)
	assert.Nil(t, limits[1].Limit)
}

func TestParseQuotaLimits_Invalid(t *testing.T) {
	t.Parallel()

	_, err := parseQuotaLimits([]string{"svm_hours"})
	assert.ErrorIs(t, err, ErrQuotaFormatInvalid)

	_, err = parseQuotaLimits([]string{"svm_hours=lots"})
	assert.ErrorIs(t, err, constants.ErrInvalidQuotaLimit)
}
