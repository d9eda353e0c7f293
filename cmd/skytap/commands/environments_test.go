package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvironmentsCommand(t *testing.T) {
	cmd := NewEnvironmentsCommand()
	assert.Equal(t, "environments", cmd.Use)
	assert.Equal(t, []string{"envs", "env"}, cmd.Aliases)
	assert.Equal(t, "Manage environments", cmd.Short)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 7)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "update")
	assert.Contains(t, commandNames, "delete")
	assert.Contains(t, commandNames, "runstate")
	assert.Contains(t, commandNames, "networks")
}

func TestEnvironmentsCreateCommand(t *testing.T) {
	cmd := newEnvironmentsCreateCommand()
	assert.Equal(t, "create", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	// Check flags
	assert.NotNil(t, cmd.Flags().Lookup("template"))
	assert.NotNil(t, cmd.Flags().Lookup("name"))
}

func TestEnvironmentsRunstateCommand(t *testing.T) {
	cmd := newEnvironmentsRunstateCommand()
	assert.Equal(t, "runstate ENVIRONMENT_ID STATE", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	vmFlag := cmd.Flags().Lookup("vm")
	assert.NotNil(t, vmFlag)
}

func TestEnvironmentsDeleteCommand(t *testing.T) {
	cmd := newEnvironmentsDeleteCommand()
	assert.Equal(t, "delete ENVIRONMENT_ID", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	// Check force flag
	forceFlag := cmd.Flags().Lookup("force")
	assert.NotNil(t, forceFlag)
	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
}
