package cli

import "github.com/launchkit-tools/cli/internal/dispatchers"

// LaunchArgs describe the positional arguments of the root launch command.
var LaunchArgs = []dispatchers.ArgSpec{
	{
		Name:        "target",
		Description: "Path of the program or document to launch",
		Required:    true,
	},
	{
		Name:        "args",
		Description: "Raw arguments for the target (same as --args)",
		Required:    false,
	},
}

// ConfigGetArgs describe the positional arguments of config get.
var ConfigGetArgs = []dispatchers.ArgSpec{
	{Name: "key", Description: "Setting name", Required: true},
}

// ConfigSetArgs describe the positional arguments of config set.
var ConfigSetArgs = []dispatchers.ArgSpec{
	{Name: "key", Description: "Setting name", Required: true},
	{Name: "value", Description: "New value", Required: true},
}
