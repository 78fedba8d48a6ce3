// Package config implements the config subcommands that read and write
// the persisted launcher defaults.
package config

import (
	"fmt"

	"github.com/launchkit-tools/cli/internal/dispatchers"
	"github.com/launchkit-tools/cli/internal/usage"
)

// Get prints one setting with production dependencies.
func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return getRun(args, flags, DefaultDeps())
}

func getRun(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}
	key := args[0]

	settings, err := deps.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	value, ok := settings.Get(key)
	if !ok {
		return usage.InvalidConfigKey(key)
	}

	deps.Reporter.Infof("%s", value)
	return nil
}
