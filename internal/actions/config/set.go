package config

import (
	"fmt"

	"github.com/launchkit-tools/cli/internal/dispatchers"
	"github.com/launchkit-tools/cli/internal/usage"
)

// Set updates one setting with production dependencies.
func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return setRun(args, flags, DefaultDeps())
}

func setRun(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key and value")
	}
	key, value := args[0], args[1]

	settings, err := deps.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, ok := settings.Get(key); !ok {
		return usage.InvalidConfigKey(key)
	}
	if err := settings.Set(key, value); err != nil {
		return usage.InvalidValue(key, err.Error())
	}

	if err := deps.Save(settings); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	deps.Reporter.Infof("%s = %s", key, value)
	return nil
}
