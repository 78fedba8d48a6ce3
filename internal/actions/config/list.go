package config

import (
	"fmt"

	"github.com/launchkit-tools/cli/internal/config"
	"github.com/launchkit-tools/cli/internal/dispatchers"
	"github.com/launchkit-tools/cli/internal/ui/style"
)

// List prints every setting with production dependencies.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return listRun(args, flags, DefaultDeps())
}

func listRun(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	settings, err := deps.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	for _, key := range config.Keys() {
		value, _ := settings.Get(key)
		deps.Reporter.Infof("%s = %s", style.Info(key), value)
	}
	return nil
}
