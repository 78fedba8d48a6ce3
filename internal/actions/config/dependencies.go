package config

import (
	"github.com/launchkit-tools/cli/internal/config"
	"github.com/launchkit-tools/cli/internal/paths"
	"github.com/launchkit-tools/cli/internal/report"
)

// Deps contains all external dependencies of the config actions.
type Deps struct {
	Load     func() (config.Settings, error)
	Save     func(s config.Settings) error
	Reporter *report.Reporter
}

// DefaultDeps returns production dependencies.
func DefaultDeps() Deps {
	return Deps{
		Load: func() (config.Settings, error) {
			return config.Load(paths.ConfigFilePath())
		},
		Save: func(s config.Settings) error {
			return config.Save(paths.ConfigFilePath(), s)
		},
		Reporter: report.New(),
	}
}
