package actions

import (
	"github.com/launchkit-tools/cli/internal/report"
)

// VersionDeps contains the external dependencies of the version command.
type VersionDeps struct {
	Printf func(format string, args ...any)
}

// DefaultVersionDeps returns production dependencies.
func DefaultVersionDeps() VersionDeps {
	return VersionDeps{
		Printf: report.New().Infof,
	}
}
