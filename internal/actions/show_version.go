// Package actions holds the top-level commands that need no subpackage.
package actions

import (
	"github.com/launchkit-tools/cli/internal/dispatchers"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// ShowVersion prints the binary version with production dependencies.
func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersionRun(args, flags, DefaultVersionDeps())
}

func showVersionRun(_ []string, _ *dispatchers.ParsedFlags, deps VersionDeps) error {
	deps.Printf("lk version %s", Version)
	return nil
}
