// Package spawn is the process-creation primitive. The launcher core
// treats it as opaque: given a target, an argument string and a Config it
// either starts a process or returns a structured failure.
package spawn

import (
	"strings"

	"github.com/launchkit-tools/cli/internal/options"
)

// Config describes how a single process should be started. The fields are
// independent booleans and values; none of them interact with each other.
type Config struct {
	// Dir is the working directory for the new process (empty: inherit).
	Dir string
	// Verb is the shell-level launch directive (empty: plain execution).
	Verb options.Verb
	// UseShell requests indirection through the host shell instead of
	// direct image execution.
	UseShell bool
	// HideWindow starts the process without a visible window. Standard
	// streams are not redirected by this setting alone.
	HideWindow bool
	// UTF8Input/Output/Error force UTF-8 transcoding on that stream and
	// imply redirecting it.
	UTF8Input  bool
	UTF8Output bool
	UTF8Error  bool
}

// Run starts target with argString under cfg. It reports only whether the
// process could be started; the child's exit status is its own business.
func Run(target, argString string, cfg Config) error {
	return runPlatform(target, argString, cfg)
}

func (c Config) redirectsStreams() bool {
	return c.UTF8Input || c.UTF8Output || c.UTF8Error
}

// commandLine assembles the argv for a direct (verb-less) launch. With
// shell indirection the whole invocation becomes one shell command line;
// otherwise the argument string is split on whitespace for the exec call.
func commandLine(target, argString string, useShell bool) []string {
	if useShell {
		line := target
		if argString != "" {
			line += " " + argString
		}
		return append(shellCommand(), line)
	}
	argv := []string{target}
	if argString != "" {
		argv = append(argv, strings.Fields(argString)...)
	}
	return argv
}
