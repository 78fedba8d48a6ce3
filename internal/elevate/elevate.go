// Package elevate implements the self-elevation hop: when the invocation
// carries the marker token, the launcher re-invokes its own binary with
// elevated privileges and the current process exits without running
// anything else.
//
// The decision is a two-state machine evaluated exactly once at startup:
// either the run is NORMAL and this package does nothing, or elevation
// was requested and the process terminates after issuing the hop. The
// marker is never forwarded, so at most one hop can ever happen.
package elevate

import (
	"fmt"
	"os"
	"strings"
)

// Marker asks the launcher to restart itself with elevated privileges.
// It is matched as a whole token; look-alike arguments pass through
// untouched.
const Marker = "--elevate"

// Deps are the process-level collaborators of the relaunch.
type Deps struct {
	// Executable resolves the path of the currently running binary.
	Executable func() (string, error)
	// Request asks the OS to start exe elevated with the given argument string.
	Request func(exe, argString string) error
}

// DefaultDeps wires the real executable lookup and the platform's
// elevation request.
func DefaultDeps() Deps {
	return Deps{
		Executable: os.Executable,
		Request:    requestElevation,
	}
}

// Requested reports whether the invocation carries the elevation marker.
func Requested(args []string) bool {
	for _, a := range args {
		if a == Marker {
			return true
		}
	}
	return false
}

// Strip removes every occurrence of the marker token. Removal is by whole
// token, never by substring, so unrelated arguments are not corrupted.
func Strip(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != Marker {
			out = append(out, a)
		}
	}
	return out
}

// Relaunch re-invokes the current binary without the marker and with an
// elevation request. The caller exits afterwards regardless of the
// outcome; only a failure to even issue the request is worth reporting.
func Relaunch(args []string, deps Deps) error {
	exe, err := deps.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	return deps.Request(exe, strings.Join(Strip(args), " "))
}
