// Package launch sequences the spawn calls for one run: one launch per
// process argument, strict left-to-right, with an optional blocking delay
// between consecutive launches.
package launch

import (
	"time"

	"github.com/launchkit-tools/cli/internal/options"
	"github.com/launchkit-tools/cli/internal/spawn"
)

// Deps are the external primitives the orchestrator drives. The spawn
// call is opaque: it either starts a process or reports a structured
// failure, and the orchestrator never retries it.
type Deps struct {
	Spawn  func(target, argString string, cfg spawn.Config) error
	Sleep  func(d time.Duration)
	Errorf func(format string, args ...any)
	Debugf func(format string, args ...any)
}

// Result counts what the loop actually did.
type Result struct {
	Spawned int
	Failed  int
}

// Run performs the launch loop. An empty process list still launches the
// target exactly once with no argument string. A failed spawn is reported
// and the queue keeps going; each launch attempt is independent. The
// delay applies between consecutive launches, never after the last one,
// and is a blocking sleep on the calling goroutine.
//
// In debug mode nothing is spawned at all; the planned launches are
// reported at debug level instead.
func Run(opts options.LaunchOptions, process []string, deps Deps) Result {
	queue := process
	if len(queue) == 0 {
		queue = []string{""}
	}

	if opts.Flags.Debug {
		for i, arg := range queue {
			deps.Debugf("dry run %d/%d: would launch %s with arguments %q", i+1, len(queue), opts.Target, arg)
		}
		return Result{}
	}

	cfg := configFor(opts)

	var res Result
	for i, arg := range queue {
		if err := deps.Spawn(opts.Target, arg, cfg); err != nil {
			res.Failed++
			deps.Errorf("launch %d/%d failed: %v", i+1, len(queue), err)
		} else {
			res.Spawned++
		}
		if opts.Delay > 0 && i < len(queue)-1 {
			deps.Sleep(opts.Delay)
		}
	}
	return res
}

// configFor maps the static run options onto the per-launch process
// configuration. Every launch of a run uses the same configuration; the
// fields are independent and do not interact.
func configFor(opts options.LaunchOptions) spawn.Config {
	return spawn.Config{
		Dir:        opts.WorkDir,
		Verb:       opts.Verb,
		UseShell:   opts.Flags.Shell,
		HideWindow: opts.Flags.Hide,
		UTF8Input:  opts.Streams.Input,
		UTF8Output: opts.Streams.Output,
		UTF8Error:  opts.Streams.Error,
	}
}
