// Package launching is the root action: it turns a parsed invocation into
// a sequence of spawned processes.
package launching

import (
	"strings"
	"time"

	"github.com/launchkit-tools/cli/internal/args"
	"github.com/launchkit-tools/cli/internal/config"
	"github.com/launchkit-tools/cli/internal/dispatchers"
	"github.com/launchkit-tools/cli/internal/history"
	"github.com/launchkit-tools/cli/internal/launch"
	"github.com/launchkit-tools/cli/internal/options"
	"github.com/launchkit-tools/cli/internal/report"
	"github.com/launchkit-tools/cli/internal/unlock"
	"github.com/launchkit-tools/cli/internal/usage"
)

// Launch runs the launcher pipeline with production dependencies.
func Launch(positional []string, flags *dispatchers.ParsedFlags) error {
	deps := DefaultDeps()
	if flags.Has("--debug") {
		deps.Reporter = report.New(report.WithDebug())
	}
	return launchRun(positional, flags, deps)
}

func launchRun(positional []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	settings, err := deps.LoadSettings()
	if err != nil {
		deps.Reporter.Warnf("using default settings: %v", err)
		settings = config.DefaultSettings()
	}

	opts, err := options.FromFlags(positional, flags, options.Defaults{
		Separator: settings.Separator,
		DelayMS:   settings.DelayMS,
	})
	if err != nil {
		return err
	}

	if err := unlock.Gate(opts.Secret, unlock.Deps{
		ReadSecret: deps.ReadSecret,
		Warnf:      deps.Reporter.Warnf,
	}); err != nil {
		deps.Reporter.Debugf("password gate: %v", err)
		return usage.AuthorizationFailed()
	}

	// The existence check is skipped in debug mode so a dry run can be
	// planned against targets that are not installed yet.
	if !opts.Flags.Debug && !opts.Flags.Shell && opts.Verb == options.VerbNone {
		if _, err := deps.Stat(opts.Target); err != nil {
			return usage.TargetNotFound(opts.Target)
		}
	}

	startedAt := deps.Now()
	transformed := args.Transform(opts.RawArgs, opts)
	result := launch.Run(opts, transformed.Process, launch.Deps{
		Spawn:  deps.Spawn,
		Sleep:  deps.Sleep,
		Errorf: deps.Reporter.Errorf,
		Debugf: deps.Reporter.Debugf,
	})

	if !opts.Flags.Debug && settings.History {
		recordHistory(deps, opts, transformed.Process, result, startedAt)
	}

	if opts.Flags.Pause {
		_, _ = deps.ReadLine("Press enter to exit...")
	}

	return nil
}

// recordHistory is best effort: a history failure is logged, never surfaced.
func recordHistory(deps Deps, opts options.LaunchOptions, process []string, result launch.Result, startedAt time.Time) {
	db, err := deps.OpenHistory()
	if err != nil {
		deps.Reporter.Debugf("history unavailable: %v", err)
		return
	}
	defer func() { _ = db.Close() }()

	err = deps.RecordRun(db, history.Run{
		Target:    opts.Target,
		Mode:      string(opts.Mode),
		Args:      strings.Join(process, " | "),
		Spawned:   result.Spawned,
		Failed:    result.Failed,
		StartedAt: startedAt,
	})
	if err != nil {
		deps.Reporter.Debugf("history not recorded: %v", err)
	}
}
