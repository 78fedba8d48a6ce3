// Package history implements the launch-history commands.
package history

import (
	"fmt"
	"strings"

	"github.com/launchkit-tools/cli/internal/dispatchers"
	"github.com/launchkit-tools/cli/internal/ui/style"
	"github.com/launchkit-tools/cli/internal/usage"
)

const defaultLimit = 20

// List shows recent runs with production dependencies.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return listRun(args, flags, DefaultDeps())
}

func listRun(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	limit, ok := flags.Int("--limit", defaultLimit)
	if !ok || limit < 0 {
		return usage.InvalidValue("--limit", "expected a non-negative number")
	}

	db, err := deps.OpenHistory()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = db.Close() }()

	runs, err := deps.ListRuns(db, limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if flags.Has("--interactive") || flags.Has("-i") {
		return browse(runs, deps)
	}

	if len(runs) == 0 {
		deps.Reporter.Infof("%s", style.Muted("no launches recorded yet"))
		return nil
	}

	for _, r := range runs {
		when := r.StartedAt.Local().Format("2006-01-02 15:04")
		line := fmt.Sprintf("%s  %-4s %s", style.Muted(when), r.Mode, r.Target)
		if r.Args != "" {
			line += "  " + style.Muted(truncate(r.Args, 60))
		}
		if r.Failed > 0 {
			line += "  " + style.Error(fmt.Sprintf("(%d failed)", r.Failed))
		}
		deps.Reporter.Infof("%s", line)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-3]) + "..."
}
