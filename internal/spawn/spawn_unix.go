//go:build !windows

package spawn

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/launchkit-tools/cli/internal/options"
)

func shellCommand() []string {
	return []string{"/bin/sh", "-c"}
}

// runPlatform starts the process with exec. HideWindow is a no-op here;
// there is no window concept to suppress.
func runPlatform(target, argString string, cfg Config) error {
	argv, err := verbArgv(target, argString, cfg)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = cfg.Dir

	if cfg.UTF8Input {
		cmd.Stdin = utf16InputReader(os.Stdin)
	}
	if cfg.UTF8Output {
		cmd.Stdout = utf8OutputWriter(os.Stdout)
	}
	if cfg.UTF8Error {
		cmd.Stderr = utf8OutputWriter(os.Stderr)
	}

	if cfg.redirectsStreams() {
		// Transcoded pipes only drain while the child is attended to, so
		// a redirected launch runs to completion before returning.
		if err := cmd.Start(); err != nil {
			return err
		}
		if err := cmd.Wait(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				// The process started; a non-zero exit is not a spawn failure.
				return nil
			}
			return err
		}
		return nil
	}

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// verbArgv maps the verb onto this platform's nearest equivalent. Only
// open and runas have one; the remaining verbs are Windows shell
// directives with no counterpart here.
func verbArgv(target, argString string, cfg Config) ([]string, error) {
	switch cfg.Verb {
	case options.VerbNone:
		return commandLine(target, argString, cfg.UseShell), nil
	case options.VerbOpen:
		return []string{"xdg-open", target}, nil
	case options.VerbRunAs:
		return append([]string{"sudo", "--"}, commandLine(target, argString, cfg.UseShell)...), nil
	default:
		return nil, fmt.Errorf("verb %q is not supported on this platform", cfg.Verb)
	}
}
