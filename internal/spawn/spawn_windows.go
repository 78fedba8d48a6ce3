//go:build windows

package spawn

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/launchkit-tools/cli/internal/options"
)

func shellCommand() []string {
	return []string{"cmd", "/C"}
}

func runPlatform(target, argString string, cfg Config) error {
	// Verbs are interpreted by the shell; stream redirection needs a real
	// handle on the child, so redirected launches always take the exec path.
	if cfg.Verb != options.VerbNone && !cfg.redirectsStreams() {
		return shellExecute(target, argString, cfg)
	}

	argv := commandLine(target, argString, cfg.UseShell)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = cfg.Dir
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: cfg.HideWindow}

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

func shellExecute(target, argString string, cfg Config) error {
	verb, err := windows.UTF16PtrFromString(string(cfg.Verb))
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return err
	}

	var params *uint16
	if argString != "" {
		if params, err = windows.UTF16PtrFromString(argString); err != nil {
			return err
		}
	}
	var dir *uint16
	if cfg.Dir != "" {
		if dir, err = windows.UTF16PtrFromString(cfg.Dir); err != nil {
			return err
		}
	}

	show := int32(windows.SW_SHOWNORMAL)
	if cfg.HideWindow {
		show = windows.SW_HIDE
	}

	return windows.ShellExecute(0, verb, file, params, dir, show)
}
