package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/launchkit-tools/cli/internal/cli"
	"github.com/launchkit-tools/cli/internal/config"
	"github.com/launchkit-tools/cli/internal/dispatchers"
	"github.com/launchkit-tools/cli/internal/elevate"
	"github.com/launchkit-tools/cli/internal/log"
	"github.com/launchkit-tools/cli/internal/paths"
	"github.com/launchkit-tools/cli/internal/ui/style"
	"github.com/launchkit-tools/cli/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "lk: fatal: %v\n", r)
			code = 1
		}
	}()

	// The elevation hop is decided before anything else runs. This process
	// only issues the relaunch request and exits; the marker is stripped so
	// the elevated instance runs normally.
	if elevate.Requested(args) {
		if err := elevate.Relaunch(args, elevate.DefaultDeps()); err != nil {
			fmt.Fprintf(os.Stderr, "lk: elevation failed: %v\n", err)
		}
		return 1
	}

	rawFlags := extractFlags(args)
	tokens := extractPositional(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	settings, settingsErr := config.Load(paths.ConfigFilePath())

	// Enable styling if stdout is a terminal and neither --no-color nor the
	// config toggle disables it
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	if settingsErr == nil && !settings.Color {
		enableColor = false
	}
	style.Init(enableColor)

	level := log.LevelWarn
	if settingsErr == nil {
		level = log.ParseLevel(settings.LogLevel)
	}
	if flags.Has("--debug") {
		level = log.LevelDebug
	}
	if err := log.Init(paths.LogFilePath(), level); err == nil {
		defer func() { _ = log.Close() }()
	}

	root := cli.BuildTree()

	res, err := dispatchers.Dispatch(root, tokens, flags)
	if err != nil {
		return reportError(err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		return reportError(err)
	}

	return res.ExitCode
}

func reportError(err error) int {
	fmt.Fprintln(os.Stderr, err.Error())
	if ue, ok := err.(*usage.Error); ok {
		return ue.GetExitCode()
	}
	return 1
}

func extractFlags(args []string) []string {
	var flags []string
	for _, a := range args {
		if len(a) > 0 && a[0] == '-' {
			flags = append(flags, a)
		}
	}
	return flags
}

func extractPositional(args []string) []string {
	var tokens []string
	for _, a := range args {
		if len(a) > 0 && a[0] != '-' {
			tokens = append(tokens, a)
		}
	}
	return tokens
}
