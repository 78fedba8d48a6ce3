// Package options defines the validated, immutable input record for one
// launcher run and the parsing from command-line flags into it.
package options

import (
	"time"

	"github.com/launchkit-tools/cli/internal/dispatchers"
	"github.com/launchkit-tools/cli/internal/usage"
)

// RuntimeFlags are the independent behavior toggles for a run.
type RuntimeFlags struct {
	Debug  bool // dry run: skip the target check, launch nothing
	Expand bool // expand environment references in raw arguments
	Shell  bool // launch through the host shell instead of direct execution
	Pause  bool // block on a line read after the launch loop
	Hide   bool // start launches without a visible window
}

// StreamFlags select which standard streams are forced to UTF-8
// transcoding. Setting one implies redirecting that stream.
type StreamFlags struct {
	Input  bool
	Output bool
	Error  bool
}

// LaunchOptions is the input record for one run. It is constructed once
// from parsed flags and consumed read-only by every component.
type LaunchOptions struct {
	Target    string
	RawArgs   []string
	WorkDir   string
	Verb      Verb
	Mode      Mode
	Flags     RuntimeFlags
	Streams   StreamFlags
	Delay     time.Duration
	Secret    string
	Separator string
	Splits    []string
	Quote     string
}

// Defaults carries the config-backed fallbacks applied when a flag is absent.
type Defaults struct {
	Separator string
	DelayMS   int
}

// FromFlags builds LaunchOptions from the positional arguments and parsed
// flags of a launch invocation. positional[0] is the target; any further
// positional tokens and every --args occurrence become raw arguments, in
// that order.
func FromFlags(positional []string, flags *dispatchers.ParsedFlags, defaults Defaults) (LaunchOptions, error) {
	if len(positional) == 0 {
		return LaunchOptions{}, usage.MissingArgument("target")
	}

	mode, err := ParseMode(flags.String("--type", string(SingleInstance)))
	if err != nil {
		return LaunchOptions{}, usage.InvalidMode(flags.String("--type", ""))
	}

	verb, err := ParseVerb(flags.String("--verb", ""))
	if err != nil {
		return LaunchOptions{}, usage.InvalidVerb(flags.String("--verb", ""))
	}

	delayMS, ok := flags.Int("--delay", defaults.DelayMS)
	if !ok {
		return LaunchOptions{}, usage.InvalidValue("--delay", "expected a number of milliseconds")
	}
	if delayMS < 0 {
		return LaunchOptions{}, usage.InvalidValue("--delay", "delay cannot be negative")
	}

	separator := flags.String("--separator", defaults.Separator)
	if separator == "" {
		separator = " "
	}

	raw := append([]string(nil), positional[1:]...)
	raw = append(raw, flags.Strings("--args")...)

	return LaunchOptions{
		Target:    positional[0],
		RawArgs:   raw,
		WorkDir:   flags.String("--workdir", ""),
		Verb:      verb,
		Mode:      mode,
		Flags: RuntimeFlags{
			Debug:  flags.Has("--debug"),
			Expand: flags.Has("--expand"),
			Shell:  flags.Has("--shell"),
			Pause:  flags.Has("--pause"),
			Hide:   flags.Has("--hide"),
		},
		Streams: StreamFlags{
			Input:  flags.Has("--unicode-in"),
			Output: flags.Has("--unicode-out"),
			Error:  flags.Has("--unicode-err"),
		},
		Delay:     time.Duration(delayMS) * time.Millisecond,
		Secret:    flags.String("--password", ""),
		Separator: separator,
		Splits:    flags.Strings("--split"),
		Quote:     flags.String("--quote", ""),
	}, nil
}
