package options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/launchkit-tools/cli/internal/dispatchers"
	"github.com/launchkit-tools/cli/internal/usage"
)

func parse(t *testing.T, positional []string, rawFlags []string) (LaunchOptions, error) {
	t.Helper()
	flags := dispatchers.NewParsedFlags(rawFlags)
	return FromFlags(positional, flags, Defaults{Separator: " "})
}

func TestFromFlags_Minimal(t *testing.T) {
	opts, err := parse(t, []string{"/usr/bin/app"}, nil)

	require.NoError(t, err)
	require.Equal(t, "/usr/bin/app", opts.Target)
	require.Equal(t, SingleInstance, opts.Mode)
	require.Equal(t, VerbNone, opts.Verb)
	require.Empty(t, opts.RawArgs)
	require.Equal(t, " ", opts.Separator)
	require.Zero(t, opts.Delay)
}

func TestFromFlags_MissingTarget(t *testing.T) {
	_, err := parse(t, nil, nil)

	require.Error(t, err)
	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.ErrMissingArgument, ue.Kind)
}

func TestFromFlags_RawArgsOrder(t *testing.T) {
	// Positional arguments come first, then every --args occurrence in order.
	opts, err := parse(t,
		[]string{"/usr/bin/app", "p1", "p2"},
		[]string{"--args=f1", "--args=f2"},
	)

	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p2", "f1", "f2"}, opts.RawArgs)
}

func TestFromFlags_Modes(t *testing.T) {
	tests := []struct {
		value string
		want  Mode
	}{
		{"si", SingleInstance},
		{"sir", SingleInstanceReorganized},
		{"mi", MultiInstance},
		{"mir", MultiInstanceReorganized},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			opts, err := parse(t, []string{"app"}, []string{"--type=" + tt.value})

			require.NoError(t, err)
			require.Equal(t, tt.want, opts.Mode)
		})
	}
}

func TestFromFlags_InvalidMode(t *testing.T) {
	_, err := parse(t, []string{"app"}, []string{"--type=multi"})

	require.Error(t, err)
	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.ErrInvalidMode, ue.Kind)
	require.Equal(t, 2, ue.GetExitCode())
}

func TestFromFlags_Verbs(t *testing.T) {
	opts, err := parse(t, []string{"doc.pdf"}, []string{"--verb=print"})

	require.NoError(t, err)
	require.Equal(t, VerbPrint, opts.Verb)
}

func TestFromFlags_InvalidVerb(t *testing.T) {
	_, err := parse(t, []string{"app"}, []string{"--verb=launch"})

	require.Error(t, err)
	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.ErrInvalidVerb, ue.Kind)
}

func TestFromFlags_Delay(t *testing.T) {
	opts, err := parse(t, []string{"app"}, []string{"--delay=250"})

	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, opts.Delay)
}

func TestFromFlags_DelayUnparsable(t *testing.T) {
	_, err := parse(t, []string{"app"}, []string{"--delay=soon"})

	require.Error(t, err)
	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.ErrInvalidValue, ue.Kind)
}

func TestFromFlags_DelayNegative(t *testing.T) {
	_, err := parse(t, []string{"app"}, []string{"--delay=-5"})

	require.Error(t, err)
}

func TestFromFlags_ConfigDefaultsApply(t *testing.T) {
	flags := dispatchers.NewParsedFlags(nil)
	opts, err := FromFlags([]string{"app"}, flags, Defaults{Separator: ",", DelayMS: 100})

	require.NoError(t, err)
	require.Equal(t, ",", opts.Separator)
	require.Equal(t, 100*time.Millisecond, opts.Delay)
}

func TestFromFlags_EmptySeparatorFallsBackToSpace(t *testing.T) {
	flags := dispatchers.NewParsedFlags(nil)
	opts, err := FromFlags([]string{"app"}, flags, Defaults{})

	require.NoError(t, err)
	require.Equal(t, " ", opts.Separator)
}

func TestFromFlags_TogglesAndStreams(t *testing.T) {
	opts, err := parse(t, []string{"app"}, []string{
		"--debug", "--expand", "--shell", "--pause", "--hide",
		"--unicode-in", "--unicode-out", "--unicode-err",
		"--password=hunter2", "--workdir=/tmp", "--quote='",
		"--split=;", "--split=,",
	})

	require.NoError(t, err)
	require.True(t, opts.Flags.Debug)
	require.True(t, opts.Flags.Expand)
	require.True(t, opts.Flags.Shell)
	require.True(t, opts.Flags.Pause)
	require.True(t, opts.Flags.Hide)
	require.True(t, opts.Streams.Input)
	require.True(t, opts.Streams.Output)
	require.True(t, opts.Streams.Error)
	require.Equal(t, "hunter2", opts.Secret)
	require.Equal(t, "/tmp", opts.WorkDir)
	require.Equal(t, "'", opts.Quote)
	require.Equal(t, []string{";", ","}, opts.Splits)
}
