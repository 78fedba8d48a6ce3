package args

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/launchkit-tools/cli/internal/options"
)

func optsWith(mode options.Mode, mutate func(*options.LaunchOptions)) options.LaunchOptions {
	o := options.LaunchOptions{
		Target:    "/usr/bin/app",
		Mode:      mode,
		Separator: " ",
	}
	if mutate != nil {
		mutate(&o)
	}
	return o
}

func TestReorganize_IdentityWithoutSplitOrQuote(t *testing.T) {
	raw := []string{"a", "b", "c"}

	got := Reorganize(raw, false, nil, "")

	require.Equal(t, raw, got)
}

func TestReorganize_SplitPreservesEmptySegments(t *testing.T) {
	got := Reorganize([]string{"a;;b"}, false, []string{";"}, "")

	require.Equal(t, []string{"a", "", "b"}, got)
}

func TestReorganize_MultipleDelimiters(t *testing.T) {
	got := Reorganize([]string{"a;b,c"}, false, []string{";", ","}, "")

	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestReorganize_QuoteRewrapsAccumulatedElements(t *testing.T) {
	// Each raw-argument iteration wraps everything accumulated so far, so
	// earlier elements pick up one extra layer per later raw argument.
	got := Reorganize([]string{"a", "b"}, false, nil, "'")

	require.Equal(t, []string{"''a''", "'b'"}, got)
}

func TestReorganize_QuoteSinglePassForOneArgument(t *testing.T) {
	got := Reorganize([]string{"a"}, false, nil, "\"")

	require.Equal(t, []string{"\"a\""}, got)
}

func TestReorganize_SplitThenQuote(t *testing.T) {
	got := Reorganize([]string{"a;b", "c"}, false, []string{";"}, "*")

	require.Equal(t, []string{"**a**", "**b**", "*c*"}, got)
}

func TestTransform_SingleInstanceJoinsWithSeparator(t *testing.T) {
	opts := optsWith(options.SingleInstance, func(o *options.LaunchOptions) {
		o.Separator = ","
	})

	got := Transform([]string{"a", "b"}, opts)

	require.Equal(t, []string{"a,b"}, got.Process)
}

func TestTransform_MultiInstanceOneLaunchPerArgument(t *testing.T) {
	got := Transform([]string{"a", "b"}, optsWith(options.MultiInstance, nil))

	require.Equal(t, []string{"a", "b"}, got.Process)
}

func TestTransform_ReorganizedModesConsumeReorganized(t *testing.T) {
	opts := optsWith(options.MultiInstanceReorganized, func(o *options.LaunchOptions) {
		o.Splits = []string{";"}
	})

	got := Transform([]string{"a;b", "c"}, opts)

	require.Equal(t, []string{"a", "b", "c"}, got.Reorganized)
	require.Equal(t, []string{"a", "b", "c"}, got.Process)
}

func TestTransform_RawModesIgnoreReorganized(t *testing.T) {
	opts := optsWith(options.MultiInstance, func(o *options.LaunchOptions) {
		o.Splits = []string{";"}
	})

	got := Transform([]string{"a;b", "c"}, opts)

	// Reorganized is still computed, but mi dispatches the raw sequence.
	require.Equal(t, []string{"a", "b", "c"}, got.Reorganized)
	require.Equal(t, []string{"a;b", "c"}, got.Process)
}

func TestTransform_EmptyRawYieldsEmptyProcess(t *testing.T) {
	for _, mode := range []options.Mode{
		options.SingleInstance,
		options.SingleInstanceReorganized,
		options.MultiInstance,
		options.MultiInstanceReorganized,
	} {
		got := Transform(nil, optsWith(mode, nil))

		require.Empty(t, got.Process, "mode %s", mode)
		require.Empty(t, got.Reorganized, "mode %s", mode)
	}
}

func TestTransform_SingleInstanceProcessLengthAtMostOne(t *testing.T) {
	inputs := [][]string{nil, {"a"}, {"a", "b"}, {"a", "b", "c"}}

	for _, raw := range inputs {
		got := Transform(raw, optsWith(options.SingleInstance, nil))

		require.LessOrEqual(t, len(got.Process), 1, "raw %v", raw)
	}
}

func TestTransform_Idempotent(t *testing.T) {
	opts := optsWith(options.MultiInstanceReorganized, func(o *options.LaunchOptions) {
		o.Splits = []string{";", ","}
		o.Quote = "'"
	})
	raw := []string{"a;b", "c,d", "e"}

	first := Transform(raw, opts)
	second := Transform(raw, opts)

	require.Equal(t, first, second)
	// The input slice is never mutated.
	require.Equal(t, []string{"a;b", "c,d", "e"}, raw)
}
