package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags_Has(t *testing.T) {
	flags := NewParsedFlags([]string{"--debug", "--type=mi"})

	require.True(t, flags.Has("--debug"))
	require.False(t, flags.Has("--type")) // value-carrying, not bare
	require.False(t, flags.Has("--pause"))
}

func TestParsedFlags_String(t *testing.T) {
	flags := NewParsedFlags([]string{"--type=mir", "--separator=,"})

	require.Equal(t, "mir", flags.String("--type", "si"))
	require.Equal(t, ",", flags.String("--separator", " "))
	require.Equal(t, "fallback", flags.String("--quote", "fallback"))
}

func TestParsedFlags_StringFirstOccurrenceWins(t *testing.T) {
	flags := NewParsedFlags([]string{"--type=mi", "--type=si"})

	require.Equal(t, "mi", flags.String("--type", ""))
}

func TestParsedFlags_StringsAccumulateInOrder(t *testing.T) {
	flags := NewParsedFlags([]string{"--args=a", "--split=;", "--args=b"})

	require.Equal(t, []string{"a", "b"}, flags.Strings("--args"))
	require.Equal(t, []string{";"}, flags.Strings("--split"))
	require.Empty(t, flags.Strings("--quote"))
}

func TestParsedFlags_StringsKeepEmptyValues(t *testing.T) {
	flags := NewParsedFlags([]string{"--args="})

	require.Equal(t, []string{""}, flags.Strings("--args"))
}

func TestParsedFlags_Int(t *testing.T) {
	flags := NewParsedFlags([]string{"--delay=250", "--limit=abc"})

	n, ok := flags.Int("--delay", 0)
	require.True(t, ok)
	require.Equal(t, 250, n)

	_, ok = flags.Int("--limit", 0)
	require.False(t, ok)

	n, ok = flags.Int("--missing", 7)
	require.True(t, ok)
	require.Equal(t, 7, n)
}
