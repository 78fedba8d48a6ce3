//go:build !windows

package args

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestExpandEnv(t *testing.T) {
	env := map[string]string{
		"HOME": "/home/u",
		"A":    "x",
		"a":    "lower",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "hello", "hello"},
		{"simple reference", "$HOME/bin", "/home/u/bin"},
		{"braced reference", "${HOME}dir", "/home/udir"},
		{"unresolved kept verbatim", "$NOPE/x", "$NOPE/x"},
		{"unresolved braced kept verbatim", "${NOPE}", "${NOPE}"},
		{"case sensitive", "$a", "lower"},
		{"bare dollar", "cost: $", "cost: $"},
		{"dollar before punctuation", "$/path", "$/path"},
		{"adjacent references", "$A$A", "xx"},
		{"unterminated brace kept verbatim", "${HOME", "${HOME"},
		{"empty braces kept verbatim", "${}", "${}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, expandEnv(tt.input, lookupFrom(env)))
		})
	}
}
