package elevate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequested(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"empty", nil, false},
		{"absent", []string{"app", "--debug"}, false},
		{"present", []string{"app", "--elevate"}, true},
		{"only marker", []string{"--elevate"}, true},
		{"substring does not count", []string{"--elevate-now"}, false},
		{"value-carrying look-alike does not count", []string{"--elevate=yes"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Requested(tt.args))
		})
	}
}

func TestStrip(t *testing.T) {
	got := Strip([]string{"--elevate", "app", "--elevate", "--elevated-thing"})

	require.Equal(t, []string{"app", "--elevated-thing"}, got)
}

func TestRelaunch_StripsMarkerAndIssuesOneRequest(t *testing.T) {
	var gotExe, gotArgs string
	calls := 0
	deps := Deps{
		Executable: func() (string, error) { return "/usr/local/bin/lk", nil },
		Request: func(exe, argString string) error {
			calls++
			gotExe, gotArgs = exe, argString
			return nil
		},
	}

	err := Relaunch([]string{"app", "--elevate", "--debug"}, deps)

	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, "/usr/local/bin/lk", gotExe)
	require.Equal(t, "app --debug", gotArgs)
}

func TestRelaunch_ExecutableLookupFailure(t *testing.T) {
	deps := Deps{
		Executable: func() (string, error) { return "", errors.New("no proc") },
		Request: func(exe, argString string) error {
			t.Fatal("request must not be issued")
			return nil
		},
	}

	err := Relaunch([]string{"--elevate"}, deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "locate executable")
}

func TestRelaunch_RequestFailureSurfaces(t *testing.T) {
	reqErr := errors.New("denied")
	deps := Deps{
		Executable: func() (string, error) { return "/bin/lk", nil },
		Request:    func(string, string) error { return reqErr },
	}

	err := Relaunch([]string{"--elevate"}, deps)

	require.ErrorIs(t, err, reqErr)
}
