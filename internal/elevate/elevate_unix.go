//go:build !windows

package elevate

import (
	"os"
	"os/exec"
	"strings"
)

// requestElevation re-runs the binary under sudo. The call blocks until
// the elevated instance finishes (sudo may need the terminal for its own
// password prompt), after which the caller exits anyway.
func requestElevation(exe, argString string) error {
	argv := []string{"sudo", "--", exe}
	if argString != "" {
		argv = append(argv, strings.Fields(argString)...)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
