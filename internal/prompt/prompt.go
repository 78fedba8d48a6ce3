// Package prompt wraps the two blocking interactive reads the launcher
// performs: the non-echoed password prompt and the end-of-run pause.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// All line reads share one buffered reader. A prompt may leave
// already-entered lines sitting in the buffer; a fresh reader per call
// would discard them, and with them any remaining retry input on a
// non-TTY stdin.
var (
	stdinOnce sync.Once
	stdinBuf  *bufio.Reader
)

func stdin() *bufio.Reader {
	stdinOnce.Do(func() {
		stdinBuf = bufio.NewReader(os.Stdin)
	})
	return stdinBuf
}

// ReadSecret prints promptText on stderr and reads one line without echo.
// Falls back to a plain buffered read when stdin is not a terminal
// (pipes, tests).
func ReadSecret(promptText string) (string, error) {
	fmt.Fprint(os.Stderr, promptText)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		defer fmt.Fprintln(os.Stderr)
		b, err := term.ReadPassword(fd)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	return readLine()
}

// ReadLine prints promptText on stderr and blocks until the operator
// presses enter.
func ReadLine(promptText string) (string, error) {
	fmt.Fprint(os.Stderr, promptText)
	return readLine()
}

func readLine() (string, error) {
	line, err := stdin().ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
