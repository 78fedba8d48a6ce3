package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when a subcommand does not exist.
// Optional suggestions are appended as a "did you mean" hint.
func UnknownCommand(cmd string, suggestions ...string) *Error {
	msg := fmt.Sprintf("lk: unknown command '%s'", cmd)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("\n\nDid you mean: %s?", strings.Join(suggestions, ", "))
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
