// Package unlock implements the password gate that can be placed in front
// of a run. It is deliberately simple: a bounded interactive retry loop
// around a plain string comparison.
package unlock

import (
	"errors"
	"fmt"
)

const maxAttempts = 3

// ErrAuthorizationFailed is returned after three consecutive mismatches.
var ErrAuthorizationFailed = errors.New("authorization failed")

// Deps are the interactive collaborators of the gate.
type Deps struct {
	// ReadSecret blocks on one non-echoed line of input.
	ReadSecret func(prompt string) (string, error)
	// Warnf reports a mismatch on the error channel.
	Warnf func(format string, args ...any)
}

// Gate blocks until the operator supplies the configured secret or runs
// out of attempts. An empty secret disables the gate entirely: no prompt,
// immediate success.
//
// The comparison is exact (case-sensitive, byte-for-byte) equality with
// no hashing or timing safety. That is the documented contract of the
// password feature, preserved as-is; see DESIGN.md.
func Gate(secret string, deps Deps) error {
	if secret == "" {
		return nil
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		entered, err := deps.ReadSecret("Password: ")
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		if entered == secret {
			return nil
		}
		if left := maxAttempts - attempt; left > 0 {
			noun := "attempts"
			if left == 1 {
				noun = "attempt"
			}
			deps.Warnf("%d %s left", left, noun)
		}
	}

	return ErrAuthorizationFailed
}
