package usage

import "fmt"

// MissingArgument is returned when a required positional argument is absent.
func MissingArgument(name string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("lk: missing required argument <%s>", name),
	}
}
