package usage

import "fmt"

// InvalidMode is returned when the --type value is not one of the four
// instance-mode codes.
func InvalidMode(value string) *Error {
	return &Error{
		Kind:    ErrInvalidMode,
		Message: fmt.Sprintf("lk: invalid instance type '%s' (expected si, sir, mi or mir)", value),
	}
}

// InvalidVerb is returned when the --verb value is not a recognized verb.
func InvalidVerb(value string) *Error {
	return &Error{
		Kind:    ErrInvalidVerb,
		Message: fmt.Sprintf("lk: invalid verb '%s' (expected open, edit, find, print, properties or runas)", value),
	}
}

// InvalidValue is returned when a flag carries a value that cannot be used.
func InvalidValue(flag, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("lk: invalid value for %s: %s", flag, reason),
	}
}

// TargetNotFound is returned when the launch target does not exist on disk.
func TargetNotFound(path string) *Error {
	return &Error{
		Kind:    ErrTargetNotFound,
		Message: fmt.Sprintf("lk: target '%s' does not exist", path),
	}
}

// AuthorizationFailed is returned after the password gate runs out of attempts.
func AuthorizationFailed() *Error {
	return &Error{
		Kind:    ErrAuthorization,
		Message: "lk: authorization failed",
	}
}

// InvalidConfigKey is returned when a config command names an unknown key.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("lk: unknown config key '%s'", key),
	}
}
