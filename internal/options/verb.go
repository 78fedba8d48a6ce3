package options

import "fmt"

// Verb is a shell-level launch directive, distinct from the argument
// string handed to the target.
type Verb string

const (
	VerbNone       Verb = ""
	VerbOpen       Verb = "open"
	VerbEdit       Verb = "edit"
	VerbFind       Verb = "find"
	VerbPrint      Verb = "print"
	VerbProperties Verb = "properties"
	VerbRunAs      Verb = "runas"
)

// ParseVerb validates a verb string. The empty string means "no verb".
func ParseVerb(s string) (Verb, error) {
	switch Verb(s) {
	case VerbNone, VerbOpen, VerbEdit, VerbFind, VerbPrint, VerbProperties, VerbRunAs:
		return Verb(s), nil
	default:
		return "", fmt.Errorf("invalid verb: %s", s)
	}
}
