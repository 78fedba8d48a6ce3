package dispatchers

import (
	"strconv"
	"strings"
)

// ParsedFlags provides typed access to command-line flags.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.raw {
		if flag == name {
			return true
		}
	}
	return false
}

// String returns the value of the first occurrence of a flag, or
// defaultVal if not present. Flags carry values as --flag=value.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	for _, flag := range f.raw {
		if strings.HasPrefix(flag, prefix) {
			return strings.TrimPrefix(flag, prefix)
		}
	}
	return defaultVal
}

// Strings returns the values of every occurrence of a flag, in order.
// Repeatable flags (--args, --split) accumulate.
func (f *ParsedFlags) Strings(name string) []string {
	prefix := name + "="
	var values []string
	for _, flag := range f.raw {
		if strings.HasPrefix(flag, prefix) {
			values = append(values, strings.TrimPrefix(flag, prefix))
		}
	}
	return values
}

// Int returns the integer value of a flag, or defaultVal if not present.
// A present but unparsable value is reported through ok=false so callers
// can reject it instead of silently falling back.
func (f *ParsedFlags) Int(name string, defaultVal int) (int, bool) {
	str := f.String(name, "")
	if str == "" {
		return defaultVal, true
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal, false
	}
	return n, true
}
