package options

import "fmt"

// Mode is the instance-mode code controlling how raw arguments turn into
// launches. It answers two independent questions: does the launcher use
// the reorganized argument sequence or the raw one, and are the selected
// arguments joined into a single launch or dispatched one per launch.
type Mode string

const (
	// SingleInstance joins the raw arguments into one launch.
	SingleInstance Mode = "si"
	// SingleInstanceReorganized joins the reorganized arguments into one launch.
	SingleInstanceReorganized Mode = "sir"
	// MultiInstance dispatches one launch per raw argument.
	MultiInstance Mode = "mi"
	// MultiInstanceReorganized dispatches one launch per reorganized argument.
	MultiInstanceReorganized Mode = "mir"
)

// ParseMode validates an instance-mode code. The four codes are the
// complete vocabulary; everything else is a flag-level usage error.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case SingleInstance, SingleInstanceReorganized, MultiInstance, MultiInstanceReorganized:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid instance type: %s", s)
	}
}

// UsesReorganized reports whether launches consume the reorganized
// argument sequence rather than the raw one.
func (m Mode) UsesReorganized() bool {
	return m == SingleInstanceReorganized || m == MultiInstanceReorganized
}

// JoinsIntoOne reports whether the selected arguments are joined into a
// single launch rather than dispatched one per element.
func (m Mode) JoinsIntoOne() bool {
	return m == SingleInstance || m == SingleInstanceReorganized
}
