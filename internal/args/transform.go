// Package args implements the argument-reorganization pipeline: expansion,
// splitting, quotation wrapping, and the mode-driven selection and joining
// that produces the per-launch argument strings.
//
// Everything here is pure: same input, same output, no I/O.
package args

import (
	"strings"

	"github.com/launchkit-tools/cli/internal/options"
)

// Transformed holds the two derived argument sequences for one run.
//
// Process is what the launch loop consumes: empty (launch once with no
// argument string), one element (single-instance, everything joined), or
// one element per launch (multi-instance).
type Transformed struct {
	Reorganized []string
	Process     []string
}

// Transform computes both derived sequences from the raw arguments and
// the run options. It is recomputed once per run and never mutated after.
func Transform(raw []string, opts options.LaunchOptions) Transformed {
	reorganized := Reorganize(raw, opts.Flags.Expand, opts.Splits, opts.Quote)

	selected := raw
	if opts.Mode.UsesReorganized() {
		selected = reorganized
	}

	var process []string
	switch {
	case len(selected) == 0:
		// No arguments: the orchestrator still launches the target once.
	case opts.Mode.JoinsIntoOne():
		process = []string{strings.Join(selected, opts.Separator)}
	default:
		process = append([]string(nil), selected...)
	}

	return Transformed{Reorganized: reorganized, Process: process}
}

// Reorganize applies, per raw argument and in order: environment
// expansion, delimiter splitting, and quotation wrapping.
//
// Quotation note: when a mark is configured, every element accumulated so
// far is wrapped again on each raw-argument iteration, so with N raw
// arguments the first argument's elements end up wrapped N times. That
// repetition is shipped behavior and callers depend on the exact output;
// see the open-questions section of DESIGN.md before changing it to a
// single pass.
func Reorganize(raw []string, expand bool, splits []string, quote string) []string {
	out := make([]string, 0, len(raw))
	for _, arg := range raw {
		if expand {
			arg = ExpandEnv(arg)
		}
		if len(splits) == 0 {
			out = append(out, arg)
		} else {
			out = append(out, splitAny(arg, splits)...)
		}
		if quote != "" {
			for i := range out {
				out[i] = quote + out[i] + quote
			}
		}
	}
	return out
}
