package dispatchers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/launchkit-tools/cli/internal/ui/style"
)

// HelpAction returns a command that renders help for the given node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(_ []string, _ *ParsedFlags) error {
		fmt.Print(RenderHelp(node, root))
		return nil
	}
}

// RenderHelp builds the help text for a node: usage line, summary,
// positional arguments, subcommands and flags (local first, then global).
func RenderHelp(node *DispatchNode, root *DispatchNode) string {
	var b strings.Builder

	if node.Usage != "" {
		b.WriteString(style.Header("Usage:") + " " + node.Usage + "\n")
	}
	if node.Summary != "" {
		b.WriteString("\n" + node.Summary + "\n")
	}

	if len(node.Args) > 0 {
		b.WriteString("\n" + style.Header("Arguments:") + "\n")
		for _, a := range node.Args {
			name := "<" + a.Name + ">"
			if !a.Required {
				name = "[" + a.Name + "]"
			}
			b.WriteString(fmt.Sprintf("  %-14s %s\n", name, a.Description))
		}
	}

	if len(node.Children) > 0 {
		b.WriteString("\n" + style.Header("Commands:") + "\n")
		names := make([]string, 0, len(node.Children))
		for name := range node.Children {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %-14s %s\n", name, node.Children[name].Summary))
		}
	}

	writeFlags(&b, "Flags:", node.Flags)
	if node != root {
		writeFlags(&b, "Global flags:", root.Flags)
	}

	return b.String()
}

func writeFlags(b *strings.Builder, header string, flags []FlagDescriptor) {
	if len(flags) == 0 {
		return
	}
	b.WriteString("\n" + style.Header(header) + "\n")
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name += "=" + f.ValueHint
		}
		if len(name) <= 22 {
			b.WriteString(fmt.Sprintf("  %-22s %s\n", name, f.Description))
		} else {
			b.WriteString("  " + name + "\n" + strings.Repeat(" ", 25) + f.Description + "\n")
		}
	}
}
