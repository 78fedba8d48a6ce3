// Package cli declares the command tree: the flag vocabulary, positional
// argument specs and the binding of each node to its action.
package cli

import (
	"github.com/launchkit-tools/cli/internal/actions"
	configaction "github.com/launchkit-tools/cli/internal/actions/config"
	historyaction "github.com/launchkit-tools/cli/internal/actions/history"
	"github.com/launchkit-tools/cli/internal/actions/launching"
	"github.com/launchkit-tools/cli/internal/dispatchers"
)

// BuildTree constructs the full command tree. The root node itself is the
// launcher, so `lk <target>` works without a subcommand; the named
// children take precedence over targets of the same name.
func BuildTree() *dispatchers.DispatchNode {
	root := &dispatchers.DispatchNode{
		Name:    "lk",
		Path:    []string{},
		Summary: "Launch a target with transformed arguments",
		Usage:   "lk <target> [args...] [flags] | lk <command>",
		Flags:   append(append([]dispatchers.FlagDescriptor{}, GlobalFlags...), LaunchFlags...),
		Args:    LaunchArgs,
		Action:  launching.Launch,
	}

	root.Children = map[string]*dispatchers.DispatchNode{
		"history": {
			Name:    "history",
			Path:    []string{"history"},
			Summary: "Show recorded launches",
			Usage:   "lk history [--limit=<n>] [--interactive]",
			Flags:   HistoryFlags,
			Action:  historyaction.List,
		},
		"config": {
			Name:    "config",
			Path:    []string{"config"},
			Summary: "Read and write the launcher defaults",
			Usage:   "lk config <get|set|list>",
			Children: map[string]*dispatchers.DispatchNode{
				"get": {
					Name:    "get",
					Path:    []string{"config", "get"},
					Summary: "Print one setting",
					Usage:   "lk config get <key>",
					Args:    ConfigGetArgs,
					Action:  configaction.Get,
				},
				"set": {
					Name:    "set",
					Path:    []string{"config", "set"},
					Summary: "Update one setting",
					Usage:   "lk config set <key> <value>",
					Args:    ConfigSetArgs,
					Action:  configaction.Set,
				},
				"list": {
					Name:    "list",
					Path:    []string{"config", "list"},
					Summary: "Print every setting",
					Usage:   "lk config list",
					Action:  configaction.List,
				},
			},
		},
		"version": {
			Name:    "version",
			Path:    []string{"version"},
			Summary: "Print the binary version",
			Usage:   "lk version",
			Action:  actions.ShowVersion,
		},
	}

	return root
}
