package cli

import "github.com/launchkit-tools/cli/internal/dispatchers"

// GlobalFlags are accepted by every command.
var GlobalFlags = []dispatchers.FlagDescriptor{
	{
		Names:       []string{"--help", "-h"},
		Description: "Show help for the command",
		Scope:       dispatchers.FlagScopeGlobal,
	},
	{
		Names:       []string{"--no-color"},
		Description: "Disable colored output",
		Scope:       dispatchers.FlagScopeGlobal,
	},
}

// LaunchFlags are the flags of the root launch command.
var LaunchFlags = []dispatchers.FlagDescriptor{
	{
		Names:       []string{"--args"},
		ValueHint:   "<string>",
		Description: "Argument for the target; repeatable, order preserved",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--type"},
		ValueHint:   "<si|sir|mi|mir>",
		Description: "Instance mode (default si)",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--verb"},
		ValueHint:   "<verb>",
		Description: "Launch verb: open, edit, find, print, properties or runas; the target existence check is skipped",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--workdir"},
		ValueHint:   "<dir>",
		Description: "Working directory for the launched process",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--delay"},
		ValueHint:   "<ms>",
		Description: "Blocking delay between consecutive launches",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--separator"},
		ValueHint:   "<string>",
		Description: "Joining separator for single-instance modes",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--split"},
		ValueHint:   "<delim>",
		Description: "Delimiter to split raw arguments on; repeatable",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--quote"},
		ValueHint:   "<mark>",
		Description: "Quotation mark wrapped around reorganized arguments",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--password"},
		ValueHint:   "<secret>",
		Description: "Require this password before launching (3 attempts)",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--debug"},
		Description: "Dry run: print planned launches, spawn nothing",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--expand"},
		Description: "Expand environment references in raw arguments",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--shell"},
		Description: "Launch through the host shell; the target may be a builtin, so the existence check is skipped",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--pause"},
		Description: "Wait for enter after the launch loop",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--hide"},
		Description: "Start launches without a visible window",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--unicode-in"},
		Description: "Force UTF-8 transcoding on the child's standard input",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--unicode-out"},
		Description: "Force UTF-8 transcoding on the child's standard output",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--unicode-err"},
		Description: "Force UTF-8 transcoding on the child's standard error",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--elevate"},
		Description: "Relaunch with elevated privileges, then exit",
		Scope:       dispatchers.FlagScopeLocal,
	},
}

// HistoryFlags are the flags of the history command.
var HistoryFlags = []dispatchers.FlagDescriptor{
	{
		Names:       []string{"--limit"},
		ValueHint:   "<n>",
		Description: "Number of runs to show (default 20, 0 for all)",
		Scope:       dispatchers.FlagScopeLocal,
	},
	{
		Names:       []string{"--interactive", "-i"},
		Description: "Browse history in an interactive table",
		Scope:       dispatchers.FlagScopeLocal,
	},
}
