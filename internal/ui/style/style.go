// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss styles for plain console
// output are created. All styling is semantic (Success, Warning, Error,
// etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	// Pre-created styles for performance.
	// These are only used when enabled is true.
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init initializes the style package with the given enabled state.
// It also respects the NO_COLOR and LK_NO_COLOR environment variables;
// if either is set (to any non-empty value), styling is disabled
// regardless of the enabled parameter.
//
// This function should be called once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("LK_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		// Force lipgloss to use ANSI256 colors regardless of TTY detection.
		lipgloss.SetColorProfile(termenv.ANSI256)

		successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
		mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		headerStyle = lipgloss.NewStyle().Bold(true)
	}
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}
