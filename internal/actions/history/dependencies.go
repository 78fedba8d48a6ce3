package history

import (
	"database/sql"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/launchkit-tools/cli/internal/history"
	"github.com/launchkit-tools/cli/internal/paths"
	"github.com/launchkit-tools/cli/internal/report"
)

// Deps contains all external dependencies of the history actions.
type Deps struct {
	OpenHistory func() (*sql.DB, error)
	ListRuns    func(db *sql.DB, limit int) ([]history.Run, error)
	Reporter    *report.Reporter
	RunProgram  func(model tea.Model) error
}

// DefaultDeps returns production dependencies.
func DefaultDeps() Deps {
	return Deps{
		OpenHistory: func() (*sql.DB, error) {
			return history.Open(paths.HistoryDBPath())
		},
		ListRuns: history.List,
		Reporter: report.New(),
		RunProgram: func(model tea.Model) error {
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
