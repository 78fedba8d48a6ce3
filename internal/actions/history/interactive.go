package history

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/launchkit-tools/cli/internal/history"
)

var browseFrame = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("8"))

// browseModel is the interactive history browser. It wraps a read-only
// table; q, esc or ctrl+c leave it.
type browseModel struct {
	table table.Model
}

func newBrowseModel(runs []history.Run) browseModel {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Mode", Width: 4},
		{Title: "Target", Width: 28},
		{Title: "Args", Width: 34},
		{Title: "OK", Width: 4},
		{Title: "Fail", Width: 4},
	}

	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, table.Row{
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Mode,
			r.Target,
			truncate(r.Args, 34),
			strconv.Itoa(r.Spawned),
			strconv.Itoa(r.Failed),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return browseModel{table: t}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Keep room for the frame and the footer line.
		if h := msg.Height - 4; h > 3 {
			m.table.SetHeight(h)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	return browseFrame.Render(m.table.View()) + "\n  q: quit\n"
}

func browse(runs []history.Run, deps Deps) error {
	if err := deps.RunProgram(newBrowseModel(runs)); err != nil {
		return fmt.Errorf("history browser: %w", err)
	}
	return nil
}
