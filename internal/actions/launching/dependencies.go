package launching

import (
	"database/sql"
	"io/fs"
	"os"
	"time"

	"github.com/launchkit-tools/cli/internal/config"
	"github.com/launchkit-tools/cli/internal/history"
	"github.com/launchkit-tools/cli/internal/paths"
	"github.com/launchkit-tools/cli/internal/prompt"
	"github.com/launchkit-tools/cli/internal/report"
	"github.com/launchkit-tools/cli/internal/spawn"
)

// Deps contains all external dependencies of the launch action. Tests
// inject fakes; production uses DefaultDeps.
type Deps struct {
	Stat         func(name string) (fs.FileInfo, error)
	ReadSecret   func(prompt string) (string, error)
	ReadLine     func(prompt string) (string, error)
	Spawn        func(target, argString string, cfg spawn.Config) error
	Sleep        func(d time.Duration)
	Reporter     *report.Reporter
	LoadSettings func() (config.Settings, error)
	OpenHistory  func() (*sql.DB, error)
	RecordRun    func(db *sql.DB, r history.Run) error
	Now          func() time.Time
}

// DefaultDeps returns production dependencies.
func DefaultDeps() Deps {
	return Deps{
		Stat:       os.Stat,
		ReadSecret: prompt.ReadSecret,
		ReadLine:   prompt.ReadLine,
		Spawn:      spawn.Run,
		Sleep:      time.Sleep,
		Reporter:   report.New(),
		LoadSettings: func() (config.Settings, error) {
			return config.Load(paths.ConfigFilePath())
		},
		OpenHistory: func() (*sql.DB, error) {
			return history.Open(paths.HistoryDBPath())
		},
		RecordRun: history.Insert,
		Now:       time.Now,
	}
}
