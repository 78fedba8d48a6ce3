package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/launchkit-tools/cli/internal/history"
	"github.com/launchkit-tools/cli/internal/history/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// SeedRuns inserts a slice of runs into the test database.
func SeedRuns(t *testing.T, db *sql.DB, runs []history.Run) {
	t.Helper()

	for _, run := range runs {
		err := history.Insert(db, run)
		require.NoError(t, err, "failed to seed run: %+v", run)
	}
}
