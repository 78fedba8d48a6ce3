package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoadSteps_Embedded(t *testing.T) {
	steps, err := loadSteps()

	require.NoError(t, err)
	require.NotEmpty(t, steps)
	require.Equal(t, 1, steps[0].version)
	require.Equal(t, "create_runs", steps[0].description)
}

func TestParseFilename(t *testing.T) {
	version, description, err := parseFilename("02_add_column.sql")
	require.NoError(t, err)
	require.Equal(t, 2, version)
	require.Equal(t, "add_column", description)

	_, _, err = parseFilename("nodescription.sql")
	require.Error(t, err)

	_, _, err = parseFilename("xx_bad.sql")
	require.Error(t, err)
}

func TestRun_AppliesAndIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(db))

	version, err := CurrentVersion(db)
	require.NoError(t, err)
	require.GreaterOrEqual(t, version, 1)

	// Second run is a no-op.
	require.NoError(t, Run(db))

	again, err := CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, version, again)
}

func TestRun_CreatesRunsTable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Run(db))

	_, err := db.Exec(`INSERT INTO runs (id, target, mode, started_at)
		VALUES ('x', '/bin/a', 'si', '2026-08-23T10:00:00Z')`)
	require.NoError(t, err)
}

func TestCurrentVersion_FreshDatabaseIsZero(t *testing.T) {
	db := openTestDB(t)

	version, err := CurrentVersion(db)
	require.NoError(t, err)
	require.Zero(t, version)
}
