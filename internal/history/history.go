// Package history records completed runs in a local SQLite database.
// Recording is best effort: a history failure never fails a launch.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/launchkit-tools/cli/internal/history/migrations"
)

// Run is one recorded invocation of the launcher.
type Run struct {
	ID        string
	Target    string
	Mode      string
	Args      string // process arguments joined for display
	Spawned   int
	Failed    int
	StartedAt time.Time
}

// Open opens (creating if needed) the history database at path and runs
// any pending migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}

	return db, nil
}

// Insert records one run. A missing ID is assigned.
func Insert(db *sql.DB, r Run) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := db.Exec(
		`INSERT INTO runs (id, target, mode, args, spawned, failed, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Target, r.Mode, r.Args, r.Spawned, r.Failed,
		r.StartedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. limit <= 0 means no limit.
func List(db *sql.DB, limit int) ([]Run, error) {
	query := `SELECT id, target, mode, args, spawned, failed, started_at
	          FROM runs ORDER BY started_at DESC, id`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		if err := rows.Scan(&r.ID, &r.Target, &r.Mode, &r.Args, &r.Spawned, &r.Failed, &startedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}
