// Package migrations versions the launch-history schema. Every embedded
// sql/NN_description.sql file is one schema step; Run applies the steps
// newer than the recorded version, each in its own transaction.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var schemaFS embed.FS

type step struct {
	version     int
	description string
	ddl         string
}

const versionTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Run brings the history schema up to the newest embedded step.
func Run(db *sql.DB) error {
	steps, err := loadSteps()
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return nil
	}

	current, err := CurrentVersion(db)
	if err != nil {
		return err
	}

	for _, s := range steps {
		if s.version <= current {
			continue
		}
		if err := applyStep(db, s); err != nil {
			return fmt.Errorf("history schema step %02d_%s: %w", s.version, s.description, err)
		}
	}
	return nil
}

// CurrentVersion returns the highest applied schema version, 0 for a
// fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(versionTable); err != nil {
		return 0, fmt.Errorf("history schema version table: %w", err)
	}

	var v sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&v); err != nil {
		return 0, fmt.Errorf("history schema version: %w", err)
	}
	if !v.Valid {
		return 0, nil
	}
	return int(v.Int64), nil
}

func loadSteps() ([]step, error) {
	entries, err := schemaFS.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("history schema files: %w", err)
	}

	steps := make([]step, 0, len(entries))
	seen := make(map[int]string)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		version, description, err := parseFilename(name)
		if err != nil {
			return nil, fmt.Errorf("history schema file %s: %w", name, err)
		}
		if other, dup := seen[version]; dup {
			return nil, fmt.Errorf("history schema version %d declared twice (%s, %s)", version, other, description)
		}
		seen[version] = description

		ddl, err := schemaFS.ReadFile("sql/" + name)
		if err != nil {
			return nil, fmt.Errorf("history schema file %s: %w", name, err)
		}

		steps = append(steps, step{version: version, description: description, ddl: string(ddl)})
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].version < steps[j].version })
	return steps, nil
}

// parseFilename splits "NN_description.sql" into its version number and
// description.
func parseFilename(name string) (int, string, error) {
	base, _ := strings.CutSuffix(name, ".sql")
	prefix, description, ok := strings.Cut(base, "_")
	if !ok {
		return 0, "", fmt.Errorf("want NN_description.sql")
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", fmt.Errorf("bad version prefix %q", prefix)
	}
	return version, description, nil
}

func applyStep(db *sql.DB, s step) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(s.ddl); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		s.version, s.description,
	); err != nil {
		return err
	}
	return tx.Commit()
}
