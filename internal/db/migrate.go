package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. The statement list only grows; each
// statement is idempotent, so re-running the full list on an existing
// database is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS subject_presets (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS preset_subjects (
		preset_id TEXT NOT NULL REFERENCES subject_presets(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		name      TEXT NOT NULL,
		priority  REAL NOT NULL CHECK(priority > 0),
		PRIMARY KEY (preset_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_preset_subjects_preset ON preset_subjects(preset_id)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id                       TEXT PRIMARY KEY DEFAULT 'default',
		work_min                 INTEGER NOT NULL DEFAULT 25 CHECK(work_min > 0),
		short_break_min          INTEGER NOT NULL DEFAULT 5  CHECK(short_break_min > 0),
		long_break_min           INTEGER NOT NULL DEFAULT 15 CHECK(long_break_min > 0),
		cycles_before_long_break INTEGER NOT NULL DEFAULT 4  CHECK(cycles_before_long_break >= 1)
	)`,

	// Seed the default profile with the classic 25/5/15 cadence.
	`INSERT OR IGNORE INTO user_profile (id) VALUES ('default')`,
}
