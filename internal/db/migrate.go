package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent so the whole slice can be re-run against an
// existing database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv_records (
		namespace TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
