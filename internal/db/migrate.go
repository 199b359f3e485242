package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Raw date columns hold whatever the upstream source sent. They are parsed
// when a view is built, never on write.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sections (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS entities (
		id            TEXT PRIMARY KEY,
		kind          TEXT NOT NULL DEFAULT 'generic'
		              CHECK(kind IN ('ticket','project','task','lead','generic')),
		title         TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT '',
		section_id    TEXT REFERENCES sections(id) ON DELETE SET NULL,
		raw_start     TEXT,
		raw_date      TEXT,
		raw_created   TEXT,
		raw_scheduled TEXT,
		raw_end       TEXT,
		metadata      TEXT NOT NULL DEFAULT '{}',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entities_kind ON entities(kind)`,
	`CREATE INDEX IF NOT EXISTS idx_entities_section ON entities(section_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sections_order ON sections(order_index)`,

	// Add planned_days to entities
	`ALTER TABLE entities ADD COLUMN planned_days INTEGER NOT NULL DEFAULT 0`,
}
