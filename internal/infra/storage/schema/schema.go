// Package schema creates the court tables in a local SQLite database.
// Production runs against the managed Postgres schema and never calls it.
package schema

import (
	"context"
	"database/sql"
	"fmt"
)

var sqliteStatements = []string{
	`CREATE TABLE IF NOT EXISTS tennis_courts (
		id               INTEGER PRIMARY KEY,
		title            TEXT,
		address          TEXT,
		available_dates  TEXT,
		lights           BOOLEAN,
		hitting_wall     BOOLEAN,
		pickleball_lined BOOLEAN,
		ball_machine     BOOLEAN,
		google_map_url   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS court_availability_snapshots (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		court_id        INTEGER NOT NULL,
		snapshot_date   TEXT NOT NULL,
		captured_at     TEXT NOT NULL,
		title           TEXT,
		address         TEXT,
		available_dates TEXT,
		google_map_url  TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_date ON court_availability_snapshots (snapshot_date)`,
}

// EnsureSQLite создает таблицы, если их нет
func EnsureSQLite(ctx context.Context, db *sql.DB) error {
	for _, stmt := range sqliteStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: ensure sqlite: %w", err)
		}
	}
	return nil
}
