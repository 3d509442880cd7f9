package postgres

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables the application needs if they do not
// exist yet. Statements are idempotent so the server can run this on
// every boot.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			date DATE NOT NULL,
			start_time TEXT,
			end_time TEXT,
			location TEXT,
			description TEXT,
			event_type TEXT NOT NULL DEFAULT 'academic'
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'student',
			name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
