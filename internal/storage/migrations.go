package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Migration represents a database migration.
type Migration struct {
	Version int
	Name    string
	Up      string
}

// migrations holds all database migrations in order.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "initial_schema",
		Up: `
			-- Projects table
			CREATE TABLE IF NOT EXISTS projects (
				id TEXT PRIMARY KEY,
				title TEXT NOT NULL,
				company_name TEXT NOT NULL,
				description TEXT,
				compensation REAL NOT NULL DEFAULT 0,
				currency TEXT NOT NULL DEFAULT 'USD',
				compensation_rate TEXT NOT NULL,
				start_date DATETIME NOT NULL,
				end_date DATETIME NOT NULL,
				cumulated_compensation REAL NOT NULL DEFAULT 0
			);

			-- Tasks table. project_id is a plain identifier, not a
			-- foreign key: task creation does not verify the project.
			CREATE TABLE IF NOT EXISTS tasks (
				id TEXT PRIMARY KEY,
				project_id TEXT NOT NULL,
				description TEXT NOT NULL,
				start_date DATETIME NOT NULL,
				end_date DATETIME,
				due_date DATETIME NOT NULL
			);

			-- Payments table
			CREATE TABLE IF NOT EXISTS payments (
				id TEXT PRIMARY KEY,
				project_id TEXT NOT NULL,
				amount REAL NOT NULL,
				currency TEXT NOT NULL DEFAULT 'USD',
				date DATETIME NOT NULL
			);

			-- Indexes
			CREATE INDEX IF NOT EXISTS idx_projects_start_date ON projects(start_date);
			CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);
			CREATE INDEX IF NOT EXISTS idx_tasks_start_date ON tasks(start_date);
			CREATE INDEX IF NOT EXISTS idx_payments_project ON payments(project_id);
			CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(date);
		`,
	},
}

// runMigrations applies all pending migrations.
func runMigrations(db *sql.DB) error {
	// Create migrations table if not exists
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("get current version: %w", err)
	}

	// Apply pending migrations
	for _, m := range migrations {
		if m.Version <= currentVersion {
			continue
		}

		// Run migration in transaction
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin transaction for migration %d: %w", m.Version, err)
		}

		_, err = tx.Exec(m.Up)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("execute migration %d (%s): %w", m.Version, m.Name, err)
		}

		_, err = tx.Exec(
			"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)",
			m.Version, m.Name, time.Now(),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}
