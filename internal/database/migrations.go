package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered schema history, embedded so a deployment is a
// single binary.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_ingest_sessions",
		SQL: `
			CREATE TABLE IF NOT EXISTS ingest_sessions (
				id TEXT PRIMARY KEY,
				created_at TEXT NOT NULL,
				centers_file TEXT NOT NULL DEFAULT '',
				rotations_file TEXT NOT NULL DEFAULT '',
				metrics_file TEXT NOT NULL DEFAULT '',
				frame_count INTEGER NOT NULL DEFAULT 0,
				joint_count INTEGER NOT NULL DEFAULT 0,
				duration_seconds REAL NOT NULL DEFAULT 0,
				dropped_rows INTEGER NOT NULL DEFAULT 0,
				repaired_quaternions INTEGER NOT NULL DEFAULT 0,
				using_fallback INTEGER NOT NULL DEFAULT 0,
				mean_bone_length REAL NOT NULL DEFAULT 0
			)
		`,
	},
	{
		Version: 2,
		Name:    "index_ingest_sessions_created_at",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_ingest_sessions_created_at
			ON ingest_sessions(created_at)
		`,
	},
}

// Migrate applies all pending migrations in version order.
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}

// initMigrationsTable creates the migrations tracking table
func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of applied migration versions
func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// applyMigration runs one migration and records it in a transaction.
func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
