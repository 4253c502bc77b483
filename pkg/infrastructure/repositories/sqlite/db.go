// Package sqlite provides the durable repository implementations backed by
// an embedded SQLite database. Every table carries a tenant_id column and
// every query filters on it, so a row outside the caller's tenant behaves
// exactly like a missing row.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection shared by the repositories
type DB struct {
	conn *sql.DB
	path string
}

// Open opens the database at the given path, creating parent directories as
// needed. WAL mode is enabled for concurrent reads.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &DB{conn: conn, path: path}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the path to the database file
func (db *DB) Path() string {
	return db.path
}

// Migrate applies all pending schema migrations
func (db *DB) Migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var currentVersion int
	row := db.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, `
			CREATE TABLE orders (
				id TEXT NOT NULL,
				tenant_id TEXT NOT NULL,
				part_number TEXT NOT NULL,
				planned_qty INTEGER NOT NULL,
				produced_qty INTEGER NOT NULL DEFAULT 0,
				status TEXT NOT NULL,
				created_at TEXT NOT NULL,
				actual_start TEXT,
				actual_end TEXT,
				PRIMARY KEY (tenant_id, id)
			);
			CREATE TABLE assignments (
				id TEXT NOT NULL,
				tenant_id TEXT NOT NULL,
				order_id TEXT NOT NULL,
				work_center_id TEXT NOT NULL,
				stage INTEGER NOT NULL,
				parallel INTEGER NOT NULL,
				position INTEGER NOT NULL,
				PRIMARY KEY (tenant_id, id)
			);
			CREATE INDEX idx_assignments_order ON assignments(tenant_id, order_id);
			CREATE TABLE work_orders (
				id TEXT NOT NULL,
				tenant_id TEXT NOT NULL,
				order_id TEXT NOT NULL,
				assignment_id TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL,
				planned_qty INTEGER NOT NULL,
				completed_qty INTEGER NOT NULL DEFAULT 0,
				actual_start TEXT,
				actual_end TEXT,
				PRIMARY KEY (tenant_id, id)
			);
			CREATE INDEX idx_work_orders_order ON work_orders(tenant_id, order_id);
			CREATE TABLE work_centers (
				id TEXT NOT NULL,
				tenant_id TEXT NOT NULL,
				name TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				PRIMARY KEY (tenant_id, id)
			);
		`},
		{2, `
			CREATE TABLE items (
				tenant_id TEXT NOT NULL,
				part_number TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				unit_of_measure TEXT NOT NULL DEFAULT '',
				PRIMARY KEY (tenant_id, part_number)
			);
			CREATE TABLE stock_entries (
				id TEXT NOT NULL,
				tenant_id TEXT NOT NULL,
				part_number TEXT NOT NULL,
				movement TEXT NOT NULL,
				quantity TEXT NOT NULL,
				reference TEXT NOT NULL DEFAULT '',
				posted_at TEXT NOT NULL,
				PRIMARY KEY (tenant_id, id)
			);
			CREATE INDEX idx_stock_part ON stock_entries(tenant_id, part_number);
		`},
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := db.conn.Exec(m.sql); err != nil {
			return fmt.Errorf("apply migration %d: %w", m.version, err)
		}
		if _, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
	}

	return nil
}

// timeToNull converts an optional timestamp to its stored representation
func timeToNull(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}

// nullToTime converts a stored timestamp back to an optional time
func nullToTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, fmt.Errorf("parse stored timestamp %q: %w", s.String, err)
	}
	return &t, nil
}
