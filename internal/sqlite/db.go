package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the catalog schema. The enum columns carry
// CHECK constraints mirroring the closed enumerations in the domain.
func (db *DB) RunMigrations() error {
	migration := `
CREATE TABLE IF NOT EXISTS projects (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    client TEXT NOT NULL,
    category TEXT NOT NULL CHECK(category IN ('maintenance', 'development', 'social', 'performance')),
    status TEXT NOT NULL CHECK(status IN ('inprogress', 'billed', 'awaitingpo', 'awaitingpayment', 'overdue')),
    billing_type TEXT NOT NULL CHECK(billing_type IN ('retainer', 'fixed')),
    value REAL NOT NULL CHECK(value > 0),
    start_date TEXT NOT NULL,
    end_date TEXT,
    team TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_id ON projects(id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
