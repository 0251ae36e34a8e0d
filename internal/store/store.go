// Package store opens and prepares the SQLite database backing the item and
// sale repositories.
package store

import (
	_ "embed"
	"fmt"
	"net/url"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// DefaultBusyTimeout is the lock-contention wait applied when the caller does
// not configure one, in milliseconds.
const DefaultBusyTimeout = 5000

// Store owns the database handle shared by the repositories.
type Store struct {
	db *sqlx.DB
}

// Open creates or opens the SQLite database at the given path and applies the
// schema. Safe to call multiple times against the same file.
//
// The connection is configured with:
//   - BEGIN IMMEDIATE transactions, so a write transaction takes the database
//     lock at start and read-check-write sequences inside it cannot interleave
//   - WAL mode, so readers are not blocked during writes
//   - foreign key enforcement, which drives the sales ON DELETE CASCADE
//   - a busy timeout for lock contention
//
// SQLite supports one writer at a time; the pool is pinned to a single
// connection to avoid SQLITE_BUSY surprises.
func Open(path string, busyTimeout int) (*Store, error) {
	if busyTimeout <= 0 {
		busyTimeout = DefaultBusyTimeout
	}

	dsn := fmt.Sprintf("file:%s?%s", path, url.Values{
		"_txlock":       {"immediate"},
		"_journal_mode": {"WAL"},
		"_synchronous":  {"NORMAL"},
		"_busy_timeout": {fmt.Sprint(busyTimeout)},
		"_foreign_keys": {"on"},
		"_loc":          {"UTC"},
	}.Encode())

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying handle for the repositories.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
