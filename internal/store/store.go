// Package store persists calendar events in SQLite. The widget itself
// never touches storage; the application feeds it events from here and
// applies create/update intents back through this package.
package store

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite connection for event persistence.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the event database at path and ensures the
// schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapErr("open", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, wrapErr("ping", err)
	}
	s := &Store{db: db}
	if err := s.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables(ctx context.Context) error {
	const schema = `CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		color TEXT
	);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return wrapErr("create tables", err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}
