package logstore

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	id           TEXT PRIMARY KEY,
	email        TEXT NOT NULL,
	date         TEXT NOT NULL,
	requested_at TEXT NOT NULL
);`

// SQLiteStore persists invocations in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the invocation database at
// path and ensures the schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Record(ctx context.Context, inv Invocation) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations (id, email, date, requested_at) VALUES (?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.Date, inv.RequestedAt.UTC().Format(time.RFC1123Z))
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
