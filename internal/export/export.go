// Package export copies the JSON event log into a SQLite database so
// the history can be queried with external tools. The JSON file stays
// the source of truth; the database is a disposable view of it.
package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/pushpullleg/renaissance/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	type      TEXT NOT NULL,
	user_id   TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	data      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_user ON events(user_id);
CREATE INDEX IF NOT EXISTS idx_events_type ON events(type);
`

// Open opens (or creates) the SQLite database at path and ensures the
// events schema exists.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Events replaces the events table contents with the given log events.
// Each event's data payload is stored as its JSON encoding. Returns the
// number of rows written.
func Events(ctx context.Context, db *sql.DB, events []store.Event) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO events (type, user_id, timestamp, data) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	n := 0
	for _, e := range events {
		payload, err := json.Marshal(e.Data)
		if err != nil {
			return n, fmt.Errorf("encode event data: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, e.Type, e.UserID, e.Timestamp, string(payload)); err != nil {
			return n, err
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return n, err
	}
	return n, nil
}
