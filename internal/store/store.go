package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Log is the append-only event store: a single JSON array file.
//
// Append re-reads the whole file, appends one event, and rewrites the
// file in place. There is no lock and no atomic rename; two concurrent
// writers race with last-writer-wins semantics. That is a documented
// limitation, acceptable for the single demo user this app targets, and
// deliberately not fixed here.
type Log struct {
	path string
	now  func() time.Time
}

// Open returns a Log writing to path, creating the parent directory if
// needed.
func Open(path string) (*Log, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("ensure events dir: %w", err)
	}
	return &Log{path: path, now: time.Now}, nil
}

// Path returns the event log file path.
func (l *Log) Path() string {
	return l.path
}

// Append records a single event with a UTC timestamp assigned now.
// The read side swallows errors; the write side surfaces them so the
// caller can decide what a failed append means for the interaction.
func (l *Log) Append(ctx context.Context, kind, userID string, data map[string]any) error {
	events, _ := l.Load(ctx)
	events = append(events, Event{
		Type:      kind,
		UserID:    userID,
		Timestamp: l.now().UTC().Format(TimestampLayout),
		Data:      data,
	})

	buf, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	if err := os.WriteFile(l.path, buf, 0o644); err != nil {
		return fmt.Errorf("write events: %w", err)
	}
	return nil
}

// Load returns every event in the log along with the error that made the
// log unreadable, if any. A missing file yields (nil, ErrMissing); a file
// that fails to parse or validate yields (nil, ErrMalformed). Callers
// that want the classic treat-as-empty behavior use LoadAll.
func (l *Log) Load(ctx context.Context) ([]Event, error) {
	_ = ctx

	buf, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrMissing{Path: l.path}
		}
		return nil, &ErrMalformed{Path: l.path, Err: err}
	}

	if err := validateDocument(buf); err != nil {
		return nil, &ErrMalformed{Path: l.path, Err: err}
	}

	var events []Event
	if err := json.Unmarshal(buf, &events); err != nil {
		return nil, &ErrMalformed{Path: l.path, Err: err}
	}
	return events, nil
}

// LoadAll returns every event in the log, or an empty slice when the file
// is missing, unreadable, or malformed. It never fails: an unreadable log
// means "no data".
func (l *Log) LoadAll(ctx context.Context) []Event {
	events, err := l.Load(ctx)
	if err != nil {
		return []Event{}
	}
	return events
}

// Reset deletes the event log file. Missing file is not an error.
func (l *Log) Reset() error {
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove events: %w", err)
	}
	return nil
}

// DefaultLogPath resolves the events file path in priority order:
// 1. RENAISSANCE_EVENTS environment variable
// 2. $XDG_DATA_HOME/renaissance/events.json
// 3. ~/.local/share/renaissance/events.json
func DefaultLogPath() (string, error) {
	if p := os.Getenv("RENAISSANCE_EVENTS"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "renaissance", "events.json")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
