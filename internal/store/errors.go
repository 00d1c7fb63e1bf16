package store

import "fmt"

// ErrMissing indicates the event log file does not exist yet.
type ErrMissing struct {
	Path string
}

func (e *ErrMissing) Error() string {
	return fmt.Sprintf("event log missing: %s", e.Path)
}

// ErrMalformed indicates the event log exists but could not be read,
// parsed, or validated against the event document schema.
type ErrMalformed struct {
	Path string
	Err  error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("event log malformed: %s: %v", e.Path, e.Err)
}

func (e *ErrMalformed) Unwrap() error { return e.Err }
