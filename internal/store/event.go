package store

import "time"

// Event kinds recorded in the log.
const (
	KindQuestionAnswered    = "question_answered"
	KindAssessmentCompleted = "assessment_completed"
	KindChatMessage         = "chat_message"
)

// TimestampLayout formats timestamps as ISO-8601 UTC with a "Z" suffix,
// microsecond precision, matching every event already in the log.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Event is a single immutable interaction record. Events are appended
// once and never updated or deleted; the log is the sole source of truth.
type Event struct {
	Type      string         `json:"type"`
	UserID    string         `json:"user_id"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// Time parses the event timestamp. ok is false when the timestamp is
// missing or malformed; callers skip such events for time-based math but
// still count them everywhere else.
func (e Event) Time() (time.Time, bool) {
	if e.Timestamp == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FilterUser returns the subset of events belonging to userID, in log order.
func FilterUser(events []Event, userID string) []Event {
	var out []Event
	for _, e := range events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// FilterKind returns the subset of events of the given kind, in log order.
func FilterKind(events []Event, kind string) []Event {
	var out []Event
	for _, e := range events {
		if e.Type == kind {
			out = append(out, e)
		}
	}
	return out
}
