package export

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pushpullleg/renaissance/internal/store"
)

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	defer db.Close()

	events := []store.Event{
		{
			Type: store.KindChatMessage, UserID: "demo-mukesh",
			Timestamp: "2025-11-02T10:00:00.000000Z",
			Data:      map[string]any{"role": "user", "content": "hi"},
		},
		{
			Type: store.KindQuestionAnswered, UserID: "demo-mukesh",
			Timestamp: "2025-11-02T10:01:00.000000Z",
			Data:      map[string]any{"pillar": "Foundations", "correct": true},
		},
	}

	n, err := Events(ctx, db, events)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	var count int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE type = ?`, store.KindChatMessage).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	var data string
	err = db.QueryRowContext(ctx,
		`SELECT data FROM events WHERE type = ?`, store.KindQuestionAnswered).Scan(&data)
	require.NoError(t, err)
	require.JSONEq(t, `{"correct":true,"pillar":"Foundations"}`, data)
}

func TestExportReplacesPreviousRows(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	defer db.Close()

	first := []store.Event{{Type: store.KindChatMessage, UserID: "u", Timestamp: "t", Data: map[string]any{}}}
	_, err = Events(ctx, db, first)
	require.NoError(t, err)
	_, err = Events(ctx, db, first)
	require.NoError(t, err)

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "re-export replaces previous rows")
}
