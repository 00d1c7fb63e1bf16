package analytics

import (
	"testing"
	"time"

	"github.com/pushpullleg/renaissance/internal/store"
)

func ts(t time.Time) string {
	return t.UTC().Format(store.TimestampLayout)
}

func chatAt(user string, t time.Time) store.Event {
	return store.Event{
		Type:      store.KindChatMessage,
		UserID:    user,
		Timestamp: ts(t),
		Data:      map[string]any{"role": "user", "content": "hi"},
	}
}

func questionAt(user string, t time.Time, pillar, topic string, correct bool) store.Event {
	return store.Event{
		Type:      store.KindQuestionAnswered,
		UserID:    user,
		Timestamp: ts(t),
		Data: map[string]any{
			"pillar":  pillar,
			"topic":   topic,
			"correct": correct,
		},
	}
}

func TestChunkSessionsMergeAndSplit(t *testing.T) {
	base := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)

	t.Run("29 minutes apart merges", func(t *testing.T) {
		sessions := ChunkSessions([]store.Event{
			chatAt("u", base),
			chatAt("u", base.Add(29*time.Minute)),
		})
		if len(sessions) != 1 {
			t.Fatalf("got %d sessions, want 1", len(sessions))
		}
	})

	t.Run("31 minutes apart splits", func(t *testing.T) {
		sessions := ChunkSessions([]store.Event{
			chatAt("u", base),
			chatAt("u", base.Add(31*time.Minute)),
		})
		if len(sessions) != 2 {
			t.Fatalf("got %d sessions, want 2", len(sessions))
		}
	})

	t.Run("unsorted log is sorted first", func(t *testing.T) {
		sessions := ChunkSessions([]store.Event{
			chatAt("u", base.Add(10*time.Minute)),
			chatAt("u", base),
			chatAt("u", base.Add(20*time.Minute)),
		})
		if len(sessions) != 1 {
			t.Fatalf("got %d sessions, want 1", len(sessions))
		}
		if !sessions[0].Start.Equal(base) {
			t.Errorf("session start = %v, want %v", sessions[0].Start, base)
		}
	})

	t.Run("malformed timestamps are skipped", func(t *testing.T) {
		broken := chatAt("u", base)
		broken.Timestamp = "not-a-time"
		sessions := ChunkSessions([]store.Event{broken, chatAt("u", base.Add(time.Minute))})
		if len(sessions) != 1 {
			t.Fatalf("got %d sessions, want 1", len(sessions))
		}
	})
}

func TestActiveMinutesFloorsAtOne(t *testing.T) {
	base := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)

	// A single isolated event is a zero-duration session worth 1 minute.
	snap := Summarize([]store.Event{chatAt("u", base)}, "u", base)
	if snap.SessionCount != 1 {
		t.Errorf("sessions = %d, want 1", snap.SessionCount)
	}
	if snap.ActiveMinutes != 1 {
		t.Errorf("active minutes = %d, want 1", snap.ActiveMinutes)
	}

	// A 95-second session floors to 1 minute.
	snap = Summarize([]store.Event{
		chatAt("u", base),
		chatAt("u", base.Add(95*time.Second)),
	}, "u", base)
	if snap.ActiveMinutes != 1 {
		t.Errorf("active minutes = %d, want 1 (round down)", snap.ActiveMinutes)
	}
}

func TestStreak(t *testing.T) {
	now := time.Date(2025, 11, 2, 18, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	t.Run("three consecutive days through today", func(t *testing.T) {
		got := Streak([]time.Time{day(0), day(-1), day(-2)}, now)
		if got != 3 {
			t.Errorf("streak = %d, want 3", got)
		}
	})

	t.Run("gap resets", func(t *testing.T) {
		got := Streak([]time.Time{day(0), day(-2), day(-3)}, now)
		if got != 1 {
			t.Errorf("streak = %d, want 1 (gap yesterday)", got)
		}
	})

	t.Run("no activity today anchors to last active day", func(t *testing.T) {
		got := Streak([]time.Time{day(-1), day(-2)}, now)
		if got != 2 {
			t.Errorf("streak = %d, want 2 counted from yesterday", got)
		}
	})

	t.Run("no dates", func(t *testing.T) {
		if got := Streak(nil, now); got != 0 {
			t.Errorf("streak = %d, want 0", got)
		}
	})
}

func TestSummarizeQuestionStatsAndTopics(t *testing.T) {
	base := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)

	var events []store.Event
	topics := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t7"}
	for i, topic := range topics {
		events = append(events, questionAt("u", base.Add(time.Duration(i)*time.Minute), "Foundations", topic, i%2 == 0))
	}
	// Another user's noise must not leak in.
	events = append(events, questionAt("other", base, "Foundations", "zz", true))

	snap := Summarize(events, "u", base)

	if snap.QuestionCount != 8 {
		t.Errorf("question count = %d, want 8", snap.QuestionCount)
	}
	if snap.CorrectCount != 4 {
		t.Errorf("correct count = %d, want 4", snap.CorrectCount)
	}
	if snap.AccuracyPct != 50 {
		t.Errorf("accuracy = %v, want 50", snap.AccuracyPct)
	}

	// Last 6 question events, most-recent-first, duplicates preserved.
	want := []string{"t7", "t7", "t6", "t5", "t4", "t3"}
	if len(snap.RecentTopics) != len(want) {
		t.Fatalf("recent topics = %v, want %v", snap.RecentTopics, want)
	}
	for i := range want {
		if snap.RecentTopics[i] != want[i] {
			t.Errorf("recent topic[%d] = %q, want %q", i, snap.RecentTopics[i], want[i])
		}
	}

	// No assessment yet: pillar stats are rebuilt from raw events and
	// the score falls back to raw accuracy.
	if snap.ScorePct != 50 {
		t.Errorf("score pct = %v, want raw accuracy fallback 50", snap.ScorePct)
	}
	st := snap.PillarStats["Foundations"]
	if st.Total != 8 || st.Correct != 4 {
		t.Errorf("Foundations stats = %+v, want {8 4}", st)
	}
	if snap.Level != 1 {
		t.Errorf("level = %d, want default 1", snap.Level)
	}
}

func TestSummarizePrefersLastAssessment(t *testing.T) {
	base := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)

	events := []store.Event{
		questionAt("u", base, "Foundations", "t", true),
		{
			Type: store.KindAssessmentCompleted, UserID: "u",
			Timestamp: ts(base.Add(time.Minute)),
			Data: map[string]any{
				"level": float64(3),
				"score": 0.6,
				"pillar_stats": map[string]any{
					"Foundations": map[string]any{"total": float64(1), "correct": float64(1)},
				},
				"primary_recommendation":    "Storage & Databases",
				"secondary_recommendations": []any{"Foundations"},
			},
		},
	}

	snap := Summarize(events, "u", base)
	if snap.Level != 3 {
		t.Errorf("level = %d, want 3", snap.Level)
	}
	if snap.ScorePct != 60 {
		t.Errorf("score pct = %v, want 60", snap.ScorePct)
	}
	if snap.PrimaryFocus != "Storage & Databases" {
		t.Errorf("primary focus = %q", snap.PrimaryFocus)
	}
	if len(snap.SecondaryFocus) != 1 || snap.SecondaryFocus[0] != "Foundations" {
		t.Errorf("secondary focus = %v", snap.SecondaryFocus)
	}
	if snap.LastAssessedAt != ts(base.Add(time.Minute)) {
		t.Errorf("last assessed at = %q", snap.LastAssessedAt)
	}
}

func TestSummarizeEmptyLog(t *testing.T) {
	snap := Summarize(nil, "u", time.Now().UTC())
	if snap.Level != 1 || snap.QuestionCount != 0 || snap.SessionCount != 0 || snap.StreakDays != 0 {
		t.Errorf("empty snapshot = %+v", snap)
	}
	if snap.PillarStats == nil {
		t.Error("pillar stats should be an empty map, not nil")
	}
}
