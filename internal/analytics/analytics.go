// Package analytics aggregates the event log into per-user learning
// metrics. Every call recomputes from the full history — there is no
// incremental state and nothing is ever persisted.
package analytics

import (
	"sort"
	"time"

	"github.com/pushpullleg/renaissance/internal/assessment"
	"github.com/pushpullleg/renaissance/internal/store"
)

// sessionIdleLimit separates two learning sessions: consecutive events
// closer than this belong to the same session.
const sessionIdleLimit = 30 * time.Minute

// recentTopicWindow is how many question events feed the recent-topics list.
const recentTopicWindow = 6

// Snapshot is the fully derived metrics view for one user. It exists
// only as the return value of Summarize.
type Snapshot struct {
	Level          int
	ScorePct       float64
	QuestionCount  int
	CorrectCount   int
	AccuracyPct    float64
	PillarStats    map[string]assessment.PillarStat
	SessionCount   int
	ActiveMinutes  int
	StreakDays     int
	PrimaryFocus   string
	SecondaryFocus []string
	RecentTopics   []string
	LastAssessedAt string
}

// Session is one contiguous block of activity.
type Session struct {
	Start time.Time
	End   time.Time
}

// Summarize aggregates all of a user's events into a Snapshot. now
// anchors the streak walk ("today" in UTC). Events with missing or
// malformed timestamps are skipped for session and streak math but still
// counted in question and accuracy stats; partial data never aborts the
// aggregation.
func Summarize(events []store.Event, userID string, now time.Time) Snapshot {
	userEvents := store.FilterUser(events, userID)
	questionEvents := store.FilterKind(userEvents, store.KindQuestionAnswered)

	sessions := ChunkSessions(userEvents)
	totalMinutes := 0
	for _, s := range sessions {
		minutes := int(s.End.Sub(s.Start).Minutes())
		if minutes < 1 {
			minutes = 1
		}
		totalMinutes += minutes
	}

	questionCount := len(questionEvents)
	correctCount := 0
	for _, e := range questionEvents {
		if v, ok := e.Data["correct"].(bool); ok && v {
			correctCount++
		}
	}
	accuracy := 0.0
	if questionCount > 0 {
		accuracy = float64(correctCount) / float64(questionCount)
	}

	snap := Snapshot{
		Level:         1,
		ScorePct:      accuracy * 100,
		QuestionCount: questionCount,
		CorrectCount:  correctCount,
		AccuracyPct:   accuracy * 100,
		SessionCount:  len(sessions),
		ActiveMinutes: totalMinutes,
		StreakDays:    Streak(eventDates(userEvents), now),
		RecentTopics:  recentTopics(questionEvents),
	}

	if latest, ok := assessment.LatestSummary(userEvents, userID); ok {
		snap.Level = latest.Level
		snap.ScorePct = latest.Score * 100
		snap.PillarStats = latest.PillarStats
		snap.PrimaryFocus = latest.Primary
		snap.SecondaryFocus = latest.Secondary
		snap.LastAssessedAt = latest.AssessedAt
	}

	// Without a completed assessment, mastery is reconstructed from the
	// raw question events so the dashboard still has pillar bars.
	if len(snap.PillarStats) == 0 && questionCount > 0 {
		snap.PillarStats = pillarStatsFromQuestions(questionEvents)
	}
	if snap.PillarStats == nil {
		snap.PillarStats = map[string]assessment.PillarStat{}
	}

	return snap
}

// ChunkSessions groups a user's events into contiguous sessions with a
// 30-minute idle timeout. Events are sorted by parsed timestamp first —
// log order is not guaranteed chronological — and events without a
// parseable timestamp are dropped here.
func ChunkSessions(events []store.Event) []Session {
	var times []time.Time
	for _, e := range events {
		if t, ok := e.Time(); ok {
			times = append(times, t)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	var sessions []Session
	var current *Session
	for _, t := range times {
		if current == nil {
			current = &Session{Start: t, End: t}
			continue
		}
		if t.Sub(current.End) <= sessionIdleLimit {
			current.End = t
			continue
		}
		sessions = append(sessions, *current)
		current = &Session{Start: t, End: t}
	}
	if current != nil {
		sessions = append(sessions, *current)
	}
	return sessions
}

// Streak counts consecutive active calendar days (UTC), walking backward
// from today. When today has no activity the walk restarts from the most
// recent active day instead, so a streak still counts the day after the
// last activity, anchored to that day.
func Streak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	active := map[string]bool{}
	var latest time.Time
	for _, d := range dates {
		day := d.UTC().Truncate(24 * time.Hour)
		active[day.Format(time.DateOnly)] = true
		if day.After(latest) {
			latest = day
		}
	}

	count := func(from time.Time) int {
		streak := 0
		cursor := from
		for active[cursor.Format(time.DateOnly)] {
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		}
		return streak
	}

	today := now.UTC().Truncate(24 * time.Hour)
	if streak := count(today); streak > 0 {
		return streak
	}
	return count(latest)
}

func eventDates(events []store.Event) []time.Time {
	var out []time.Time
	for _, e := range events {
		if t, ok := e.Time(); ok {
			out = append(out, t)
		}
	}
	return out
}

// recentTopics returns the topics of the last 6 question events,
// most-recent-first. Repeats are allowed: no dedup is applied.
func recentTopics(questionEvents []store.Event) []string {
	start := len(questionEvents) - recentTopicWindow
	if start < 0 {
		start = 0
	}
	window := questionEvents[start:]

	var topics []string
	for i := len(window) - 1; i >= 0; i-- {
		if topic, ok := window[i].Data["topic"].(string); ok && topic != "" {
			topics = append(topics, topic)
		}
	}
	return topics
}

// pillarStatsFromQuestions rebuilds per-pillar counts directly from raw
// question events. Events without a pillar land in "General".
func pillarStatsFromQuestions(questionEvents []store.Event) map[string]assessment.PillarStat {
	stats := map[string]assessment.PillarStat{}
	for _, e := range questionEvents {
		pillar, _ := e.Data["pillar"].(string)
		if pillar == "" {
			pillar = "General"
		}
		st := stats[pillar]
		st.Total++
		if v, ok := e.Data["correct"].(bool); ok && v {
			st.Correct++
		}
		stats[pillar] = st
	}
	return stats
}
