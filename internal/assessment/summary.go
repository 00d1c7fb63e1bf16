package assessment

import (
	"sort"

	"github.com/pushpullleg/renaissance/internal/store"
)

// PillarStat counts answered and correctly-answered questions per pillar.
type PillarStat struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

// Summary is the derived result of an answer set. It is never stored as
// an entity of its own: the assessment_completed event carries its
// fields, and everything else recomputes it on demand.
type Summary struct {
	Score       float64
	Level       int
	PillarStats map[string]PillarStat
	// Primary is the weakest pillar, empty when no answers exist.
	Primary string
	// Secondary lists the remaining pillars sorted ascending by accuracy.
	Secondary []string
}

// LatestResult is a Summary read back from the event log, with the
// timestamp of the assessment that produced it.
type LatestResult struct {
	Summary
	AssessedAt string
}

// ComputeSummary scores an ordered answer set. The full check-up always
// has 5 answers, but partial and empty sets are tolerated: an empty set
// yields score 0, level 1, no pillar stats and no recommendations.
func ComputeSummary(answers []Answer) Summary {
	if len(answers) == 0 {
		return Summary{
			Score:       0,
			Level:       1,
			PillarStats: map[string]PillarStat{},
			Secondary:   []string{},
		}
	}

	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}
	score := float64(correct) / float64(len(answers))

	stats := map[string]PillarStat{}
	var pillarOrder []string
	for _, a := range answers {
		st, seen := stats[a.Pillar]
		if !seen {
			pillarOrder = append(pillarOrder, a.Pillar)
		}
		st.Total++
		if a.Correct {
			st.Correct++
		}
		stats[a.Pillar] = st
	}

	// Weakest pillar wins the primary slot; on ties the first pillar
	// encountered in answer order keeps it (strict < comparison).
	accuracy := func(p string) float64 {
		st := stats[p]
		return float64(st.Correct) / float64(st.Total)
	}
	primary := ""
	weakest := 1.1
	for _, p := range pillarOrder {
		if acc := accuracy(p); acc < weakest {
			weakest = acc
			primary = p
		}
	}

	secondary := []string{}
	sorted := append([]string(nil), pillarOrder...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return accuracy(sorted[i]) < accuracy(sorted[j])
	})
	for _, p := range sorted {
		if p != primary {
			secondary = append(secondary, p)
		}
	}

	return Summary{
		Score:       score,
		Level:       levelForScore(score),
		PillarStats: stats,
		Primary:     primary,
		Secondary:   secondary,
	}
}

// levelForScore maps a score to a level. Boundary values belong to the
// lower level: 0–0.25 → 1, 0.25–0.5 → 2, 0.5–0.75 → 3, above 0.75 → 4.
func levelForScore(score float64) int {
	switch {
	case score <= 0.25:
		return 1
	case score <= 0.5:
		return 2
	case score <= 0.75:
		return 3
	default:
		return 4
	}
}

// LatestSummary scans a user's events and returns the summary carried by
// the last assessment_completed event in log order. No timestamp sort is
// applied: log order decides, matching how events were recorded. ok is
// false when the user has never completed an assessment.
func LatestSummary(events []store.Event, userID string) (LatestResult, bool) {
	var latest *store.Event
	for i := range events {
		if events[i].UserID != userID {
			continue
		}
		if events[i].Type == store.KindAssessmentCompleted {
			latest = &events[i]
		}
	}
	if latest == nil {
		return LatestResult{}, false
	}

	return LatestResult{
		Summary:    DecodeSummaryData(latest.Data),
		AssessedAt: latest.Timestamp,
	}, true
}

// DecodeSummaryData rebuilds a Summary from the loosely-typed data map of
// an assessment_completed event (numbers arrive as float64 after a JSON
// round-trip, and may be missing entirely from hand-edited logs).
func DecodeSummaryData(data map[string]any) Summary {
	s := Summary{
		Level:       1,
		PillarStats: map[string]PillarStat{},
		Secondary:   []string{},
	}
	if data == nil {
		return s
	}

	if v, ok := asFloat(data["score"]); ok {
		s.Score = v
	}
	if v, ok := asInt(data["level"]); ok {
		s.Level = v
	}
	if v, ok := data["primary_recommendation"].(string); ok {
		s.Primary = v
	}
	if list, ok := data["secondary_recommendations"].([]any); ok {
		for _, item := range list {
			if str, ok := item.(string); ok {
				s.Secondary = append(s.Secondary, str)
			}
		}
	}
	if raw, ok := data["pillar_stats"].(map[string]any); ok {
		for pillar, v := range raw {
			counts, ok := v.(map[string]any)
			if !ok {
				continue
			}
			var st PillarStat
			if n, ok := asInt(counts["total"]); ok {
				st.Total = n
			}
			if n, ok := asInt(counts["correct"]); ok {
				st.Correct = n
			}
			s.PillarStats[pillar] = st
		}
	}
	return s
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
