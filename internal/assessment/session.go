package assessment

import (
	"context"
	"fmt"

	"github.com/pushpullleg/renaissance/internal/store"
)

// Stage identifies where the check-up wizard is.
type Stage int

const (
	StageIntro Stage = iota
	StageQuestion
	StageSummary
)

func (s Stage) String() string {
	switch s {
	case StageIntro:
		return "intro"
	case StageQuestion:
		return "question"
	case StageSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Session is the explicit state of one run through the check-up wizard.
// The machine is strictly linear — intro → question[0..4] → summary —
// with one backward transition (question[i] → question[i-1], dropping
// the most recent answer). Reaching summary is terminal until Start is
// called again, which re-enters question[0] with a cleared answer list.
//
// A Session belongs to a single UI session: created when the tutor panel
// opens, discarded when it closes. It is not shared and not a singleton.
type Session struct {
	log       *store.Log
	userID    string
	questions []Question

	stage   Stage
	index   int
	answers []Answer
}

// NewSession creates a wizard session in the intro stage.
func NewSession(log *store.Log, userID string) *Session {
	return &Session{
		log:       log,
		userID:    userID,
		questions: Questions(),
		stage:     StageIntro,
	}
}

// Stage returns the current wizard stage.
func (s *Session) Stage() Stage { return s.stage }

// Index returns the current question index (meaningful in StageQuestion).
func (s *Session) Index() int { return s.index }

// Count returns the number of questions in the check-up.
func (s *Session) Count() int { return len(s.questions) }

// Answers returns the answers recorded so far, in order.
func (s *Session) Answers() []Answer {
	return append([]Answer(nil), s.answers...)
}

// Question returns the current question. Valid only in StageQuestion.
func (s *Session) Question() Question {
	return s.questions[s.index]
}

// Start enters question[0] with a cleared answer list. Valid from intro
// (first run) and from summary (explicit restart / "update my level").
func (s *Session) Start() {
	s.stage = StageQuestion
	s.index = 0
	s.answers = nil
}

// Back moves from question[i] to question[i-1], discarding the most
// recently recorded answer. Returns false when there is nothing to go
// back to (first question, or not in the question stage).
func (s *Session) Back() bool {
	if s.stage != StageQuestion || s.index == 0 {
		return false
	}
	s.index--
	if len(s.answers) > 0 {
		s.answers = s.answers[:len(s.answers)-1]
	}
	return true
}

// Answer records the selected option for the current question, emits a
// question_answered event, and advances. Completing the final question
// computes the summary, emits one assessment_completed event carrying
// it, and moves the wizard to the summary stage (returning the summary).
func (s *Session) Answer(ctx context.Context, selected int) (*Summary, error) {
	if s.stage != StageQuestion {
		return nil, fmt.Errorf("answer outside question stage (stage=%s)", s.stage)
	}
	q := s.questions[s.index]
	if selected < 0 || selected >= len(q.Options) {
		return nil, fmt.Errorf("selected index %d out of range", selected)
	}

	ans := Answer{
		QuestionID:    q.ID,
		Pillar:        q.Pillar,
		Topic:         q.Topic,
		SelectedIndex: selected,
		CorrectIndex:  q.CorrectIndex,
		Correct:       selected == q.CorrectIndex,
	}
	s.answers = append(s.answers, ans)

	err := s.log.Append(ctx, store.KindQuestionAnswered, s.userID, map[string]any{
		"question_id":    ans.QuestionID,
		"pillar":         ans.Pillar,
		"topic":          ans.Topic,
		"selected_index": ans.SelectedIndex,
		"correct_index":  ans.CorrectIndex,
		"correct":        ans.Correct,
		"difficulty":     q.Difficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	if s.index < len(s.questions)-1 {
		s.index++
		return nil, nil
	}

	summary := ComputeSummary(s.answers)
	if err := s.logCompletion(ctx, summary); err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}
	s.stage = StageSummary
	return &summary, nil
}

func (s *Session) logCompletion(ctx context.Context, summary Summary) error {
	stats := map[string]any{}
	for pillar, st := range summary.PillarStats {
		stats[pillar] = map[string]any{"total": st.Total, "correct": st.Correct}
	}

	var primary any
	if summary.Primary != "" {
		primary = summary.Primary
	}

	return s.log.Append(ctx, store.KindAssessmentCompleted, s.userID, map[string]any{
		"level":                     summary.Level,
		"score":                     summary.Score,
		"pillar_stats":              stats,
		"primary_recommendation":    primary,
		"secondary_recommendations": summary.Secondary,
	})
}
