// Package dashboard renders the analytics view derived from the event
// log: level, score, sessions, streak, pillar mastery and what to learn
// next.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pushpullleg/renaissance/internal/analytics"
	"github.com/pushpullleg/renaissance/internal/assessment"
	"github.com/pushpullleg/renaissance/internal/screen"
	"github.com/pushpullleg/renaissance/internal/store"
	"github.com/pushpullleg/renaissance/internal/ui/components"
	"github.com/pushpullleg/renaissance/internal/ui/layout"
	"github.com/pushpullleg/renaissance/internal/ui/theme"
)

type snapshotMsg struct {
	snap analytics.Snapshot
}

// DashboardScreen shows the learner's aggregated metrics.
type DashboardScreen struct {
	log      *store.Log
	userID   string
	userName string

	snap   analytics.Snapshot
	loaded bool
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard screen for one user.
func New(log *store.Log, userID, userName string) *DashboardScreen {
	return &DashboardScreen{log: log, userID: userID, userName: userName}
}

func (s *DashboardScreen) Title() string {
	return "Learning Dashboard"
}

func (s *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events := s.log.LoadAll(context.Background())
		return snapshotMsg{snap: analytics.Summarize(events, s.userID, time.Now())}
	}
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		s.snap = msg.snap
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			s.loaded = false
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if !s.loaded {
		loading := theme.Hint.Render("Crunching your learning history...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, loading)
	}

	var sections []string

	heading := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%s's Data Engineer progress", s.userName))
	sections = append(sections, heading)

	cardWidth := (width - 8) / 4
	if cardWidth < 14 {
		cardWidth = 14
	}
	if cardWidth > 22 {
		cardWidth = 22
	}

	levelLabel := assessment.LevelLabels[s.snap.Level]
	sections = append(sections, components.StatRow(
		components.StatCard{Label: "Level", Value: fmt.Sprintf("L%d %s", s.snap.Level, levelLabel), Width: cardWidth},
		components.StatCard{Label: "Latest score", Value: fmt.Sprintf("%.0f%%", s.snap.ScorePct), Width: cardWidth},
		components.StatCard{Label: "Questions", Value: fmt.Sprintf("%d", s.snap.QuestionCount), Width: cardWidth},
		components.StatCard{Label: "Accuracy", Value: fmt.Sprintf("%.0f%%", s.snap.AccuracyPct), Width: cardWidth},
	))
	sections = append(sections, components.StatRow(
		components.StatCard{Label: "Sessions", Value: fmt.Sprintf("%d", s.snap.SessionCount), Width: cardWidth},
		components.StatCard{Label: "Active minutes", Value: fmt.Sprintf("%d", s.snap.ActiveMinutes), Width: cardWidth},
		components.StatCard{Label: "Streak", Value: fmt.Sprintf("%d day", s.snap.StreakDays), Width: cardWidth},
	))

	if mastery := s.renderMastery(width); mastery != "" {
		sections = append(sections, "", mastery)
	}

	if s.snap.PrimaryFocus != "" {
		sec := "None yet"
		if len(s.snap.SecondaryFocus) > 0 {
			sec = strings.Join(s.snap.SecondaryFocus, ", ")
		}
		focus := fmt.Sprintf("Focus next: %s\nAlso explore: %s", s.snap.PrimaryFocus, sec)
		sections = append(sections, "", theme.Card.Width(min(width-6, 70)).Render(focus))
	}

	if len(s.snap.RecentTopics) > 0 {
		recent := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("Recently practiced") + "\n" +
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(width-6).
				Render(strings.Join(s.snap.RecentTopics, "  ·  "))
		sections = append(sections, "", recent)
	}

	if s.snap.LastAssessedAt != "" {
		sections = append(sections, "", theme.Hint.Render("Last assessed "+formatAssessedAt(s.snap.LastAssessedAt)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (s *DashboardScreen) renderMastery(width int) string {
	if len(s.snap.PillarStats) == 0 {
		return ""
	}

	names := make([]string, 0, len(s.snap.PillarStats))
	for name := range s.snap.PillarStats {
		names = append(names, name)
	}
	sort.Strings(names)

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}

	labelWidth := 0
	for _, name := range names {
		if len(name) > labelWidth {
			labelWidth = len(name)
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Pillar mastery") + "\n")
	for _, name := range names {
		st := s.snap.PillarStats[name]
		pct := 0.0
		if st.Total > 0 {
			pct = float64(st.Correct) / float64(st.Total)
		}
		padded := name + strings.Repeat(" ", labelWidth-len(name))
		bar := components.NewProgressBar(padded, pct, true, barWidth)
		b.WriteString(bar.View() + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatAssessedAt turns the stored RFC3339 timestamp into a short human
// form, falling back to the raw string on parse failure.
func formatAssessedAt(raw string) string {
	t, err := time.Parse(store.TimestampLayout, raw)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, raw); err2 == nil {
			t = t2
		} else {
			return raw
		}
	}
	return t.Format("Jan 2, 2006 15:04 MST")
}
