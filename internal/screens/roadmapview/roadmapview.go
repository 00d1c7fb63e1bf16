// Package roadmapview renders the Data Engineer roadmap as a browsable
// pillar list and is the hub for entering the tutor and the dashboard.
package roadmapview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pushpullleg/renaissance/internal/roadmap"
	"github.com/pushpullleg/renaissance/internal/router"
	"github.com/pushpullleg/renaissance/internal/screen"
	"github.com/pushpullleg/renaissance/internal/ui/layout"
	"github.com/pushpullleg/renaissance/internal/ui/theme"
)

// RoadmapScreen browses the roadmap pillars.
type RoadmapScreen struct {
	road             roadmap.Roadmap
	selected         int
	tutorFactory     func() screen.Screen
	dashboardFactory func() screen.Screen
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates the roadmap screen with factories for the two screens it
// can push.
func New(tutorFactory, dashboardFactory func() screen.Screen) *RoadmapScreen {
	return &RoadmapScreen{
		road:             roadmap.DataEngineer(),
		tutorFactory:     tutorFactory,
		dashboardFactory: dashboardFactory,
	}
}

func (s *RoadmapScreen) Title() string {
	return s.road.Title
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return nil
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Pillars"},
		{Key: "T", Description: "AI Tutor"},
		{Key: "D", Description: "Dashboard"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.road.Pillars)-1 {
			s.selected++
		}
	case "t":
		tutor := s.tutorFactory()
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: tutor}
		}
	case "d":
		dash := s.dashboardFactory()
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: dash}
		}
	}

	return s, nil
}

func (s *RoadmapScreen) View(width, height int) string {
	listWidth := width / 3
	if listWidth < 28 {
		listWidth = 28
	}

	var list strings.Builder
	for i, p := range s.road.Pillars {
		if i == s.selected {
			list.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+p.Name) + "\n")
		} else {
			list.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+p.Name) + "\n")
		}
	}

	left := lipgloss.NewStyle().
		Width(listWidth).
		Padding(1, 1).
		Render(list.String())

	right := lipgloss.NewStyle().
		Width(width - listWidth - 2).
		Padding(1, 1).
		Render(s.renderPillar(width - listWidth - 4))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (s *RoadmapScreen) renderPillar(width int) string {
	p := s.road.Pillars[s.selected]

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(p.Name) + "\n\n")

	for _, topic := range p.Topics {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(topic.Name) + "\n")

		chips := strings.Join(topic.Items, "  ·  ")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(width).
			Render("  "+chips) + "\n\n")
	}

	return b.String()
}
