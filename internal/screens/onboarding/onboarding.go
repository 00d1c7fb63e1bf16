// Package onboarding asks the learner what they want to master.
package onboarding

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pushpullleg/renaissance/internal/router"
	"github.com/pushpullleg/renaissance/internal/screen"
	"github.com/pushpullleg/renaissance/internal/ui/components"
	"github.com/pushpullleg/renaissance/internal/ui/layout"
	"github.com/pushpullleg/renaissance/internal/ui/theme"
)

// OnboardingScreen offers the two focus areas. Only Business Analytics
// continues into path selection; Marketing content is not built yet.
type OnboardingScreen struct {
	menu        components.Menu
	nextFactory func() screen.Screen
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the onboarding screen; nextFactory produces the path
// selection screen entered when Business Analytics is chosen.
func New(nextFactory func() screen.Screen) *OnboardingScreen {
	s := &OnboardingScreen{nextFactory: nextFactory}
	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "Marketing",
			Desc:   "Campaigns, funnels and growth analytics (coming soon)",
			Action: nil, Disabled: true,
		},
		{
			Label: "Business Analytics",
			Desc:  "Data roadmaps with an adaptive AI tutor",
			Action: func() tea.Cmd {
				next := s.nextFactory()
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			},
		},
	})
	return s
}

func (s *OnboardingScreen) Title() string {
	return "Get Started"
}

func (s *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (s *OnboardingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *OnboardingScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("What would you like to master?")

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Choose your area of focus to get personalized learning recommendations.")

	content := strings.Join([]string{title, subtitle, "", s.menu.View()}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
