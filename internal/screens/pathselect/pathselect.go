// Package pathselect lists the available learning paths.
package pathselect

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

// PathSelectScreen offers role-based and skill-based roadmaps. Only the
// Data Engineer path is built; the rest are listed but disabled.
type PathSelectScreen struct {
	menu           components.Menu
	roadmapFactory func() screen.Screen
}

var _ screen.Screen = (*PathSelectScreen)(nil)
var _ screen.KeyHintProvider = (*PathSelectScreen)(nil)

// New creates the path selection screen; roadmapFactory produces the
// Data Engineer roadmap screen.
func New(roadmapFactory func() screen.Screen) *PathSelectScreen {
	s := &PathSelectScreen{roadmapFactory: roadmapFactory}
	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label: "Data Engineer",
			Desc:  "Role-based · storage, pipelines, big data, governance",
			Action: func() tea.Cmd {
				next := s.roadmapFactory()
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			},
		},
		{Label: "Business Analyst", Desc: "Role-based (coming soon)", Disabled: true},
		{Label: "Financial Analyst", Desc: "Role-based (coming soon)", Disabled: true},
		{Label: "SQL", Desc: "Skill-based (coming soon)", Disabled: true},
		{Label: "AWS Cloud", Desc: "Skill-based (coming soon)", Disabled: true},
		{Label: "Power BI", Desc: "Skill-based (coming soon)", Disabled: true},
	})
	return s
}

func (s *PathSelectScreen) Title() string {
	return "Choose Your Path"
}

func (s *PathSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *PathSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *PathSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PathSelectScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Choose Your Learning Path")

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Business Analytics Roadmaps")

	content := strings.Join([]string{title, subtitle, "", s.menu.View()}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
