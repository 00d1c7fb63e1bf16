// Package landing shows the splash screen before onboarding.
package landing

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pushpullleg/renaissance/internal/router"
	"github.com/pushpullleg/renaissance/internal/screen"
	"github.com/pushpullleg/renaissance/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const wordmark = `
 ██▀███  ▓█████  ███▄    █  ▄▄▄       ██▓  ██████   ██████  ▄▄▄       ███▄    █  ▄████▄  ▓█████
▓██ ▒ ██▒▓█   ▀  ██ ▀█   █ ▒████▄    ▓██▒▒██    ▒ ▒██    ▒ ▒████▄     ██ ▀█   █ ▒██▀ ▀█  ▓█   ▀
▓██ ░▄█ ▒▒███   ▓██  ▀█ ██▒▒██  ▀█▄  ▒██▒░ ▓██▄   ░ ▓██▄   ▒██  ▀█▄  ▓██  ▀█ ██▒▒▓█    ▄ ▒███
▒██▀▀█▄  ▒▓█  ▄ ▓██▒  ▐▌██▒░██▄▄▄▄██ ░██░  ▒   ██▒  ▒   ██▒░██▄▄▄▄██ ▓██▒  ▐▌██▒▒▓▓▄ ▄██▒▒▓█  ▄
░██▓ ▒██▒░▒████▒▒██░   ▓██░ ▓█   ▓██▒░██░▒██████▒▒▒██████▒▒ ▓█   ▓██▒▒██░   ▓██░▒ ▓███▀ ░░▒████▒`

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// LandingScreen plays the hero splash and hands off to onboarding.
type LandingScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates a LandingScreen that transitions to the screen produced
// by nextFactory.
func New(nextFactory func() screen.Screen) *LandingScreen {
	return &LandingScreen{
		nextFactory: nextFactory,
	}
}

func (l *LandingScreen) Title() string {
	return ""
}

func (l *LandingScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if l.elapsed < totalDur {
			l.elapsed += tickInterval
		}
		l.tickCount++
		return l, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Skippable once the wordmark is up.
		if l.elapsed >= phase2End {
			return l, l.transition()
		}
		return l, nil
	}

	return l, nil
}

func (l *LandingScreen) transition() tea.Cmd {
	if l.transitioned {
		return nil
	}
	l.transitioned = true
	next := l.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (l *LandingScreen) View(width, height int) string {
	var sections []string

	mark := strings.TrimPrefix(wordmark, "\n")
	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(mark)

	if l.elapsed >= phase1End {
		frame := l.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]

		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 0 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
		}
		if len(lines) > 4 {
			lines[4] = s2 + "  " + lines[4] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	if l.elapsed >= phase2End {
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("See Every Student.")
		sections = append(sections, tagline)

		hero := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Master Marketing and Business Analytics with adaptive AI.\nPersonalized insights. Relevant content.")
		sections = append(sections, "", hero)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to begin")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
