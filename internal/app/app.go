// Package app wires the screens, the event log and the LLM provider
// into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pushpullleg/renaissance/internal/analytics"
	"github.com/pushpullleg/renaissance/internal/config"
	"github.com/pushpullleg/renaissance/internal/llm"
	"github.com/pushpullleg/renaissance/internal/router"
	"github.com/pushpullleg/renaissance/internal/screen"
	"github.com/pushpullleg/renaissance/internal/screens/dashboard"
	"github.com/pushpullleg/renaissance/internal/screens/landing"
	"github.com/pushpullleg/renaissance/internal/screens/onboarding"
	"github.com/pushpullleg/renaissance/internal/screens/pathselect"
	"github.com/pushpullleg/renaissance/internal/screens/roadmapview"
	"github.com/pushpullleg/renaissance/internal/screens/tutorview"
	"github.com/pushpullleg/renaissance/internal/store"
	"github.com/pushpullleg/renaissance/internal/tutor"
	"github.com/pushpullleg/renaissance/internal/ui/layout"
)

// Options carries everything the TUI needs. Provider may be nil; the
// tutor then answers with its offline fallback.
type Options struct {
	Log      *store.Log
	Provider llm.Provider
	Config   *config.Config
}

type headerStatsMsg struct {
	level  int
	streak int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	orch   *tutor.Orchestrator
	width  int
	height int
	level  int
	streak int
}

func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts, level: 1}

	// One chat session per app run, shared by every tutor screen visit
	// so the transcript and recap state survive navigation.
	m.orch = tutor.New(opts.Log, opts.Provider, opts.Config.User.ID, opts.Config.User.Name)

	tutorFactory := func() screen.Screen {
		return tutorview.New(opts.Log, m.orch, opts.Config.User.ID, opts.Config.User.Name)
	}
	dashboardFactory := func() screen.Screen {
		return dashboard.New(opts.Log, opts.Config.User.ID, opts.Config.User.Name)
	}
	roadmapFactory := func() screen.Screen {
		return roadmapview.New(tutorFactory, dashboardFactory)
	}
	pathFactory := func() screen.Screen {
		return pathselect.New(roadmapFactory)
	}
	onboardingFactory := func() screen.Screen {
		return onboarding.New(pathFactory)
	}

	m.router = router.New(landing.New(onboardingFactory))
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Active().Init(),
		m.refreshHeaderStats(),
	)
}

// refreshHeaderStats recomputes the level and streak shown in the
// header bar from the event log.
func (m AppModel) refreshHeaderStats() tea.Cmd {
	log := m.opts.Log
	userID := m.opts.Config.User.ID
	return func() tea.Msg {
		events := log.LoadAll(context.Background())
		snap := analytics.Summarize(events, userID, time.Now())
		return headerStatsMsg{level: snap.Level, streak: snap.StreakDays}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.level = msg.level
		m.streak = msg.streak
		return m, nil

	case router.PopScreenMsg:
		// Returning from the tutor may have changed level and streak.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshHeaderStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash renders without the frame.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.level, m.streak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
