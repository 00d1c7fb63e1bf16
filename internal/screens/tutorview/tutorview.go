// Package tutorview is the Adaptive AI Tutor panel: the 5-question
// check-up wizard on top and the tutor chat underneath.
package tutorview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pushpullleg/renaissance/internal/assessment"
	"github.com/pushpullleg/renaissance/internal/screen"
	"github.com/pushpullleg/renaissance/internal/store"
	"github.com/pushpullleg/renaissance/internal/tutor"
	"github.com/pushpullleg/renaissance/internal/ui/components"
	"github.com/pushpullleg/renaissance/internal/ui/layout"
	"github.com/pushpullleg/renaissance/internal/ui/theme"
)

// chatHistoryLines caps how many transcript lines the chat panel shows.
const chatHistoryLines = 10

type profileLoadedMsg struct {
	latest assessment.LatestResult
	ok     bool
}

type chatReplyMsg struct {
	err error
}

type recapMsg struct {
	injected bool
	err      error
}

// TutorScreen drives the assessment wizard and the chat.
type TutorScreen struct {
	log      *store.Log
	sess     *assessment.Session
	orch     *tutor.Orchestrator
	userID   string
	userName string

	choice components.MultiChoice
	input  components.TextInput

	latest    assessment.LatestResult
	hasLatest bool
	loaded    bool

	summary *assessment.Summary // set when the wizard just finished

	focusChat bool
	thinking  bool
	errMsg    string
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates the tutor screen.
func New(log *store.Log, orch *tutor.Orchestrator, userID, userName string) *TutorScreen {
	return &TutorScreen{
		log:      log,
		sess:     assessment.NewSession(log, userID),
		orch:     orch,
		userID:   userID,
		userName: userName,
		input:    components.NewTextInput("Type your question for the tutor...", 200),
	}
}

func (s *TutorScreen) Title() string {
	return "Adaptive AI Tutor"
}

func (s *TutorScreen) Init() tea.Cmd {
	return tea.Batch(
		s.loadProfile(),
		s.input.Init(),
	)
}

func (s *TutorScreen) loadProfile() tea.Cmd {
	return func() tea.Msg {
		events := s.log.LoadAll(context.Background())
		latest, ok := assessment.LatestSummary(events, s.userID)
		return profileLoadedMsg{latest: latest, ok: ok}
	}
}

func (s *TutorScreen) KeyHints() []layout.KeyHint {
	if s.focusChat {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Ctrl+R", Description: "Practice recap"},
			{Key: "Tab", Description: "Assessment"},
			{Key: "Esc", Description: "Back"},
		}
	}
	switch s.sess.Stage() {
	case assessment.StageQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Options"},
			{Key: "Enter", Description: "Next"},
			{Key: "B", Description: "Back"},
			{Key: "Tab", Description: "Chat"},
		}
	case assessment.StageSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Tab", Description: "Chat"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "S", Description: "Start check-up"},
			{Key: "Tab", Description: "Chat"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		s.latest = msg.latest
		s.hasLatest = msg.ok
		s.loaded = true
		return s, nil

	case chatReplyMsg:
		s.thinking = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		return s, nil

	case recapMsg:
		s.thinking = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focusChat {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *TutorScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		s.focusChat = !s.focusChat
		return s, nil
	case "ctrl+r":
		return s.injectRecap()
	}

	if s.focusChat {
		if msg.String() == "enter" {
			return s.sendChat()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch s.sess.Stage() {
	case assessment.StageIntro:
		switch msg.String() {
		case "s", "enter":
			s.summary = nil
			s.sess.Start()
			s.setChoice()
		case "p":
			return s.injectRecap()
		}

	case assessment.StageQuestion:
		switch msg.String() {
		case "b", "left":
			if s.sess.Back() {
				s.setChoice()
			}
		case "enter":
			return s.submitAnswer()
		default:
			var cmd tea.Cmd
			s.choice, cmd = s.choice.Update(msg)
			return s, cmd
		}

	case assessment.StageSummary:
		if msg.String() == "enter" {
			s.sess = assessment.NewSession(s.log, s.userID)
			return s, s.loadProfile()
		}
	}

	return s, nil
}

func (s *TutorScreen) setChoice() {
	q := s.sess.Question()
	label := fmt.Sprintf("Question %d of %d: %s", s.sess.Index()+1, s.sess.Count(), q.Text)
	s.choice = components.NewMultiChoice(label, q.Options[:])
}

func (s *TutorScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	summary, err := s.sess.Answer(context.Background(), s.choice.Selected)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if summary != nil {
		s.summary = summary
		return s, nil
	}
	s.setChoice()
	return s, nil
}

func (s *TutorScreen) sendChat() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(s.input.Value())
	if text == "" || s.thinking {
		return s, nil
	}
	s.input.Reset()
	s.thinking = true
	return s, func() tea.Msg {
		_, err := s.orch.Send(context.Background(), text)
		return chatReplyMsg{err: err}
	}
}

func (s *TutorScreen) injectRecap() (screen.Screen, tea.Cmd) {
	if s.thinking {
		return s, nil
	}
	s.thinking = true
	return s, func() tea.Msg {
		_, injected, err := s.orch.InjectRecap(context.Background())
		return recapMsg{injected: injected, err: err}
	}
}

func (s *TutorScreen) View(width, height int) string {
	var b strings.Builder

	greeting := fmt.Sprintf(
		"Hi %s, I'm your tutor for the Data Engineer Roadmap. I'll ask a few quick questions to estimate your level and then suggest what to learn next.",
		s.userName,
	)
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width - 4).
		Render(greeting) + "\n\n")

	switch s.sess.Stage() {
	case assessment.StageQuestion:
		b.WriteString(s.choice.View())
	case assessment.StageSummary:
		b.WriteString(s.renderSummary(width))
	default:
		b.WriteString(s.renderIntro(width))
	}

	b.WriteString("\n" + lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(0, width-4))) + "\n")

	b.WriteString(s.renderChat(width))

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Error: "+s.errMsg))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *TutorScreen) renderIntro(width int) string {
	if !s.loaded {
		return theme.Hint.Render("Loading your profile...")
	}

	if !s.hasLatest {
		first := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("First time here? Let's run a quick 5-question check-up.")
		sub := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("It will help me understand your current skills and customize your roadmap.")
		return first + "\n" + sub
	}

	label := assessment.LevelLabels[s.latest.Level]
	back := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Welcome back! Your current Data Engineer level is ") +
		lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(fmt.Sprintf("L%d – %s", s.latest.Level, label))

	out := back
	if s.latest.Primary != "" {
		sec := "None yet"
		if len(s.latest.Secondary) > 0 {
			sec = strings.Join(s.latest.Secondary, ", ")
		}
		focus := fmt.Sprintf("Focus next: %s\nAlso explore: %s", s.latest.Primary, sec)
		out += "\n" + theme.Card.Width(min(width-6, 70)).Render(focus)
	}
	out += "\n" + theme.Hint.Render("S to update your level · P for practice & retention")
	return out
}

func (s *TutorScreen) renderSummary(width int) string {
	label := assessment.LevelLabels[s.summary.Level]
	head := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Great job! Your current Data Engineer level is ") +
		lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(fmt.Sprintf("L%d – %s", s.summary.Level, label))

	out := head
	if s.summary.Primary != "" {
		sec := "None yet"
		if len(s.summary.Secondary) > 0 {
			sec = strings.Join(s.summary.Secondary, ", ")
		}
		focus := fmt.Sprintf("Focus next: %s\nAlso explore: %s", s.summary.Primary, sec)
		out += "\n" + theme.Card.Width(min(width-6, 70)).Render(focus)
	}
	return out
}

func (s *TutorScreen) renderChat(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Chat with your tutor") + "\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Ask questions about the roadmap, topics, or your next steps.") + "\n\n")

	transcript := s.orch.Transcript()
	var lines []string
	for _, t := range transcript {
		speaker := "You"
		style := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		if t.Role == "assistant" {
			speaker = "Tutor"
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		body := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width - 12).
			Render(t.Content)
		lines = append(lines, style.Render(speaker+": ")+body)
	}
	if len(lines) > chatHistoryLines {
		lines = lines[len(lines)-chatHistoryLines:]
	}
	b.WriteString(strings.Join(lines, "\n"))
	if len(lines) > 0 {
		b.WriteString("\n")
	}

	if s.thinking {
		b.WriteString(theme.Hint.Render("Thinking...") + "\n")
	}

	b.WriteString("\n" + s.input.View())
	return b.String()
}
