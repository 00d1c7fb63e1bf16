package components

import (
	"charm.land/lipgloss/v2"

	"github.com/pushpullleg/renaissance/internal/ui/theme"
)

// StatCard renders one boxed dashboard metric.
type StatCard struct {
	Label string
	Value string
	Width int
}

// View renders the card.
func (c StatCard) View() string {
	value := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Render(c.Value)

	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render(c.Label)

	inner := lipgloss.JoinVertical(lipgloss.Center, value, label)

	return lipgloss.NewStyle().
		Width(c.Width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Align(lipgloss.Center).
		Render(inner)
}

// StatRow lays cards out horizontally.
func StatRow(cards ...StatCard) string {
	views := make([]string, len(cards))
	for i, c := range cards {
		views[i] = c.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
