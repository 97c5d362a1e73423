package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var helpTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4"))

var helpHintStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#555555"))

var helpStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7D56F4")).
	Padding(1, 3)

// RenderHelp returns the help overlay listing every binding in keys.
func RenderHelp(h help.Model, keys help.KeyMap, width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("svi keys"),
		"",
		h.FullHelpView(keys.FullHelp()),
		"",
		helpHintStyle.Render("Esc or F1 to close"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, helpStyle.Render(body))
}
