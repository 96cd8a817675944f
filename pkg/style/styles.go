package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	NameStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)
)

// Bold renders s in bold
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
