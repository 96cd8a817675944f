package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// RenderHeader renders a section header line
func RenderHeader(title string) string {
	return HeaderStyle.Render(title)
}

// RenderError renders an error line for stderr
func RenderError(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
}

// RenderPrompt renders the text shown while waiting for input
func RenderPrompt(prompt string) string {
	return InfoStyle.Render(prompt)
}

// RenderMenu renders the menu entries as a bullet list
func RenderMenu(entries []string) string {
	items := make([]pterm.BulletListItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, pterm.BulletListItem{Level: 0, Text: entry})
	}

	out, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return strings.Join(entries, "\n") + "\n"
	}
	return out
}

// RenderNames renders a list of variant names with their aliases
func RenderNames(names []string, aliases map[string][]string) string {
	var b strings.Builder
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(NameStyle.Render(name))
		if a := aliases[name]; len(a) > 0 {
			b.WriteString(" ")
			b.WriteString(MutedStyle.Render("(" + strings.Join(a, ", ") + ")"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
