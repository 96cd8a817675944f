package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// IsTerminal reports whether v is a file attached to a terminal
func IsTerminal(v interface{}) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Configure enables colors only when out is a terminal, NO_COLOR is unset
// and the caller did not ask for plain output. It returns whether colors
// are on.
func Configure(out io.Writer, noColor bool) bool {
	enabled := !noColor && !termenv.EnvNoColor() && IsTerminal(out)
	if enabled {
		lipgloss.SetColorProfile(termenv.NewOutput(out).EnvColorProfile())
		pterm.EnableStyling()
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
	}
	return enabled
}
