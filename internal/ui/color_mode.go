package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// SetColorMode applies the config's color setting to all lipgloss
// rendering. "auto" keeps color for a terminal and strips it for a
// pipe; NO_COLOR in the environment wins over "auto".
func SetColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		if _, noColor := os.LookupEnv("NO_COLOR"); noColor || !IsTerminal(os.Stdout) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}

// IsTerminal reports whether the file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
