package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTTY returns true if stdout is a terminal that understands cursor movement
func IsTTY() bool {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// DisableColor makes every style render plain text
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
