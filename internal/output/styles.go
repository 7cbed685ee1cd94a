package output

import "github.com/charmbracelet/lipgloss"

// Styles used by the download demo
var (
	CompleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	SummaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	SpinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	DimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ColorBlue colors text blue
func ColorBlue(text string) string {
	return CompleteStyle.Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return SummaryStyle.Render(text)
}
