package theme

import "github.com/charmbracelet/lipgloss"

var (
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Green)
	Bad   = lipgloss.NewStyle().Foreground(Red)
)

// Accent styles text in the user's primary colour, falling back to Lavender.
func Accent(hex string) lipgloss.Style {
	if hex == "" {
		return lipgloss.NewStyle().Foreground(Lavender).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}

// Swatch renders a coloured dot for a subject colour.
func Swatch(hex string) string {
	if hex == "" {
		return Muted.Render("●")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}

// Goal renders a day status from the daily-goal tracker.
func Goal(status, text string) string {
	switch status {
	case "met":
		return Good.Render(text)
	case "warning":
		return Hot.Render(text)
	default:
		return Muted.Render(text)
	}
}
