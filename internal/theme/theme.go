package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette used for terminal output.
type Theme struct {
	Accent lipgloss.Color
	Subtle lipgloss.Color
	Text   lipgloss.Color
	Dim    lipgloss.Color
	Debug  lipgloss.Color
	Info   lipgloss.Color
	Warn   lipgloss.Color
	Error  lipgloss.Color
}

// DefaultTheme returns the default color palette (catppuccin-inspired).
func DefaultTheme() Theme {
	return Theme{
		Accent: lipgloss.Color("#cba6f7"),
		Subtle: lipgloss.Color("#6c7086"),
		Text:   lipgloss.Color("#cdd6f4"),
		Dim:    lipgloss.Color("#585b70"),
		Debug:  lipgloss.Color("#89b4fa"),
		Info:   lipgloss.Color("#a6e3a1"),
		Warn:   lipgloss.Color("#f9e2af"),
		Error:  lipgloss.Color("#f38ba8"),
	}
}
