package tui

import "github.com/charmbracelet/lipgloss"

// Colors and styles are package vars so every screen shares one palette.
// applyTheme swaps the palette in place when the dark-mode preference
// changes; styles are rebuilt because lipgloss styles capture colors at
// construction.
var (
	primaryColor lipgloss.Color
	accentColor  lipgloss.Color
	mutedColor   lipgloss.Color
	successColor lipgloss.Color
	warningColor lipgloss.Color
	errorColor   lipgloss.Color
	borderColor  lipgloss.Color

	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	helpStyle     lipgloss.Style
	selectedStyle lipgloss.Style

	appBorderStyle lipgloss.Style
	headerStyle    lipgloss.Style
	footerStyle    lipgloss.Style
)

func init() {
	applyTheme(false)
}

func applyTheme(dark bool) {
	if dark {
		primaryColor = lipgloss.Color("81")  // Light cyan
		accentColor = lipgloss.Color("213")  // Light pink
		mutedColor = lipgloss.Color("245")   // Light gray
		successColor = lipgloss.Color("114") // Soft green
		warningColor = lipgloss.Color("221") // Soft yellow
		errorColor = lipgloss.Color("203")   // Soft red
		borderColor = lipgloss.Color("104")  // Light purple
	} else {
		primaryColor = lipgloss.Color("39")  // Blue
		accentColor = lipgloss.Color("205")  // Pink
		mutedColor = lipgloss.Color("241")   // Gray
		successColor = lipgloss.Color("76")  // Green
		warningColor = lipgloss.Color("214") // Orange
		errorColor = lipgloss.Color("196")   // Red
		borderColor = lipgloss.Color("63")   // Soft purple
	}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117")) // Bright cyan
	selectedStyle = lipgloss.NewStyle().Bold(true).Background(primaryColor).Foreground(lipgloss.Color("0"))

	appBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true) // Bright yellow
}
