package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	PrimaryColor   = lipgloss.Color("40")  // Grass green
	SecondaryColor = lipgloss.Color("241") // Gray
	SuccessColor   = lipgloss.Color("82")  // Green
	ErrorColor     = lipgloss.Color("196") // Red
	MutedColor     = lipgloss.Color("245") // Dimmed text
)

// Text styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			MarginTop(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	DetailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SecondaryColor)
)

// SpinnerStyle returns the style for the spinner.
func SpinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(PrimaryColor)
}
