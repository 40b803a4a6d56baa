package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor = lipgloss.Color("#7C3AED") // purple
	successColor = lipgloss.Color("#10B981") // green
	warningColor = lipgloss.Color("#F59E0B") // amber
	errorColor   = lipgloss.Color("#EF4444") // red
	mutedColor   = lipgloss.Color("#6B7280") // gray
	textColor    = lipgloss.Color("#F9FAFB") // light gray

	// Discipline colors, matching the usual swim/bike/run convention
	swimColor = lipgloss.Color("#3B82F6") // blue
	bikeColor = lipgloss.Color("#22C55E") // green
	runColor  = lipgloss.Color("#F97316") // orange
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	navStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warningColor).
			Border(lipgloss.NormalBorder()).
			BorderForeground(warningColor).
			Padding(0, 1).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	activePhaseStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(successColor)

	overPlanStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warningColor)

	swimStyle = lipgloss.NewStyle().Bold(true).Foreground(swimColor)
	bikeStyle = lipgloss.NewStyle().Bold(true).Foreground(bikeColor)
	runStyle  = lipgloss.NewStyle().Bold(true).Foreground(runColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
