package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the keybinding reference screen
type HelpModel struct{}

// NewHelpModel creates the help screen
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init is a no-op
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the app handles esc
func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	return m, nil
}

// View renders the keybindings
func (m HelpModel) View() string {
	rows := [][2]string{
		{"1", "week view (planned vs completed)"},
		{"2", "plan overview"},
		{"3", "phase progress"},
		{"4", "run consistency"},
		{"←/→, h/l", "previous / next week"},
		{"t", "jump to the current week"},
		{"r", "refresh this week from Strava"},
		{"?", "this help"},
		{"esc", "back"},
		{"q", "quit"},
	}

	out := cardTitleStyle.Render("Keybindings") + "\n"
	for _, row := range rows {
		out += labelStyle.Render(row[0]) + row[1] + "\n"
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, out))
}
