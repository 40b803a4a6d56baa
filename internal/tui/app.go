package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ironplan/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenWeek Screen = iota
	ScreenOverview
	ScreenPhases
	ScreenRuns
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	week     WeekModel
	overview OverviewModel
	phases   PhasesModel
	runs     RunsModel
	help     HelpModel

	progress *service.ProgressService

	width  int
	height int
}

// NewApp creates the app rooted at the current training week
func NewApp(progress *service.ProgressService) *App {
	return &App{
		screen:   ScreenWeek,
		progress: progress,
		week:     NewWeekModel(progress, progress.CurrentWeek()),
		overview: NewOverviewModel(progress),
		phases:   NewPhasesModel(progress),
		runs:     NewRunsModel(progress),
		help:     NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.week.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenWeek
			return a, a.week.Init()
		case "2":
			a.screen = ScreenOverview
			return a, a.overview.Init()
		case "3":
			a.screen = ScreenPhases
			return a, a.phases.Init()
		case "4":
			a.screen = ScreenRuns
			return a, a.runs.Init()
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
			}
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	var cmd tea.Cmd
	switch a.screen {
	case ScreenWeek:
		a.week, cmd = a.week.Update(msg)
	case ScreenOverview:
		a.overview, cmd = a.overview.Update(msg)
	case ScreenPhases:
		a.phases, cmd = a.phases.Update(msg)
	case ScreenRuns:
		a.runs, cmd = a.runs.Update(msg)
	case ScreenHelp:
		a.help, cmd = a.help.Update(msg)
	}
	return a, cmd
}

// View renders the current screen with shared chrome
func (a *App) View() string {
	var body string
	switch a.screen {
	case ScreenWeek:
		body = a.week.View()
	case ScreenOverview:
		body = a.overview.View()
	case ScreenPhases:
		body = a.phases.View()
	case ScreenRuns:
		body = a.runs.View()
	case ScreenHelp:
		body = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Ironman Training Tracker"),
		a.nav(),
		body,
		helpStyle.Render("1-4 screens · ? help · q quit"),
	)
}

func (a *App) nav() string {
	items := []struct {
		screen Screen
		label  string
	}{
		{ScreenWeek, "1:Week"},
		{ScreenOverview, "2:Plan"},
		{ScreenPhases, "3:Phases"},
		{ScreenRuns, "4:Runs"},
	}

	out := ""
	for i, item := range items {
		if i > 0 {
			out += "  "
		}
		if a.screen == item.screen {
			out += navActiveStyle.Render(item.label)
		} else {
			out += item.label
		}
	}
	return navStyle.Render(out)
}
