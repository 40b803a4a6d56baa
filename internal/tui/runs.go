package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"ironplan/internal/service"
)

// weeksCharted is how far back the consistency chart reaches
const weeksCharted = 26

// RunsModel is the run-consistency screen: the trailing year of run
// days grouped by calendar day, charted per week
type RunsModel struct {
	progress *service.ProgressService
	days     []service.RunDay
	loading  bool
	err      error
}

// NewRunsModel creates the runs screen
func NewRunsModel(ps *service.ProgressService) RunsModel {
	return RunsModel{progress: ps, loading: true}
}

type runDaysMsg struct {
	days []service.RunDay
	err  error
}

// Init starts loading the year of run days
func (m RunsModel) Init() tea.Cmd {
	return m.load
}

func (m RunsModel) load() tea.Msg {
	days, err := m.progress.RunDays(context.Background())
	return runDaysMsg{days: days, err: err}
}

// Update handles load results and manual refresh
func (m RunsModel) Update(msg tea.Msg) (RunsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case runDaysMsg:
		m.loading = false
		m.days = msg.days
		m.err = msg.err
	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.load
		}
	}
	return m, nil
}

// View renders the consistency screen
func (m RunsModel) View() string {
	if m.loading {
		return cardStyle.Render("Loading run history...")
	}
	if m.err != nil {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			bannerStyle.Render("Strava data unavailable"),
			errorStyle.Render(m.err.Error()),
			helpStyle.Render("r retry"),
		))
	}

	sections := []string{
		cardTitleStyle.Render("Run consistency · last 12 months"),
		m.viewSummary(),
		m.viewWeeklyChart(),
		helpStyle.Render("r refresh"),
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m RunsModel) viewSummary() string {
	var meters float64
	var seconds int
	for _, d := range m.days {
		meters += d.Distance
		seconds += d.Seconds
	}

	return fmt.Sprintf("%s run days · %s km · %s",
		valueStyle.Render(fmt.Sprint(len(m.days))),
		valueStyle.Render(fmt.Sprintf("%.0f", meters/1000)),
		valueStyle.Render(service.FormatHours(float64(seconds)/3600)))
}

func (m RunsModel) viewWeeklyChart() string {
	counts := weeklyRunCounts(m.days, weeksCharted, time.Now())
	if len(m.days) == 0 {
		return mutedStyle.Render("\nNo runs recorded in the last year\n")
	}

	graph := asciigraph.Plot(counts,
		asciigraph.Height(5),
		asciigraph.Width(60),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("run days per week, oldest → newest (%d weeks)", weeksCharted)),
	)
	return "\n" + graph + "\n"
}

// weeklyRunCounts buckets run days into trailing 7-day windows ending
// today, oldest first
func weeklyRunCounts(days []service.RunDay, weeks int, now time.Time) []float64 {
	counts := make([]float64, weeks)
	for _, d := range days {
		t, err := time.ParseInLocation("2006-01-02", d.Date, time.Local)
		if err != nil {
			continue
		}
		daysAgo := int(now.Sub(t).Hours() / 24)
		if daysAgo < 0 {
			continue
		}
		weeksAgo := daysAgo / 7
		if weeksAgo >= weeks {
			continue
		}
		counts[weeks-1-weeksAgo]++
	}
	return counts
}
