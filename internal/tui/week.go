package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"ironplan/internal/plan"
	"ironplan/internal/service"
	"ironplan/internal/strava"
)

// WeekModel is the week screen: planned vs completed hours for one
// plan week, with discipline breakdown and the week's activity list
type WeekModel struct {
	progress *service.ProgressService

	week    int
	planned plan.Week
	noPlan  bool // requested week has no plan entry
	wp      *service.WeekProgress
	failed  bool // remote feed unavailable, planned-only view
	loading bool

	bar progress.Model
}

// NewWeekModel creates the week screen positioned at the given week
func NewWeekModel(ps *service.ProgressService, week int) WeekModel {
	return WeekModel{
		progress: ps,
		week:     week,
		loading:  true,
		bar:      progress.New(progress.WithDefaultGradient()),
	}
}

type weekLoadedMsg struct {
	week    int
	planned plan.Week
	noPlan  bool
	wp      *service.WeekProgress
}

// Init starts loading the current week
func (m WeekModel) Init() tea.Cmd {
	return m.load(m.week)
}

func (m WeekModel) load(week int) tea.Cmd {
	ps := m.progress
	return func() tea.Msg {
		msg := weekLoadedMsg{week: week}

		planned, err := ps.Plan().WeekPlan(week)
		if err != nil {
			msg.noPlan = true
			return msg
		}
		msg.planned = planned

		// nil means the feed failed; the view falls back to
		// planned-only with a banner
		msg.wp = ps.WeekProgressOrNil(context.Background(), week)
		return msg
	}
}

// Update handles navigation and load results
func (m WeekModel) Update(msg tea.Msg) (WeekModel, tea.Cmd) {
	switch msg := msg.(type) {
	case weekLoadedMsg:
		if msg.week != m.week {
			return m, nil // stale load from fast navigation
		}
		m.loading = false
		m.planned = msg.planned
		m.noPlan = msg.noPlan
		m.wp = msg.wp
		m.failed = !msg.noPlan && msg.wp == nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.week > 1 {
				m.week--
				m.loading = true
				return m, m.load(m.week)
			}
		case "right", "l":
			if m.week < m.progress.Plan().TotalWeeks {
				m.week++
				m.loading = true
				return m, m.load(m.week)
			}
		case "t":
			m.week = m.progress.CurrentWeek()
			m.loading = true
			return m, m.load(m.week)
		case "r":
			m.progress.InvalidateWeek(m.week)
			m.loading = true
			return m, m.load(m.week)
		}
	}
	return m, nil
}

// View renders the week screen
func (m WeekModel) View() string {
	p := m.progress.Plan()
	window := plan.WeekWindow(p.StartDate.Time, m.week)
	header := fmt.Sprintf("Week %d of %d  ·  %s", m.week, p.TotalWeeks,
		service.FormatDateRange(window.Start, window.End))
	if m.week == m.progress.CurrentWeek() {
		header += activePhaseStyle.Render("  (current)")
	}

	sections := []string{cardTitleStyle.Render(header)}

	if info := plan.ResolvePhase(m.week, p.Phases); info.Active {
		sections = append(sections, mutedStyle.Render(
			fmt.Sprintf("%s phase · %d weeks remaining", info.Phase.Name, info.WeeksRemaining)))
	}

	switch {
	case m.loading:
		sections = append(sections, "\nLoading week...")
	case m.noPlan:
		sections = append(sections, errorStyle.Render(
			fmt.Sprintf("\nNo training data for week %d", m.week)))
	default:
		if m.failed {
			sections = append(sections, bannerStyle.Render(
				"Strava data unavailable - showing planned hours only"))
		}
		sections = append(sections, m.viewTotals(), m.viewDisciplines())
		if m.wp != nil && len(m.wp.Completed.Activities) > 0 {
			sections = append(sections, m.viewActivities())
		}
		if m.wp != nil {
			sections = append(sections, mutedStyle.Render(
				"Updated "+humanize.Time(m.wp.UpdatedAt)))
		}
	}

	sections = append(sections, helpStyle.Render("←/→ week · t today · r refresh"))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m WeekModel) viewTotals() string {
	completed := 0.0
	pct := 0.0
	if m.wp != nil {
		completed = m.wp.Completed.Total
		pct = m.wp.Percentage
	}

	bar := m.bar.ViewAs(pct / 100)
	line := fmt.Sprintf("%s / %s planned",
		valueStyle.Render(service.FormatHours(completed)),
		service.FormatHours(m.planned.Total))

	return lipgloss.JoinVertical(lipgloss.Left, "", line, bar)
}

func (m WeekModel) viewDisciplines() string {
	rows := []struct {
		style   lipgloss.Style
		name    string
		planned float64
		done    float64
		pct     float64
	}{
		{swimStyle, "Swim", m.planned.Swim, m.completed().Swim, m.percent(service.DisciplineSwim)},
		{bikeStyle, "Bike", m.planned.Bike, m.completed().Bike, m.percent(service.DisciplineBike)},
		{runStyle, "Run", m.planned.Run, m.completed().Run, m.percent(service.DisciplineRun)},
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, row := range rows {
		pctStr := fmt.Sprintf("%3.0f%%", row.pct)
		if row.pct > 100 {
			// over plan is worth noticing, not hiding
			pctStr = overPlanStyle.Render(pctStr)
		}
		b.WriteString(fmt.Sprintf("%s %s / %s  %s\n",
			row.style.Render(labelStyle.Render(row.name)),
			service.FormatHours(row.done),
			service.FormatHours(row.planned),
			pctStr))
	}
	return b.String()
}

func (m WeekModel) completed() service.WeeklyStats {
	if m.wp == nil {
		return service.WeeklyStats{}
	}
	return m.wp.Completed
}

func (m WeekModel) percent(d service.Discipline) float64 {
	if m.wp == nil {
		return 0
	}
	switch d {
	case service.DisciplineSwim:
		return m.wp.SwimPercent
	case service.DisciplineBike:
		return m.wp.BikePercent
	case service.DisciplineRun:
		return m.wp.RunPercent
	}
	return 0
}

func (m WeekModel) viewActivities() string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("Activities") + "\n")
	for _, a := range m.wp.Completed.Activities {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			mutedStyle.Render(a.StartDate.Format("Mon Jan 2")),
			disciplineTag(a),
			a.Name))
	}
	return b.String()
}

func disciplineTag(a strava.Activity) string {
	switch service.Classify(a) {
	case service.DisciplineSwim:
		return swimStyle.Render("swim")
	case service.DisciplineBike:
		return bikeStyle.Render("bike")
	case service.DisciplineRun:
		return runStyle.Render(" run")
	default:
		return mutedStyle.Render("  - ")
	}
}
