package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"ironplan/internal/plan"
	"ironplan/internal/service"
)

// OverviewModel is the plan overview screen: planned weekly volume
// across the whole plan, grouped by phase. Pure plan data, no remote
// calls.
type OverviewModel struct {
	progress *service.ProgressService
}

// NewOverviewModel creates the overview screen
func NewOverviewModel(ps *service.ProgressService) OverviewModel {
	return OverviewModel{progress: ps}
}

// Init is a no-op; the overview renders from the static plan
func (m OverviewModel) Init() tea.Cmd {
	return nil
}

// Update is a no-op
func (m OverviewModel) Update(msg tea.Msg) (OverviewModel, tea.Cmd) {
	return m, nil
}

// View renders the plan overview
func (m OverviewModel) View() string {
	p := m.progress.Plan()
	currentWeek := m.progress.CurrentWeek()

	sections := []string{
		cardTitleStyle.Render(fmt.Sprintf("%d-week plan · started %s · %d phases",
			p.TotalWeeks, p.StartDate.Format("Jan 2, 2006"), len(p.Phases))),
		m.viewVolumeChart(p),
		m.viewPhaseGroups(p, currentWeek),
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// viewVolumeChart plots planned weekly hours over the whole plan
func (m OverviewModel) viewVolumeChart(p *plan.Plan) string {
	totals := make([]float64, len(p.Weeks))
	for i, w := range p.Weeks {
		totals[i] = w.Total
	}

	graph := asciigraph.Plot(totals,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
		asciigraph.Caption("planned hours per week"),
	)
	return "\n" + graph + "\n"
}

// viewPhaseGroups lists each phase with its week range and hour totals
func (m OverviewModel) viewPhaseGroups(p *plan.Plan, currentWeek int) string {
	var b strings.Builder

	for _, ph := range p.Phases {
		var hours float64
		for _, w := range p.Weeks {
			if w.Week >= ph.Weeks[0] && w.Week <= ph.Weeks[1] {
				hours += w.Total
			}
		}

		name := ph.Name
		active := currentWeek >= ph.Weeks[0] && currentWeek <= ph.Weeks[1]
		if active {
			name = activePhaseStyle.Render(name + " ←")
		}

		b.WriteString(fmt.Sprintf("%s  weeks %d-%d · %s\n",
			labelStyle.Render(name), ph.Weeks[0], ph.Weeks[1],
			service.FormatHours(hours)))
		if ph.Description != "" {
			b.WriteString(mutedStyle.Render("              "+ph.Description) + "\n")
		}
	}

	return b.String()
}
