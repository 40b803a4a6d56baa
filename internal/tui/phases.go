package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ironplan/internal/plan"
	"ironplan/internal/service"
)

// PhasesModel shows where the athlete sits in the phase structure
type PhasesModel struct {
	progress *service.ProgressService
	bar      progress.Model
}

// NewPhasesModel creates the phases screen
func NewPhasesModel(ps *service.ProgressService) PhasesModel {
	return PhasesModel{
		progress: ps,
		bar:      progress.New(progress.WithDefaultGradient()),
	}
}

// Init is a no-op; everything derives from the plan and the clock
func (m PhasesModel) Init() tea.Cmd {
	return nil
}

// Update is a no-op
func (m PhasesModel) Update(msg tea.Msg) (PhasesModel, tea.Cmd) {
	return m, nil
}

// View renders the active phase panel and the full phase list
func (m PhasesModel) View() string {
	p := m.progress.Plan()
	week := m.progress.CurrentWeek()
	info := plan.ResolvePhase(week, p.Phases)

	var sections []string
	if info.Active {
		sections = append(sections,
			cardTitleStyle.Render("Current phase: "+info.Phase.Name),
			mutedStyle.Render(info.Phase.Description),
			"",
			m.bar.ViewAs(info.Progress/100),
			fmt.Sprintf("%.0f%% through the phase · %d weeks remaining",
				info.Progress, info.WeeksRemaining),
			"",
		)
	} else {
		// no phase covers this week; show the list without a panel
		sections = append(sections,
			mutedStyle.Render("Week "+fmt.Sprint(week)+" is outside every phase"),
			"",
		)
	}

	sections = append(sections, m.viewPhaseList(p, week))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m PhasesModel) viewPhaseList(p *plan.Plan, currentWeek int) string {
	var b strings.Builder
	for _, ph := range p.Phases {
		marker := "  "
		name := ph.Name
		switch {
		case currentWeek > ph.Weeks[1]:
			marker = mutedStyle.Render("✓ ")
			name = mutedStyle.Render(name)
		case currentWeek >= ph.Weeks[0]:
			marker = activePhaseStyle.Render("→ ")
			name = activePhaseStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s  weeks %d-%d\n", marker, name, ph.Weeks[0], ph.Weeks[1]))
	}
	return b.String()
}
