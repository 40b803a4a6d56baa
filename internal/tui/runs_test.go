package tui

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"ironplan/internal/plan"
	"ironplan/internal/service"
	"ironplan/internal/strava"
)

type stubFetcher struct {
	activities []strava.Activity
	err        error
}

func (f *stubFetcher) ActivitiesBetween(ctx context.Context, start, end time.Time) ([]strava.Activity, error) {
	return f.activities, f.err
}

func runsTestPlan() *plan.Plan {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	return &plan.Plan{
		StartDate:  plan.Date{Time: start},
		TotalWeeks: 49,
		Phases:     []plan.Phase{{Name: "Base", Weeks: [2]int{1, 49}}},
		Weeks:      []plan.Week{{Week: 1, Swim: 2, Bike: 5.5, Run: 2.5, Total: 10}},
	}
}

func newRunsModel(f *stubFetcher) RunsModel {
	log := logrus.New()
	log.SetOutput(io.Discard)
	ps := service.NewProgressService(f, runsTestPlan(), log, 0)
	return NewRunsModel(ps)
}

func TestRunsScreenLoadsRunDays(t *testing.T) {
	now := time.Now()
	f := &stubFetcher{activities: []strava.Activity{
		{ID: 1, Type: "Run", StartDate: now.AddDate(0, 0, -1), Distance: 5000, MovingTime: 1800},
		{ID: 2, Type: "Run", StartDate: now.AddDate(0, 0, -8), Distance: 10000, MovingTime: 3600},
		{ID: 3, Type: "Ride", StartDate: now.AddDate(0, 0, -2), Distance: 40000, MovingTime: 5400},
	}}
	m := newRunsModel(f)

	msg := m.load()
	loaded, ok := msg.(runDaysMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	require.Len(t, loaded.days, 2)

	m, _ = m.Update(msg)
	view := m.View()
	require.Contains(t, view, "Run consistency")
	require.Contains(t, view, "2")
	require.Contains(t, view, "run days per week")
}

func TestRunsScreenShowsError(t *testing.T) {
	f := &stubFetcher{err: errors.New("boom")}
	m := newRunsModel(f)

	m, _ = m.Update(m.load())
	view := m.View()
	require.Contains(t, view, "Strava data unavailable")
	require.Contains(t, view, "r retry")
}

func TestRunsScreenEmptyHistory(t *testing.T) {
	m := newRunsModel(&stubFetcher{})

	m, _ = m.Update(m.load())
	require.Contains(t, m.View(), "No runs recorded in the last year")
}

func TestWeeklyRunCounts(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}
	days := []service.RunDay{
		{Date: day(0)},
		{Date: day(3)},
		{Date: day(7)},
		{Date: day(10)},
		{Date: day(100)}, // beyond the charted window
	}

	counts := weeklyRunCounts(days, 4, now)
	require.Len(t, counts, 4)
	require.Equal(t, 2.0, counts[3]) // current week
	require.Equal(t, 2.0, counts[2]) // one week back
	require.Equal(t, 0.0, counts[1])
	require.Equal(t, 0.0, counts[0])
}

func TestAppNavigatesToRunsScreen(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	ps := service.NewProgressService(&stubFetcher{}, runsTestPlan(), log, 0)
	a := NewApp(ps)

	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	app, ok := model.(*App)
	require.True(t, ok)
	require.Equal(t, ScreenRuns, app.screen)
	require.NotNil(t, cmd)
}
