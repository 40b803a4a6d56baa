package service

import (
	"context"
	"fmt"
	"math"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"ironplan/internal/plan"
	"ironplan/internal/strava"
)

// ActivityFetcher retrieves activities inside a date window. Satisfied
// by *strava.Client; tests substitute counting stubs.
type ActivityFetcher interface {
	ActivitiesBetween(ctx context.Context, start, end time.Time) ([]strava.Activity, error)
}

// WeeklyStats are the completed hours for one plan week, bucketed by
// discipline. Hours are rounded to 2 decimals here, once; display
// formatting downstream must not round again.
type WeeklyStats struct {
	Week       int
	Swim       float64
	Bike       float64
	Run        float64
	Total      float64
	Activities []strava.Activity

	// FetchedAt is when these stats were pulled from the feed. Cached
	// reads keep the original fetch time so staleness is visible.
	FetchedAt time.Time
}

// WeekProgress merges the planned week with what was actually done
type WeekProgress struct {
	Week      int
	Planned   plan.Week
	Completed WeeklyStats

	// Percentage is total completed vs total planned, clamped to
	// [0,100] for the aggregate bar
	Percentage float64

	// Per-discipline percentages are deliberately uncapped so
	// overtraining a discipline is visible (e.g. 150%)
	SwimPercent float64
	BikePercent float64
	RunPercent  float64

	UpdatedAt time.Time
}

// ProgressService is the aggregation engine: it resolves week windows,
// pulls activities from the remote feed, classifies them and merges the
// result with the plan
type ProgressService struct {
	fetcher ActivityFetcher
	plan    *plan.Plan
	log     *logrus.Logger
	now     func() time.Time
	cache   *gocache.Cache // nil when revalidation is disabled
}

// NewProgressService creates the service. revalidate sets how long
// fetched weekly stats stay fresh before the next call re-fetches;
// zero disables caching entirely.
func NewProgressService(fetcher ActivityFetcher, p *plan.Plan, log *logrus.Logger, revalidate time.Duration) *ProgressService {
	s := &ProgressService{
		fetcher: fetcher,
		plan:    p,
		log:     log,
		now:     time.Now,
	}
	if revalidate > 0 {
		s.cache = gocache.New(revalidate, 2*revalidate)
	}
	return s
}

// Plan returns the plan this service aggregates against
func (s *ProgressService) Plan() *plan.Plan {
	return s.plan
}

// CurrentWeek returns the plan week "today" falls in
func (s *ProgressService) CurrentWeek() int {
	return plan.CurrentWeek(s.plan.StartDate.Time, s.now(), s.plan.TotalWeeks)
}

// WeeklyStats computes completed hours for a plan week. Weeks whose
// window hasn't started yet return zero stats without touching the
// remote feed. Fetch errors propagate untouched; there is no partial
// result.
func (s *ProgressService) WeeklyStats(ctx context.Context, week int) (*WeeklyStats, error) {
	window := plan.WeekWindow(s.plan.StartDate.Time, week)

	if window.Start.After(s.now()) {
		return &WeeklyStats{Week: week, FetchedAt: s.now()}, nil
	}

	key := fmt.Sprintf("week-stats:%d", week)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached.(*WeeklyStats), nil
		}
	}

	activities, err := s.fetcher.ActivitiesBetween(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("week %d activities: %w", week, err)
	}

	stats := aggregate(week, activities)
	stats.FetchedAt = s.now()
	if s.cache != nil {
		s.cache.Set(key, stats, gocache.DefaultExpiration)
	}
	return stats, nil
}

// InvalidateWeek drops cached stats for a week so the next call
// re-fetches. Used by the UI's manual refresh.
func (s *ProgressService) InvalidateWeek(week int) {
	if s.cache != nil {
		s.cache.Delete(fmt.Sprintf("week-stats:%d", week))
	}
}

// WeekProgress combines planned and completed hours for a week
func (s *ProgressService) WeekProgress(ctx context.Context, week int) (*WeekProgress, error) {
	planned, err := s.plan.WeekPlan(week)
	if err != nil {
		return nil, err
	}

	stats, err := s.WeeklyStats(ctx, week)
	if err != nil {
		return nil, err
	}

	wp := &WeekProgress{
		Week:        week,
		Planned:     planned,
		Completed:   *stats,
		SwimPercent: percent(stats.Swim, planned.Swim),
		BikePercent: percent(stats.Bike, planned.Bike),
		RunPercent:  percent(stats.Run, planned.Run),
		UpdatedAt:   stats.FetchedAt,
	}

	// only the aggregate bar is clamped
	wp.Percentage = percent(stats.Total, planned.Total)
	if wp.Percentage > 100 {
		wp.Percentage = 100
	}

	return wp, nil
}

// WeekProgressOrNil is the presentation-facing wrapper: any failure is
// logged and swallowed so a week view can always render the planned
// side with a warning instead of nothing at all. This is the only
// place errors are absorbed.
func (s *ProgressService) WeekProgressOrNil(ctx context.Context, week int) *WeekProgress {
	wp, err := s.WeekProgress(ctx, week)
	if err != nil {
		s.log.WithError(err).WithField("week", week).Warn("falling back to planned-only week view")
		return nil
	}
	return wp
}

// RunDay is one calendar day's worth of running
type RunDay struct {
	Date       string // YYYY-MM-DD
	Distance   float64
	Seconds    int
	Activities int
}

// RunDays groups the trailing year's run activities by calendar day,
// for the consistency view. Only true Run activities count here;
// tennis cross-training contributes hours to the run bucket but is
// not a run day.
func (s *ProgressService) RunDays(ctx context.Context) ([]RunDay, error) {
	end := s.now()
	start := end.AddDate(0, 0, -365)

	activities, err := s.fetcher.ActivitiesBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("year of activities: %w", err)
	}

	byDate := make(map[string]*RunDay)
	var order []string
	for _, a := range activities {
		if a.Type != "Run" {
			continue
		}
		date := a.StartDate.Format("2006-01-02")
		day, ok := byDate[date]
		if !ok {
			day = &RunDay{Date: date}
			byDate[date] = day
			order = append(order, date)
		}
		day.Distance += a.Distance
		day.Seconds += a.MovingTime
		day.Activities++
	}

	days := make([]RunDay, 0, len(order))
	for _, date := range order {
		days = append(days, *byDate[date])
	}
	return days, nil
}

// aggregate classifies activities and sums moving time per bucket.
// Ignored activities contribute no hours but stay in the list for
// display.
func aggregate(week int, activities []strava.Activity) *WeeklyStats {
	stats := &WeeklyStats{Week: week, Activities: activities}

	var swim, bike, run float64
	for _, a := range activities {
		switch Classify(a) {
		case DisciplineSwim:
			swim += a.MovingHours()
		case DisciplineBike:
			bike += a.MovingHours()
		case DisciplineRun:
			run += a.MovingHours()
		}
	}

	stats.Swim = round2(swim)
	stats.Bike = round2(bike)
	stats.Run = round2(run)
	stats.Total = round2(swim + bike + run)
	return stats
}

func percent(completed, planned float64) float64 {
	if planned <= 0 {
		return 0
	}
	return 100 * completed / planned
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
