package plan

import "time"

// Window is the concrete 7-day calendar range for a plan week.
// Start is the week's Monday at local midnight; End is the following
// Sunday at 23:59:59, so activity timestamps anywhere on the last day
// still fall inside the window.
type Window struct {
	Start time.Time
	End   time.Time
	Week  int
}

// PhaseInfo describes where a week sits within its phase
type PhaseInfo struct {
	Phase          Phase
	Active         bool
	WeeksRemaining int
	Progress       float64 // 0-100, percent of the phase elapsed
}

// midnight truncates t to the start of its local calendar day
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b. Both dates are
// re-anchored in UTC first so a DST transition inside the span can't
// shave the difference below a multiple of 24h and undercount a day.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// WeekWindow resolves a plan week number to its calendar window.
// Week 1 starts exactly on the plan start date; each week spans
// Monday through Sunday. Pure local-date arithmetic, no timezone
// conversion, so week boundaries never drift by a day.
func WeekWindow(startDate time.Time, week int) Window {
	start := midnight(startDate).AddDate(0, 0, (week-1)*7)
	end := start.AddDate(0, 0, 6)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())
	return Window{Start: start, End: end, Week: week}
}

// CurrentWeek computes which plan week "today" falls in, clamped to
// [1, totalWeeks]. Whole calendar days are counted between local
// midnights and truncated, never rounded.
func CurrentWeek(startDate, today time.Time, totalWeeks int) int {
	week := daysBetween(startDate, today)/7 + 1
	if week < 1 {
		return 1
	}
	if week > totalWeeks {
		return totalWeeks
	}
	return week
}

// ResolvePhase finds the phase whose inclusive week range contains the
// given week. A week no phase covers yields an inactive PhaseInfo with
// zero progress; callers should skip the phase panel in that case.
func ResolvePhase(week int, phases []Phase) PhaseInfo {
	for _, ph := range phases {
		if week >= ph.Weeks[0] && week <= ph.Weeks[1] {
			length := ph.Weeks[1] - ph.Weeks[0] + 1
			progress := 100 * float64(week-ph.Weeks[0]+1) / float64(length)
			if progress < 0 {
				progress = 0
			}
			if progress > 100 {
				progress = 100
			}
			remaining := ph.Weeks[1] - week
			if remaining < 0 {
				remaining = 0
			}
			return PhaseInfo{
				Phase:          ph,
				Active:         true,
				WeeksRemaining: remaining,
				Progress:       progress,
			}
		}
	}
	return PhaseInfo{}
}
