package service

import "ironplan/internal/strava"

// Discipline is the training bucket an activity counts toward
type Discipline int

const (
	// DisciplineIgnored activities appear in activity lists but never
	// contribute hours
	DisciplineIgnored Discipline = iota
	DisciplineSwim
	DisciplineBike
	DisciplineRun
)

// String returns the lowercase discipline name
func (d Discipline) String() string {
	switch d {
	case DisciplineSwim:
		return "swim"
	case DisciplineBike:
		return "bike"
	case DisciplineRun:
		return "run"
	default:
		return "ignored"
	}
}

// Classify maps an activity's type/sport_type pair to a discipline.
// Total over all inputs: anything unrecognized lands in ignored, so a
// new Strava activity type never breaks aggregation.
//
// Tennis workouts count toward run; they stand in as run-equivalent
// cross-training in this plan.
func Classify(a strava.Activity) Discipline {
	switch a.Type {
	case "Swim":
		return DisciplineSwim
	case "Ride", "VirtualRide":
		return DisciplineBike
	case "Run":
		return DisciplineRun
	case "Workout":
		if a.SportType == "Tennis" {
			return DisciplineRun
		}
		return DisciplineIgnored
	default:
		// Walk and everything else
		return DisciplineIgnored
	}
}
