package strava

import "time"

// Activity is a summary activity as returned by the Strava API.
// Records are read-only for the life of one fetch and never persisted.
type Activity struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`       // Ride, Swim, Run, Walk, Workout, VirtualRide, ...
	SportType   string    `json:"sport_type"` // subtype, e.g. Tennis for a Workout
	StartDate   time.Time `json:"start_date"`
	Distance    float64   `json:"distance"`     // meters
	MovingTime  int       `json:"moving_time"`  // seconds
	ElapsedTime int       `json:"elapsed_time"` // seconds
}

// MovingHours returns the moving time in hours
func (a Activity) MovingHours() float64 {
	return float64(a.MovingTime) / 3600
}
