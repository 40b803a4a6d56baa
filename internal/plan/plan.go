package plan

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

//go:embed training-plan.json
var defaultPlan []byte

// ErrWeekNotFound is returned when a requested week number has no plan entry
var ErrWeekNotFound = errors.New("no plan entry for week")

// Plan is the static prescribed training schedule
type Plan struct {
	StartDate  Date    `json:"startDate"`
	TotalWeeks int     `json:"totalWeeks"`
	Phases     []Phase `json:"phases"`
	Weeks      []Week  `json:"weeks"`
}

// Phase is a named contiguous sub-range of plan weeks
type Phase struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Weeks       [2]int `json:"weeks"` // [start, end], inclusive
}

// Week holds the planned hours per discipline for one plan week
type Week struct {
	Week  int     `json:"week"`
	Swim  float64 `json:"swim"`
	Bike  float64 `json:"bike"`
	Run   float64 `json:"run"`
	Total float64 `json:"total"`
}

// Date is a calendar date with no time-of-day component.
// It unmarshals from "2006-01-02" in the local timezone so week
// boundary arithmetic stays on local midnights.
type Date struct {
	time.Time
}

// UnmarshalJSON parses a "YYYY-MM-DD" string
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return fmt.Errorf("parsing plan date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date as "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

// Default returns the embedded 49-week Ironman plan
func Default() (*Plan, error) {
	return parse(defaultPlan)
}

// Load reads a plan document from a JSON file
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	if p.TotalWeeks < 1 {
		return nil, errors.New("plan has no weeks")
	}
	return &p, nil
}

// WeekPlan returns the planned hours for the given week number.
// Returns ErrWeekNotFound for week numbers the plan doesn't cover,
// so callers can render "no data" instead of failing outright.
func (p *Plan) WeekPlan(week int) (Week, error) {
	for _, w := range p.Weeks {
		if w.Week == week {
			return w, nil
		}
	}
	return Week{}, fmt.Errorf("%w %d", ErrWeekNotFound, week)
}
