package service

import (
	"fmt"
	"math"
	"time"
)

// FormatHours renders an hour count for display: minutes below one
// hour, one decimal of hours otherwise. Input values are already
// rounded by the aggregator; this only formats.
func FormatHours(hours float64) string {
	if hours == 0 {
		return "0h"
	}
	if hours < 1 {
		return fmt.Sprintf("%dm", int(math.Round(hours*60)))
	}
	return fmt.Sprintf("%.1fh", hours)
}

// FormatDateRange renders a window like "Jan 15 - Jan 21"
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2"))
}
