package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours    float64
		expected string
	}{
		{0, "0h"},
		{0.25, "15m"},
		{0.5, "30m"},
		{0.99, "59m"},
		{1, "1.0h"},
		{1.5, "1.5h"},
		{2.25, "2.2h"},
		{10.75, "10.8h"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHours(tt.hours))
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, time.January, 21, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "Jan 15 - Jan 21", FormatDateRange(start, end))
}
