package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ironplan/internal/strava"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		actType   string
		sportType string
		want      Discipline
	}{
		{"swim", "Swim", "Swim", DisciplineSwim},
		{"ride", "Ride", "Ride", DisciplineBike},
		{"virtual ride", "VirtualRide", "VirtualRide", DisciplineBike},
		{"run", "Run", "Run", DisciplineRun},
		{"tennis workout counts as run", "Workout", "Tennis", DisciplineRun},
		{"plain workout", "Workout", "Workout", DisciplineIgnored},
		{"yoga workout", "Workout", "Yoga", DisciplineIgnored},
		{"walk", "Walk", "Walk", DisciplineIgnored},
		{"walk with odd subtype", "Walk", "Tennis", DisciplineIgnored},
		{"hike", "Hike", "Hike", DisciplineIgnored},
		{"unknown future type", "KiteSurf", "KiteSurf", DisciplineIgnored},
		{"empty type", "", "", DisciplineIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := strava.Activity{Type: tt.actType, SportType: tt.sportType}
			assert.Equal(t, tt.want, Classify(a))
		})
	}
}

func TestDisciplineString(t *testing.T) {
	assert.Equal(t, "swim", DisciplineSwim.String())
	assert.Equal(t, "bike", DisciplineBike.String())
	assert.Equal(t, "run", DisciplineRun.String())
	assert.Equal(t, "ignored", DisciplineIgnored.String())
	assert.Equal(t, "ignored", Discipline(42).String())
}
