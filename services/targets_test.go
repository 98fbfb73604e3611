package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetForWeek(t *testing.T) {
	tests := []struct {
		week         int
		wantCalories float64
		wantProtein  float64
	}{
		{1, 2200, 75},
		{13, 2200, 75},
		{14, 2400, 85},
		{27, 2400, 85},
		{28, 2600, 95},
		{30, 2600, 95},
		{42, 2600, 95}, // past week 40 still third trimester
	}
	for _, tt := range tests {
		got := TargetForWeek(tt.week)
		assert.Equal(t, tt.wantCalories, got.Calories, "week %d", tt.week)
		assert.Equal(t, tt.wantProtein, got.Protein, "week %d", tt.week)
	}
}

func TestMicronutrientTargetsConstant(t *testing.T) {
	for _, week := range []int{5, 20, 35} {
		target := TargetForWeek(week)
		assert.Equal(t, 27.0, target.Iron)
		assert.Equal(t, 600.0, target.FolicAcid)
		assert.Equal(t, 1000.0, target.Calcium)
		assert.Equal(t, 2500.0, target.Water)
	}
}

func TestCriticalNutrients(t *testing.T) {
	crit := CriticalNutrients()
	keys := make([]string, len(crit))
	for i, c := range crit {
		keys[i] = c.Key
	}
	assert.Equal(t, []string{"iron", "folicAcid", "calcium", "omega3", "vitaminD"}, keys)

	for _, c := range crit {
		if c.Key == "omega3" {
			assert.Equal(t, 0.7, c.Threshold)
		} else {
			assert.Equal(t, 0.8, c.Threshold)
		}
	}
}
