package services

import (
	"testing"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"

	"github.com/stretchr/testify/assert"
)

func mealOf(mealType string, quantity, calories, protein float64) models.MealEntry {
	return models.MealEntry{
		MealType: mealType,
		Quantity: quantity,
		Date:     time.Now(),
		Nutrients: models.Nutrients{
			Calories: calories,
			Protein:  protein,
		},
	}
}

func TestCalculateNutritionFromMeals(t *testing.T) {
	meals := []models.MealEntry{
		mealOf(models.MealBreakfast, 1, 300, 10),
		mealOf(models.MealLunch, 2, 400, 20), // doubled by quantity
		mealOf(models.MealDinner, 0.5, 600, 30),
	}

	total := CalculateNutritionFromMeals(meals)
	assert.InDelta(t, 300+800+300, total.Calories, 1e-9)
	assert.InDelta(t, 10+40+15, total.Protein, 1e-9)
}

func TestCalculateNutritionFromMealsEmpty(t *testing.T) {
	total := CalculateNutritionFromMeals(nil)
	assert.Zero(t, total.Calories)
	assert.Zero(t, total.Protein)
	assert.Zero(t, total.Iron)
}

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{"half way", 50, 100, 50},
		{"exactly met", 100, 100, 100},
		{"capped at 100", 250, 100, 100},
		{"zero target", 50, 0, 0},
		{"zero intake", 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateProgress(tt.current, tt.target), 1e-9)
		})
	}
}

func TestIsNutrientLow(t *testing.T) {
	// default threshold is 80%
	assert.True(t, IsNutrientLow(79, 100, 0))
	assert.False(t, IsNutrientLow(80, 100, 0))

	// omega-3 style custom threshold
	assert.True(t, IsNutrientLow(69, 100, 0.7))
	assert.False(t, IsNutrientLow(70, 100, 0.7))
}

func TestCalculateAverageNutrition(t *testing.T) {
	days := []models.DailyNutrition{
		{Nutrients: models.Nutrients{Calories: 2000}, Water: 1500},
		{Nutrients: models.Nutrients{Calories: 1000}, Water: 2500},
		{}, // day with no logging pulls the average down
	}

	avg := CalculateAverageNutrition(days)
	assert.InDelta(t, 1000, avg.Calories, 1e-9)
	assert.InDelta(t, 4000.0/3, avg.Water, 1e-9)
}

func TestCalculateAverageNutritionEmpty(t *testing.T) {
	avg := CalculateAverageNutrition(nil)
	assert.Zero(t, avg.Calories)
	assert.Zero(t, avg.Water)
}
