package services

import (
	"testing"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDateRangeForType(t *testing.T) {
	now := time.Date(2024, time.January, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name       string
		reportType string
		week       int
		wantStart  time.Time
	}{
		{"weekly", ReportWeekly, 10, day(2024, time.January, 9)},
		{"monthly", ReportMonthly, 10, day(2023, time.December, 17)},
		{"trimester in first", ReportTrimester, 10, day(2023, time.October, 17)},  // 13 weeks
		{"trimester in second", ReportTrimester, 20, day(2023, time.October, 10)}, // 14 weeks
		{"trimester in third", ReportTrimester, 30, day(2023, time.October, 17)},  // 13 weeks
		{"unknown type falls back to weekly", "bogus", 10, day(2024, time.January, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := DateRangeForType(tt.reportType, tt.week, now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, day(2024, time.January, 15), end, "end is always today's midnight")
		})
	}
}

func TestBuildDailySeries(t *testing.T) {
	start := day(2024, time.January, 9)
	end := day(2024, time.January, 15)

	meals := []models.MealEntry{
		{MealType: models.MealLunch, Quantity: 1, Date: day(2024, time.January, 10).Add(12 * time.Hour),
			Nutrients: models.Nutrients{Calories: 500}},
		{MealType: models.MealDinner, Quantity: 2, Date: day(2024, time.January, 10).Add(19 * time.Hour),
			Nutrients: models.Nutrients{Calories: 300}},
		{MealType: models.MealBreakfast, Quantity: 1, Date: day(2024, time.January, 14),
			Nutrients: models.Nutrients{Calories: 400}},
	}
	hydration := []models.HydrationEntry{
		{Amount: 500, Date: day(2024, time.January, 10).Add(8 * time.Hour)},
		{Amount: 750, Date: day(2024, time.January, 10).Add(16 * time.Hour)},
	}

	series := BuildDailySeries(meals, hydration, start, end)
	assert.Len(t, series, 7, "one row per calendar day, inclusive range")

	assert.Equal(t, day(2024, time.January, 9), series[0].Date)
	assert.Zero(t, series[0].Calories, "day without meals is a zero row")

	assert.InDelta(t, 1100, series[1].Calories, 1e-9, "500 + 2x300 on Jan 10")
	assert.InDelta(t, 1250, series[1].Water, 1e-9)

	assert.InDelta(t, 400, series[5].Calories, 1e-9)
	assert.Zero(t, series[6].Calories)
}

func TestWeeklyAverageOverSparseDays(t *testing.T) {
	start := day(2024, time.January, 9)
	end := day(2024, time.January, 15)

	// 13700 kcal logged across the week.
	var meals []models.MealEntry
	for i, cal := range []float64{2000, 1800, 2200, 1900, 2100, 2000, 1700} {
		meals = append(meals, models.MealEntry{
			MealType: models.MealLunch, Quantity: 1,
			Date:      start.AddDate(0, 0, i),
			Nutrients: models.Nutrients{Calories: cal},
		})
	}

	series := BuildDailySeries(meals, nil, start, end)
	avg := CalculateAverageNutrition(series)
	assert.InDelta(t, 1957.14, avg.Calories, 0.01)
}

func TestHasNutritionData(t *testing.T) {
	assert.False(t, HasNutritionData(nil))
	assert.False(t, HasNutritionData([]models.DailyNutrition{{}, {Water: 2000}}))
	assert.True(t, HasNutritionData([]models.DailyNutrition{{}, {Nutrients: models.Nutrients{Calories: 1}}}))
}

func TestAnalyzePatternsBreakfastHeavy(t *testing.T) {
	meals := []models.MealEntry{
		mealOf(models.MealBreakfast, 1, 800, 0), // 40% of 2000
		mealOf(models.MealLunch, 1, 700, 0),
		mealOf(models.MealDinner, 1, 500, 0), // 25%, dinner not low
	}
	days := []models.DailyNutrition{
		{Nutrients: models.Nutrients{Calories: 2000}, Water: 2200},
	}

	patterns := AnalyzePatterns(days, meals)
	assert.Contains(t, patterns, "High calorie intake at breakfast")
	assert.NotContains(t, patterns, "Low calorie intake at dinner")
	assert.NotContains(t, patterns, "Low average water intake")
}

func TestAnalyzePatternsLightDinner(t *testing.T) {
	meals := []models.MealEntry{
		mealOf(models.MealBreakfast, 1, 600, 0), // 30%
		mealOf(models.MealLunch, 1, 1100, 0),
		mealOf(models.MealDinner, 1, 300, 0), // 15% < 20%
	}
	days := []models.DailyNutrition{
		{Nutrients: models.Nutrients{Calories: 2000}, Water: 2500},
	}

	patterns := AnalyzePatterns(days, meals)
	assert.Contains(t, patterns, "Low calorie intake at dinner")
	assert.NotContains(t, patterns, "High calorie intake at breakfast")
}

func TestAnalyzePatternsVariance(t *testing.T) {
	// mean 1750, stddev 750, ratio ~0.43 > 0.3
	days := []models.DailyNutrition{
		{Nutrients: models.Nutrients{Calories: 1000}, Water: 2500},
		{Nutrients: models.Nutrients{Calories: 2500}, Water: 2500},
	}
	patterns := AnalyzePatterns(days, nil)
	assert.Contains(t, patterns, "Significant day-to-day variation in calorie intake")

	// steady intake stays quiet
	steady := []models.DailyNutrition{
		{Nutrients: models.Nutrients{Calories: 2000}, Water: 2500},
		{Nutrients: models.Nutrients{Calories: 2100}, Water: 2500},
	}
	patterns = AnalyzePatterns(steady, nil)
	assert.NotContains(t, patterns, "Significant day-to-day variation in calorie intake")
}

func TestAnalyzePatternsLowWater(t *testing.T) {
	days := []models.DailyNutrition{
		{Nutrients: models.Nutrients{Calories: 2000}, Water: 1200},
		{Nutrients: models.Nutrients{Calories: 2000}, Water: 1800},
	}
	patterns := AnalyzePatterns(days, nil)
	assert.Contains(t, patterns, "Low average water intake")
}

func TestAnalyzePatternsEmptySeries(t *testing.T) {
	assert.Empty(t, AnalyzePatterns(nil, nil))
}

func TestGenerateRecommendationsLowNutrients(t *testing.T) {
	targets := TargetForWeek(20)

	// good macros, but iron way below 80% of target
	avg := models.DailyNutrition{
		Nutrients: models.Nutrients{
			Calories: 2400, Protein: 90,
			Iron: 10, FolicAcid: 600, Calcium: 1000, Omega3: 200, VitaminD: 15,
		},
		Water: 2500,
	}

	recs := GenerateRecommendations(avg, targets)
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Iron")
}

func TestGenerateRecommendationsProteinAndWater(t *testing.T) {
	targets := TargetForWeek(20) // protein target 85

	avg := models.DailyNutrition{
		Nutrients: models.Nutrients{
			Protein: 70, // < 90% of 85
			Iron:    27, FolicAcid: 600, Calcium: 1000, Omega3: 200, VitaminD: 15,
		},
		Water: 1500,
	}

	recs := GenerateRecommendations(avg, targets)
	assert.Len(t, recs, 2)
	assert.Contains(t, recs[0], "protein")
	assert.Contains(t, recs[1], "water")
}

func TestGenerateRecommendationsNeverEmpty(t *testing.T) {
	targets := TargetForWeek(20)
	avg := models.DailyNutrition{
		Nutrients: models.Nutrients{
			Calories: 2400, Protein: 85, Carbs: 300, Fat: 80,
			Iron: 27, FolicAcid: 600, Calcium: 1000, Omega3: 200, VitaminD: 15,
		},
		Water: 2500,
	}

	recs := GenerateRecommendations(avg, targets)
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Keep up")
}
