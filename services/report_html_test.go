package services

import (
	"strings"
	"testing"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReportData() *ReportData {
	start := day(2024, time.January, 4)
	end := day(2024, time.January, 15)

	meals := []models.MealEntry{
		{MealType: models.MealBreakfast, Quantity: 1, Date: end,
			Nutrients: models.Nutrients{Calories: 600}},
		{MealType: models.MealDinner, Quantity: 2, Date: end,
			Nutrients: models.Nutrients{Calories: 200}},
	}

	return &ReportData{
		User: models.User{
			Name: "Ana", GestationalWeek: 20,
			DueDate:       day(2024, time.June, 10),
			InitialWeight: 60, CurrentWeight: 63.5,
		},
		StartDate:      start,
		EndDate:        end,
		DailyNutrition: BuildDailySeries(meals, nil, start, end),
		Meals:          meals,
		Type:           ReportWeekly,
	}
}

func TestRenderReportHTMLMealChart(t *testing.T) {
	data := sampleReportData()

	html, err := RenderReportHTML(data)
	require.NoError(t, err)

	assert.Contains(t, html, "Calories by meal")
	assert.Contains(t, html, "Breakfast")
	assert.Contains(t, html, "Dinner")
	assert.NotContains(t, html, "Lunch</div>", "slots without calories are omitted")
	// 600 of 1000 total at breakfast, 400 at dinner
	assert.Contains(t, html, "60%")
	assert.Contains(t, html, "40%")
	assert.Contains(t, html, "Total: 1000 kcal")
}

func TestRenderReportHTMLNoMealsNoChart(t *testing.T) {
	data := sampleReportData()
	data.Meals = nil

	html, err := RenderReportHTML(data)
	require.NoError(t, err)
	assert.NotContains(t, html, "Calories by meal")
}

func TestRenderReportHTMLWeightTableCappedWithGain(t *testing.T) {
	data := sampleReportData()

	// 12 weigh-ins, newest first, one per day
	for i := 0; i < 12; i++ {
		data.WeightEntries = append(data.WeightEntries, models.WeightEntry{
			Weight: 63.5 - float64(i)*0.2,
			Date:   day(2024, time.January, 15).AddDate(0, 0, -i),
		})
	}

	html, err := RenderReportHTML(data)
	require.NoError(t, err)

	rendered := strings.Count(html, "<td>+") + strings.Count(html, "<td>-")
	assert.Equal(t, 10, rendered, "weight table shows at most 10 entries")

	assert.Contains(t, html, "15 Jan", "newest entry kept")
	assert.NotContains(t, html, "04 Jan</td>", "11th and 12th entries dropped")
	assert.Contains(t, html, "+3.5", "gain vs initial weight, signed")
}

func TestRenderReportHTMLPregnancyInfo(t *testing.T) {
	data := sampleReportData()

	html, err := RenderReportHTML(data)
	require.NoError(t, err)

	assert.Contains(t, html, "Due date")
	assert.Contains(t, html, "10 Jun 2024")
	assert.Contains(t, html, "Week 20 (Second Trimester)")
	assert.Contains(t, html, "Initial weight")
	assert.Contains(t, html, "60.0 kg")
	assert.Contains(t, html, "63.5 kg")
}
