package services

import (
	"fmt"
	"math"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

const (
	ReportWeekly    = "weekly"
	ReportMonthly   = "monthly"
	ReportTrimester = "trimester"
)

// ReportData is the snapshot a single render works from. Assembled at
// generation time, never persisted.
type ReportData struct {
	User           models.User             `json:"user"`
	StartDate      time.Time               `json:"start_date"`
	EndDate        time.Time               `json:"end_date"`
	DailyNutrition []models.DailyNutrition `json:"daily_nutrition"`
	WeightEntries  []models.WeightEntry    `json:"weight_entries"`
	Meals          []models.MealEntry      `json:"meals"`
	Type           string                  `json:"type"`
}

type ReportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

// DateRangeForType maps a report type to its inclusive date range, both
// ends truncated to midnight. Weekly is the trailing 7 days, monthly the
// trailing 30. Trimester subtracts the length of the user's *current*
// trimester (13/14/13 weeks) even if the range crosses a trimester
// boundary; that approximation is deliberate.
func DateRangeForType(reportType string, gestationalWeek int, now time.Time) (time.Time, time.Time) {
	end := utils.DayStart(now)

	var days int
	switch reportType {
	case ReportMonthly:
		days = 29
	case ReportTrimester:
		weeks := 13
		if utils.TrimesterForWeek(gestationalWeek) == 2 {
			weeks = 14
		}
		days = weeks*7 - 1
	default: // weekly
		days = 6
	}

	return end.AddDate(0, 0, -days), end
}

// BuildDailySeries produces one DailyNutrition per calendar day in the
// inclusive [start, end] range, in date order. Meals are bucketed by
// calendar day ignoring time of day; water comes from same-day hydration
// entries. Days without activity yield zero rows.
func BuildDailySeries(
	meals []models.MealEntry,
	hydration []models.HydrationEntry,
	start, end time.Time,
) []models.DailyNutrition {
	var series []models.DailyNutrition

	for d := utils.DayStart(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		var dayMeals []models.MealEntry
		for _, m := range meals {
			if utils.SameDay(m.Date, d) {
				dayMeals = append(dayMeals, m)
			}
		}

		day := CalculateNutritionFromMeals(dayMeals)
		day.Date = d
		for _, h := range hydration {
			if utils.SameDay(h.Date, d) {
				day.Water += h.Amount
			}
		}
		series = append(series, day)
	}
	return series
}

// HasNutritionData reports whether any day in the series has nonzero
// calories. Callers use it to abort a report as "insufficient data" before
// rendering.
func HasNutritionData(days []models.DailyNutrition) bool {
	for _, d := range days {
		if d.Calories > 0 {
			return true
		}
	}
	return false
}

// Fixed pattern-analysis thresholds; not configurable.
const (
	breakfastShareHigh = 35.0   // percent of total calories
	dinnerShareLow     = 20.0   // percent of total calories
	varianceRatioHigh  = 0.3    // stddev / mean of daily calories
	lowWaterMl         = 2000.0 // mean daily water
)

// AnalyzePatterns runs the independent heuristics over the aggregated
// series and raw meal list. Each check emits zero or one string; any
// subset may fire. An empty series yields no patterns.
func AnalyzePatterns(days []models.DailyNutrition, meals []models.MealEntry) []string {
	var patterns []string
	if len(days) == 0 {
		return patterns
	}

	breakfastPct, dinnerPct, hasMeals := mealCalorieShares(meals)
	if hasMeals {
		if breakfastPct > breakfastShareHigh {
			patterns = append(patterns, "High calorie intake at breakfast")
		}
		if dinnerPct < dinnerShareLow {
			patterns = append(patterns, "Low calorie intake at dinner")
		}
	}

	var sum float64
	for _, d := range days {
		sum += d.Calories
	}
	mean := sum / float64(len(days))
	if mean > 0 {
		var variance float64
		for _, d := range days {
			variance += math.Pow(d.Calories-mean, 2)
		}
		variance /= float64(len(days))
		if math.Sqrt(variance)/mean > varianceRatioHigh {
			patterns = append(patterns, "Significant day-to-day variation in calorie intake")
		}
	}

	var water float64
	for _, d := range days {
		water += d.Water
	}
	if water/float64(len(days)) < lowWaterMl {
		patterns = append(patterns, "Low average water intake")
	}

	return patterns
}

// mealCalorieShares returns breakfast and dinner shares of total calories
// (percent). hasMeals is false when the meal list carries no calories at
// all, in which case the shares are meaningless.
func mealCalorieShares(meals []models.MealEntry) (breakfastPct, dinnerPct float64, hasMeals bool) {
	byType := map[string]float64{}
	var total float64
	for _, m := range meals {
		cal := m.Calories * m.Quantity
		byType[m.MealType] += cal
		total += cal
	}
	if total == 0 {
		return 0, 0, false
	}
	return byType[models.MealBreakfast] / total * 100,
		byType[models.MealDinner] / total * 100,
		true
}

// GenerateRecommendations emits rule-based guidance from the period
// averages. The list is never empty: when every check passes, the single
// generic message is returned.
func GenerateRecommendations(avg models.DailyNutrition, targets models.NutritionTarget) []string {
	var recs []string

	for _, nutrient := range CriticalNutrients() {
		current := avg.Nutrients.Value(nutrient.Key)
		target := targets.Value(nutrient.Key)
		if current < target*0.8 {
			recs = append(recs, fmt.Sprintf(
				"Increase your intake of %s. Consider adding foods rich in %s to your meals.",
				nutrient.Label, nutrient.Label,
			))
		}
	}

	if avg.Protein < targets.Protein*0.9 {
		recs = append(recs, "Increase protein intake. Include sources such as lean meat, eggs, legumes and dairy.")
	}

	if avg.Water < lowWaterMl {
		recs = append(recs, "Drink more water. Aim for at least 2.5 liters per day.")
	}

	if len(recs) == 0 {
		recs = append(recs, "Keep up the balanced and varied diet.")
	}
	return recs
}

// Prepare assembles the report snapshot for a user: resolves the date
// range from the report type, aggregates the daily series, and filters
// weight entries and meals to the range. Reads from the stores happen
// here, at call time; everything downstream is pure.
func (s *ReportService) Prepare(userID uint, reportType string, now time.Time) (*ReportData, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("user", userID)
		}
		return nil, utils.Storage("GET_ERROR", "load user", err)
	}

	start, end := DateRangeForType(reportType, user.GestationalWeek, now)

	var meals []models.MealEntry
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, utils.DayEnd(end)).
		Order("date ASC").
		Find(&meals).Error; err != nil {
		return nil, utils.Storage("GET_ERROR", "load meals", err)
	}

	var hydration []models.HydrationEntry
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, utils.DayEnd(end)).
		Find(&hydration).Error; err != nil {
		return nil, utils.Storage("GET_ERROR", "load hydration", err)
	}

	var weights []models.WeightEntry
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, utils.DayEnd(end)).
		Order("date DESC").
		Find(&weights).Error; err != nil {
		return nil, utils.Storage("GET_ERROR", "load weight entries", err)
	}

	return &ReportData{
		User:           user,
		StartDate:      start,
		EndDate:        end,
		DailyNutrition: BuildDailySeries(meals, hydration, start, end),
		WeightEntries:  weights,
		Meals:          meals,
		Type:           reportType,
	}, nil
}
