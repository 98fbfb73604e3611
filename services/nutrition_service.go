package services

import (
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
)

// CalculateNutritionFromMeals sums the nutrient contribution of every
// logged meal, scaled by its quantity. Empty input yields all-zero totals.
// No rounding happens here; rounding is a display concern.
func CalculateNutritionFromMeals(meals []models.MealEntry) models.DailyNutrition {
	var total models.DailyNutrition
	total.Date = time.Now()

	for _, m := range meals {
		q := m.Quantity
		total.Calories += m.Calories * q
		total.Protein += m.Protein * q
		total.Carbs += m.Carbs * q
		total.Fat += m.Fat * q
		total.Fiber += m.Fiber * q
		total.Sugar += m.Sugar * q
		total.Iron += m.Iron * q
		total.FolicAcid += m.FolicAcid * q
		total.Calcium += m.Calcium * q
		total.Omega3 += m.Omega3 * q
		total.VitaminD += m.VitaminD * q
		total.VitaminC += m.VitaminC * q
		total.Sodium += m.Sodium * q
	}
	return total
}

// CalculateProgress returns the percentage of a target reached, capped at
// 100. A zero target reads as 0 to avoid division by zero.
func CalculateProgress(current, target float64) float64 {
	if target == 0 {
		return 0
	}
	p := (current / target) * 100
	if p > 100 {
		return 100
	}
	return p
}

const defaultLowThreshold = 0.8

// IsNutrientLow reports whether current intake is below threshold×target.
func IsNutrientLow(current, target, threshold float64) bool {
	if threshold <= 0 {
		threshold = defaultLowThreshold
	}
	return current < target*threshold
}

// CalculateAverageNutrition averages each nutrient field across a series of
// daily totals. Days with no logging count as zero datapoints and pull the
// average down; an empty series yields zeros.
func CalculateAverageNutrition(days []models.DailyNutrition) models.DailyNutrition {
	var avg models.DailyNutrition
	avg.Date = time.Now()
	if len(days) == 0 {
		return avg
	}

	for _, d := range days {
		avg.Calories += d.Calories
		avg.Protein += d.Protein
		avg.Carbs += d.Carbs
		avg.Fat += d.Fat
		avg.Fiber += d.Fiber
		avg.Sugar += d.Sugar
		avg.Iron += d.Iron
		avg.FolicAcid += d.FolicAcid
		avg.Calcium += d.Calcium
		avg.Omega3 += d.Omega3
		avg.VitaminD += d.VitaminD
		avg.VitaminC += d.VitaminC
		avg.Sodium += d.Sodium
		avg.Water += d.Water
	}

	n := float64(len(days))
	avg.Calories /= n
	avg.Protein /= n
	avg.Carbs /= n
	avg.Fat /= n
	avg.Fiber /= n
	avg.Sugar /= n
	avg.Iron /= n
	avg.FolicAcid /= n
	avg.Calcium /= n
	avg.Omega3 /= n
	avg.VitaminD /= n
	avg.VitaminC /= n
	avg.Sodium /= n
	avg.Water /= n
	return avg
}
