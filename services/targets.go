package services

import (
	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"
)

// Daily nutrient targets per trimester. Macros step up each trimester;
// micronutrients and water hold constant through pregnancy.
var nutritionTargets = map[int]models.NutritionTarget{
	1: {
		Calories: 2200, Protein: 75, Carbs: 275, Fat: 73, Fiber: 28,
		Iron: 27, FolicAcid: 600, Calcium: 1000, Omega3: 200,
		VitaminD: 15, VitaminC: 85, Water: 2500,
	},
	2: {
		Calories: 2400, Protein: 85, Carbs: 300, Fat: 80, Fiber: 28,
		Iron: 27, FolicAcid: 600, Calcium: 1000, Omega3: 200,
		VitaminD: 15, VitaminC: 85, Water: 2500,
	},
	3: {
		Calories: 2600, Protein: 95, Carbs: 325, Fat: 87, Fiber: 28,
		Iron: 27, FolicAcid: 600, Calcium: 1000, Omega3: 200,
		VitaminD: 15, VitaminC: 85, Water: 2500,
	},
}

// TargetForWeek resolves the trimester preset for a gestational week.
// Weeks beyond 40 still resolve to trimester 3; there is no interpolation
// between presets.
func TargetForWeek(week int) models.NutritionTarget {
	return nutritionTargets[utils.TrimesterForWeek(week)]
}

// CriticalNutrient names a nutrient that must be watched during pregnancy.
// Threshold is the fraction of target below which the intake is flagged.
type CriticalNutrient struct {
	Key       string
	Label     string
	Unit      string
	Threshold float64
}

var criticalNutrients = []CriticalNutrient{
	{Key: "iron", Label: "Iron", Unit: "mg", Threshold: 0.8},
	{Key: "folicAcid", Label: "Folic Acid", Unit: "mcg", Threshold: 0.8},
	{Key: "calcium", Label: "Calcium", Unit: "mg", Threshold: 0.8},
	{Key: "omega3", Label: "Omega-3", Unit: "mg", Threshold: 0.7},
	{Key: "vitaminD", Label: "Vitamin D", Unit: "mcg", Threshold: 0.8},
}

// CriticalNutrients returns the fixed watch list (iron, folic acid,
// calcium, omega-3, vitamin D).
func CriticalNutrients() []CriticalNutrient {
	return criticalNutrients
}
