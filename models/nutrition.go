package models

import "time"

// Nutrients is the per-serving nutrient block shared by the food catalog and
// the snapshot stored on each logged meal. Units follow the target presets:
// grams for macros, mg for iron/calcium/omega-3/vitamin C/sodium, mcg for
// folic acid and vitamin D.
type Nutrients struct {
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Fiber     float64 `json:"fiber"`
	Sugar     float64 `json:"sugar"`
	Iron      float64 `json:"iron"`
	FolicAcid float64 `json:"folic_acid"`
	Calcium   float64 `json:"calcium"`
	Omega3    float64 `json:"omega3"`
	VitaminD  float64 `json:"vitamin_d"`
	VitaminC  float64 `json:"vitamin_c"`
	Sodium    float64 `json:"sodium"`
}

// Value returns a nutrient field by key. Unknown keys read as zero, matching
// the behavior of missing optional fields.
func (n Nutrients) Value(key string) float64 {
	switch key {
	case "calories":
		return n.Calories
	case "protein":
		return n.Protein
	case "carbs":
		return n.Carbs
	case "fat":
		return n.Fat
	case "fiber":
		return n.Fiber
	case "sugar":
		return n.Sugar
	case "iron":
		return n.Iron
	case "folicAcid":
		return n.FolicAcid
	case "calcium":
		return n.Calcium
	case "omega3":
		return n.Omega3
	case "vitaminD":
		return n.VitaminD
	case "vitaminC":
		return n.VitaminC
	case "sodium":
		return n.Sodium
	}
	return 0
}

// DailyNutrition is derived, never stored: the nutrient totals of one
// calendar day, recomputed on demand from logged meals plus hydration.
type DailyNutrition struct {
	Date time.Time `json:"date"`
	Nutrients
	Water float64 `json:"water"` // ml
}

// NutritionTarget holds the daily targets of one trimester preset.
type NutritionTarget struct {
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Fiber     float64 `json:"fiber"`
	Iron      float64 `json:"iron"`
	FolicAcid float64 `json:"folic_acid"`
	Calcium   float64 `json:"calcium"`
	Omega3    float64 `json:"omega3"`
	VitaminD  float64 `json:"vitamin_d"`
	VitaminC  float64 `json:"vitamin_c"`
	Water     float64 `json:"water"`
}

func (t NutritionTarget) Value(key string) float64 {
	switch key {
	case "calories":
		return t.Calories
	case "protein":
		return t.Protein
	case "carbs":
		return t.Carbs
	case "fat":
		return t.Fat
	case "fiber":
		return t.Fiber
	case "iron":
		return t.Iron
	case "folicAcid":
		return t.FolicAcid
	case "calcium":
		return t.Calcium
	case "omega3":
		return t.Omega3
	case "vitaminD":
		return t.VitaminD
	case "vitaminC":
		return t.VitaminC
	case "water":
		return t.Water
	}
	return 0
}
