package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25.0:
		return "normal"
	case bmi < 30.0:
		return "overweight"
	default:
		return "obese"
	}
}

// Total recommended gestational weight gain in kg, by pre-pregnancy BMI
// category (IOM ranges).
var weightGainRanges = map[string][2]float64{
	"underweight": {12.5, 18},
	"normal":      {11.5, 16},
	"overweight":  {7, 11.5},
	"obese":       {5, 9},
}

type WeightGainBand struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Current float64 `json:"current"` // midpoint of the band at this week
}

// IdealWeightGain returns the recommended weight-gain band for a given
// initial BMI, pro-rated linearly by gestational progress (week / 40,
// capped at 1).
func IdealWeightGain(initialBMI float64, gestationalWeek int) WeightGainBand {
	r := weightGainRanges[BMICategory(initialBMI)]

	progress := float64(gestationalWeek) / 40.0
	if progress > 1 {
		progress = 1
	}

	return WeightGainBand{
		Min:     r[0] * progress,
		Max:     r[1] * progress,
		Current: (r[0] + r[1]) / 2 * progress,
	}
}
