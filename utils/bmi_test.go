package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(165, 60)
	assert.NoError(t, err)
	assert.InDelta(t, 22.04, bmi, 0.01)

	_, err = CalculateBMI(0, 60)
	assert.Error(t, err)

	_, err = CalculateBMI(165, 0)
	assert.Error(t, err)

	// meters passed instead of centimeters
	_, err = CalculateBMI(1.65, 60)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "underweight"},
		{18.5, "normal"},
		{24.9, "normal"},
		{25.0, "overweight"},
		{29.9, "overweight"},
		{30.0, "obese"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BMICategory(tt.bmi), "bmi %.1f", tt.bmi)
	}
}

func TestIdealWeightGain(t *testing.T) {
	// normal BMI at mid-pregnancy: half of the 11.5-16 kg band
	band := IdealWeightGain(22, 20)
	assert.InDelta(t, 5.75, band.Min, 1e-9)
	assert.InDelta(t, 8.0, band.Max, 1e-9)

	// full term gets the whole band
	band = IdealWeightGain(22, 40)
	assert.InDelta(t, 11.5, band.Min, 1e-9)
	assert.InDelta(t, 16.0, band.Max, 1e-9)

	// past 40 weeks the band stops growing
	band = IdealWeightGain(22, 42)
	assert.InDelta(t, 16.0, band.Max, 1e-9)

	// obese category uses the 5-9 kg band
	band = IdealWeightGain(32, 40)
	assert.InDelta(t, 5.0, band.Min, 1e-9)
	assert.InDelta(t, 9.0, band.Max, 1e-9)
}
