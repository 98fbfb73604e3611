package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AlertNutrientLow = "nutrient_low"
	AlertWeightGain  = "weight_gain"
	AlertHydration   = "hydration"
	AlertReminder    = "reminder"
)

type Alert struct {
	gorm.Model
	UserID   uint   `gorm:"index"`
	Type     string `gorm:"size:20"` // nutrient_low | weight_gain | hydration | reminder
	Nutrient string `gorm:"size:20"` // set for nutrient_low alerts
	Message  string `gorm:"type:text"`
	Severity string `gorm:"size:10"` // low | medium | high
	Read     bool
	Date     time.Time
}
