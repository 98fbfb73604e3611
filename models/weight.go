package models

import (
	"time"

	"gorm.io/gorm"
)

type WeightEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Weight float64   // kg
	Date   time.Time `gorm:"index;not null"`
	Notes  string
}
