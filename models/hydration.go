package models

import (
	"time"

	"gorm.io/gorm"
)

type HydrationEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Amount float64   // ml
	Date   time.Time `gorm:"index;not null"`
}
