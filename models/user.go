package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`

	GestationalWeek int       // 1..42, set during onboarding
	DueDate         time.Time // expected delivery date
	InitialWeight   float64   // kg, at start of pregnancy
	CurrentWeight   float64   // kg
	Height          float64   // cm
	InitialBMI      float64   // derived from height + initial weight
	Onboarded       bool

	ResetToken    string
	ResetTokenExp time.Time
}
