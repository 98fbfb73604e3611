package models

import "gorm.io/gorm"

// ClinicContact is the single emergency contact a user keeps; at most one
// row per user.
type ClinicContact struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex;not null"`
	Name   string `gorm:"not null"`
	Phone  string `gorm:"not null"`
}
