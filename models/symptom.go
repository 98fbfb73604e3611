package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SymptomNausea    = "nausea"
	SymptomHeartburn = "heartburn"
	SymptomCravings  = "cravings"
	SymptomAversions = "aversions"
	SymptomFatigue   = "fatigue"
	SymptomOther     = "other"
)

func ValidSymptomType(t string) bool {
	switch t {
	case SymptomNausea, SymptomHeartburn, SymptomCravings,
		SymptomAversions, SymptomFatigue, SymptomOther:
		return true
	}
	return false
}

type SymptomEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	Type      string    `gorm:"size:16;not null"`
	Intensity int       // 1..5
	Date      time.Time `gorm:"index;not null"`
	Notes     string
}
