package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ExamBlood      = "blood"
	ExamUrine      = "urine"
	ExamUltrasound = "ultrasound"
	ExamOther      = "other"
)

func ValidExamType(t string) bool {
	switch t {
	case ExamBlood, ExamUrine, ExamUltrasound, ExamOther:
		return true
	}
	return false
}

type ExamEntry struct {
	gorm.Model
	UserID  uint      `gorm:"index;not null"`
	Name    string    `gorm:"not null"`
	Type    string    `gorm:"size:16;not null"` // blood|urine|ultrasound|other
	Date    time.Time `gorm:"index;not null"`
	Doctor  string
	Clinic  string
	Notes   string
	Results string `gorm:"type:text"`
	FileURI string // uploaded attachment URL, may be empty
}
