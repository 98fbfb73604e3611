package models

import (
	"time"

	"gorm.io/gorm"
)

// Valid meal slots.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MealEntry is one occurrence of a food being consumed. The per-serving
// nutrient values of the food are snapshotted onto the entry at log time, so
// aggregation never depends on the catalog row still existing. Entries are
// never updated in place; edits are delete + recreate.
type MealEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	FoodID    uint      `gorm:"not null"`
	FoodName  string    // human label at log time
	Quantity  float64   // multiplier of the food's serving size
	MealType  string    `gorm:"size:16;not null"` // breakfast|lunch|dinner|snack
	Date      time.Time `gorm:"index;not null"`   // day the meal belongs to
	Nutrients `gorm:"embedded"`
}
