package models

import "gorm.io/gorm"

// A food catalog entry: per-serving nutrient reference data. Seeded entries
// and user-created ("custom") entries live in the same table. Immutable
// after creation.
type Food struct {
	gorm.Model
	Name        string `gorm:"not null;index"`
	Brand       string
	Barcode     string
	ServingSize float64 // e.g. 100
	ServingUnit string  // e.g. "g", "ml", "unidade"
	Nutrients   `gorm:"embedded"`
	Custom      bool // user-created entry
	OwnerID     uint `gorm:"index"` // 0 for seeded reference foods
}
