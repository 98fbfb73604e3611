package models

import "gorm.io/gorm"

// FavoriteMeal is a reusable combination of foods. Items reference foods by
// id only; a referenced food may since have been deleted (no cascade), and
// applying the favorite simply skips unresolvable items.
type FavoriteMeal struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	MealType string `gorm:"size:16;not null"`
	Items    []FavoriteItem
}

type FavoriteItem struct {
	gorm.Model
	FavoriteMealID uint `gorm:"index;not null"`
	FoodID         uint
	Quantity       float64
}
