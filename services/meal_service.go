package services

import (
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db      *gorm.DB
	foodSvc *FoodService
}

func NewMealService(db *gorm.DB, fs *FoodService) *MealService {
	return &MealService{db: db, foodSvc: fs}
}

type MealInput struct {
	FoodID   uint      `json:"food_id" binding:"required"`
	Quantity float64   `json:"quantity" binding:"required"`
	MealType string    `json:"meal_type" binding:"required"`
	Date     time.Time `json:"date"`
}

func (in *MealInput) validate() error {
	if in.Quantity <= 0 || in.Quantity > 100 {
		return utils.Invalid("quantity", "quantity must be between 0 and 100 servings")
	}
	if !models.ValidMealType(in.MealType) {
		return utils.Invalid("meal_type", "meal type must be breakfast, lunch, dinner or snack")
	}
	return nil
}

// Log records a meal. The food's per-serving nutrients are snapshotted onto
// the entry so later catalog changes cannot rewrite history. A zero Date
// defaults to now.
func (s *MealService) Log(userID uint, in MealInput) (*models.MealEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	food, err := s.foodSvc.Get(in.FoodID)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := &models.MealEntry{
		UserID:    userID,
		FoodID:    food.ID,
		FoodName:  food.Name,
		Quantity:  in.Quantity,
		MealType:  in.MealType,
		Date:      date,
		Nutrients: food.Nutrients,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, utils.Storage("SET_ERROR", "create meal entry", err)
	}
	return entry, nil
}

// ListByDay returns the user's meal entries for one calendar day, in log
// order.
func (s *MealService) ListByDay(userID uint, day time.Time) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, utils.DayStart(day), utils.DayEnd(day)).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, utils.Storage("GET_ERROR", "list meals", err)
	}
	return entries, nil
}

// ListRange returns meal entries for an inclusive date range.
func (s *MealService) ListRange(userID uint, start, end time.Time) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, utils.DayStart(start), utils.DayEnd(end)).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, utils.Storage("GET_ERROR", "list meals", err)
	}
	return entries, nil
}

// Update replaces a logged entry. Entries are immutable, so the edit is a
// delete plus re-log inside one transaction; the new entry re-snapshots
// the food's current nutrients.
func (s *MealService) Update(userID, entryID uint, in MealInput) (*models.MealEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	old, err := s.get(userID, entryID)
	if err != nil {
		return nil, err
	}

	food, err := s.foodSvc.Get(in.FoodID)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = old.Date
	}

	entry := &models.MealEntry{
		UserID:    userID,
		FoodID:    food.ID,
		FoodName:  food.Name,
		Quantity:  in.Quantity,
		MealType:  in.MealType,
		Date:      date,
		Nutrients: food.Nutrients,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.MealEntry{}, old.ID).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, utils.Storage("SET_ERROR", "update meal entry", err)
	}
	return entry, nil
}

// Delete removes a logged entry owned by the user.
func (s *MealService) Delete(userID, entryID uint) error {
	entry, err := s.get(userID, entryID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(entry).Error; err != nil {
		return utils.Storage("REMOVE_ERROR", "delete meal entry", err)
	}
	return nil
}

func (s *MealService) get(userID, entryID uint) (*models.MealEntry, error) {
	var entry models.MealEntry
	err := s.db.Where("user_id = ?", userID).First(&entry, entryID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("meal entry", entryID)
		}
		return nil, utils.Storage("GET_ERROR", "load meal entry", err)
	}
	return &entry, nil
}
