package services

import (
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type HydrationService struct{ db *gorm.DB }

func NewHydrationService(db *gorm.DB) *HydrationService { return &HydrationService{db: db} }

type HydrationInput struct {
	Amount float64   `json:"amount" binding:"required"` // ml
	Date   time.Time `json:"date"`
}

// Add records one intake of water. Single entries above 5 liters are
// rejected as logging mistakes; the daily total is unbounded.
func (s *HydrationService) Add(userID uint, in HydrationInput) (*models.HydrationEntry, error) {
	if in.Amount <= 0 || in.Amount > 5000 {
		return nil, utils.Invalid("amount", "amount must be between 0 and 5000 ml")
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	if date.After(time.Now()) {
		return nil, utils.Invalid("date", "date cannot be in the future")
	}

	entry := &models.HydrationEntry{UserID: userID, Amount: in.Amount, Date: date}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, utils.Storage("SET_ERROR", "create hydration entry", err)
	}
	return entry, nil
}

// ListByDay returns the individual intakes of one calendar day.
func (s *HydrationService) ListByDay(userID uint, day time.Time) ([]models.HydrationEntry, error) {
	var entries []models.HydrationEntry
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, utils.DayStart(day), utils.DayEnd(day)).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, utils.Storage("GET_ERROR", "list hydration", err)
	}
	return entries, nil
}

// TotalForDay sums the day's intakes in ml.
func (s *HydrationService) TotalForDay(userID uint, day time.Time) (float64, error) {
	entries, err := s.ListByDay(userID, day)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	return total, nil
}

func (s *HydrationService) Delete(userID, entryID uint) error {
	var entry models.HydrationEntry
	err := s.db.Where("user_id = ?", userID).First(&entry, entryID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFound("hydration entry", entryID)
		}
		return utils.Storage("GET_ERROR", "load hydration entry", err)
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return utils.Storage("REMOVE_ERROR", "delete hydration entry", err)
	}
	return nil
}
