package services

import (
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type WeightService struct{ db *gorm.DB }

func NewWeightService(db *gorm.DB) *WeightService { return &WeightService{db: db} }

type WeightInput struct {
	Weight float64   `json:"weight" binding:"required"` // kg
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes"`
}

// Add records a weigh-in and, when it is the newest entry, refreshes the
// user's current weight.
func (s *WeightService) Add(userID uint, in WeightInput) (*models.WeightEntry, error) {
	if in.Weight <= 0 || in.Weight > 200 {
		return nil, utils.Invalid("weight", "weight must be between 0 and 200 kg")
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	if date.After(time.Now()) {
		return nil, utils.Invalid("date", "date cannot be in the future")
	}

	entry := &models.WeightEntry{UserID: userID, Weight: in.Weight, Date: date, Notes: in.Notes}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		var newer int64
		if err := tx.Model(&models.WeightEntry{}).
			Where("user_id = ? AND date > ?", userID, date).
			Count(&newer).Error; err != nil {
			return err
		}
		if newer == 0 {
			return tx.Model(&models.User{}).
				Where("id = ?", userID).
				Update("current_weight", in.Weight).Error
		}
		return nil
	})
	if err != nil {
		return nil, utils.Storage("SET_ERROR", "create weight entry", err)
	}
	return entry, nil
}

// List returns weigh-ins newest first. Zero bounds mean no range filter.
func (s *WeightService) List(userID uint, from, to time.Time) ([]models.WeightEntry, error) {
	q := s.db.Where("user_id = ?", userID)
	if !from.IsZero() {
		q = q.Where("date >= ?", utils.DayStart(from))
	}
	if !to.IsZero() {
		q = q.Where("date <= ?", utils.DayEnd(to))
	}

	var entries []models.WeightEntry
	if err := q.Order("date DESC").Find(&entries).Error; err != nil {
		return nil, utils.Storage("GET_ERROR", "list weight entries", err)
	}
	return entries, nil
}

// Latest returns the most recent weigh-in.
func (s *WeightService) Latest(userID uint) (*models.WeightEntry, error) {
	var entry models.WeightEntry
	err := s.db.Where("user_id = ?", userID).Order("date DESC").First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("weight entry", 0)
		}
		return nil, utils.Storage("GET_ERROR", "load weight entry", err)
	}
	return &entry, nil
}

func (s *WeightService) Delete(userID, entryID uint) error {
	var entry models.WeightEntry
	err := s.db.Where("user_id = ?", userID).First(&entry, entryID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFound("weight entry", entryID)
		}
		return utils.Storage("GET_ERROR", "load weight entry", err)
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return utils.Storage("REMOVE_ERROR", "delete weight entry", err)
	}
	return nil
}

// GainStatus summarizes the user's gain against the recommended band for
// their initial BMI and current gestational week.
type GainStatus struct {
	GainedKg    float64               `json:"gained_kg"`
	Band        utils.WeightGainBand  `json:"band"`
	BMICategory string                `json:"bmi_category"`
	Status      string                `json:"status"` // below | within | above
}

// Gain computes the user's gain to date and where it sits in the IOM band
// pro-rated to the current week.
func (s *WeightService) Gain(user *models.User) GainStatus {
	gained := user.CurrentWeight - user.InitialWeight
	band := utils.IdealWeightGain(user.InitialBMI, user.GestationalWeek)

	status := "within"
	if gained < band.Min {
		status = "below"
	} else if gained > band.Max {
		status = "above"
	}

	return GainStatus{
		GainedKg:    gained,
		Band:        band,
		BMICategory: utils.BMICategory(user.InitialBMI),
		Status:      status,
	}
}
