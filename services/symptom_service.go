package services

import (
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type SymptomService struct{ db *gorm.DB }

func NewSymptomService(db *gorm.DB) *SymptomService { return &SymptomService{db: db} }

type SymptomInput struct {
	Type      string    `json:"type" binding:"required"`
	Intensity int       `json:"intensity" binding:"required"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
}

func (s *SymptomService) Add(userID uint, in SymptomInput) (*models.SymptomEntry, error) {
	if !models.ValidSymptomType(in.Type) {
		return nil, utils.Invalid("type", "unknown symptom type")
	}
	if in.Intensity < 1 || in.Intensity > 5 {
		return nil, utils.Invalid("intensity", "intensity must be between 1 and 5")
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := &models.SymptomEntry{
		UserID:    userID,
		Type:      in.Type,
		Intensity: in.Intensity,
		Date:      date,
		Notes:     in.Notes,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, utils.Storage("SET_ERROR", "create symptom entry", err)
	}
	return entry, nil
}

// List returns symptom entries newest first, optionally filtered by type.
func (s *SymptomService) List(userID uint, symptomType string) ([]models.SymptomEntry, error) {
	q := s.db.Where("user_id = ?", userID)
	if symptomType != "" {
		if !models.ValidSymptomType(symptomType) {
			return nil, utils.Invalid("type", "unknown symptom type")
		}
		q = q.Where("type = ?", symptomType)
	}

	var entries []models.SymptomEntry
	if err := q.Order("date DESC").Find(&entries).Error; err != nil {
		return nil, utils.Storage("GET_ERROR", "list symptoms", err)
	}
	return entries, nil
}

func (s *SymptomService) Delete(userID, entryID uint) error {
	var entry models.SymptomEntry
	err := s.db.Where("user_id = ?", userID).First(&entry, entryID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFound("symptom entry", entryID)
		}
		return utils.Storage("GET_ERROR", "load symptom entry", err)
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return utils.Storage("REMOVE_ERROR", "delete symptom entry", err)
	}
	return nil
}
