package services

import (
	"fmt"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type AlertService struct {
	db          *gorm.DB
	hub         *RealtimeHub
	progressSvc *ProgressService
	weightSvc   *WeightService
}

func NewAlertService(db *gorm.DB, hub *RealtimeHub, ps *ProgressService, ws *WeightService) *AlertService {
	return &AlertService{db: db, hub: hub, progressSvc: ps, weightSvc: ws}
}

// Emit persists an alert and pushes it to the user's live connections.
func (s *AlertService) Emit(userID uint, alertType, nutrient, message, severity string) (*models.Alert, error) {
	a := &models.Alert{
		UserID:   userID,
		Type:     alertType,
		Nutrient: nutrient,
		Message:  message,
		Severity: severity,
		Date:     time.Now(),
	}
	if err := s.db.Create(a).Error; err != nil {
		return nil, utils.Storage("SET_ERROR", "create alert", err)
	}
	if s.hub != nil {
		s.hub.Broadcast(userID, map[string]any{"kind": "alert.created", "alert": a})
	}
	return a, nil
}

// EvaluateDay runs the end-of-day checks for a user and emits one alert per
// finding: low critical nutrients, low hydration, and weight gain outside
// the recommended band. Re-running for the same day produces duplicate
// alerts; the caller schedules this once per day.
func (s *AlertService) EvaluateDay(user *models.User, day time.Time) ([]models.Alert, error) {
	progress, err := s.progressSvc.ForDay(user.ID, day)
	if err != nil {
		return nil, err
	}

	var emitted []models.Alert

	for _, n := range progress.Nutrients {
		if !n.Low {
			continue
		}
		if !isCritical(n.Key) {
			continue
		}
		msg := fmt.Sprintf("Your %s intake today is below the recommended amount (%.1f of %.0f %s).",
			n.Label, n.Current, n.Target, n.Unit)
		a, err := s.Emit(user.ID, models.AlertNutrientLow, n.Key, msg, "medium")
		if err != nil {
			return emitted, err
		}
		emitted = append(emitted, *a)
	}

	if progress.Water.Current < lowWaterMl {
		msg := fmt.Sprintf("You drank %.0f ml of water today. Aim for at least %.0f ml.",
			progress.Water.Current, progress.Targets.Water)
		a, err := s.Emit(user.ID, models.AlertHydration, "", msg, "low")
		if err != nil {
			return emitted, err
		}
		emitted = append(emitted, *a)
	}

	if user.Onboarded {
		gain := s.weightSvc.Gain(user)
		if gain.Status != "within" {
			msg := fmt.Sprintf("Your weight gain (%.1f kg) is %s the recommended range of %.1f-%.1f kg for week %d.",
				gain.GainedKg, gain.Status, gain.Band.Min, gain.Band.Max, user.GestationalWeek)
			a, err := s.Emit(user.ID, models.AlertWeightGain, "", msg, "medium")
			if err != nil {
				return emitted, err
			}
			emitted = append(emitted, *a)
		}
	}

	return emitted, nil
}

func isCritical(key string) bool {
	for _, c := range CriticalNutrients() {
		if c.Key == key {
			return true
		}
	}
	return false
}

// List returns the user's alerts newest first; unreadOnly filters out
// acknowledged ones.
func (s *AlertService) List(userID uint, unreadOnly bool) ([]models.Alert, error) {
	q := s.db.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var alerts []models.Alert
	if err := q.Order("date DESC").Find(&alerts).Error; err != nil {
		return nil, utils.Storage("GET_ERROR", "list alerts", err)
	}
	return alerts, nil
}

func (s *AlertService) MarkRead(userID, alertID uint) error {
	res := s.db.Model(&models.Alert{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update("read", true)
	if res.Error != nil {
		return utils.Storage("SET_ERROR", "mark alert read", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFound("alert", alertID)
	}
	return nil
}
