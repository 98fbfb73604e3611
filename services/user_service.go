package services

import (
	"strings"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("user", userID)
		}
		return nil, utils.Storage("GET_ERROR", "load user", err)
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("user", 0)
		}
		return nil, utils.Storage("GET_ERROR", "load user", err)
	}
	return &user, nil
}

type OnboardingInput struct {
	GestationalWeek int       `json:"gestational_week"`
	DueDate         time.Time `json:"due_date"`
	InitialWeight   float64   `json:"initial_weight" binding:"required"` // kg
	Height          float64   `json:"height" binding:"required"`         // cm
}

// CompleteOnboarding fills in the pregnancy profile. Either the gestational
// week or the due date must be provided; when only the due date is given
// the week is derived from it. Initial BMI is computed once here and never
// recomputed.
func (s *UserService) CompleteOnboarding(userID uint, in OnboardingInput) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	week := in.GestationalWeek
	if week == 0 && !in.DueDate.IsZero() {
		week = utils.GestationalWeekFromDueDate(in.DueDate, time.Now())
	}
	if week < 1 || week > 42 {
		return nil, utils.Invalid("gestational_week", "gestational week must be between 1 and 42")
	}
	if in.InitialWeight <= 0 || in.InitialWeight > 200 {
		return nil, utils.Invalid("initial_weight", "weight must be between 0 and 200 kg")
	}

	bmi, err := utils.CalculateBMI(in.Height, in.InitialWeight)
	if err != nil {
		return nil, utils.Invalid("height", err.Error())
	}

	user.GestationalWeek = week
	user.DueDate = in.DueDate
	user.InitialWeight = in.InitialWeight
	user.CurrentWeight = in.InitialWeight
	user.Height = in.Height
	user.InitialBMI = bmi
	user.Onboarded = true

	if err := s.db.Save(user).Error; err != nil {
		return nil, utils.Storage("SET_ERROR", "save onboarding", err)
	}
	return user, nil
}

type ProfileUpdateInput struct {
	Name            string `json:"name"`
	GestationalWeek int    `json:"gestational_week"`
}

// UpdateProfile changes the mutable profile fields; zero values leave the
// current value alone.
func (s *UserService) UpdateProfile(userID uint, in ProfileUpdateInput) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		name := strings.TrimSpace(in.Name)
		if len(name) < 2 {
			return nil, utils.Invalid("name", "name must have at least 2 characters")
		}
		user.Name = name
	}
	if in.GestationalWeek != 0 {
		if in.GestationalWeek < 1 || in.GestationalWeek > 42 {
			return nil, utils.Invalid("gestational_week", "gestational week must be between 1 and 42")
		}
		user.GestationalWeek = in.GestationalWeek
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, utils.Storage("SET_ERROR", "update profile", err)
	}
	return user, nil
}
