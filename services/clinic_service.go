package services

import (
	"strings"
	"unicode"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type ClinicService struct{ db *gorm.DB }

func NewClinicService(db *gorm.DB) *ClinicService { return &ClinicService{db: db} }

type ClinicInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// Set creates or replaces the user's single emergency contact.
func (s *ClinicService) Set(userID uint, in ClinicInput) (*models.ClinicContact, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		return nil, utils.Invalid("name", "name must have at least 2 characters")
	}
	if digitCount(in.Phone) < 10 {
		return nil, utils.Invalid("phone", "phone must have at least 10 digits")
	}

	var contact models.ClinicContact
	err := s.db.Where("user_id = ?", userID).First(&contact).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		contact = models.ClinicContact{UserID: userID, Name: name, Phone: in.Phone}
		if err := s.db.Create(&contact).Error; err != nil {
			return nil, utils.Storage("SET_ERROR", "create clinic contact", err)
		}
	case err != nil:
		return nil, utils.Storage("GET_ERROR", "load clinic contact", err)
	default:
		contact.Name = name
		contact.Phone = in.Phone
		if err := s.db.Save(&contact).Error; err != nil {
			return nil, utils.Storage("SET_ERROR", "update clinic contact", err)
		}
	}
	return &contact, nil
}

func (s *ClinicService) Get(userID uint) (*models.ClinicContact, error) {
	var contact models.ClinicContact
	err := s.db.Where("user_id = ?", userID).First(&contact).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("clinic contact", 0)
		}
		return nil, utils.Storage("GET_ERROR", "load clinic contact", err)
	}
	return &contact, nil
}

func (s *ClinicService) Delete(userID uint) error {
	contact, err := s.Get(userID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(contact).Error; err != nil {
		return utils.Storage("REMOVE_ERROR", "delete clinic contact", err)
	}
	return nil
}
