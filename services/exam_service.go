package services

import (
	"strings"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type ExamService struct{ db *gorm.DB }

func NewExamService(db *gorm.DB) *ExamService { return &ExamService{db: db} }

type ExamInput struct {
	Name    string    `json:"name" binding:"required"`
	Type    string    `json:"type" binding:"required"`
	Date    time.Time `json:"date"`
	Doctor  string    `json:"doctor"`
	Clinic  string    `json:"clinic"`
	Notes   string    `json:"notes"`
	Results string    `json:"results"`
	// Optional attachment as a data URI ("data:application/pdf;base64,...").
	FileBase64 string `json:"file_base64"`
}

func (in *ExamInput) validate() error {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return utils.Invalid("name", "name must have at least 2 characters")
	}
	if !models.ValidExamType(in.Type) {
		return utils.Invalid("type", "exam type must be blood, urine, ultrasound or other")
	}
	return nil
}

// Add records an exam. When an attachment is provided it is uploaded first
// and the entry stores only its URL; an upload failure aborts the whole
// operation.
func (s *ExamService) Add(userID uint, in ExamInput) (*models.ExamEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	var fileURI string
	if in.FileBase64 != "" {
		url, err := utils.UploadBase64FileToS3(in.FileBase64, "exam")
		if err != nil {
			return nil, utils.Storage("UPLOAD_ERROR", "upload exam file", err)
		}
		fileURI = url
	}

	entry := &models.ExamEntry{
		UserID:  userID,
		Name:    strings.TrimSpace(in.Name),
		Type:    in.Type,
		Date:    date,
		Doctor:  in.Doctor,
		Clinic:  in.Clinic,
		Notes:   in.Notes,
		Results: in.Results,
		FileURI: fileURI,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, utils.Storage("SET_ERROR", "create exam entry", err)
	}
	return entry, nil
}

// List returns exams newest first, optionally filtered by type.
func (s *ExamService) List(userID uint, examType string) ([]models.ExamEntry, error) {
	q := s.db.Where("user_id = ?", userID)
	if examType != "" {
		if !models.ValidExamType(examType) {
			return nil, utils.Invalid("type", "unknown exam type")
		}
		q = q.Where("type = ?", examType)
	}

	var entries []models.ExamEntry
	if err := q.Order("date DESC").Find(&entries).Error; err != nil {
		return nil, utils.Storage("GET_ERROR", "list exams", err)
	}
	return entries, nil
}

func (s *ExamService) Get(userID, entryID uint) (*models.ExamEntry, error) {
	var entry models.ExamEntry
	err := s.db.Where("user_id = ?", userID).First(&entry, entryID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("exam entry", entryID)
		}
		return nil, utils.Storage("GET_ERROR", "load exam entry", err)
	}
	return &entry, nil
}

// Update edits an exam's metadata in place. The attachment is replaced only
// when a new file is provided; the old URL is otherwise kept.
func (s *ExamService) Update(userID, entryID uint, in ExamInput) (*models.ExamEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	entry, err := s.Get(userID, entryID)
	if err != nil {
		return nil, err
	}

	if in.FileBase64 != "" {
		url, err := utils.UploadBase64FileToS3(in.FileBase64, "exam")
		if err != nil {
			return nil, utils.Storage("UPLOAD_ERROR", "upload exam file", err)
		}
		entry.FileURI = url
	}

	entry.Name = strings.TrimSpace(in.Name)
	entry.Type = in.Type
	if !in.Date.IsZero() {
		entry.Date = in.Date
	}
	entry.Doctor = in.Doctor
	entry.Clinic = in.Clinic
	entry.Notes = in.Notes
	entry.Results = in.Results

	if err := s.db.Save(entry).Error; err != nil {
		return nil, utils.Storage("SET_ERROR", "update exam entry", err)
	}
	return entry, nil
}

func (s *ExamService) Delete(userID, entryID uint) error {
	entry, err := s.Get(userID, entryID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(entry).Error; err != nil {
		return utils.Storage("REMOVE_ERROR", "delete exam entry", err)
	}
	return nil
}
