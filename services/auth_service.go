package services

import (
	"strings"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// Register creates an account and returns a session token. Passwords are
// checked for strength before hashing; the email must be unused.
func (s *AuthService) Register(in RegisterInput) (*models.User, string, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		return nil, "", utils.Invalid("name", "name must have at least 2 characters")
	}
	if errs := utils.ValidatePassword(in.Password); len(errs) > 0 {
		return nil, "", utils.Invalid("password", utils.PasswordErrorMessage(errs))
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", utils.Invalid("email", "email already registered")
	} else if err != gorm.ErrRecordNotFound {
		return nil, "", utils.Storage("GET_ERROR", "check email", err)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", utils.Storage("SET_ERROR", "hash password", err)
	}

	user := &models.User{Email: email, Password: hashed, Name: name}
	if err := s.db.Create(user).Error; err != nil {
		return nil, "", utils.Storage("SET_ERROR", "create user", err)
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		return nil, "", utils.Storage("SET_ERROR", "issue token", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns a session token. The same error is
// returned for an unknown email and a wrong password.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", utils.Invalid("credentials", "invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", utils.Invalid("credentials", "invalid email or password")
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		return nil, "", utils.Storage("SET_ERROR", "issue token", err)
	}
	return &user, token, nil
}

// ForgotPassword issues a reset code valid for 15 minutes and mails it. An
// unknown email is reported as success so the endpoint cannot be used to
// enumerate accounts.
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	user.ResetToken = utils.GenerateRandomToken(6)
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return utils.Storage("SET_ERROR", "store reset token", err)
	}

	return utils.SendResetEmail(user.Email, user.ResetToken)
}

// ResetPassword consumes a valid reset code and sets the new password.
func (s *AuthService) ResetPassword(email, token, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return utils.Invalid("token", "invalid or expired reset code")
	}
	if user.ResetToken == "" || user.ResetToken != token || time.Now().After(user.ResetTokenExp) {
		return utils.Invalid("token", "invalid or expired reset code")
	}
	if errs := utils.ValidatePassword(newPassword); len(errs) > 0 {
		return utils.Invalid("password", utils.PasswordErrorMessage(errs))
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.Storage("SET_ERROR", "hash password", err)
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	if err := s.db.Save(&user).Error; err != nil {
		return utils.Storage("SET_ERROR", "update password", err)
	}
	return nil
}
