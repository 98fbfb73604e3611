package services

import (
	"testing"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, token, err := svc.Register(RegisterInput{
		Email: "Maria@Example.com", Password: "Str0ngpass", Name: "Maria",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "maria@example.com", user.Email, "emails are stored lowercased")
	assert.NotEqual(t, "Str0ngpass", user.Password, "password is stored hashed")

	_, _, err = svc.Login("maria@example.com", "Str0ngpass")
	assert.NoError(t, err)

	_, _, err = svc.Login("maria@example.com", "wrong")
	assert.True(t, utils.IsValidation(err))

	_, _, err = svc.Login("nobody@example.com", "Str0ngpass")
	assert.True(t, utils.IsValidation(err))
}

func TestRegisterRejectsWeakPasswordAndDuplicates(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "short", Name: "Ana"})
	assert.True(t, utils.IsValidation(err))

	_, _, err = svc.Register(RegisterInput{Email: "a@b.com", Password: "Str0ngpass", Name: "Ana"})
	require.NoError(t, err)

	_, _, err = svc.Register(RegisterInput{Email: "a@b.com", Password: "Str0ngpass", Name: "Ana"})
	assert.True(t, utils.IsValidation(err))
}

func TestResetPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "Str0ngpass", Name: "Ana"})
	require.NoError(t, err)

	// plant a reset token directly; ForgotPassword would mail it
	var user models.User
	require.NoError(t, db.Where("email = ?", "a@b.com").First(&user).Error)
	user.ResetToken = "ABC123"
	user.ResetTokenExp = time.Now().Add(time.Hour)
	require.NoError(t, db.Save(&user).Error)

	err = svc.ResetPassword("a@b.com", "WRONG", "N3wpassword")
	assert.True(t, utils.IsValidation(err))

	err = svc.ResetPassword("a@b.com", "ABC123", "N3wpassword")
	require.NoError(t, err)

	_, _, err = svc.Login("a@b.com", "N3wpassword")
	assert.NoError(t, err)

	// token is single-use
	err = svc.ResetPassword("a@b.com", "ABC123", "An0therpass")
	assert.True(t, utils.IsValidation(err))
}
