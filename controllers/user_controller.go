package controllers

import (
	"net/http"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/services"
	"github.com/cbaldofetal-collab/nutrigest/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users  *services.UserService
	Weight *services.WeightService
}

func NewUserController(us *services.UserService, ws *services.WeightService) *UserController {
	return &UserController{Users: us, Weight: ws}
}

// publicUser strips credentials and reset state from the stored row.
func publicUser(u *models.User) gin.H {
	return gin.H{
		"id":               u.ID,
		"email":            u.Email,
		"name":             u.Name,
		"gestational_week": u.GestationalWeek,
		"trimester":        utils.TrimesterForWeek(u.GestationalWeek),
		"due_date":         u.DueDate,
		"initial_weight":   u.InitialWeight,
		"current_weight":   u.CurrentWeight,
		"height":           u.Height,
		"initial_bmi":      u.InitialBMI,
		"onboarded":        u.Onboarded,
	}
}

func (uc *UserController) Profile(c *gin.Context) {
	user, err := uc.Users.Get(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, publicUser(user))
}

func (uc *UserController) Onboard(c *gin.Context) {
	var input services.OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.Users.CompleteOnboarding(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, publicUser(user))
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	var input services.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.Users.UpdateProfile(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, publicUser(user))
}

// WeightGain reports the user's gain against the recommended band.
func (uc *UserController) WeightGain(c *gin.Context) {
	user, err := uc.Users.Get(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if !user.Onboarded {
		c.JSON(http.StatusBadRequest, gin.H{"error": "complete onboarding first"})
		return
	}
	gain := uc.Weight.Gain(user)
	c.JSON(http.StatusOK, gin.H{"as_of": time.Now(), "gain": gain})
}
