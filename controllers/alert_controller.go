package controllers

import (
	"net/http"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	Alerts *services.AlertService
	Users  *services.UserService
}

func NewAlertController(as *services.AlertService, us *services.UserService) *AlertController {
	return &AlertController{Alerts: as, Users: us}
}

func (ac *AlertController) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	alerts, err := ac.Alerts.List(currentUserID(c), unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (ac *AlertController) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ac.Alerts.MarkRead(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}

// Evaluate runs the daily checks on demand and returns any alerts emitted.
func (ac *AlertController) Evaluate(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}

	user, err := ac.Users.Get(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	emitted, err := ac.Alerts.EvaluateDay(user, day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"emitted": emitted, "date": time.Now()})
}
