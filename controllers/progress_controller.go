package controllers

import (
	"net/http"

	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(ps *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: ps}
}

// Daily returns the day's intake scored against the trimester targets.
func (pc *ProgressController) Daily(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}

	progress, err := pc.Progress.ForDay(currentUserID(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
