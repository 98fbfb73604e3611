package controllers

import (
	"net/http"

	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
)

type HydrationController struct {
	Hydration *services.HydrationService
}

func NewHydrationController(hs *services.HydrationService) *HydrationController {
	return &HydrationController{Hydration: hs}
}

func (hc *HydrationController) Add(c *gin.Context) {
	var input services.HydrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := hc.Hydration.Add(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (hc *HydrationController) ListByDay(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}

	uid := currentUserID(c)
	entries, err := hc.Hydration.ListByDay(uid, day)
	if err != nil {
		respondError(c, err)
		return
	}

	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total})
}

func (hc *HydrationController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := hc.Hydration.Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
