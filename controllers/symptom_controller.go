package controllers

import (
	"net/http"

	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
)

type SymptomController struct {
	Symptoms *services.SymptomService
}

func NewSymptomController(ss *services.SymptomService) *SymptomController {
	return &SymptomController{Symptoms: ss}
}

func (sc *SymptomController) Add(c *gin.Context) {
	var input services.SymptomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := sc.Symptoms.Add(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (sc *SymptomController) List(c *gin.Context) {
	entries, err := sc.Symptoms.List(currentUserID(c), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (sc *SymptomController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := sc.Symptoms.Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
