package controllers

import (
	"net/http"

	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
)

type ClinicController struct {
	Clinic *services.ClinicService
}

func NewClinicController(cs *services.ClinicService) *ClinicController {
	return &ClinicController{Clinic: cs}
}

func (cc *ClinicController) Set(c *gin.Context) {
	var input services.ClinicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := cc.Clinic.Set(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (cc *ClinicController) Get(c *gin.Context) {
	contact, err := cc.Clinic.Get(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (cc *ClinicController) Delete(c *gin.Context) {
	if err := cc.Clinic.Delete(currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
