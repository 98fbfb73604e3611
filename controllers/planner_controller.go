package controllers

import (
	"net/http"

	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
)

type PlannerController struct {
	Planner *services.PlannerService
}

func NewPlannerController(ps *services.PlannerService) *PlannerController {
	return &PlannerController{Planner: ps}
}

// Week proposes a seven-day meal plan starting at ?date (default today).
func (pc *PlannerController) Week(c *gin.Context) {
	start, ok := queryDay(c)
	if !ok {
		return
	}

	plan, err := pc.Planner.WeekPlan(currentUserID(c), start)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
