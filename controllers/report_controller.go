package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
	PDF     services.PDFConverter
}

func NewReportController(rs *services.ReportService, pdf services.PDFConverter) *ReportController {
	return &ReportController{Reports: rs, PDF: pdf}
}

func reportType(c *gin.Context) (string, bool) {
	t := c.Query("type")
	if t == "" {
		t = services.ReportWeekly
	}
	switch t {
	case services.ReportWeekly, services.ReportMonthly, services.ReportTrimester:
		return t, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "type must be weekly, monthly or trimester"})
	return "", false
}

func (rc *ReportController) prepare(c *gin.Context) (*services.ReportData, bool) {
	t, ok := reportType(c)
	if !ok {
		return nil, false
	}

	data, err := rc.Reports.Prepare(currentUserID(c), t, time.Now())
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if !services.HasNutritionData(data.DailyNutrition) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "not enough data to generate a report; log some meals first",
		})
		return nil, false
	}
	return data, true
}

// Data returns the raw report snapshot as JSON.
func (rc *ReportController) Data(c *gin.Context) {
	data, ok := rc.prepare(c)
	if !ok {
		return
	}
	avg := services.CalculateAverageNutrition(data.DailyNutrition)
	c.JSON(http.StatusOK, gin.H{
		"report":          data,
		"averages":        avg,
		"patterns":        services.AnalyzePatterns(data.DailyNutrition, data.Meals),
		"recommendations": services.GenerateRecommendations(avg, services.TargetForWeek(data.User.GestationalWeek)),
	})
}

// HTML renders the report document inline.
func (rc *ReportController) HTML(c *gin.Context) {
	data, ok := rc.prepare(c)
	if !ok {
		return
	}

	html, err := services.RenderReportHTML(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PDFDownload renders the report and converts it to a PDF attachment.
func (rc *ReportController) PDFDownload(c *gin.Context) {
	data, ok := rc.prepare(c)
	if !ok {
		return
	}

	html, err := services.RenderReportHTML(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pdf, err := rc.PDF.Convert(html)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("nutrition-report-%s-%s.pdf", data.Type, data.EndDate.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
