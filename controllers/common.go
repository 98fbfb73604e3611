package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// validation → 400, not found → 404, anything else → 500.
func respondError(c *gin.Context, err error) {
	switch {
	case utils.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case utils.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// currentUserID reads the id the auth middleware stored on the context.
func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// pathID parses the :id route parameter. Returns 0 and writes a 400 when
// the parameter is not a number.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// queryDay parses an optional ?date=2006-01-02 query, defaulting to today.
func queryDay(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}
