package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cbaldofetal-collab/nutrigest/config"
	"github.com/cbaldofetal-collab/nutrigest/models"
	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newReportRouter(t *testing.T) (*gin.Engine, *gorm.DB, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	user := &models.User{
		Email: "ana@example.com", Password: "x", Name: "Ana",
		GestationalWeek: 20, Onboarded: true,
	}
	require.NoError(t, db.Create(user).Error)

	reportCtl := NewReportController(services.NewReportService(db), nil)

	r := gin.New()
	g := r.Group("/user", stubAuth(user.ID))
	g.GET("/reports", reportCtl.Data)
	g.GET("/reports/html", reportCtl.HTML)

	return r, db, user
}

func getPath(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReportEndpointRejectsEmptyPeriod(t *testing.T) {
	r, _, _ := newReportRouter(t)

	// no meals logged at all
	w := getPath(t, r, "/user/reports")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "not enough data")

	// the HTML variant aborts the same way
	w = getPath(t, r, "/user/reports/html")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestReportEndpointRejectsUnknownType(t *testing.T) {
	r, _, _ := newReportRouter(t)

	w := getPath(t, r, "/user/reports?type=daily")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportEndpointReturnsDataOnceMealsExist(t *testing.T) {
	r, db, user := newReportRouter(t)

	require.NoError(t, db.Create(&models.MealEntry{
		UserID: user.ID, FoodName: "Oatmeal", MealType: models.MealBreakfast,
		Quantity: 1, Date: time.Now(),
		Nutrients: models.Nutrients{Calories: 350, Protein: 12},
	}).Error)

	w := getPath(t, r, "/user/reports")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recommendations")
}
