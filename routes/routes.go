package routes

import (
	"github.com/cbaldofetal-collab/nutrigest/controllers"
	"github.com/cbaldofetal-collab/nutrigest/middlewares"
	"github.com/cbaldofetal-collab/nutrigest/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every service and controller onto the gin engine.
// /auth is public; everything under /user requires a bearer token.
func SetupRouter(db *gorm.DB, pdf services.PDFConverter) *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()

	foodSvc := services.NewFoodService(db)
	mealSvc := services.NewMealService(db, foodSvc)
	hydrationSvc := services.NewHydrationService(db)
	weightSvc := services.NewWeightService(db)
	symptomSvc := services.NewSymptomService(db)
	examSvc := services.NewExamService(db)
	favoriteSvc := services.NewFavoriteService(db, mealSvc)
	clinicSvc := services.NewClinicService(db)
	userSvc := services.NewUserService(db)
	authSvc := services.NewAuthService(db)
	progressSvc := services.NewProgressService(mealSvc, hydrationSvc, userSvc)
	reportSvc := services.NewReportService(db)
	alertSvc := services.NewAlertService(db, hub, progressSvc, weightSvc)
	plannerSvc := services.NewPlannerService(favoriteSvc, foodSvc, userSvc)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc, weightSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	hydrationCtl := controllers.NewHydrationController(hydrationSvc)
	weightCtl := controllers.NewWeightController(weightSvc)
	symptomCtl := controllers.NewSymptomController(symptomSvc)
	examCtl := controllers.NewExamController(examSvc, userSvc, pdf)
	favoriteCtl := controllers.NewFavoriteController(favoriteSvc)
	clinicCtl := controllers.NewClinicController(clinicSvc)
	progressCtl := controllers.NewProgressController(progressSvc)
	reportCtl := controllers.NewReportController(reportSvc, pdf)
	alertCtl := controllers.NewAlertController(alertSvc, userSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)
	plannerCtl := controllers.NewPlannerController(plannerSvc)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
	}

	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.Profile)
		user.GET("/session", userCtl.Profile) // token → current user
		user.PUT("/profile", userCtl.UpdateProfile)
		user.POST("/onboarding", userCtl.Onboard)
		user.GET("/weight-gain", userCtl.WeightGain)

		user.GET("/foods", foodCtl.Search)
		user.GET("/foods/:id", foodCtl.Get)
		user.POST("/foods", foodCtl.CreateCustom)

		user.POST("/meals", mealCtl.Log)
		user.GET("/meals", mealCtl.ListByDay)
		user.PUT("/meals/:id", mealCtl.Update)
		user.DELETE("/meals/:id", mealCtl.Delete)

		user.POST("/hydration", hydrationCtl.Add)
		user.GET("/hydration", hydrationCtl.ListByDay)
		user.DELETE("/hydration/:id", hydrationCtl.Delete)

		user.POST("/weight", weightCtl.Add)
		user.GET("/weight", weightCtl.List)
		user.GET("/weight/latest", weightCtl.Latest)
		user.DELETE("/weight/:id", weightCtl.Delete)

		user.POST("/symptoms", symptomCtl.Add)
		user.GET("/symptoms", symptomCtl.List)
		user.DELETE("/symptoms/:id", symptomCtl.Delete)

		user.POST("/exams", examCtl.Add)
		user.GET("/exams", examCtl.List)
		user.GET("/exams/:id", examCtl.Get)
		user.GET("/exams/:id/pdf", examCtl.PDFDownload)
		user.PUT("/exams/:id", examCtl.Update)
		user.DELETE("/exams/:id", examCtl.Delete)

		user.POST("/favorites", favoriteCtl.Create)
		user.GET("/favorites", favoriteCtl.List)
		user.DELETE("/favorites/:id", favoriteCtl.Delete)
		user.POST("/favorites/:id/apply", favoriteCtl.Apply)

		user.PUT("/clinic", clinicCtl.Set)
		user.GET("/clinic", clinicCtl.Get)
		user.DELETE("/clinic", clinicCtl.Delete)

		user.GET("/progress", progressCtl.Daily)

		user.GET("/reports", reportCtl.Data)
		user.GET("/reports/html", reportCtl.HTML)
		user.GET("/reports/pdf", reportCtl.PDFDownload)

		user.GET("/alerts", alertCtl.List)
		user.POST("/alerts/:id/read", alertCtl.MarkRead)
		user.POST("/alerts/evaluate", alertCtl.Evaluate)
		user.GET("/alerts/ws", realtimeCtl.AlertsWS)

		user.GET("/meal-plan", plannerCtl.Week)
	}

	return r
}
