package routes

import (
	"swasthya/internal/controllers"
	"swasthya/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterIntakeRoutes(router *gin.Engine, intakeController *controllers.IntakeController, secret string) {
	intakeRoutes := router.Group("/intake")
	intakeRoutes.Use(middleware.SessionMiddleware(secret))
	{
		intakeRoutes.GET("", intakeController.GetIntake)
		intakeRoutes.POST("", intakeController.AddIntake)
		intakeRoutes.POST("/scan", intakeController.AddScannedIntake)
		intakeRoutes.POST("/meal-plan", intakeController.AddMealPlanIntake)
		intakeRoutes.GET("/summary", intakeController.GetIntakeSummary)
		intakeRoutes.DELETE("/:index", intakeController.RemoveIntake)
	}
}
