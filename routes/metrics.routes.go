package routes

import (
	"swasthya/internal/controllers"
	"swasthya/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMetricsRoutes(router *gin.Engine, metricsController *controllers.MetricsController, dashboardController *controllers.DashboardController, secret string) {
	private := router.Group("")
	private.Use(middleware.SessionMiddleware(secret))
	{
		private.GET("/metrics", metricsController.GetMetrics)
		private.POST("/metrics/exercise-burn", metricsController.ExerciseBurn)
		private.GET("/recommendations", metricsController.GetRecommendations)
		private.GET("/dashboard", dashboardController.GetDashboard)
	}
}
