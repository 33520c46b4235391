package routes

import (
	"swasthya/internal/controllers"
	"swasthya/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterExerciseRoutes(router *gin.Engine, exerciseController *controllers.ExerciseController, secret string) {
	exerciseRoutes := router.Group("/exercise")
	exerciseRoutes.Use(middleware.SessionMiddleware(secret))
	{
		exerciseRoutes.GET("", exerciseController.GetExercises)
		exerciseRoutes.POST("", exerciseController.LogActivity)
		exerciseRoutes.POST("/routine", exerciseController.LogRoutineExercise)
	}
}
