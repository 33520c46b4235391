package routes

import (
	"swasthya/internal/controllers"
	"swasthya/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSessionRoutes(router *gin.Engine, sessionController *controllers.SessionController, secret string) {
	router.POST("/session", sessionController.CreateSession)

	sessionRoutes := router.Group("/session")
	sessionRoutes.Use(middleware.SessionMiddleware(secret))
	{
		sessionRoutes.GET("", sessionController.GetSession)
		sessionRoutes.DELETE("", sessionController.EndSession)
	}
}
