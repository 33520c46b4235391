package routes

import (
	"swasthya/internal/controllers"
	"swasthya/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterScanRoutes(router *gin.Engine, scanController *controllers.ScanController, secret string) {
	scanRoutes := router.Group("/scan")
	scanRoutes.Use(middleware.SessionMiddleware(secret))
	{
		scanRoutes.POST("", scanController.ScanFood)
	}
}
