package routes

import (
	"swasthya/internal/controllers"
	"swasthya/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.ProfileController, secret string) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.SessionMiddleware(secret))
	{
		profileRoutes.GET("", profileController.GetProfile)
		profileRoutes.PUT("", profileController.UpdateProfile)
		profileRoutes.PATCH("", profileController.PatchProfile)
	}
}
