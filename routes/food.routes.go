package routes

import (
	"swasthya/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterFoodRoutes(router *gin.Engine, foodController *controllers.FoodController) {
	foodRoutes := router.Group("/foods")
	{
		foodRoutes.GET("", foodController.ListFoods)
		foodRoutes.GET("/categories", foodController.GetCategories)
		foodRoutes.GET("/recommendations", foodController.GetRecommendations)
		foodRoutes.GET("/:name", foodController.GetFood)
	}
}
