package routes

import (
	"swasthya/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPlanRoutes(router *gin.Engine, planController *controllers.PlanController) {
	planRoutes := router.Group("/plans")
	{
		planRoutes.GET("/meals/:day", planController.GetMealPlan)
		planRoutes.GET("/routines", planController.GetRoutines)
		planRoutes.GET("/conditions/:condition", planController.GetConditionPlan)
		planRoutes.GET("/meal-timing", planController.GetMealTiming)
		planRoutes.GET("/shopping-list", planController.GetShoppingList)
		planRoutes.GET("/tips", planController.GetTips)
	}
}
