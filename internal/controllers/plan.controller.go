package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthya/internal/health"
	"swasthya/internal/models"
	"swasthya/internal/plans"
)

// PlanController serves fixed advisory content; it holds no state.
type PlanController struct{}

func NewPlanController() *PlanController {
	return &PlanController{}
}

// GetMealPlan godoc
// @Summary Meal plan for a day
// @Tags plans
// @Produce json
// @Param day path string true "Weekday, full or three-letter"
// @Success 200 {object} map[string]interface{} "Meal plan retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Unknown day"
// @Router /plans/meals/{day} [get]
func (pc *PlanController) GetMealPlan(c *gin.Context) {
	day, err := plans.ParseWeekday(c.Param("day"))
	if err != nil {
		respondError(c, "Unknown day", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan retrieved successfully",
		"data":    plans.MealPlanFor(day),
	})
}

// GetRoutines godoc
// @Summary Exercise routines
// @Description Every routine, or one when both level and kind are given
// @Tags plans
// @Produce json
// @Param level query string false "Beginner, Intermediate or Advanced"
// @Param kind query string false "Cardio, Strength Training, Yoga or Traditional Dance"
// @Success 200 {object} map[string]interface{} "Routines retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Routine not found"
// @Router /plans/routines [get]
func (pc *PlanController) GetRoutines(c *gin.Context) {
	kind := c.Query("kind")
	if kind == "" {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Routines retrieved successfully",
			"data":    plans.Routines(),
		})
		return
	}

	routine, err := plans.RoutineFor(plans.Level(c.DefaultQuery("level", string(plans.LevelBeginner))), plans.RoutineKind(kind))
	if err != nil {
		respondError(c, "Routine not found", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Routine retrieved successfully",
		"data":    routine,
	})
}

// GetConditionPlan godoc
// @Summary Diet plan for a condition
// @Tags plans
// @Produce json
// @Param condition path string true "Health condition"
// @Success 200 {object} map[string]interface{} "Condition plan retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Condition plan not found"
// @Router /plans/conditions/{condition} [get]
func (pc *PlanController) GetConditionPlan(c *gin.Context) {
	diet, err := plans.ConditionPlan(models.HealthCondition(c.Param("condition")))
	if err != nil {
		respondError(c, "Condition plan not found", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Condition plan retrieved successfully",
		"data":    diet,
	})
}

// GetMealTiming godoc
// @Summary Meal timing guide
// @Tags plans
// @Produce json
// @Success 200 {object} map[string]interface{} "Meal timing retrieved successfully"
// @Router /plans/meal-timing [get]
func (pc *PlanController) GetMealTiming(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal timing retrieved successfully",
		"data":    health.MealTiming(),
	})
}

// GetShoppingList godoc
// @Summary Shopping list
// @Tags plans
// @Produce json
// @Success 200 {object} map[string]interface{} "Shopping list retrieved successfully"
// @Router /plans/shopping-list [get]
func (pc *PlanController) GetShoppingList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Shopping list retrieved successfully",
		"data":    plans.ShoppingList(),
	})
}

// GetTips godoc
// @Summary Exercise and scanning tips
// @Tags plans
// @Produce json
// @Success 200 {object} map[string]interface{} "Tips retrieved successfully"
// @Router /plans/tips [get]
func (pc *PlanController) GetTips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tips retrieved successfully",
		"data": gin.H{
			"exercise": plans.ExerciseTips(),
			"scan":     plans.ScanTips(),
		},
	})
}
