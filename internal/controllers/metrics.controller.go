package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthya/internal/catalog"
	"swasthya/internal/health"
	"swasthya/internal/models"
	"swasthya/internal/repository"
)

type MetricsController struct {
	repo  repository.SessionRepository
	foods *catalog.Catalog
}

func NewMetricsController(repo repository.SessionRepository, foods *catalog.Catalog) *MetricsController {
	return &MetricsController{repo: repo, foods: foods}
}

type exerciseBurnRequest struct {
	Exercise        string   `json:"exercise" binding:"required" example:"Jogging"`
	DurationMinutes float64  `json:"duration_minutes" binding:"required,gt=0" example:"30"`
	Weight          *float64 `json:"weight,omitempty" example:"60"`
}

// GetMetrics godoc
// @Summary Health metrics
// @Description BMI, BMR, daily calorie target, macros, water and advice for the session's profile
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Metrics calculated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid profile"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /metrics [get]
func (mc *MetricsController) GetMetrics(c *gin.Context) {
	s, ok := currentSession(c, mc.repo)
	if !ok {
		return
	}

	report, err := health.Evaluate(s.Profile)
	if err != nil {
		respondError(c, "Invalid profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Metrics calculated successfully",
		"data":    report,
	})
}

// ExerciseBurn godoc
// @Summary Estimate calories burned
// @Description MET-based estimate using the profile weight unless weight is given
// @Tags metrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body exerciseBurnRequest true "Exercise and duration"
// @Success 200 {object} map[string]interface{} "Calories estimated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /metrics/exercise-burn [post]
func (mc *MetricsController) ExerciseBurn(c *gin.Context) {
	var req exerciseBurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s, ok := currentSession(c, mc.repo)
	if !ok {
		return
	}

	weight := s.Profile.Weight
	if req.Weight != nil {
		weight = *req.Weight
	}
	exercise := models.ExerciseType(req.Exercise)
	if parsed, ok := models.ParseExerciseType(req.Exercise); ok {
		exercise = parsed
	}

	burned, err := health.CaloriesBurned(exercise, req.DurationMinutes, weight)
	if err != nil {
		respondError(c, "Invalid exercise data", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Calories estimated successfully",
		"data": gin.H{
			"exercise":         exercise,
			"duration_minutes": req.DurationMinutes,
			"weight":           weight,
			"met":              health.MET(exercise),
			"calories_burned":  burned,
		},
	})
}

// GetRecommendations godoc
// @Summary Personal recommendations
// @Description Health advice, meal improvements and catalog foods for the profile's conditions
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Recommendations retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid profile"
// @Router /recommendations [get]
func (mc *MetricsController) GetRecommendations(c *gin.Context) {
	s, ok := currentSession(c, mc.repo)
	if !ok {
		return
	}

	advice, err := health.Recommendations(s.Profile)
	if err != nil {
		respondError(c, "Invalid profile", err)
		return
	}
	conditions := s.Profile.HealthConditions

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Recommendations for %s retrieved successfully", s.Profile.Name),
		"data": gin.H{
			"health":            advice,
			"meal_improvements": health.MealImprovements(conditions),
			"foods":             mc.foods.RecommendForConditions(conditions),
		},
	})
}
