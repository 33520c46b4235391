package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"swasthya/internal/catalog"
	"swasthya/internal/detection"
	"swasthya/internal/health"
	"swasthya/internal/models"
	"swasthya/internal/plans"
	"swasthya/internal/repository"
	"swasthya/internal/session"
)

type IntakeController struct {
	repo  repository.SessionRepository
	foods *catalog.Catalog
}

func NewIntakeController(repo repository.SessionRepository, foods *catalog.Catalog) *IntakeController {
	return &IntakeController{repo: repo, foods: foods}
}

// addIntakeRequest logs a catalog food when Calories is omitted, otherwise a
// free-form entry.
type addIntakeRequest struct {
	FoodName string `json:"food_name" binding:"required" example:"Dal Bhat (1 plate)"`
	Calories *int   `json:"calories,omitempty" example:"420"`
}

type scanIntakeRequest struct {
	Foods []detection.DetectedFood `json:"foods" binding:"required,min=1"`
}

type mealPlanIntakeRequest struct {
	Day  string `json:"day" binding:"required" example:"Monday"`
	Meal string `json:"meal" binding:"required" example:"Lunch"`
}

// GetIntake godoc
// @Summary List intake
// @Description Every food logged in the session, oldest first
// @Tags intake
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Intake retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /intake [get]
func (ic *IntakeController) GetIntake(c *gin.Context) {
	s, ok := currentSession(c, ic.repo)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Intake retrieved successfully",
		"data": gin.H{
			"entries":           s.Intake,
			"consumed_calories": s.ConsumedCalories(),
		},
	})
}

// AddIntake godoc
// @Summary Log a food
// @Description Log a catalog food by name, or any food with explicit calories
// @Tags intake
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body addIntakeRequest true "Food to log"
// @Success 201 {object} map[string]interface{} "Food logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Router /intake [post]
func (ic *IntakeController) AddIntake(c *gin.Context) {
	var req addIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ic.logIntake(c, func() ([]models.IntakeEntry, error) {
		var (
			entry models.IntakeEntry
			err   error
		)
		if req.Calories == nil {
			entry, err = session.IntakeFromCatalog(ic.foods, req.FoodName, time.Now())
		} else {
			entry, err = session.IntakeManual(req.FoodName, *req.Calories, time.Now())
		}
		return []models.IntakeEntry{entry}, err
	})
}

// AddScannedIntake godoc
// @Summary Log scanned foods
// @Description Log the dishes a scan detected, one entry per dish
// @Tags intake
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body scanIntakeRequest true "Detected foods"
// @Success 201 {object} map[string]interface{} "Food logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /intake/scan [post]
func (ic *IntakeController) AddScannedIntake(c *gin.Context) {
	var req scanIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	for _, f := range req.Foods {
		if f.Name == "" || f.Calories < 0 {
			badRequest(c, fmt.Errorf("%w: detected food needs a name and non-negative calories", health.ErrInvalidInput))
			return
		}
	}

	ic.logIntake(c, func() ([]models.IntakeEntry, error) {
		return session.IntakeFromScan(req.Foods, time.Now()), nil
	})
}

// AddMealPlanIntake godoc
// @Summary Log a planned meal
// @Description Log one meal of a day's meal plan
// @Tags intake
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body mealPlanIntakeRequest true "Day and meal"
// @Success 201 {object} map[string]interface{} "Food logged successfully"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Router /intake/meal-plan [post]
func (ic *IntakeController) AddMealPlanIntake(c *gin.Context) {
	var req mealPlanIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	day, err := plans.ParseWeekday(req.Day)
	if err != nil {
		respondError(c, "Meal not found", err)
		return
	}
	meal, err := plans.Meal(day, req.Meal)
	if err != nil {
		respondError(c, "Meal not found", err)
		return
	}

	ic.logIntake(c, func() ([]models.IntakeEntry, error) {
		return []models.IntakeEntry{session.IntakeFromMealPlan(meal, time.Now())}, nil
	})
}

// RemoveIntake godoc
// @Summary Remove a logged food
// @Description Remove the entry at the given zero-based position
// @Tags intake
// @Produce json
// @Security BearerAuth
// @Param index path int true "Entry position"
// @Success 200 {object} map[string]interface{} "Food removed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid index"
// @Router /intake/{index} [delete]
func (ic *IntakeController) RemoveIntake(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid index",
			"error":   "Index must be an integer",
		})
		return
	}

	var removed models.IntakeEntry
	next, ok := updateSession(c, ic.repo, "Invalid index", func(s *models.Session) error {
		remaining, err := s.RemoveIntake(index)
		if err != nil {
			return err
		}
		removed = s.Intake[index]
		*s = remaining
		return nil
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food removed successfully",
		"data": gin.H{
			"removed":           removed,
			"entries":           next.Intake,
			"consumed_calories": next.ConsumedCalories(),
		},
	})
}

// GetIntakeSummary godoc
// @Summary Intake nutrient summary
// @Description Calorie and macro totals of the log, with each macro's share of calories
// @Tags intake
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Intake summary retrieved successfully"
// @Router /intake/summary [get]
func (ic *IntakeController) GetIntakeSummary(c *gin.Context) {
	s, ok := currentSession(c, ic.repo)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Intake summary retrieved successfully",
		"data":    session.AnalyzeIntake(*s, ic.foods),
	})
}

// logIntake appends the entries build returns. build runs once the session
// is locked for update.
func (ic *IntakeController) logIntake(c *gin.Context, build func() ([]models.IntakeEntry, error)) {
	var entries []models.IntakeEntry
	next, ok := updateSession(c, ic.repo, "Failed to log food", func(s *models.Session) error {
		var err error
		if entries, err = build(); err != nil {
			return err
		}
		*s = s.AddIntake(entries...)
		return nil
	})
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food logged successfully",
		"data": gin.H{
			"added":             entries,
			"consumed_calories": next.ConsumedCalories(),
		},
	})
}
