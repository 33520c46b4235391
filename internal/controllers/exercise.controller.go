package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swasthya/internal/models"
	"swasthya/internal/plans"
	"swasthya/internal/repository"
	"swasthya/internal/session"
)

type ExerciseController struct {
	repo repository.SessionRepository
}

func NewExerciseController(repo repository.SessionRepository) *ExerciseController {
	return &ExerciseController{repo: repo}
}

type logActivityRequest struct {
	Exercise        string  `json:"exercise" binding:"required" example:"Walking"`
	DurationMinutes float64 `json:"duration_minutes" binding:"required,gt=0" example:"30"`
}

type logRoutineRequest struct {
	Level    string `json:"level" example:"Beginner"`
	Kind     string `json:"kind" binding:"required" example:"Cardio"`
	Exercise string `json:"exercise" binding:"required" example:"Morning Walk"`
}

// GetExercises godoc
// @Summary List exercise log
// @Tags exercise
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Exercise log retrieved successfully"
// @Router /exercise [get]
func (ec *ExerciseController) GetExercises(c *gin.Context) {
	s, ok := currentSession(c, ec.repo)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise log retrieved successfully",
		"data": gin.H{
			"entries":         s.Exercises,
			"burned_calories": s.BurnedCalories(),
		},
	})
}

// LogActivity godoc
// @Summary Log a timed activity
// @Description Log an activity with a MET-based burn estimate for the profile's weight
// @Tags exercise
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body logActivityRequest true "Activity and duration"
// @Success 201 {object} map[string]interface{} "Exercise logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /exercise [post]
func (ec *ExerciseController) LogActivity(c *gin.Context) {
	var req logActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// The burn depends on the stored profile's weight, so it is computed under
	// the same update.
	ec.logExercise(c, func(p models.UserProfile) (models.ExerciseLogEntry, error) {
		return session.ExerciseFromActivity(p, models.ExerciseType(req.Exercise), req.DurationMinutes, time.Now())
	})
}

// LogRoutineExercise godoc
// @Summary Log a routine exercise
// @Description Log one exercise of a canned routine with its listed burn
// @Tags exercise
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body logRoutineRequest true "Routine exercise"
// @Success 201 {object} map[string]interface{} "Exercise logged successfully"
// @Failure 404 {object} map[string]interface{} "Exercise not found"
// @Router /exercise/routine [post]
func (ec *ExerciseController) LogRoutineExercise(c *gin.Context) {
	var req logRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	level := plans.Level(req.Level)
	if level == "" {
		level = plans.LevelBeginner
	}

	exercise, err := plans.RoutineExerciseByName(level, plans.RoutineKind(req.Kind), req.Exercise)
	if err != nil {
		respondError(c, "Exercise not found", err)
		return
	}

	ec.logExercise(c, func(models.UserProfile) (models.ExerciseLogEntry, error) {
		return session.ExerciseFromRoutine(exercise, time.Now()), nil
	})
}

func (ec *ExerciseController) logExercise(c *gin.Context, build func(models.UserProfile) (models.ExerciseLogEntry, error)) {
	var entry models.ExerciseLogEntry
	next, ok := updateSession(c, ec.repo, "Failed to log exercise", func(s *models.Session) error {
		var err error
		if entry, err = build(s.Profile); err != nil {
			return err
		}
		*s = s.AddExercise(entry)
		return nil
	})
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Exercise logged successfully",
		"data": gin.H{
			"added":           entry,
			"burned_calories": next.BurnedCalories(),
		},
	})
}
