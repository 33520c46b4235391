package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthya/internal/health"
	"swasthya/internal/models"
	"swasthya/internal/repository"
)

type ProfileController struct {
	repo repository.SessionRepository
}

func NewProfileController(repo repository.SessionRepository) *ProfileController {
	return &ProfileController{repo: repo}
}

// profilePatch carries the fields a PATCH may change; nil means unchanged.
type profilePatch struct {
	Name             *string                  `json:"name"`
	Age              *int                     `json:"age"`
	Weight           *float64                 `json:"weight"`
	Height           *float64                 `json:"height"`
	Gender           *models.Gender           `json:"gender"`
	ActivityLevel    *models.ActivityLevel    `json:"activity_level"`
	Goal             *models.Goal             `json:"goal"`
	HealthConditions []models.HealthCondition `json:"health_conditions"`
}

func (p profilePatch) apply(to models.UserProfile) models.UserProfile {
	out := to.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Age != nil {
		out.Age = *p.Age
	}
	if p.Weight != nil {
		out.Weight = *p.Weight
	}
	if p.Height != nil {
		out.Height = *p.Height
	}
	if p.Gender != nil {
		out.Gender = *p.Gender
	}
	if p.ActivityLevel != nil {
		out.ActivityLevel = *p.ActivityLevel
	}
	if p.Goal != nil {
		out.Goal = *p.Goal
	}
	if p.HealthConditions != nil {
		out.HealthConditions = append([]models.HealthCondition(nil), p.HealthConditions...)
	}
	return out
}

// GetProfile godoc
// @Summary Get profile
// @Description Retrieve the session's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	s, ok := currentSession(c, pc.repo)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    s.Profile,
	})
}

// UpdateProfile godoc
// @Summary Replace profile
// @Description Replace the whole profile. Enum values accept loose spellings such as "very_active".
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.UserProfile true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /profile [put]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		badRequest(c, err)
		return
	}

	pc.store(c, func(models.UserProfile) models.UserProfile { return profile })
}

// PatchProfile godoc
// @Summary Update profile fields
// @Description Change only the fields present in the body
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body profilePatch true "Fields to change"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /profile [patch]
func (pc *ProfileController) PatchProfile(c *gin.Context) {
	var patch profilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	pc.store(c, patch.apply)
}

// store replaces the profile with build(current) once it validates.
func (pc *ProfileController) store(c *gin.Context, build func(models.UserProfile) models.UserProfile) {
	var report health.Report
	next, ok := updateSession(c, pc.repo, "Invalid profile", func(s *models.Session) error {
		profile := build(s.Profile).Normalize()
		if len(profile.HealthConditions) == 0 {
			profile.HealthConditions = []models.HealthCondition{models.ConditionNone}
		}
		var err error
		if report, err = health.Evaluate(profile); err != nil {
			return err
		}
		*s = s.WithProfile(profile)
		return nil
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data": gin.H{
			"profile": next.Profile,
			"metrics": report,
		},
	})
}
