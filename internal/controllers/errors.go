package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthya/internal/catalog"
	"swasthya/internal/detection"
	"swasthya/internal/health"
	"swasthya/internal/middleware"
	"swasthya/internal/models"
	"swasthya/internal/plans"
	"swasthya/internal/repository"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, health.ErrInvalidInput),
		errors.Is(err, detection.ErrUnsupportedImage),
		errors.Is(err, models.ErrIntakeIndexOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrFoodNotFound),
		errors.Is(err, plans.ErrPlanNotFound),
		errors.Is(err, repository.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope with the status err maps to.
func respondError(c *gin.Context, message string, err error) {
	c.JSON(statusFor(err), gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request data",
		"error":   err.Error(),
	})
}

func sessionIDFrom(c *gin.Context) (string, bool) {
	sessionID := c.GetString(middleware.SessionIDKey)
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Session ID not found in token",
		})
		return "", false
	}
	return sessionID, true
}

// currentSession loads the caller's session. On failure it has already
// written the response.
func currentSession(c *gin.Context, repo repository.SessionRepository) (*models.Session, bool) {
	sessionID, ok := sessionIDFrom(c)
	if !ok {
		return nil, false
	}

	s, err := repo.FindByID(sessionID)
	if err != nil {
		respondError(c, "Session not found", err)
		return nil, false
	}
	return s, true
}

// updateSession applies mutate to the caller's session atomically and returns
// the stored result. Errors from mutate are reported under message. On failure
// it has already written the response.
func updateSession(c *gin.Context, repo repository.SessionRepository, message string, mutate func(*models.Session) error) (*models.Session, bool) {
	sessionID, ok := sessionIDFrom(c)
	if !ok {
		return nil, false
	}

	next, err := repo.Update(sessionID, mutate)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			message = "Session not found"
		}
		respondError(c, message, err)
		return nil, false
	}
	return next, true
}
