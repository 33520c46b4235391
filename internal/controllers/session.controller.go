package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"swasthya/internal/middleware"
	"swasthya/internal/models"
	"swasthya/internal/repository"
)

type SessionController struct {
	repo   repository.SessionRepository
	secret string
	ttl    time.Duration
}

func NewSessionController(repo repository.SessionRepository, secret string, ttl time.Duration) *SessionController {
	return &SessionController{repo: repo, secret: secret, ttl: ttl}
}

// CreateSession godoc
// @Summary Start a session
// @Description Create a session with the default profile and return its bearer token
// @Tags session
// @Produce json
// @Success 201 {object} map[string]interface{} "Session created successfully"
// @Failure 500 {object} map[string]interface{} "Failed to create session"
// @Router /session [post]
func (sc *SessionController) CreateSession(c *gin.Context) {
	s := models.NewSession(uuid.NewString(), time.Now())
	if err := sc.repo.Create(&s); err != nil {
		log.Printf("Error creating session %s: %v", s.ID, err)
		respondError(c, "Failed to create session", err)
		return
	}

	token, err := middleware.GenerateSessionToken(sc.secret, s.ID, sc.ttl)
	if err != nil {
		log.Printf("Error signing token for session %s: %v", s.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create session",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Session created successfully",
		"data": gin.H{
			"session_id": s.ID,
			"token":      token,
			"profile":    s.Profile,
		},
	})
}

// GetSession godoc
// @Summary Get session
// @Description Return the full session: profile, intake log and exercise log
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Session retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /session [get]
func (sc *SessionController) GetSession(c *gin.Context) {
	s, ok := currentSession(c, sc.repo)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session retrieved successfully",
		"data":    s,
	})
}

// EndSession godoc
// @Summary End session
// @Description Discard the session and everything logged in it
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Session ended successfully"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /session [delete]
func (sc *SessionController) EndSession(c *gin.Context) {
	if err := sc.repo.Delete(c.GetString(middleware.SessionIDKey)); err != nil {
		respondError(c, "Session not found", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session ended successfully",
	})
}
