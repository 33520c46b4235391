package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthya/internal/catalog"
	"swasthya/internal/repository"
	"swasthya/internal/session"
)

type DashboardController struct {
	repo  repository.SessionRepository
	foods *catalog.Catalog
}

func NewDashboardController(repo repository.SessionRepository, foods *catalog.Catalog) *DashboardController {
	return &DashboardController{repo: repo, foods: foods}
}

// GetDashboard godoc
// @Summary Dashboard
// @Description Calories consumed against the daily target, burn, BMI and recent meals
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid profile"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	s, ok := currentSession(c, dc.repo)
	if !ok {
		return
	}

	summary, err := session.Dashboard(*s, dc.foods)
	if err != nil {
		respondError(c, "Invalid profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data":    summary,
	})
}
