package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"swasthya/internal/catalog"
	"swasthya/internal/health"
	"swasthya/internal/models"
)

type FoodController struct {
	foods *catalog.Catalog
}

func NewFoodController(foods *catalog.Catalog) *FoodController {
	return &FoodController{foods: foods}
}

// ListFoods godoc
// @Summary List foods
// @Description List the catalog. Filters combine: q searches name, category and ingredients; category matches exactly; flag is diabetic_friendly, heart_healthy or low_sodium.
// @Tags foods
// @Produce json
// @Param q query string false "Search text"
// @Param category query string false "Exact category"
// @Param flag query string false "Dietary flag"
// @Success 200 {object} map[string]interface{} "Foods retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid flag"
// @Router /foods [get]
func (fc *FoodController) ListFoods(c *gin.Context) {
	foods := fc.foods.Search(c.Query("q"))

	if category, ok := c.GetQuery("category"); ok {
		foods = keep(foods, func(f models.FoodRecord) bool { return f.Category == category })
	}
	if raw, ok := c.GetQuery("flag"); ok {
		flag, valid := models.ParseFlag(raw)
		if !valid {
			respondError(c, "Invalid flag", fmt.Errorf("%w: unknown flag %q", health.ErrInvalidInput, raw))
			return
		}
		foods = keep(foods, func(f models.FoodRecord) bool { return f.Has(flag) })
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Foods retrieved successfully",
		"data": gin.H{
			"foods": foods,
			"count": len(foods),
		},
	})
}

// GetCategories godoc
// @Summary List categories
// @Tags foods
// @Produce json
// @Success 200 {object} map[string]interface{} "Categories retrieved successfully"
// @Router /foods/categories [get]
func (fc *FoodController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Categories retrieved successfully",
		"data":    fc.foods.Categories(),
	})
}

// GetRecommendations godoc
// @Summary Foods for health conditions
// @Description Group foods by the conditions given as a comma-separated list. With no recognized condition every food is returned under "All Foods".
// @Tags foods
// @Produce json
// @Param conditions query string false "Conditions, e.g. Diabetes,Hypertension"
// @Success 200 {object} map[string]interface{} "Recommendations retrieved successfully"
// @Router /foods/recommendations [get]
func (fc *FoodController) GetRecommendations(c *gin.Context) {
	var conditions []models.HealthCondition
	for _, part := range strings.Split(c.Query("conditions"), ",") {
		if part = strings.TrimSpace(part); part != "" {
			conditions = append(conditions, models.HealthCondition(part))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recommendations retrieved successfully",
		"data":    fc.foods.RecommendForConditions(conditions),
	})
}

// GetFood godoc
// @Summary Get a food
// @Description Look a food up by its exact name
// @Tags foods
// @Produce json
// @Param name path string true "Food name"
// @Success 200 {object} map[string]interface{} "Food retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Router /foods/{name} [get]
func (fc *FoodController) GetFood(c *gin.Context) {
	food, err := fc.foods.Find(c.Param("name"))
	if err != nil {
		respondError(c, "Food not found", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food retrieved successfully",
		"data":    food,
	})
}

func keep(foods []models.FoodRecord, ok func(models.FoodRecord) bool) []models.FoodRecord {
	out := []models.FoodRecord{}
	for _, f := range foods {
		if ok(f) {
			out = append(out, f)
		}
	}
	return out
}
