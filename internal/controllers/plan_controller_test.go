package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"swasthya/internal/controllers"
)

func setupPlanRouter() *gin.Engine {
	controller := controllers.NewPlanController()
	router := setupTestRouter()
	router.GET("/plans/meals/:day", controller.GetMealPlan)
	router.GET("/plans/routines", controller.GetRoutines)
	router.GET("/plans/conditions/:condition", controller.GetConditionPlan)
	router.GET("/plans/meal-timing", controller.GetMealTiming)
	router.GET("/plans/shopping-list", controller.GetShoppingList)
	router.GET("/plans/tips", controller.GetTips)
	return router
}

func TestGetMealPlan(t *testing.T) {
	tests := []struct {
		name           string
		day            string
		expectedStatus int
		expectedTotal  float64
	}{
		{"monday", "Monday", http.StatusOK, 1450},
		{"tuesday short name", "tue", http.StatusOK, 1300},
		{"unauthored day reuses monday", "Sunday", http.StatusOK, 1450},
		{"unknown day", "Someday", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := performRequest(t, setupPlanRouter(), http.MethodGet, "/plans/meals/"+tt.day, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedTotal, dataOf(t, response)["total_calories"])
			}
		})
	}
}

func TestGetRoutines(t *testing.T) {
	w, response := performRequest(t, setupPlanRouter(), http.MethodGet, "/plans/routines", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, response["data"], 4)

	w, response = performRequest(t, setupPlanRouter(), http.MethodGet, "/plans/routines?kind=Yoga", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	routine := dataOf(t, response)
	assert.Equal(t, float64(23), routine["total_minutes"])
	assert.Equal(t, float64(80), routine["total_calories"])

	w, _ = performRequest(t, setupPlanRouter(), http.MethodGet, "/plans/routines?level=Advanced&kind=Yoga", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetConditionPlan(t *testing.T) {
	w, response := performRequest(t, setupPlanRouter(), http.MethodGet, "/plans/conditions/hypertension", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hypertension", dataOf(t, response)["condition"])

	w, response = performRequest(t, setupPlanRouter(), http.MethodGet, "/plans/conditions/Kidney%20Disease", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Condition plan not found", response["message"])
}

func TestStaticPlanContent(t *testing.T) {
	w, response := performRequest(t, setupPlanRouter(), http.MethodGet, "/plans/shopping-list", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, response["data"], 4)

	w, response = performRequest(t, setupPlanRouter(), http.MethodGet, "/plans/tips", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	tips := dataOf(t, response)
	assert.Len(t, tips["exercise"], 5)
	assert.Len(t, tips["scan"], 4)

	w, response = performRequest(t, setupPlanRouter(), http.MethodGet, "/plans/meal-timing", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, dataOf(t, response)["breakfast"])
}
