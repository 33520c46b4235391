package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"swasthya/internal/catalog"
	"swasthya/internal/controllers"
)

func setupFoodRouter() *gin.Engine {
	controller := controllers.NewFoodController(catalog.Default())
	router := setupTestRouter()
	router.GET("/foods", controller.ListFoods)
	router.GET("/foods/categories", controller.GetCategories)
	router.GET("/foods/recommendations", controller.GetRecommendations)
	router.GET("/foods/:name", controller.GetFood)
	return router
}

func TestListFoods(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCount  float64
	}{
		{"all foods", "", http.StatusOK, 21},
		{"search", "?q=momo", http.StatusOK, 3},
		{"category", "?category=Main+Course", http.StatusOK, 5},
		{"category is case-sensitive", "?category=main+course", http.StatusOK, 0},
		{"flag", "?flag=low_sodium", http.StatusOK, 11},
		{"loose flag spelling", "?flag=Diabetic-Friendly", http.StatusOK, 15},
		{"combined filters", "?q=momo&flag=diabetic_friendly", http.StatusOK, 2},
		{"unknown flag", "?flag=spicy", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := performRequest(t, setupFoodRouter(), http.MethodGet, "/foods"+tt.query, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedCount, dataOf(t, response)["count"])
			} else {
				assert.Equal(t, "Invalid flag", response["message"])
			}
		})
	}
}

func TestGetFood(t *testing.T) {
	w, response := performRequest(t, setupFoodRouter(), http.MethodGet, "/foods/"+url.PathEscape("Dal Bhat (1 plate)"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(420), dataOf(t, response)["calories"])

	w, response = performRequest(t, setupFoodRouter(), http.MethodGet, "/foods/Pizza", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Food not found", response["message"])
}

func TestGetCategories(t *testing.T) {
	w, response := performRequest(t, setupFoodRouter(), http.MethodGet, "/foods/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	categories := response["data"].([]interface{})
	assert.Len(t, categories, 9)
	assert.Equal(t, "Main Course", categories[0])
}

func TestGetFoodRecommendations(t *testing.T) {
	w, response := performRequest(t, setupFoodRouter(), http.MethodGet, "/foods/recommendations?conditions=Diabetes,%20heart_disease", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, response)
	assert.Len(t, data, 2)
	assert.Len(t, data[catalog.GroupDiabetesFriendly], 15)
	assert.Len(t, data[catalog.GroupHeartHealthy], 15)

	w, response = performRequest(t, setupFoodRouter(), http.MethodGet, "/foods/recommendations", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataOf(t, response)[catalog.GroupAllFoods], 21)
}
