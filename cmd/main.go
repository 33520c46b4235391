package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swasthya/database"
	"swasthya/docs"
	"swasthya/internal/catalog"
	"swasthya/internal/config"
	"swasthya/internal/controllers"
	"swasthya/internal/detection"
	"swasthya/internal/repository"
	"swasthya/internal/utils"
	"swasthya/routes"
)

// @title Swasthya API
// @version 1.0
// @description Personal wellness API for Nepalese diets: health metrics, food catalog, meal and exercise plans.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token as "Bearer <token>"
func main() {
	config.LoadEnv(".env", "../.env")
	cfg := config.Load()

	docs.SwaggerInfo.Title = "Swasthya API"
	docs.SwaggerInfo.Description = "Personal wellness API for Nepalese diets: health metrics, food catalog, meal and exercise plans."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	foods, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load food catalog: %v", err)
	}
	log.Printf("Loaded %d foods from %s catalog", foods.Len(), cfg.CatalogSource)

	sessionRepo := repository.NewSessionRepository(cfg.SessionTTL)
	detector := detection.NewRandomDetector(nil)

	sessionController := controllers.NewSessionController(sessionRepo, cfg.JWTSecret, cfg.SessionTTL)
	profileController := controllers.NewProfileController(sessionRepo)
	metricsController := controllers.NewMetricsController(sessionRepo, foods)
	dashboardController := controllers.NewDashboardController(sessionRepo, foods)
	intakeController := controllers.NewIntakeController(sessionRepo, foods)
	exerciseController := controllers.NewExerciseController(sessionRepo)
	scanController := controllers.NewScanController(sessionRepo, detector, cfg.MaxUploadMB<<20)
	foodController := controllers.NewFoodController(foods)
	planController := controllers.NewPlanController()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadMB << 20

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Swasthya API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"catalog":  cfg.CatalogSource,
			"foods":    foods.Len(),
			"sessions": sessionRepo.Count(),
		})
	})

	routes.RegisterSessionRoutes(router, sessionController, cfg.JWTSecret)
	routes.RegisterProfileRoutes(router, profileController, cfg.JWTSecret)
	routes.RegisterMetricsRoutes(router, metricsController, dashboardController, cfg.JWTSecret)
	routes.RegisterIntakeRoutes(router, intakeController, cfg.JWTSecret)
	routes.RegisterExerciseRoutes(router, exerciseController, cfg.JWTSecret)
	routes.RegisterScanRoutes(router, scanController, cfg.JWTSecret)
	routes.RegisterFoodRoutes(router, foodController)
	routes.RegisterPlanRoutes(router, planController)
	routes.RegisterSwaggerRoutes(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Swasthya API server starting on port %s", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case config.CatalogBuiltin:
		return catalog.Default(), nil
	case config.CatalogYAML:
		return catalog.LoadYAML(cfg.CatalogFile)
	case config.CatalogDatabase:
		db, err := database.ConnectDatabase(cfg)
		if err != nil {
			return nil, err
		}
		defer database.Close(db)
		if err := database.MigrateDatabase(db); err != nil {
			return nil, err
		}
		return utils.LoadCatalog(repository.NewFoodRepository(db))
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q (want %s, %s or %s)",
			cfg.CatalogSource, config.CatalogBuiltin, config.CatalogYAML, config.CatalogDatabase)
	}
}
