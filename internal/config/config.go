package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Catalog sources accepted by CATALOG_SOURCE.
const (
	CatalogBuiltin  = "builtin"
	CatalogYAML     = "yaml"
	CatalogDatabase = "database"
)

type Config struct {
	Port          string
	JWTSecret     string
	SessionTTL    time.Duration
	CatalogSource string
	CatalogFile   string
	MaxUploadMB   int64

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	DBTimeZone string
}

// LoadEnv loads the first .env file found among paths. A missing file is not fatal.
func LoadEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			return
		}
	}
	log.Printf("Warning: no .env file found in %v, using process environment", paths)
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET_KEY", "swasthya-dev-secret"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 72, 0)) * time.Hour,
		CatalogSource: getEnv("CATALOG_SOURCE", CatalogBuiltin),
		CatalogFile:   getEnv("CATALOG_FILE", "foods.yaml"),
		MaxUploadMB:   int64(getEnvInt("MAX_UPLOAD_MB", 10, 1)),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "swasthya"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimeZone: getEnv("DB_TIMEZONE", "Asia/Kathmandu"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt falls back when the value is not an integer or is below minimum.
func getEnvInt(key string, fallback, minimum int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < minimum {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}
