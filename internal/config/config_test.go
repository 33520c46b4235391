package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_SECRET_KEY", "SESSION_TTL_HOURS", "CATALOG_SOURCE", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 72*time.Hour, cfg.SessionTTL)
	assert.Equal(t, CatalogBuiltin, cfg.CatalogSource)
	assert.Equal(t, "swasthya", cfg.DBName)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_HOURS", "12")
	t.Setenv("CATALOG_SOURCE", CatalogYAML)
	t.Setenv("CATALOG_FILE", "/etc/swasthya/foods.yaml")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, CatalogYAML, cfg.CatalogSource)
	assert.Equal(t, "/etc/swasthya/foods.yaml", cfg.CatalogFile)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "soon")
	t.Setenv("MAX_UPLOAD_MB", "-3")

	cfg := Load()

	assert.Equal(t, 72*time.Hour, cfg.SessionTTL)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
}

func TestLoadZeroSessionTTL(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "0")
	t.Setenv("MAX_UPLOAD_MB", "0")

	cfg := Load()

	assert.Equal(t, time.Duration(0), cfg.SessionTTL)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
}
