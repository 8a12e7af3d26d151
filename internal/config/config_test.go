package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_HOST", "DB_SSLMODE", "JWT_EXPIRATION", "PROFILE_CACHE_TTL", "USE_S3", "LOCAL_STORAGE_PATH"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.False(t, cfg.FileStorage.UseS3)
	assert.Equal(t, "./uploads", cfg.FileStorage.LocalPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRATION", "2h")
	t.Setenv("USE_S3", "true")
	t.Setenv("PROFILE_CACHE_TTL", "90s")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiry)
	assert.True(t, cfg.FileStorage.UseS3)
	assert.Equal(t, 90*time.Second, cfg.Redis.CacheTTL)
}

func TestParseDuration_Invalid(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("not-a-duration", time.Minute))
}
