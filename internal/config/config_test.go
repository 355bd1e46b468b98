package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 3000, cfg.Port)
	assert.Contains(t, cfg.DBURL, "postgres://")
	assert.True(t, cfg.Validation.StripUnknownFields)
	assert.True(t, cfg.Validation.RejectOnViolation)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("VALIDATION_REJECT", "false")

	cfg := Load()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Contains(t, cfg.DBURL, "db.internal")
	assert.False(t, cfg.Validation.RejectOnViolation)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
}
