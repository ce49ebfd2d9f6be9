package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INTERNAL_TOKEN", "secret")
	t.Setenv("REMOTE_API_URL", "https://api.example.test/api")

	cfg, missing := load()
	assert.Empty(t, missing)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ".php", cfg.RemoteAPISuffix)
	assert.Equal(t, 15*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, "timestamp", cfg.QuoteNumberMode)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_ReportsMissing(t *testing.T) {
	t.Setenv("INTERNAL_TOKEN", "")
	t.Setenv("REMOTE_API_URL", "")

	_, missing := load()
	assert.Equal(t, []string{"INTERNAL_TOKEN", "REMOTE_API_URL"}, missing)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("INTERNAL_TOKEN", "secret")
	t.Setenv("REMOTE_API_URL", "https://api.example.test")
	t.Setenv("REMOTE_TIMEOUT", "3s")
	t.Setenv("QUOTE_NUMBER_MODE", "uuid")
	t.Setenv("APP_ENV", "production")

	cfg, _ := load()
	assert.Equal(t, 3*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, "uuid", cfg.QuoteNumberMode)
	assert.True(t, cfg.IsProduction())
}

func TestEnvDuration_Invalid(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Minute, envDuration("SOME_TIMEOUT", time.Minute))
}
