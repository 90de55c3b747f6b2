package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"APP_ENV", "ENV", "HTTP_ADDR", "DATABASE_URL", "LOG_LEVEL", "TIMEZONE", "WEEKEND_DAYS",
	"SWEEP_INTERVAL", "SWEEP_ENABLED", "SWEEP_ON_START", "ADMIN_TOKEN", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := fromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, cfg.WeekendDays)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.True(t, cfg.SweepEnabled)
	assert.True(t, cfg.SweepOnStart)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.AdminToken)
	assert.Nil(t, cfg.CORSOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "Staging")
	t.Setenv("WEEKEND_DAYS", "fri, saturday,5")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("SWEEP_ENABLED", "off")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := fromEnv()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.AppEnv)
	assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, cfg.WeekendDays)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.False(t, cfg.SweepEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"bad interval":  {"SWEEP_INTERVAL", "soon"},
		"zero interval": {"SWEEP_INTERVAL", "0s"},
		"bad timezone":  {"TIMEZONE", "Mars/Olympus"},
		"bad weekday":   {"WEEKEND_DAYS", "sat,funday"},
		"all weekend":   {"WEEKEND_DAYS", "0,1,2,3,4,5,6"},
		"bad log level": {"LOG_LEVEL", "verbose"},
		"bad shutdown":  {"SHUTDOWN_TIMEOUT", "-1s"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := fromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnv_ProdRules(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := fromEnv()
	assert.ErrorContains(t, err, "PostgreSQL")

	t.Setenv("DATABASE_URL", "postgres://app@db/courts")
	t.Setenv("ADMIN_TOKEN", "short")
	_, err = fromEnv()
	assert.ErrorContains(t, err, "ADMIN_TOKEN")

	t.Setenv("ADMIN_TOKEN", "0123456789abcdef0123")
	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.True(t, IsProdLike(cfg.AppEnv))
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, godotenv.Write(map[string]string{"HTTP_ADDR": ":9191", "SWEEP_INTERVAL": "2m"}, filepath.Join(dir, ".env")))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv does not override variables that are already set, even empty
	// ones, so drop the two under test.
	require.NoError(t, os.Unsetenv("HTTP_ADDR"))
	require.NoError(t, os.Unsetenv("SWEEP_INTERVAL"))
	t.Cleanup(func() {
		_ = os.Unsetenv("HTTP_ADDR")
		_ = os.Unsetenv("SWEEP_INTERVAL")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9191", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Minute, cfg.SweepInterval)
}
