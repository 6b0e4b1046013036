package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8083", cfg.Server.Address)
	assert.Equal(t, 15*time.Minute, cfg.Weather.CacheTTL)
	assert.Equal(t, int64(42), cfg.Stylist.Seed)
	assert.Equal(t, 50, cfg.Stylist.Adhoc.Cap)
	assert.Equal(t, 10, cfg.Stylist.Forecast.Cap)
	assert.Equal(t, "0 6 * * *", cfg.Redis.DailyPlanCron)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  address: ":9000"
weather:
  cache_ttl: 5m
stylist:
  outfits_per_day: 2
logging:
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LETRY_SERVER__ADDRESS", ":9100")
	t.Setenv("LETRY_STYLIST__SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Server.Address, "env wins over file")
	assert.Equal(t, 5*time.Minute, cfg.Weather.CacheTTL)
	assert.Equal(t, 2, cfg.Stylist.OutfitsPerDay)
	assert.Equal(t, int64(7), cfg.Stylist.Seed)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LETRY_STYLIST__ADHOC__CAP", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adhoc")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero cache ttl", func(c *Config) { c.Weather.CacheTTL = 0 }, false},
		{"zero breaker threshold", func(c *Config) { c.Weather.Breaker.FailureThreshold = 0 }, false},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, false},
		{"zero outfits per day", func(c *Config) { c.Stylist.OutfitsPerDay = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	assert.Equal(t, "weather.breaker.failure_threshold", envTransform("LETRY_WEATHER__BREAKER__FAILURE_THRESHOLD"))
	assert.Equal(t, "auth.jwt_secret", envTransform("LETRY_AUTH__JWT_SECRET"))
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Username: "u", Password: "p", Host: "h", Port: "5432", Name: "db"}
	assert.Equal(t, "postgres://u:p@h:5432/db", d.DSN())
}
