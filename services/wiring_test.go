package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/config"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/dbhelper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStackWithoutTips(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cfg := config.Default()
	cfg.Google.TipsEnabled = true
	cfg.Google.APIKey = ""

	stack, err := NewStack(context.Background(), &cfg, db, zerolog.Nop())
	require.NoError(t, err)
	defer stack.Close()

	assert.NotNil(t, stack.Recommendations)
	assert.NotNil(t, stack.Preferences)
	assert.Nil(t, stack.Recommendations.tips)
	assert.Equal(t, stack.WeatherCache, stack.Recommendations.weather)
	assert.Equal(t, "closed", stack.Weather.BreakerState())
}

// The binaries hand the result of config.Load straight to NewStack.
func TestNewStackFromLoadedConfig(t *testing.T) {
	t.Setenv(config.ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LETRY_GOOGLE__API_KEY", "")
	db := dbhelper.SetupTestDB()

	cfg, err := config.Load()
	require.NoError(t, err)

	stack, err := NewStack(context.Background(), cfg, db, zerolog.Nop())
	require.NoError(t, err)
	defer stack.Close()

	assert.NotNil(t, stack.Recommendations)
	assert.Nil(t, stack.Recommendations.tips)
}

func TestNewStackRejectsInvalidEngineConfig(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cfg := config.Default()
	cfg.Stylist.OutfitsPerDay = 0

	_, err := NewStack(context.Background(), &cfg, db, zerolog.Nop())
	assert.Error(t, err)
}
