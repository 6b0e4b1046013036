package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/dbhelper"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/services"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/stylist"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestServer(t *testing.T, db *gorm.DB, weather services.WeatherServiceProvider) *echo.Echo {
	t.Helper()
	engine, err := stylist.NewEngine(stylist.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	prefs := services.NewPreferenceStore(db)
	recommendations := services.NewRecommendationService(
		engine,
		services.NewWardrobeStore(db),
		services.NewOutfitStore(db),
		prefs,
		weather,
		nil,
		services.RecommendationConfig{TipsTimeout: time.Second},
		zerolog.Nop(),
	)
	return SetupServer(db, recommendations, prefs, nil)
}

func TestHealthz(t *testing.T) {
	db := dbhelper.SetupTestDB()
	e := setupTestServer(t, db, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	db := dbhelper.SetupTestDB()
	e := setupTestServer(t, db, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestStylistRequiresToken(t *testing.T) {
	db := dbhelper.SetupTestDB()
	e := setupTestServer(t, db, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONRequest(http.MethodGet, "/stylist/wardrobe", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStylistRejectsUnknownUser(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := setupTestServer(t, db, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest(http.MethodGet, "/stylist/wardrobe", "987654", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStylistLocksBannedUser(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := setupTestServer(t, db, nil)
	user := test.FakeUser(db)
	db.Model(user).Update("banned", true)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest(http.MethodGet, "/stylist/wardrobe", UIntToStr(user.ID), nil))

	assert.Equal(t, http.StatusLocked, rec.Code)
}
