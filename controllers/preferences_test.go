package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/dbhelper"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPreferences(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := setupTestServer(t, db, nil)
	user := test.FakeUser(db)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequest("GET", "/stylist/preferences", UIntToStr(user.ID), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var prefs models.UserPreferences
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	assert.Equal(t, models.DefaultNeutralColors, prefs.NeutralColors)
	assert.Empty(t, prefs.PreferredColors)
}

func TestPatchPreferences(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := setupTestServer(t, db, nil)
	user := test.FakeUser(db)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequestRaw("PATCH", "/stylist/preferences", UIntToStr(user.ID), `{
		"preferred_colors": [" Teal ", "teal", "Olive"],
		"style": {"primary_style": "minimal", "formality": "smart_casual"}
	}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var prefs models.UserPreferences
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	assert.Equal(t, []string{"teal", "olive"}, prefs.PreferredColors)
	require.NotNil(t, prefs.Style)
	assert.Equal(t, models.FormalitySmartCasual, prefs.Style.Formality)
	// untouched fields keep their values
	assert.Equal(t, models.DefaultNeutralColors, prefs.NeutralColors)

	var stored models.UserAccount
	require.NoError(t, db.Take(&stored, user.ID).Error)
	assert.Equal(t, []string{"teal", "olive"}, stored.Preferences.PreferredColors)
}

func TestPatchPreferencesRejectsUnknownFormality(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := setupTestServer(t, db, nil)
	user := test.FakeUser(db)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequestRaw("PATCH", "/stylist/preferences", UIntToStr(user.ID),
		`{"style": {"primary_style": "minimal", "formality": "gala"}}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
