package services

import (
	"testing"

	"github.com/Maexgon/RoasterManager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewPreferencesService(db)

	profile := models.Profile{Email: "coach@example.com", Password: "x", Language: "es", Theme: "light"}
	require.NoError(t, db.Create(&profile).Error)

	require.NoError(t, svc.Save(profile.ID, Preferences{Language: "en"}))
	prefs, err := svc.Get(profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "en", prefs.Language)
	assert.Equal(t, "light", prefs.Theme, "unset field keeps its stored value")

	require.NoError(t, svc.Save(profile.ID, Preferences{Theme: "dark"}))
	prefs, err = svc.Get(profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "en", prefs.Language)
	assert.Equal(t, "dark", prefs.Theme)
}

func TestPreferencesRejectUnsupportedValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewPreferencesService(db)

	profile := models.Profile{Email: "coach@example.com", Password: "x", Language: "es", Theme: "light"}
	require.NoError(t, db.Create(&profile).Error)

	err := svc.Save(profile.ID, Preferences{Language: "fr"})
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	err = svc.Save(profile.ID, Preferences{Theme: "sepia"})
	assert.ErrorIs(t, err, ErrUnsupportedTheme)

	prefs, err := svc.Get(profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "es", prefs.Language)
	assert.Equal(t, "light", prefs.Theme)
}
