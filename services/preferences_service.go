// services/preferences_service.go - Per-user locale and theme
package services

import (
	"errors"

	"github.com/Maexgon/RoasterManager/models"
	"gorm.io/gorm"
)

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnsupportedTheme    = errors.New("unsupported theme")
)

var validLanguages = map[string]bool{"es": true, "en": true}
var validThemes = map[string]bool{"light": true, "dark": true}

// Preferences is the client-visible slice of a profile: loaded once at
// startup, saved on every change.
type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

type PreferencesService struct {
	db *gorm.DB
}

func NewPreferencesService(db *gorm.DB) *PreferencesService {
	return &PreferencesService{db: db}
}

func (s *PreferencesService) Get(profileID string) (*Preferences, error) {
	var profile models.Profile
	if err := s.db.Select("language", "theme").First(&profile, "id = ?", profileID).Error; err != nil {
		return nil, err
	}
	return &Preferences{Language: profile.Language, Theme: profile.Theme}, nil
}

// Save persists the provided preferences. Empty fields keep their
// stored value, values outside the supported sets are rejected.
func (s *PreferencesService) Save(profileID string, prefs Preferences) error {
	updates := map[string]interface{}{}
	if prefs.Language != "" {
		if !validLanguages[prefs.Language] {
			return ErrUnsupportedLanguage
		}
		updates["language"] = prefs.Language
	}
	if prefs.Theme != "" {
		if !validThemes[prefs.Theme] {
			return ErrUnsupportedTheme
		}
		updates["theme"] = prefs.Theme
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&models.Profile{}).Where("id = ?", profileID).Updates(updates).Error
}
