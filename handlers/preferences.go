// handlers/preferences.go - Per-user language and theme preferences
package handlers

import (
	"errors"

	"github.com/Maexgon/RoasterManager/middleware"
	"github.com/Maexgon/RoasterManager/services"
	"github.com/gofiber/fiber/v2"
)

type PreferencesHandler struct {
	prefs *services.PreferencesService
}

func NewPreferencesHandler(prefs *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

// Get returns the caller's saved preferences, loaded once by the client
// at startup.
// GET /api/auth/preferences
func (h *PreferencesHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	prefs, err := h.prefs.Get(userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Profile not found"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"language": prefs.Language,
		"theme":    prefs.Theme,
	})
}

// Save persists a preference change immediately.
// PUT /api/auth/preferences
func (h *PreferencesHandler) Save(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req services.Preferences
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Language == "" && req.Theme == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Nothing to save"})
	}

	err = h.prefs.Save(userID, req)
	switch {
	case errors.Is(err, services.ErrUnsupportedLanguage), errors.Is(err, services.ErrUnsupportedTheme):
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save preferences"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Preferences saved"})
}
