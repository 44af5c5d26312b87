// handlers/players.go - Roster and skill evaluation endpoints
package handlers

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Maexgon/RoasterManager/models"
	"github.com/Maexgon/RoasterManager/services"
	"github.com/Maexgon/RoasterManager/storage"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PlayerHandler struct {
	players *services.PlayerService
	store   storage.BlobStore
}

func NewPlayerHandler(players *services.PlayerService, store storage.BlobStore) *PlayerHandler {
	return &PlayerHandler{players: players, store: store}
}

// List returns the roster with OVR badges.
// GET /api/players?category=Forwards
func (h *PlayerHandler) List(c *fiber.Ctx) error {
	players, err := h.players.ListPlayers(c.Query("category"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch players"})
	}
	return c.JSON(fiber.Map{"success": true, "players": players})
}

// Get returns one player with full assessment history.
// GET /api/players/:id
func (h *PlayerHandler) Get(c *fiber.Ctx) error {
	player, err := h.players.GetPlayer(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Player not found"})
	}
	return c.JSON(fiber.Map{"success": true, "player": player})
}

// Create adds a single player to the roster.
// POST /api/players
func (h *PlayerHandler) Create(c *fiber.Ctx) error {
	var player models.Player
	if err := c.BodyParser(&player); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if player.FirstName == "" || player.LastName == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "First name and last name are required"})
	}
	if err := h.players.CreatePlayer(&player); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "player": player})
}

// Update applies a partial edit.
// PUT /api/players/:id
func (h *PlayerHandler) Update(c *fiber.Ctx) error {
	var update services.PlayerUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	player, err := h.players.UpdatePlayer(c.Params("id"), update)
	if errors.Is(err, services.ErrPlayerWithdrawn) {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if errors.Is(err, services.ErrInvalidPosition) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Player not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "player": player})
}

type BulkUpdateRequest struct {
	IDs   []string    `json:"ids"`
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

var bulkUpdatableFields = map[string]bool{"status": true, "category": true}

// BulkUpdate sets status or category across selected players.
// POST /api/players/bulk
func (h *PlayerHandler) BulkUpdate(c *fiber.Ctx) error {
	var req BulkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if len(req.IDs) == 0 || !bulkUpdatableFields[req.Field] {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Nothing to update"})
	}
	if err := h.players.BulkUpdate(req.IDs, req.Field, req.Value); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Bulk update failed"})
	}
	return c.JSON(fiber.Map{"success": true, "updated": len(req.IDs)})
}

// Delete removes a player.
// DELETE /api/players/:id
func (h *PlayerHandler) Delete(c *fiber.Ctx) error {
	if err := h.players.DeletePlayer(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete player"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Summary returns the per-category status breakdown for the roster
// header cards.
// GET /api/players/summary
func (h *PlayerHandler) Summary(c *fiber.Ctx) error {
	forwards, err := h.players.RosterSummary(models.CategoryForwards)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to build summary"})
	}
	backs, err := h.players.RosterSummary(models.CategoryBacks)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to build summary"})
	}
	return c.JSON(fiber.Map{"success": true, "forwards": forwards, "backs": backs})
}

// AddAssessment saves a new skill evaluation for the player.
// POST /api/players/:id/skills
func (h *PlayerHandler) AddAssessment(c *fiber.Ctx) error {
	var assessment models.SkillAssessment
	if err := c.BodyParser(&assessment); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	assessment.ID = ""
	assessment.PlayerID = c.Params("id")

	err := h.players.AddAssessment(&assessment)
	if errors.Is(err, services.ErrPlayerWithdrawn) {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Player not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save evaluation"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "assessment": assessment})
}

// ListAssessments returns the evaluation history, newest first.
// GET /api/players/:id/skills
func (h *PlayerHandler) ListAssessments(c *fiber.Ctx) error {
	history, err := h.players.ListAssessments(c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch evaluations"})
	}
	return c.JSON(fiber.Map{"success": true, "skills": history})
}

// Rating returns the OVR badge for one player.
// GET /api/players/:id/rating
func (h *PlayerHandler) Rating(c *fiber.Ctx) error {
	rating, err := h.players.PlayerRating(c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to compute rating"})
	}
	return c.JSON(fiber.Map{"success": true, "rating": rating.Rating, "trend": rating.Trend})
}

// UploadAvatar stores a player photo and records its public URL.
// POST /api/players/:id/avatar
func (h *PlayerHandler) UploadAvatar(c *fiber.Ctx) error {
	playerID := c.Params("id")
	player, err := h.players.GetPlayer(playerID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Player not found"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Missing file"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unreadable file"})
	}
	defer src.Close()

	path := fmt.Sprintf("avatars/%s%s", playerID, filepath.Ext(file.Filename))
	url, err := h.store.Upload(path, src)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Upload failed"})
	}

	if err := h.players.SetImageURL(player.ID, url); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to record avatar"})
	}

	return c.JSON(fiber.Map{"success": true, "url": url, "uploaded_at": time.Now().UTC()})
}
