// handlers/parent.go - Parent portal endpoints
package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Maexgon/RoasterManager/middleware"
	"github.com/Maexgon/RoasterManager/services"
	"github.com/Maexgon/RoasterManager/storage"
	"github.com/gofiber/fiber/v2"
)

type ParentHandler struct {
	parents   *services.ParentService
	billboard *services.BillboardService
	store     storage.BlobStore
}

func NewParentHandler(parents *services.ParentService, billboard *services.BillboardService, store storage.BlobStore) *ParentHandler {
	return &ParentHandler{parents: parents, billboard: billboard, store: store}
}

// Players lists the caller's linked players with rating badges.
// GET /api/parent/players
func (h *ParentHandler) Players(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	players, err := h.parents.LinkedPlayers(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch players"})
	}
	return c.JSON(fiber.Map{"success": true, "players": players})
}

// Player returns one linked player. A missing linkage answers exactly
// like a missing player.
// GET /api/parent/players/:id
func (h *ParentHandler) Player(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	player, err := h.parents.LinkedPlayer(userID, c.Params("id"))
	if errors.Is(err, services.ErrNotLinked) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Player not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch player"})
	}
	return c.JSON(fiber.Map{"success": true, "player": player})
}

// UpdateMedical edits the whitelisted medical fields of a linked player.
// PUT /api/parent/players/:id/medical
func (h *ParentHandler) UpdateMedical(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var update services.MedicalUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	err = h.parents.UpdateMedicalRecord(userID, c.Params("id"), update)
	if errors.Is(err, services.ErrNotLinked) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Player not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update medical record"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Medical record updated"})
}

// UploadCertificate stores a linked player's medical certificate.
// POST /api/parent/players/:id/certificate
func (h *ParentHandler) UploadCertificate(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	playerID := c.Params("id")
	linked, err := h.parents.IsLinked(userID, playerID)
	if err != nil || !linked {
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

	path := fmt.Sprintf("certificates/%s%s", playerID, filepath.Ext(file.Filename))
	url, err := h.store.Upload(path, src)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Upload failed"})
	}

	if err := h.parents.SetCertificateURL(playerID, url); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to record certificate"})
	}
	return c.JSON(fiber.Map{"success": true, "url": url})
}

// Billboard returns club announcements for the portal.
// GET /api/parent/billboard
func (h *ParentHandler) Billboard(c *fiber.Ctx) error {
	posts, err := h.billboard.ListPosts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch billboard"})
	}
	return c.JSON(fiber.Map{"success": true, "posts": posts})
}
