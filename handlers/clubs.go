// handlers/clubs.go - Club registry endpoints
package handlers

import (
	"errors"

	"github.com/Maexgon/RoasterManager/services"
	"github.com/gofiber/fiber/v2"
)

type ClubHandler struct {
	clubs *services.ClubService
}

func NewClubHandler(clubs *services.ClubService) *ClubHandler {
	return &ClubHandler{clubs: clubs}
}

// List returns the registered clubs, the source for the match rival
// selector.
// GET /api/clubs
func (h *ClubHandler) List(c *fiber.Ctx) error {
	clubs, err := h.clubs.ListClubs()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch clubs"})
	}
	return c.JSON(fiber.Map{"success": true, "clubs": clubs})
}

type CreateClubRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// Create registers a club.
// POST /api/clubs
func (h *ClubHandler) Create(c *fiber.Ctx) error {
	var req CreateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	club, err := h.clubs.CreateClub(req.Name, req.LogoURL)
	if errors.Is(err, services.ErrClubNameRequired) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create club"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "club": club})
}

// Delete removes a club.
// DELETE /api/clubs/:id
func (h *ClubHandler) Delete(c *fiber.Ctx) error {
	if err := h.clubs.DeleteClub(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete club"})
	}
	return c.JSON(fiber.Map{"success": true})
}
