// handlers/billboard.go - Club billboard management (staff side)
package handlers

import (
	"github.com/Maexgon/RoasterManager/middleware"
	"github.com/Maexgon/RoasterManager/models"
	"github.com/Maexgon/RoasterManager/services"
	"github.com/gofiber/fiber/v2"
)

type BillboardHandler struct {
	billboard *services.BillboardService
}

func NewBillboardHandler(billboard *services.BillboardService) *BillboardHandler {
	return &BillboardHandler{billboard: billboard}
}

// List returns all posts, pinned first.
// GET /api/billboard
func (h *BillboardHandler) List(c *fiber.Ctx) error {
	posts, err := h.billboard.ListPosts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch billboard"})
	}
	return c.JSON(fiber.Map{"success": true, "posts": posts})
}

// Create publishes an announcement.
// POST /api/billboard
func (h *BillboardHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var post models.BillboardPost
	if err := c.BodyParser(&post); err != nil || post.Title == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Post title is required"})
	}
	post.AuthorProfileID = userID

	if err := h.billboard.CreatePost(&post); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to publish post"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "post": post})
}

// Delete removes a post.
// DELETE /api/billboard/:id
func (h *BillboardHandler) Delete(c *fiber.Ctx) error {
	if err := h.billboard.DeletePost(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete post"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// SetPinned pins or unpins a post.
// PUT /api/billboard/:id/pin
func (h *BillboardHandler) SetPinned(c *fiber.Ctx) error {
	var req struct {
		Pinned bool `json:"pinned"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := h.billboard.SetPinned(c.Params("id"), req.Pinned); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update post"})
	}
	return c.JSON(fiber.Map{"success": true})
}
