// handlers/admin/maintenance.go - Data-fix endpoints
//
// These replace the pile of one-off scripts that used to patch broken
// parent accounts by hand. Every flow is idempotent so support can hit
// the endpoint repeatedly until all steps report success.
package admin

import (
	"github.com/Maexgon/RoasterManager/services"
	"github.com/gofiber/fiber/v2"
)

type Maintenance struct {
	parents *services.ParentService
}

func NewMaintenance(parents *services.ParentService) *Maintenance {
	return &Maintenance{parents: parents}
}

type LinkageRequest struct {
	ParentEmail string `json:"parent_email"`
	PlayerName  string `json:"player_name"`
}

// FixLinkage repairs a missing parent-player linkage. Steps run
// independently with no rollback; the response reports each step so a
// partial failure can be retried as-is.
// POST /api/admin/fix-linkage
func (m *Maintenance) FixLinkage(c *fiber.Ctx) error {
	var req LinkageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.ParentEmail == "" || req.PlayerName == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Parent email and player name are required"})
	}

	result := m.parents.FixLinkage(req.ParentEmail, req.PlayerName)
	status := 200
	if !result.Complete() {
		status = 207
	}
	return c.Status(status).JSON(fiber.Map{"success": result.Complete(), "result": result})
}

// SeedDemo provisions a linked, evaluated demo player for a guardian
// account. Safe to run twice.
// POST /api/admin/seed-demo
func (m *Maintenance) SeedDemo(c *fiber.Ctx) error {
	var req LinkageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.ParentEmail == "" || req.PlayerName == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Parent email and player name are required"})
	}

	result := m.parents.SeedDemo(req.ParentEmail, req.PlayerName)
	status := 200
	if !result.Complete() {
		status = 207
	}
	return c.Status(status).JSON(fiber.Map{"success": result.Complete(), "result": result})
}
