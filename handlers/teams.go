// handlers/teams.go - Team and lineup endpoints
package handlers

import (
	"errors"

	"github.com/Maexgon/RoasterManager/models"
	"github.com/Maexgon/RoasterManager/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TeamHandler struct {
	teams *services.TeamService
}

func NewTeamHandler(teams *services.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// List returns all teams.
// GET /api/teams
func (h *TeamHandler) List(c *fiber.Ctx) error {
	teams, err := h.teams.ListTeams()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teams"})
	}
	return c.JSON(fiber.Map{"success": true, "teams": teams})
}

// Get returns one team plus the players eligible for its lineup.
// GET /api/teams/:id
func (h *TeamHandler) Get(c *fiber.Ctx) error {
	team, err := h.teams.GetTeam(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team not found"})
	}
	players, err := h.teams.EligiblePlayers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch players"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"team":    team,
		"players": players,
		"slots":   services.StartingSlots(team.PlayerCount),
	})
}

type CreateTeamRequest struct {
	Name        string `json:"name"`
	PlayerCount int    `json:"player_count"`
}

// Create adds a team with an empty lineup.
// POST /api/teams
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.PlayerCount == 0 {
		req.PlayerCount = models.MaxPlayerCount
	}

	team, err := h.teams.CreateTeam(req.Name, req.PlayerCount)
	if errors.Is(err, services.ErrInvalidPlayerCount) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "team": team})
}

// Update renames a team.
// PUT /api/teams/:id
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Team name is required"})
	}
	if err := h.teams.UpdateTeam(c.Params("id"), req.Name); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update team"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete removes a team.
// DELETE /api/teams/:id
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	if err := h.teams.DeleteTeam(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete team"})
	}
	return c.JSON(fiber.Map{"success": true})
}

type SaveLineupRequest struct {
	Lineup           models.SlotMap `json:"lineup"`
	SubstitutesCount int            `json:"substitutes_count"`
	CaptainID        string         `json:"captain_id"`
}

// SaveLineup overwrites the team's lineup state wholesale.
// PUT /api/teams/:id/lineup
func (h *TeamHandler) SaveLineup(c *fiber.Ctx) error {
	teamID := c.Params("id")

	team, err := h.teams.GetTeam(teamID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team not found"})
	}

	var req SaveLineupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.SubstitutesCount < 0 || req.SubstitutesCount > models.MaxSubstituteCount {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": services.ErrInvalidSubstitutes.Error()})
	}

	lineup := &services.Lineup{
		PlayerCount:      team.PlayerCount,
		SubstitutesCount: req.SubstitutesCount,
		Slots:            req.Lineup,
		CaptainID:        req.CaptainID,
	}
	if lineup.Slots == nil {
		lineup.Slots = models.SlotMap{}
	}

	warnings, err := h.teams.SaveLineup(team, lineup)
	switch {
	case errors.Is(err, services.ErrPlayerNotFound), errors.Is(err, services.ErrPlayerNotEligible):
		return c.Status(422).JSON(fiber.Map{"success": false, "error": err.Error()})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save lineup"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Lineup saved",
		"warnings": warnings,
	})
}

// Aggregate returns the six-category team radar, or null for an
// unassigned lineup.
// GET /api/teams/:id/aggregate
func (h *TeamHandler) Aggregate(c *fiber.Ctx) error {
	aggregate, err := h.teams.TeamAggregateRating(c.Params("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to compute aggregate"})
	}
	return c.JSON(fiber.Map{"success": true, "aggregate": aggregate})
}
