// handlers/events.go - Training, matches, attendance, drills
package handlers

import (
	"errors"
	"strconv"

	"github.com/Maexgon/RoasterManager/middleware"
	"github.com/Maexgon/RoasterManager/models"
	"github.com/Maexgon/RoasterManager/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List returns events, newest first, with attendance counts.
// GET /api/events?type=match
func (h *EventHandler) List(c *fiber.Ctx) error {
	events, err := h.events.ListEvents(c.Query("type"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch events"})
	}
	counts, err := h.events.AttendanceCounts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch attendance"})
	}
	return c.JSON(fiber.Map{"success": true, "events": events, "attendance_counts": counts})
}

// Get returns one event with its session plan and notes.
// GET /api/events/:id
func (h *EventHandler) Get(c *fiber.Ctx) error {
	event, err := h.events.GetEvent(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
	}
	return c.JSON(fiber.Map{"success": true, "event": event})
}

// Create plans a training session or match.
// POST /api/events
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var event models.Event
	if err := c.BodyParser(&event); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if event.Title == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Event title is required"})
	}
	if err := h.events.CreateEvent(&event); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create event"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "event": event})
}

// Update applies a partial edit to an event.
// PUT /api/events/:id
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var update services.EventUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if update.Title != nil && *update.Title == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Event title is required"})
	}

	event, err := h.events.UpdateEvent(c.Params("id"), update)
	switch {
	case errors.Is(err, services.ErrInvalidEventType), errors.Is(err, services.ErrInvalidResult):
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update event"})
	}
	return c.JSON(fiber.Map{"success": true, "event": event})
}

// Delete removes an event.
// DELETE /api/events/:id
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.events.DeleteEvent(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete event"})
	}
	return c.JSON(fiber.Map{"success": true})
}

type AttendanceRequest struct {
	PlayerID string `json:"player_id"`
	Status   string `json:"status"`
}

var validAttendance = map[string]bool{
	models.AttendancePresent:   true,
	models.AttendanceAbsent:    true,
	models.AttendanceJustified: true,
}

// MarkAttendance upserts a player's attendance for the event.
// POST /api/events/:id/attendance
func (h *EventHandler) MarkAttendance(c *fiber.Ctx) error {
	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.PlayerID == "" || !validAttendance[req.Status] {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Player and a valid status are required"})
	}
	if err := h.events.MarkAttendance(c.Params("id"), req.PlayerID, req.Status); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to mark attendance"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Attendance lists the event's attendance records.
// GET /api/events/:id/attendance
func (h *EventHandler) Attendance(c *fiber.Ctx) error {
	records, err := h.events.ListAttendance(c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch attendance"})
	}
	return c.JSON(fiber.Map{"success": true, "attendance": records})
}

// AddPlanSlot appends a drill to the session plan.
// POST /api/events/:id/plan
func (h *EventHandler) AddPlanSlot(c *fiber.Ctx) error {
	var slot models.EventPlanSlot
	if err := c.BodyParser(&slot); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	slot.EventID = c.Params("id")
	if slot.DrillID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Drill is required"})
	}
	if err := h.events.AddPlanSlot(&slot); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to add drill to plan"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "slot": slot})
}

// RemovePlanSlot drops a drill from the session plan.
// DELETE /api/events/:id/plan/:slotId
func (h *EventHandler) RemovePlanSlot(c *fiber.Ctx) error {
	slotID, err := strconv.ParseUint(c.Params("slotId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid slot ID"})
	}
	if err := h.events.RemovePlanSlot(uint(slotID)); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to remove plan slot"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// AddNote attaches a coach note to the event.
// POST /api/events/:id/notes
func (h *EventHandler) AddNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var note models.EventNote
	if err := c.BodyParser(&note); err != nil || note.Body == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Note body is required"})
	}
	note.EventID = c.Params("id")
	note.AuthorProfileID = userID

	if err := h.events.AddNote(&note); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to add note"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "note": note})
}

// ----- Drill library -----

// ListDrills returns the drill library.
// GET /api/drills
func (h *EventHandler) ListDrills(c *fiber.Ctx) error {
	drills, err := h.events.ListDrills()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch drills"})
	}
	return c.JSON(fiber.Map{"success": true, "drills": drills})
}

// CreateDrill adds a drill to the library.
// POST /api/drills
func (h *EventHandler) CreateDrill(c *fiber.Ctx) error {
	var drill models.Drill
	if err := c.BodyParser(&drill); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if drill.Title == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Drill title is required"})
	}
	if err := h.events.CreateDrill(&drill); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create drill"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "drill": drill})
}

// UpdateDrill applies a partial edit to a library drill.
// PUT /api/drills/:id
func (h *EventHandler) UpdateDrill(c *fiber.Ctx) error {
	var update services.DrillUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if update.Title != nil && *update.Title == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Drill title is required"})
	}

	drill, err := h.events.UpdateDrill(c.Params("id"), update)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Drill not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update drill"})
	}
	return c.JSON(fiber.Map{"success": true, "drill": drill})
}

// DeleteDrill removes a library drill.
// DELETE /api/drills/:id
func (h *EventHandler) DeleteDrill(c *fiber.Ctx) error {
	if err := h.events.DeleteDrill(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete drill"})
	}
	return c.JSON(fiber.Map{"success": true})
}
