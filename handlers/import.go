// handlers/import.go - CSV roster import endpoints
package handlers

import (
	"encoding/json"
	"errors"

	"github.com/Maexgon/RoasterManager/services"
	"github.com/gofiber/fiber/v2"
)

type ImportHandler struct {
	importer *services.RosterImportService
}

func NewImportHandler(importer *services.RosterImportService) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// Preview parses an uploaded CSV and suggests a column mapping. Nothing
// is written; the client shows the mapping screen next.
// POST /api/import/preview
func (h *ImportHandler) Preview(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Missing file"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unreadable file"})
	}
	defer src.Close()

	headers, rows, err := services.ParseCSV(src)
	if errors.Is(err, services.ErrEmptyCSV) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Failed to parse CSV: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"headers":           headers,
		"row_count":         len(rows),
		"suggested_mapping": services.SuggestMapping(headers),
	})
}

// Import runs the confirmed mapping against the re-uploaded file and
// bulk-inserts the valid rows.
// POST /api/import/players
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Missing file"})
	}

	var mapping services.ColumnMapping
	if raw := c.FormValue("mapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid mapping"})
		}
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unreadable file"})
	}
	defer src.Close()

	_, rows, err := services.ParseCSV(src)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Failed to parse CSV"})
	}

	records, dropped, err := services.BuildRecords(rows, mapping)
	switch {
	case errors.Is(err, services.ErrMappingIncomplete):
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, services.ErrNoValidRows):
		return c.Status(422).JSON(fiber.Map{"success": false, "error": err.Error(), "dropped": dropped})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Import failed"})
	}

	if err := h.importer.Import(records); err != nil {
		if errors.Is(err, services.ErrDuplicatePlayers) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": err.Error(), "code": "duplicate"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Import failed: " + err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":  true,
		"inserted": len(records),
		"dropped":  dropped,
	})
}
