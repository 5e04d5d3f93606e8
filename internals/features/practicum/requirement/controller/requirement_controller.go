package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	journalService "ojtsystem_backend/internals/features/practicum/journal/service"
	"ojtsystem_backend/internals/features/practicum/requirement/service"
	helper "ojtsystem_backend/internals/helpers"
)

type RequirementController struct {
	DB *gorm.DB
}

func NewRequirementController(db *gorm.DB) *RequirementController {
	return &RequirementController{DB: db}
}

// Sync backfills missing requirement rows and refreshes the denormalized
// identity columns, then brings every scheduled section's journal entries up
// to date with the refreshed roster.
func (rc *RequirementController) Sync(c *fiber.Ctx) error {
	if err := service.Sync(rc.DB); err != nil {
		log.Printf("[ERROR] requirement sync: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not sync student requirements.")
	}
	if err := journalService.SyncScheduledSections(rc.DB, time.Now().Year()); err != nil {
		log.Printf("[ERROR] journal sync after requirement sync: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Requirements synced, but journal entries could not be refreshed.")
	}
	if helper.WantsJSON(c) {
		return helper.JsonOK(c, "Student requirements synced.", nil)
	}
	return helper.RedirectWithFlash(c, "/student-requirements", "Student requirements synced.", "success")
}

// Search serves the ledger with the filter bar's three inputs.
func (rc *RequirementController) Search(c *fiber.Ctx) error {
	rows, err := service.Search(rc.DB,
		c.Query("q"), c.Query("program"), c.Query("school_year"))
	if err != nil {
		log.Printf("[ERROR] requirement search: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load student requirements.")
	}
	return helper.JsonOK(c, "ok", rows)
}

// UpdateField applies one inline edit from the ledger grid.
func (rc *RequirementController) UpdateField(c *fiber.Ctx) error {
	studentID := strings.TrimSpace(c.FormValue("student_id"))
	field := strings.TrimSpace(c.FormValue("field"))
	value := c.FormValue("value")
	if studentID == "" || field == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing student_id or field.")
	}

	err := service.UpdateField(rc.DB, studentID, field, value)
	switch {
	case err == nil:
		if helper.WantsJSON(c) {
			return helper.JsonUpdated(c, "Saved.", fiber.Map{
				"student_id": studentID,
				"field":      field,
			})
		}
		return helper.RedirectWithFlash(c, "/student-requirements", "Saved.", "success")
	case errors.Is(err, service.ErrUnknownField):
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown field.")
	case errors.Is(err, service.ErrBadValue):
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid value for "+field+".")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Student requirement row not found.")
	default:
		log.Printf("[ERROR] update field %s for %s: %v", field, studentID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not save the change.")
	}
}
