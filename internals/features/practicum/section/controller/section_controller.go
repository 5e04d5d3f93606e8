package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/practicum/section/model"
	"ojtsystem_backend/internals/features/practicum/section/service"
	helper "ojtsystem_backend/internals/helpers"
)

type SectionController struct {
	DB *gorm.DB
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db}
}

// List refreshes the registry from the requirement ledger and returns all
// sections with their assignments.
func (sc *SectionController) List(c *fiber.Ctx) error {
	if err := service.UpsertFromLedger(sc.DB); err != nil {
		log.Printf("[ERROR] section upsert from ledger: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not refresh the section list.")
	}

	var sections []model.SectionModel
	if err := sc.DB.Order("school_year desc, section asc").Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load sections.")
	}
	var assignments []model.AssignmentModel
	if err := sc.DB.Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load assignments.")
	}

	bySection := make(map[uuid.UUID]model.AssignmentModel, len(assignments))
	for _, a := range assignments {
		bySection[a.SectionID] = a
	}
	type row struct {
		model.SectionModel
		Assignment *model.AssignmentModel `json:"assignment,omitempty"`
	}
	rows := make([]row, 0, len(sections))
	for _, s := range sections {
		r := row{SectionModel: s}
		if a, ok := bySection[s.ID]; ok {
			r.Assignment = &a
		}
		rows = append(rows, r)
	}
	return helper.JsonOK(c, "ok", rows)
}

// Assign sets or clears a section's staff assignment from the dropdown value.
func (sc *SectionController) Assign(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(strings.TrimSpace(c.FormValue("section_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section.")
	}

	ref, err := service.ParseStaffRef(c.FormValue("staff"))
	if err != nil {
		if errors.Is(err, service.ErrBadStaffRef) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff selection.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not parse the assignment.")
	}

	if err := service.Assign(sc.DB, sectionID, ref); err != nil {
		log.Printf("[ERROR] assign section %s: %v", sectionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not save the assignment.")
	}

	msg := "Assignment saved."
	if ref.Empty() {
		msg = "Assignment cleared."
	}
	if helper.WantsJSON(c) {
		return helper.JsonUpdated(c, msg, nil)
	}
	return helper.RedirectWithFlash(c, "/manage-sections", msg, "success")
}
