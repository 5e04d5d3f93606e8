package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	acctService "ojtsystem_backend/internals/features/accounts/account/service"
	"ojtsystem_backend/internals/features/practicum/report/service"
	sectionService "ojtsystem_backend/internals/features/practicum/section/service"
	helper "ojtsystem_backend/internals/helpers"
	authmw "ojtsystem_backend/internals/middlewares/auth"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// StaffHome serves the instructor/coordinator dashboard.
func (rc *ReportController) StaffHome(c *fiber.Ctx) error {
	role, ok := acctService.StaffRole(authmw.AccountType(c))
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized.")
	}
	home, err := service.BuildStaffHome(rc.DB, authmw.AccountID(c), role)
	if err != nil {
		log.Printf("[ERROR] staff home: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load the dashboard.")
	}
	return helper.JsonOK(c, "ok", home)
}

// StudentHome serves the signed-in student's own dashboard.
func (rc *ReportController) StudentHome(c *fiber.Ctx) error {
	home, err := service.BuildStudentHome(rc.DB, authmw.AccountID(c))
	if err != nil {
		log.Printf("[ERROR] student home: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load your dashboard.")
	}
	return helper.JsonOK(c, "ok", home)
}

// InstructorSections lists the staff member's assigned sections.
func (rc *ReportController) InstructorSections(c *fiber.Ctx) error {
	role, ok := acctService.StaffRole(authmw.AccountType(c))
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized.")
	}
	sections, err := sectionService.ListAssignmentsFor(rc.DB, authmw.AccountID(c), role)
	if err != nil {
		log.Printf("[ERROR] instructor sections: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load your sections.")
	}
	return helper.JsonOK(c, "ok", sections)
}

// SectionDetails serves the per-section report. Only the staff member
// assigned to the section may view it.
func (rc *ReportController) SectionDetails(c *fiber.Ctx) error {
	role, ok := acctService.StaffRole(authmw.AccountType(c))
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized.")
	}
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section.")
	}

	details, err := service.BuildSectionDetails(rc.DB, sectionID, authmw.AccountID(c), role)
	switch {
	case err == nil:
		return helper.JsonOK(c, "ok", details)
	case errors.Is(err, service.ErrSectionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Section not found.")
	case errors.Is(err, service.ErrNotAssigned):
		return helper.JsonError(c, fiber.StatusUnauthorized, "You are not assigned to this section.")
	default:
		log.Printf("[ERROR] section details %s: %v", sectionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load the section report.")
	}
}
