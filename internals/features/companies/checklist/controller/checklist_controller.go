package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/companies/checklist/dto"
	"ojtsystem_backend/internals/features/companies/checklist/model"
	helper "ojtsystem_backend/internals/helpers"
)

type ChecklistController struct {
	DB *gorm.DB
}

func NewChecklistController(db *gorm.DB) *ChecklistController {
	return &ChecklistController{DB: db}
}

// List serves every company row, oldest first.
func (cc *ChecklistController) List(c *fiber.Ctx) error {
	var companies []model.ChecklistModel
	if err := cc.DB.Order("created_at asc").Find(&companies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load the company checklist.")
	}
	rows := make([]dto.ChecklistRow, 0, len(companies))
	for _, m := range companies {
		rows = append(rows, dto.FromModel(m))
	}
	return helper.JsonOK(c, "ok", rows)
}

type actionRequest struct {
	Action string            `json:"action"`
	ID     string            `json:"id"`
	Row    *dto.ChecklistRow `json:"row"`
}

// Mutate handles the table's three actions: add a blank row, replace a row
// wholesale, or delete one.
func (cc *ChecklistController) Mutate(c *fiber.Ctx) error {
	var req actionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}

	switch req.Action {
	case "add":
		row := model.ChecklistModel{}
		if err := cc.DB.Create(&row).Error; err != nil {
			log.Printf("[ERROR] checklist add: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not add the company.")
		}
		return helper.JsonCreated(c, "Company added.", dto.FromModel(row))

	case "update":
		if req.ID == "" || req.Row == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Missing id or row.")
		}
		if !req.Row.ValidApproval() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Approval must be pending or approved.")
		}
		req.Row.Normalize()

		var existing model.ChecklistModel
		if err := cc.DB.Where("id = ?", req.ID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Company not found.")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load the company.")
		}
		req.Row.Apply(&existing)
		if err := cc.DB.Model(&model.ChecklistModel{}).Where("id = ?", req.ID).
			Select("company_name", "city_resolution_checked", "city_resolution_passed_at",
				"city_resolution_status", "city_resolution_returned_at",
				"company_signing_checked", "company_signing_passed_at",
				"office_president_checked", "office_president_passed_at",
				"processed_notarized_checked", "processed_notarized_passed_at").
			Updates(&existing).Error; err != nil {
			log.Printf("[ERROR] checklist update %s: %v", req.ID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not save the company.")
		}
		return helper.JsonUpdated(c, "Company updated.", dto.FromModel(existing))

	case "delete":
		if req.ID == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Missing id.")
		}
		res := cc.DB.Where("id = ?", req.ID).Delete(&model.ChecklistModel{})
		if res.Error != nil {
			log.Printf("[ERROR] checklist delete %s: %v", req.ID, res.Error)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete the company.")
		}
		if res.RowsAffected == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Company not found.")
		}
		return helper.JsonDeleted(c, "Company deleted.", nil)
	}

	return helper.JsonError(c, fiber.StatusBadRequest, "Unknown action.")
}
