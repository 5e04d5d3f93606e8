package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/accounts/account/dto"
	"ojtsystem_backend/internals/features/accounts/account/model"
	"ojtsystem_backend/internals/features/accounts/account/service"
	helper "ojtsystem_backend/internals/helpers"
)

type AccountController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAccountController(db *gorm.DB) *AccountController {
	return &AccountController{DB: db, Validate: validator.New()}
}

func validationErrors(err error) map[string][]string {
	out := map[string][]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], "failed on "+fe.Tag())
		}
	}
	return out
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// AddStudent creates a pending student row: blank password, inactive, temp
// flag on, so the activation flow owns the first sign-in.
func (ac *AccountController) AddStudent(c *fiber.Ctx) error {
	var req dto.AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	student := model.StudentModel{
		StudentNo:      strings.TrimSpace(req.StudentNo),
		CCAEmail:       service.NormalizeEmail(req.CCAEmail),
		LastName:       strings.TrimSpace(req.LastName),
		FirstName:      strings.TrimSpace(req.FirstName),
		SecondName:     optional(req.SecondName),
		MiddleInitial:  optional(req.MiddleInitial),
		SchoolYear:     optional(req.SchoolYear),
		Program:        strings.TrimSpace(req.Program),
		Section:        strings.TrimSpace(req.Section),
		ActiveStatus:   false,
		IsPasswordTemp: true,
	}
	if err := ac.DB.Create(&student).Error; err != nil {
		if service.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"A student with this student number or email already exists.")
		}
		log.Printf("[ERROR] add student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not add the student.")
	}
	return helper.JsonCreated(c, "Student added.", student)
}

func (ac *AccountController) UpdateStudent(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	res := ac.DB.Model(&model.StudentModel{}).Where("id = ?", id).
		Updates(map[string]any{
			"student_no":     strings.TrimSpace(req.StudentNo),
			"cca_email":      service.NormalizeEmail(req.CCAEmail),
			"last_name":      strings.TrimSpace(req.LastName),
			"first_name":     strings.TrimSpace(req.FirstName),
			"second_name":    optional(req.SecondName),
			"middle_initial": optional(req.MiddleInitial),
			"school_year":    optional(req.SchoolYear),
			"program":        strings.TrimSpace(req.Program),
			"section":        strings.TrimSpace(req.Section),
		})
	if res.Error != nil {
		if service.IsUniqueViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict,
				"A student with this student number or email already exists.")
		}
		log.Printf("[ERROR] update student %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update the student.")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found.")
	}
	return helper.JsonUpdated(c, "Student updated.", nil)
}

func (ac *AccountController) AddInstructor(c *fiber.Ctx) error {
	var req dto.AddInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	instructor := model.InstructorModel{
		CCAEmail:       service.NormalizeEmail(req.CCAEmail),
		LastName:       strings.TrimSpace(req.LastName),
		FirstName:      strings.TrimSpace(req.FirstName),
		SecondName:     optional(req.SecondName),
		MiddleInitial:  optional(req.MiddleInitial),
		ActiveStatus:   false,
		IsPasswordTemp: true,
	}
	if err := ac.DB.Create(&instructor).Error; err != nil {
		if service.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"An instructor with this email already exists.")
		}
		log.Printf("[ERROR] add instructor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not add the instructor.")
	}
	return helper.JsonCreated(c, "Instructor added.", instructor)
}

func (ac *AccountController) UpdateInstructor(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.UpdateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	res := ac.DB.Model(&model.InstructorModel{}).Where("id = ?", id).
		Updates(map[string]any{
			"cca_email":      service.NormalizeEmail(req.CCAEmail),
			"last_name":      strings.TrimSpace(req.LastName),
			"first_name":     strings.TrimSpace(req.FirstName),
			"second_name":    optional(req.SecondName),
			"middle_initial": optional(req.MiddleInitial),
		})
	if res.Error != nil {
		if service.IsUniqueViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict,
				"An instructor with this email already exists.")
		}
		log.Printf("[ERROR] update instructor %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update the instructor.")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Instructor not found.")
	}
	return helper.JsonUpdated(c, "Instructor updated.", nil)
}

func (ac *AccountController) ListInstructors(c *fiber.Ctx) error {
	var instructors []model.InstructorModel
	if err := ac.DB.Order("last_name asc, first_name asc").Find(&instructors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load instructors.")
	}
	return helper.JsonOK(c, "ok", instructors)
}

func (ac *AccountController) ListCoordinators(c *fiber.Ctx) error {
	var coordinators []model.CoordinatorModel
	if err := ac.DB.Order("last_name asc, first_name asc").Find(&coordinators).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load coordinators.")
	}
	return helper.JsonOK(c, "ok", coordinators)
}
