package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/companies/checklist/controller"
	authmw "ojtsystem_backend/internals/middlewares/auth"
)

func ChecklistRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewChecklistController(db)
	staffOnly := authmw.RequireStaffJSON()

	app.Get("/company-checklist", staffOnly, ctrl.List)
	app.Post("/company-checklist", staffOnly, ctrl.Mutate)
}
