package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/practicum/requirement/controller"
	authmw "ojtsystem_backend/internals/middlewares/auth"
)

func RequirementRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewRequirementController(db)
	staffOnly := authmw.RequireStaffJSON()

	app.Post("/sync-student-requirements", staffOnly, ctrl.Sync)
	app.Get("/student-requirements", staffOnly, ctrl.Search)
	app.Post("/update-requirement-field", staffOnly, ctrl.UpdateField)
}
