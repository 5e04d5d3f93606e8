package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/practicum/section/controller"
	authmw "ojtsystem_backend/internals/middlewares/auth"
)

func SectionRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewSectionController(db)

	app.Get("/manage-sections", authmw.RequireRoleJSON(authmw.RoleCoordinator), ctrl.List)
	app.Post("/assign-section", authmw.RequireRoleJSON(authmw.RoleCoordinator), ctrl.Assign)
}
