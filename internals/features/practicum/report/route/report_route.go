package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/practicum/report/controller"
	authmw "ojtsystem_backend/internals/middlewares/auth"
)

func ReportRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewReportController(db)
	staffOnly := authmw.RequireStaffJSON()

	app.Get("/staff-home", staffOnly, ctrl.StaffHome)
	app.Get("/student-home", authmw.RequireRoleJSON(authmw.RoleStudent), ctrl.StudentHome)
	app.Get("/instructor-sections", staffOnly, ctrl.InstructorSections)
	app.Get("/section-details/:id", staffOnly, ctrl.SectionDetails)
}
