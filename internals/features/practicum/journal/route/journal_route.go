package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/practicum/journal/controller"
	authmw "ojtsystem_backend/internals/middlewares/auth"
)

func JournalRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewJournalController(db)
	staffOnly := authmw.RequireStaffJSON()

	journal := app.Group("/weekly-journal", staffOnly)
	journal.Get("/schedules", ctrl.ListSchedules)
	journal.Post("/schedules", ctrl.UpsertSchedule)
	journal.Post("/schedules/delete", ctrl.DeleteSchedule)
	journal.Get("/weeks", ctrl.Weeks)
	journal.Post("/check", ctrl.Check)
}
