package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/accounts/account/controller"
	"ojtsystem_backend/internals/helpers/storage"
	authmw "ojtsystem_backend/internals/middlewares/auth"
)

func AccountRoutes(app *fiber.App, db *gorm.DB, store storage.ObjectStorage) {
	ctrl := controller.NewAccountController(db)
	csvCtrl := controller.NewCSVController(db)
	profileCtrl := controller.NewProfileImageController(db, store)

	coordinatorOnly := authmw.RequireRoleJSON(authmw.RoleCoordinator)
	staffOnly := authmw.RequireStaffJSON()

	accounts := app.Group("/manage-accounts", coordinatorOnly)
	accounts.Post("/students", ctrl.AddStudent)
	accounts.Post("/students/:id", ctrl.UpdateStudent)
	accounts.Post("/instructors", ctrl.AddInstructor)
	accounts.Post("/instructors/:id", ctrl.UpdateInstructor)
	accounts.Get("/instructors", ctrl.ListInstructors)
	accounts.Get("/coordinators", ctrl.ListCoordinators)

	accounts.Post("/import-students", csvCtrl.ImportStudents)
	accounts.Get("/import-summary", csvCtrl.ImportSummary)
	app.Get("/download-students-template", staffOnly, csvCtrl.DownloadStudentTemplate)

	app.Post("/profile-image", staffOnly, profileCtrl.Upload)
	app.Post("/profile-image/remove", staffOnly, profileCtrl.Remove)
}
