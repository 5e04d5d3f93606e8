package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/accounts/auth/controller"
	"ojtsystem_backend/internals/helpers/mailer"
	"ojtsystem_backend/internals/middlewares"
	authmw "ojtsystem_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, mail mailer.Service) {
	ctrl := controller.NewAuthController(db, mail)

	app.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	app.Post("/logout", ctrl.Logout)
	app.Post("/activate-account", middlewares.CodeRateLimiter(), ctrl.ActivateAccount)
	app.Post("/forgot-password", middlewares.CodeRateLimiter(), ctrl.ForgotPassword)
	app.Post("/change-temp-password",
		authmw.RequireRoleJSON(authmw.RoleStudent, authmw.RoleCoordinator, authmw.RoleInstructor),
		ctrl.ChangeTempPassword)
}
