package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "ojtsystem_backend/internals/helpers"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// the frontend polls this on load to restore its session state
	app.Get("/session", func(c *fiber.Ctx) error {
		id, typ := helper.CurrentAccount(c)
		if id == "" {
			return helper.JsonOK(c, "ok", fiber.Map{"authenticated": false})
		}
		return helper.JsonOK(c, "ok", fiber.Map{
			"authenticated": true,
			"account_id":    id,
			"account_type":  typ,
		})
	})

	app.Get("/flash", func(c *fiber.Ctx) error {
		msg, typ := helper.PopFlash(c)
		return helper.JsonOK(c, "ok", fiber.Map{
			"message": msg,
			"type":    typ,
		})
	})
}
