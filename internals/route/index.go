package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accountRoute "ojtsystem_backend/internals/features/accounts/account/route"
	authRoute "ojtsystem_backend/internals/features/accounts/auth/route"
	checklistRoute "ojtsystem_backend/internals/features/companies/checklist/route"
	journalRoute "ojtsystem_backend/internals/features/practicum/journal/route"
	reportRoute "ojtsystem_backend/internals/features/practicum/report/route"
	requirementRoute "ojtsystem_backend/internals/features/practicum/requirement/route"
	sectionRoute "ojtsystem_backend/internals/features/practicum/section/route"
	"ojtsystem_backend/internals/helpers/mailer"
	"ojtsystem_backend/internals/helpers/storage"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, mail mailer.Service, store storage.ObjectStorage) {
	BaseRoutes(app, db)
	authRoute.AuthRoutes(app, db, mail)
	accountRoute.AccountRoutes(app, db, store)
	requirementRoute.RequirementRoutes(app, db)
	sectionRoute.SectionRoutes(app, db)
	journalRoute.JournalRoutes(app, db)
	reportRoute.ReportRoutes(app, db)
	checklistRoute.ChecklistRoutes(app, db)
}
