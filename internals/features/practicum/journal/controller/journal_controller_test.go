package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/practicum/journal/model"
	"ojtsystem_backend/internals/features/practicum/journal/service"
)

func TestWeeksSyncsBeforeListing(t *testing.T) {
	origSync, origList := syncSection, listWeeks
	defer func() { syncSection, listWeeks = origSync, origList }()

	var calls []string
	var syncedSection string
	var syncedYear int
	syncSection = func(db *gorm.DB, section string, year int) error {
		calls = append(calls, "sync")
		syncedSection, syncedYear = section, year
		return nil
	}
	listWeeks = func(db *gorm.DB, section string, year, month int) ([]model.JournalModel, error) {
		calls = append(calls, "list")
		return []model.JournalModel{}, nil
	}

	app := fiber.New()
	ctrl := NewJournalController(nil)
	app.Get("/weekly-journal/weeks", ctrl.Weeks)

	resp, err := app.Test(httptest.NewRequest("GET",
		"/weekly-journal/weeks?section=4A&year=2025&month=3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// a student imported after the schedule was saved must appear on the
	// next read, so the sync runs before the listing
	assert.Equal(t, []string{"sync", "list"}, calls)
	assert.Equal(t, "4A", syncedSection)
	assert.Equal(t, 2025, syncedYear)
}

func TestWeeksToleratesMissingSchedule(t *testing.T) {
	origSync, origList := syncSection, listWeeks
	defer func() { syncSection, listWeeks = origSync, origList }()

	syncSection = func(db *gorm.DB, section string, year int) error {
		return service.ErrNoSchedule
	}
	listed := false
	listWeeks = func(db *gorm.DB, section string, year, month int) ([]model.JournalModel, error) {
		listed = true
		return []model.JournalModel{}, nil
	}

	app := fiber.New()
	ctrl := NewJournalController(nil)
	app.Get("/weekly-journal/weeks", ctrl.Weeks)

	resp, err := app.Test(httptest.NewRequest("GET",
		"/weekly-journal/weeks?section=4A&year=2025&month=3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, listed, "no schedule just lists nothing")
}
