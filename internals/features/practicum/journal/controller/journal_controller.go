package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/practicum/journal/model"
	"ojtsystem_backend/internals/features/practicum/journal/service"
	helper "ojtsystem_backend/internals/helpers"
)

type JournalController struct {
	DB *gorm.DB
}

func NewJournalController(db *gorm.DB) *JournalController {
	return &JournalController{DB: db}
}

// Seams for the read-path sync so tests can observe the calls.
var (
	syncSection = service.SyncSection
	listWeeks   = service.Weeks
)

func (jc *JournalController) ListSchedules(c *fiber.Ctx) error {
	var schedules []model.ScheduleModel
	if err := jc.DB.Order("section asc").Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load submission schedules.")
	}
	return helper.JsonOK(c, "ok", schedules)
}

// UpsertSchedule sets a section's submission weekday and immediately syncs
// the current year's journal entries for it.
func (jc *JournalController) UpsertSchedule(c *fiber.Ctx) error {
	section := strings.TrimSpace(c.FormValue("section"))
	if section == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please choose a section.")
	}
	day, err := strconv.Atoi(strings.TrimSpace(c.FormValue("submission_day")))
	if err != nil || !service.ValidSubmissionDay(day) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Submission day must be 0 (Sunday) through 6 (Saturday).")
	}

	if err := jc.DB.Exec(`
		insert into submission_schedules (section, submission_day)
		values (?, ?)
		on conflict (section) do update set submission_day = excluded.submission_day`,
		section, day).Error; err != nil {
		log.Printf("[ERROR] upsert schedule %s: %v", section, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not save the schedule.")
	}

	year := time.Now().Year()
	if err := service.SyncSection(jc.DB, section, year); err != nil {
		log.Printf("[ERROR] journal sync %s/%d: %v", section, year, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Schedule saved, but journal entries could not be generated.")
	}

	if helper.WantsJSON(c) {
		return helper.JsonUpdated(c, "Schedule saved and journal entries generated.", nil)
	}
	return helper.RedirectWithFlash(c, "/weekly-journal", "Schedule saved and journal entries generated.", "success")
}

// DeleteSchedule removes a section's schedule together with its current
// year's journal entries.
func (jc *JournalController) DeleteSchedule(c *fiber.Ctx) error {
	section := strings.TrimSpace(c.FormValue("section"))
	if section == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please choose a section.")
	}

	res := jc.DB.Where("section = ?", section).Delete(&model.ScheduleModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete schedule %s: %v", section, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete the schedule.")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found.")
	}

	if err := service.DeleteSectionEntries(jc.DB, section, time.Now().Year()); err != nil {
		log.Printf("[ERROR] delete journal entries %s: %v", section, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Schedule deleted, but journal entries could not be removed.")
	}

	if helper.WantsJSON(c) {
		return helper.JsonDeleted(c, "Schedule and journal entries deleted.", nil)
	}
	return helper.RedirectWithFlash(c, "/weekly-journal", "Schedule and journal entries deleted.", "success")
}

// Weeks serves one month of a section's journal entries. Entries are synced
// first so students added after the schedule was saved show up on the next
// view; a section without a schedule simply lists nothing.
func (jc *JournalController) Weeks(c *fiber.Ctx) error {
	section := strings.TrimSpace(c.Query("section"))
	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))
	if section == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please choose a section.")
	}
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Month must be 1 through 12.")
	}

	if err := syncSection(jc.DB, section, year); err != nil && !errors.Is(err, service.ErrNoSchedule) {
		log.Printf("[ERROR] journal sync on read %s/%d: %v", section, year, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not refresh journal entries.")
	}

	entries, err := listWeeks(jc.DB, section, year, month)
	if err != nil {
		log.Printf("[ERROR] journal weeks %s %d-%02d: %v", section, year, month, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load journal entries.")
	}
	return helper.JsonOK(c, "ok", entries)
}

// Check applies the operator's submitted/unsubmitted toggle with an optional
// late / late_excused override; any other override value is treated as a
// plain on-time check.
func (jc *JournalController) Check(c *fiber.Ctx) error {
	entryID := strings.TrimSpace(c.FormValue("entry_id"))
	if entryID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing entry_id.")
	}
	checked := c.FormValue("checked") == "true"
	override := strings.TrimSpace(c.FormValue("status_override"))
	note := c.FormValue("status_note")

	err := service.SetEntryStatus(jc.DB, entryID, checked, override, note)
	switch {
	case err == nil:
		return helper.JsonUpdated(c, "Journal entry updated.", nil)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Journal entry not found.")
	default:
		log.Printf("[ERROR] journal check %s: %v", entryID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update the journal entry.")
	}
}
