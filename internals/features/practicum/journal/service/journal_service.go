package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/practicum/journal/model"
)

var ErrNoSchedule = errors.New("section has no submission schedule")

// DueWeek is one generated due date: the n-th occurrence of the section's
// submission weekday within its month.
type DueWeek struct {
	Year    int
	Month   int
	WeekNo  int
	DueDate time.Time
}

// GenerateDueDates lists every occurrence of weekday across the twelve
// months of year. WeekNo restarts at 1 each month.
func GenerateDueDates(year int, weekday time.Weekday) []DueWeek {
	var weeks []DueWeek
	for month := time.January; month <= time.December; month++ {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		offset := (int(weekday) - int(first.Weekday()) + 7) % 7
		weekNo := 1
		for d := first.AddDate(0, 0, offset); d.Month() == month; d = d.AddDate(0, 0, 7) {
			weeks = append(weeks, DueWeek{
				Year:    year,
				Month:   int(month),
				WeekNo:  weekNo,
				DueDate: d,
			})
			weekNo++
		}
	}
	return weeks
}

// ValidSubmissionDay checks the 0=Sunday..6=Saturday range.
func ValidSubmissionDay(day int) bool {
	return day >= 0 && day <= 6
}

// SyncSection fills in missing journal entries for every student currently in
// the section's requirement rows, one per due week of the target year.
// Existing entries are never touched, so repeated syncs are idempotent and
// submitted data survives schedule edits.
func SyncSection(db *gorm.DB, section string, year int) error {
	var schedule model.ScheduleModel
	if err := db.Where("section = ?", section).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoSchedule
		}
		return err
	}

	weeks := GenerateDueDates(year, time.Weekday(schedule.SubmissionDay))
	for _, w := range weeks {
		if err := db.Exec(`
			insert into weekly_journal
				(student_id, section, year, month, week_no, due_date, submission_day)
			select r.student_id, r.section, ?, ?, ?, ?, ?
			from student_requirements r
			where r.section = ?
			on conflict (student_id, section, year, month, week_no) do nothing`,
			w.Year, w.Month, w.WeekNo, w.DueDate.Format("2006-01-02"),
			schedule.SubmissionDay, section).Error; err != nil {
			return fmt.Errorf("sync week %d-%02d #%d: %w", w.Year, w.Month, w.WeekNo, err)
		}
	}
	return nil
}

// SyncScheduledSections runs SyncSection for every section that has a
// schedule, so roster changes reach the journal without anyone re-saving a
// schedule.
func SyncScheduledSections(db *gorm.DB, year int) error {
	var schedules []model.ScheduleModel
	if err := db.Find(&schedules).Error; err != nil {
		return err
	}
	for _, s := range schedules {
		if err := SyncSection(db, s.Section, year); err != nil {
			return fmt.Errorf("sync section %s: %w", s.Section, err)
		}
	}
	return nil
}

// DeleteSectionEntries removes the section's journal entries for a year,
// used when its schedule is deleted.
func DeleteSectionEntries(db *gorm.DB, section string, year int) error {
	return db.Where("section = ? and year = ?", section, year).
		Delete(&model.JournalModel{}).Error
}

// entryStatusValues builds the column updates for one check action. Checking
// with an override in {late, late_excused} records the status and note; any
// other override value counts as a plain on-time check; unchecking clears
// everything back to pending.
func entryStatusValues(checked bool, override, note string, now time.Time) map[string]any {
	if !checked {
		return map[string]any{
			"submitted_at":    nil,
			"status":          nil,
			"status_note":     nil,
			"status_override": false,
		}
	}
	values := map[string]any{
		"submitted_at":    now,
		"status":          nil,
		"status_note":     nil,
		"status_override": false,
	}
	if override == model.StatusLate || override == model.StatusLateExcused {
		values["status"] = override
		values["status_override"] = true
		if note = strings.TrimSpace(note); note != "" {
			values["status_note"] = note
		}
	}
	return values
}

// SetEntryStatus applies the operator's check action.
func SetEntryStatus(db *gorm.DB, entryID string, checked bool, override, note string) error {
	values := entryStatusValues(checked, override, note, time.Now())

	res := db.Model(&model.JournalModel{}).Where("id = ?", entryID).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Weeks lists a section's entries for one month, in week order.
func Weeks(db *gorm.DB, section string, year, month int) ([]model.JournalModel, error) {
	var entries []model.JournalModel
	err := db.Where("section = ? and year = ? and month = ?", section, year, month).
		Order("week_no asc, student_id asc").
		Find(&entries).Error
	return entries, err
}

// MatrixColumn is one due week across the whole year, identified by its due
// date.
type MatrixColumn struct {
	DueDate string `json:"due_date"`
	Month   int    `json:"month"`
	WeekNo  int    `json:"week_no"`
}

// MatrixCell is one student's standing for one due week. Status is "passed"
// for an on-time submission, the stored status for overridden ones, and
// "pending" for unsubmitted entries.
type MatrixCell struct {
	EntryID     string     `json:"entry_id"`
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	StatusNote  *string    `json:"status_note,omitempty"`
}

// Matrix arranges a section's journal entries for a year into due-date
// columns and per-student rows. Cells is keyed by student id, then by due
// date; a missing cell means the student has no entry for that week.
type Matrix struct {
	Columns []MatrixColumn                  `json:"columns"`
	Cells   map[string]map[string]MatrixCell `json:"cells"`
}

// CellStatus derives the display status of one entry.
func CellStatus(submitted bool, status *string) string {
	if status != nil && *status != "" {
		return *status
	}
	if submitted {
		return "passed"
	}
	return "pending"
}

// BuildMatrix assembles the matrix from pre-fetched entries, ordered by due
// date. Kept free of DB access so the shape is unit-testable.
func BuildMatrix(entries []model.JournalModel) Matrix {
	m := Matrix{Columns: []MatrixColumn{}, Cells: map[string]map[string]MatrixCell{}}
	seen := map[string]struct{}{}
	for _, e := range entries {
		due := time.Time(e.DueDate).Format("2006-01-02")
		if _, ok := seen[due]; !ok {
			seen[due] = struct{}{}
			m.Columns = append(m.Columns, MatrixColumn{
				DueDate: due,
				Month:   e.Month,
				WeekNo:  e.WeekNo,
			})
		}
		student := e.StudentID.String()
		if m.Cells[student] == nil {
			m.Cells[student] = map[string]MatrixCell{}
		}
		m.Cells[student][due] = MatrixCell{
			EntryID:     e.ID.String(),
			Status:      CellStatus(e.SubmittedAt != nil, e.Status),
			SubmittedAt: e.SubmittedAt,
			StatusNote:  e.StatusNote,
		}
	}
	return m
}

// SectionMatrix fetches and arranges a section's entries for a year.
func SectionMatrix(db *gorm.DB, section string, year int) (Matrix, error) {
	var entries []model.JournalModel
	err := db.Where("section = ? and year = ?", section, year).
		Order("due_date asc, week_no asc").
		Find(&entries).Error
	if err != nil {
		return Matrix{}, err
	}
	return BuildMatrix(entries), nil
}

// TargetYear picks the journal year out of a "YYYY - YYYY" school year: the
// second year (the practicum semester), falling back to the first when only
// one parses.
func TargetYear(schoolYear string, fallback int) int {
	parts := strings.Split(schoolYear, "-")
	var years []int
	for _, p := range parts {
		if y, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			years = append(years, y)
		}
	}
	switch len(years) {
	case 0:
		return fallback
	case 1:
		return years[0]
	}
	return years[1]
}
