package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/practicum/requirement/model"
)

// requirementColumns is the allow-list of checkbox fields the inline editor
// may flip. Anything outside this list (or the date/DTR fields below) is
// rejected before touching SQL.
var requirementColumns = map[string]struct{}{
	"practicum_application":         {},
	"letter_of_intent":              {},
	"endorsement_letter":            {},
	"practicum_parental_consent":    {},
	"acceptance_form":               {},
	"reply_form":                    {},
	"practicum_training_agreement":  {},
	"attendance_sheet":              {},
	"weekly_journal":                {},
	"transmittal_form":              {},
	"evaluation_form":               {},
	"outreach_program_design":       {},
	"outreach_post_activity_report": {},
	"ojt_log_sheet":                 {},
	"requirements_checklist":        {},
	"cca_hymn":                      {},
}

// dtrColumns maps inline-editor field names to attendance_sheet_dtr columns.
var dtrColumns = map[string]string{
	"dtr_january_hours":  "january_hours",
	"dtr_february_hours": "february_hours",
	"dtr_march_hours":    "march_hours",
	"dtr_april_hours":    "april_hours",
	"dtr_may_hours":      "may_hours",
	"dtr_june_hours":     "june_hours",
}

const startOfOJTField = "start_of_ojt"

var (
	ErrUnknownField = errors.New("unknown field")
	ErrBadValue     = errors.New("invalid value")
)

// IsRequirementColumn reports whether field is one of the sixteen checkbox
// columns.
func IsRequirementColumn(field string) bool {
	_, ok := requirementColumns[field]
	return ok
}

// DTRColumn resolves an inline-editor DTR field name to its table column.
func DTRColumn(field string) (string, bool) {
	col, ok := dtrColumns[field]
	return col, ok
}

// ParseBoolLiteral accepts only the exact strings "true" and "false"; the
// looser forms strconv accepts ("1", "t", "TRUE") are not part of the form
// contract.
func ParseBoolLiteral(v string) (bool, error) {
	switch v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: expected true or false", ErrBadValue)
}

// ParseHours accepts a non-negative integer.
func ParseHours(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: expected a non-negative whole number", ErrBadValue)
	}
	return n, nil
}

// ParseOJTDate accepts an ISO date or empty (clears the column).
func ParseOJTDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("%w: expected YYYY-MM-DD", ErrBadValue)
	}
	return &t, nil
}

// Sync inserts a requirement row for every student missing one and refreshes
// the denormalized identity columns from the students table. Replaces the
// original deployment's SQL function with two set-based statements.
func Sync(db *gorm.DB) error {
	if err := db.Exec(`
		insert into student_requirements
			(student_id, student_no, last_name, first_name, second_name,
			 middle_initial, program, section, school_year)
		select s.id, s.student_no, s.last_name, s.first_name, s.second_name,
		       s.middle_initial, s.program, s.section, coalesce(s.school_year, '')
		from students s
		where not exists (
			select 1 from student_requirements r where r.student_id = s.id
		)`).Error; err != nil {
		return fmt.Errorf("insert missing requirement rows: %w", err)
	}

	if err := db.Exec(`
		update student_requirements r
		set student_no = s.student_no,
		    last_name = s.last_name,
		    first_name = s.first_name,
		    second_name = s.second_name,
		    middle_initial = s.middle_initial,
		    program = s.program,
		    section = s.section,
		    school_year = coalesce(s.school_year, '')
		from students s
		where s.id = r.student_id`).Error; err != nil {
		return fmt.Errorf("refresh requirement identity: %w", err)
	}
	return nil
}

// Search filters the ledger: case-insensitive substring on names and student
// number, substring on program or section, exact school year.
func Search(db *gorm.DB, q, program, schoolYear string) ([]model.RequirementModel, error) {
	tx := db.Model(&model.RequirementModel{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + q + "%"
		tx = tx.Where(
			"last_name ilike ? or first_name ilike ? or student_no ilike ?",
			like, like, like,
		)
	}
	if program = strings.TrimSpace(program); program != "" {
		like := "%" + program + "%"
		tx = tx.Where("program ilike ? or section ilike ?", like, like)
	}
	if schoolYear = strings.TrimSpace(schoolYear); schoolYear != "" {
		tx = tx.Where("school_year = ?", schoolYear)
	}

	var rows []model.RequirementModel
	err := tx.Order("last_name asc, first_name asc").Find(&rows).Error
	return rows, err
}

// UpdateField applies one inline edit. Requirement checkboxes take the
// literal strings true/false; start_of_ojt takes an ISO date or empty;
// dtr_*_hours upserts the student's DTR row with a non-negative total.
// Last writer wins.
func UpdateField(db *gorm.DB, studentID, field, value string) error {
	switch {
	case IsRequirementColumn(field):
		b, err := ParseBoolLiteral(value)
		if err != nil {
			return err
		}
		return setRequirementColumn(db, studentID, field, b)

	case field == startOfOJTField:
		t, err := ParseOJTDate(value)
		if err != nil {
			return err
		}
		var v any
		if t != nil {
			v = *t
		}
		return setRequirementColumn(db, studentID, startOfOJTField, v)

	default:
		col, ok := DTRColumn(field)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		hours, err := ParseHours(value)
		if err != nil {
			return err
		}
		return db.Exec(fmt.Sprintf(`
			insert into attendance_sheet_dtr (student_id, %s)
			values (?, ?)
			on conflict (student_id) do update
			set %s = excluded.%s, updated_at = now()`,
			pq.QuoteIdentifier(col), pq.QuoteIdentifier(col), pq.QuoteIdentifier(col)),
			studentID, hours).Error
	}
}

func setRequirementColumn(db *gorm.DB, studentID, column string, value any) error {
	res := db.Exec(fmt.Sprintf(
		`update student_requirements set %s = ? where student_id = ?`,
		pq.QuoteIdentifier(column)), value, studentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
