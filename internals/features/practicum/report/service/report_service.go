package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	acctService "ojtsystem_backend/internals/features/accounts/account/service"
	journalService "ojtsystem_backend/internals/features/practicum/journal/service"
	requirementModel "ojtsystem_backend/internals/features/practicum/requirement/model"
	sectionModel "ojtsystem_backend/internals/features/practicum/section/model"
	sectionService "ojtsystem_backend/internals/features/practicum/section/service"
)

var (
	ErrNotAssigned     = errors.New("staff is not assigned to this section")
	ErrSectionNotFound = errors.New("section not found")
)

// StudentRow is one student line on a staff dashboard or section report.
type StudentRow struct {
	StudentID  uuid.UUID `json:"student_id"`
	StudentNo  string    `json:"student_no"`
	FullName   string    `json:"full_name"`
	Program    string    `json:"program"`
	Section    string    `json:"section"`
	SchoolYear string    `json:"school_year"`
	TotalHours int       `json:"total_hours"`
	AllDone    bool      `json:"all_done"`
}

// HomeSummary is the instructor dashboard's headline numbers.
type HomeSummary struct {
	Sections   int `json:"sections"`
	Students   int `json:"students"`
	Completed  int `json:"completed"`
	TotalHours int `json:"total_hours"`
}

// StaffHome is the dashboard payload for an instructor or coordinator.
type StaffHome struct {
	Sections []sectionService.AssignedSection `json:"sections"`
	Students []StudentRow                     `json:"students"`
	Summary  HomeSummary                      `json:"summary"`
}

func hoursByStudent(db *gorm.DB, studentIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	totals := map[uuid.UUID]int{}
	if len(studentIDs) == 0 {
		return totals, nil
	}
	var rows []requirementModel.AttendanceModel
	if err := db.Where("student_id in ?", studentIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		totals[r.StudentID] = r.TotalHours()
	}
	return totals, nil
}

func studentRows(db *gorm.DB, requirements []requirementModel.RequirementModel) ([]StudentRow, error) {
	ids := make([]uuid.UUID, 0, len(requirements))
	for _, r := range requirements {
		ids = append(ids, r.StudentID)
	}
	totals, err := hoursByStudent(db, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]StudentRow, 0, len(requirements))
	for _, r := range requirements {
		rows = append(rows, StudentRow{
			StudentID:  r.StudentID,
			StudentNo:  r.StudentNo,
			FullName:   acctService.FullName(r.FirstName, r.SecondName, r.MiddleInitial, r.LastName),
			Program:    r.Program,
			Section:    r.Section,
			SchoolYear: r.SchoolYear,
			TotalHours: totals[r.StudentID],
			AllDone:    r.AllDone(),
		})
	}
	return rows, nil
}

// sectionPairs lists the (section, school_year) tuples of a staff member's
// assignments. The pair is the section's identity — "4A" recurs across school
// years — so roster queries must always carry both halves.
func sectionPairs(sections []sectionService.AssignedSection) [][]any {
	pairs := make([][]any, 0, len(sections))
	for _, s := range sections {
		pairs = append(pairs, []any{s.Section, s.SchoolYear})
	}
	return pairs
}

// BuildStaffHome assembles the dashboard for a staff member: every student in
// their assigned sections with hour totals and completion, plus the summary
// counts.
func BuildStaffHome(db *gorm.DB, staffID string, role acctService.Role) (*StaffHome, error) {
	sections, err := sectionService.ListAssignmentsFor(db, staffID, role)
	if err != nil {
		return nil, err
	}

	home := &StaffHome{Sections: sections, Students: []StudentRow{}}
	home.Summary.Sections = len(sections)
	if len(sections) == 0 {
		return home, nil
	}

	var requirements []requirementModel.RequirementModel
	if err := db.Where("(section, school_year) in ?", sectionPairs(sections)).
		Order("section asc, last_name asc, first_name asc").
		Find(&requirements).Error; err != nil {
		return nil, err
	}

	rows, err := studentRows(db, requirements)
	if err != nil {
		return nil, err
	}
	home.Students = rows
	home.Summary.Students = len(rows)
	for _, r := range rows {
		if r.AllDone {
			home.Summary.Completed++
		}
		home.Summary.TotalHours += r.TotalHours
	}
	return home, nil
}

// SectionDetails is the full per-section report: roster, requirement grid,
// DTR grid and the journal matrix for the section's target year.
type SectionDetails struct {
	Section      sectionModel.SectionModel               `json:"section"`
	TargetYear   int                                     `json:"target_year"`
	Students     []StudentRow                            `json:"students"`
	Requirements []requirementModel.RequirementModel     `json:"requirements"`
	Attendance   []requirementModel.AttendanceModel      `json:"attendance"`
	Journal      journalService.Matrix                   `json:"journal"`
}

// BuildSectionDetails authorizes the requesting staff member against the
// section's assignment, then assembles the report. The journal year is the
// second year of the section's "YYYY - YYYY" school year.
func BuildSectionDetails(db *gorm.DB, sectionID uuid.UUID, staffID string, role acctService.Role) (*SectionDetails, error) {
	var section sectionModel.SectionModel
	if err := db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	assigned, err := sectionService.IsAssignedTo(db, sectionID, staffID, role)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, ErrNotAssigned
	}

	var requirements []requirementModel.RequirementModel
	if err := db.Where("section = ? and school_year = ?", section.Section, section.SchoolYear).
		Order("last_name asc, first_name asc").
		Find(&requirements).Error; err != nil {
		return nil, err
	}

	rows, err := studentRows(db, requirements)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(requirements))
	for _, r := range requirements {
		ids = append(ids, r.StudentID)
	}
	var attendance []requirementModel.AttendanceModel
	if len(ids) > 0 {
		if err := db.Where("student_id in ?", ids).Find(&attendance).Error; err != nil {
			return nil, err
		}
	}

	targetYear := journalService.TargetYear(section.SchoolYear, time.Now().Year())
	matrix, err := journalService.SectionMatrix(db, section.Section, targetYear)
	if err != nil {
		return nil, err
	}

	return &SectionDetails{
		Section:      section,
		TargetYear:   targetYear,
		Students:     rows,
		Requirements: requirements,
		Attendance:   attendance,
		Journal:      matrix,
	}, nil
}

// StudentHome is a student's own view: their requirement row, DTR row and
// journal entries for their section's target year.
type StudentHome struct {
	Requirement *requirementModel.RequirementModel `json:"requirement,omitempty"`
	Attendance  *requirementModel.AttendanceModel  `json:"attendance,omitempty"`
	TotalHours  int                                `json:"total_hours"`
	TargetYear  int                                `json:"target_year"`
	Journal     journalService.Matrix              `json:"journal"`
}

// BuildStudentHome assembles the signed-in student's dashboard.
func BuildStudentHome(db *gorm.DB, studentID string) (*StudentHome, error) {
	home := &StudentHome{TargetYear: time.Now().Year()}

	var requirement requirementModel.RequirementModel
	err := db.Where("student_id = ?", studentID).First(&requirement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			home.Journal = journalService.Matrix{}
			return home, nil
		}
		return nil, err
	}
	home.Requirement = &requirement

	var attendance requirementModel.AttendanceModel
	err = db.Where("student_id = ?", studentID).First(&attendance).Error
	switch {
	case err == nil:
		home.Attendance = &attendance
		home.TotalHours = attendance.TotalHours()
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no DTR row until the first hour edit
	default:
		return nil, err
	}

	home.TargetYear = journalService.TargetYear(requirement.SchoolYear, time.Now().Year())
	matrix, err := journalService.SectionMatrix(db, requirement.Section, home.TargetYear)
	if err != nil {
		return nil, err
	}
	home.Journal = matrix
	return home, nil
}
