package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	acctService "ojtsystem_backend/internals/features/accounts/account/service"
	"ojtsystem_backend/internals/features/practicum/section/model"
)

var ErrBadStaffRef = errors.New("invalid staff reference")

// StaffRef is the decoded form value of the assignment dropdown:
// "inst:<uuid>" or "coord:<uuid>", or empty for unassigned.
type StaffRef struct {
	InstructorID  *uuid.UUID
	CoordinatorID *uuid.UUID
}

// ParseStaffRef decodes the dropdown value. Empty means clear the assignment.
func ParseStaffRef(value string) (StaffRef, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return StaffRef{}, nil
	}
	prefix, rawID, ok := strings.Cut(value, ":")
	if !ok {
		return StaffRef{}, fmt.Errorf("%w: %q", ErrBadStaffRef, value)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return StaffRef{}, fmt.Errorf("%w: %q", ErrBadStaffRef, value)
	}
	switch prefix {
	case "inst":
		return StaffRef{InstructorID: &id}, nil
	case "coord":
		return StaffRef{CoordinatorID: &id}, nil
	}
	return StaffRef{}, fmt.Errorf("%w: %q", ErrBadStaffRef, value)
}

// Empty reports whether the ref clears the assignment.
func (r StaffRef) Empty() bool {
	return r.InstructorID == nil && r.CoordinatorID == nil
}

// UpsertFromLedger registers every distinct non-blank (section, school_year)
// pair found in the requirement ledger, ignoring pairs already present.
func UpsertFromLedger(db *gorm.DB) error {
	return db.Exec(`
		insert into section_list (section, school_year)
		select distinct r.section, r.school_year
		from student_requirements r
		where r.section <> '' and r.school_year <> ''
		on conflict (section, school_year) do nothing`).Error
}

// Assign replaces the section's staff assignment. An empty ref deletes the
// assignment row instead.
func Assign(db *gorm.DB, sectionID uuid.UUID, ref StaffRef) error {
	if ref.Empty() {
		return db.Where("section_id = ?", sectionID).
			Delete(&model.AssignmentModel{}).Error
	}
	return db.Exec(`
		insert into section_instructors (section_id, instructor_id, coordinator_id)
		values (?, ?, ?)
		on conflict (section_id) do update
		set instructor_id = excluded.instructor_id,
		    coordinator_id = excluded.coordinator_id,
		    assigned_at = now()`,
		sectionID, ref.InstructorID, ref.CoordinatorID).Error
}

// AssignedSection is one row of a staff member's section list.
type AssignedSection struct {
	SectionID  uuid.UUID `json:"section_id"`
	Section    string    `json:"section"`
	SchoolYear string    `json:"school_year"`
}

// ListAssignmentsFor returns the sections where the staff member appears in
// the column matching their role, newest school year first.
func ListAssignmentsFor(db *gorm.DB, staffID string, role acctService.Role) ([]AssignedSection, error) {
	var column string
	switch role {
	case acctService.RoleInstructor:
		column = "si.instructor_id"
	case acctService.RoleCoordinator:
		column = "si.coordinator_id"
	default:
		return nil, fmt.Errorf("role %q has no section assignments", role)
	}

	var rows []AssignedSection
	err := db.Raw(fmt.Sprintf(`
		select sl.id as section_id, sl.section, sl.school_year
		from section_instructors si
		join section_list sl on sl.id = si.section_id
		where %s = ?
		order by sl.school_year desc, sl.section asc`, column),
		staffID).Scan(&rows).Error
	return rows, err
}

// IsAssignedTo reports whether the staff member holds the section.
func IsAssignedTo(db *gorm.DB, sectionID uuid.UUID, staffID string, role acctService.Role) (bool, error) {
	sections, err := ListAssignmentsFor(db, staffID, role)
	if err != nil {
		return false, err
	}
	for _, s := range sections {
		if s.SectionID == sectionID {
			return true, nil
		}
	}
	return false, nil
}
