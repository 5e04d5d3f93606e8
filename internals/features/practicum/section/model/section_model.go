package model

import (
	"time"

	"github.com/google/uuid"
)

// SectionModel maps section_list: the registry of (section, school_year)
// pairs harvested from the requirement ledger.
type SectionModel struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Section    string    `json:"section" gorm:"column:section;not null"`
	SchoolYear string    `json:"school_year" gorm:"column:school_year;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (SectionModel) TableName() string {
	return "section_list"
}

// AssignmentModel maps section_instructors: at most one staff assignment per
// section, instructor or coordinator.
type AssignmentModel struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SectionID     uuid.UUID  `json:"section_id" gorm:"column:section_id;not null;unique"`
	InstructorID  *uuid.UUID `json:"instructor_id,omitempty" gorm:"column:instructor_id"`
	CoordinatorID *uuid.UUID `json:"coordinator_id,omitempty" gorm:"column:coordinator_id"`
	AssignedAt    time.Time  `json:"assigned_at" gorm:"column:assigned_at;autoCreateTime"`
}

func (AssignmentModel) TableName() string {
	return "section_instructors"
}
