package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Operator-assigned journal statuses. An entry with no status that carries a
// submitted_at is on time.
const (
	StatusLate        = "late"
	StatusLateExcused = "late_excused"
)

// ScheduleModel maps submission_schedules: one weekday per section,
// 0=Sunday .. 6=Saturday.
type ScheduleModel struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Section       string    `json:"section" gorm:"column:section;not null;unique"`
	SubmissionDay int       `json:"submission_day" gorm:"column:submission_day;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (ScheduleModel) TableName() string {
	return "submission_schedules"
}

// JournalModel maps weekly_journal: one row per student per due week.
type JournalModel struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	StudentID      uuid.UUID      `json:"student_id" gorm:"column:student_id;not null"`
	Section        string         `json:"section" gorm:"column:section;not null"`
	Year           int            `json:"year" gorm:"column:year;not null"`
	Month          int            `json:"month" gorm:"column:month;not null"`
	WeekNo         int            `json:"week_no" gorm:"column:week_no;not null"`
	DueDate        datatypes.Date `json:"due_date" gorm:"column:due_date;not null"`
	SubmissionDay  int            `json:"submission_day" gorm:"column:submission_day;not null"`
	SubmittedAt    *time.Time     `json:"submitted_at,omitempty" gorm:"column:submitted_at"`
	Status         *string        `json:"status,omitempty" gorm:"column:status"`
	StatusOverride bool           `json:"status_override" gorm:"column:status_override;not null;default:false"`
	StatusNote     *string        `json:"status_note,omitempty" gorm:"column:status_note"`
}

func (JournalModel) TableName() string {
	return "weekly_journal"
}
