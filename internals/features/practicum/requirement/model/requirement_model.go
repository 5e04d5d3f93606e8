package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RequirementModel maps student_requirements: one row per student with the
// sixteen compliance booleans plus denormalized identity fields kept in sync
// from the students table.
type RequirementModel struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	StudentID     uuid.UUID `json:"student_id" gorm:"column:student_id;not null;unique"`
	StudentNo     string    `json:"student_no" gorm:"column:student_no;not null"`
	LastName      string    `json:"last_name" gorm:"column:last_name;not null"`
	FirstName     string    `json:"first_name" gorm:"column:first_name;not null"`
	SecondName    *string   `json:"second_name,omitempty" gorm:"column:second_name"`
	MiddleInitial *string   `json:"middle_initial,omitempty" gorm:"column:middle_initial"`
	Program       string    `json:"program" gorm:"column:program;not null;default:''"`
	Section       string    `json:"section" gorm:"column:section;not null;default:''"`
	SchoolYear    string    `json:"school_year" gorm:"column:school_year;not null;default:''"`

	PracticumApplication       bool `json:"practicum_application" gorm:"column:practicum_application;not null;default:false"`
	LetterOfIntent             bool `json:"letter_of_intent" gorm:"column:letter_of_intent;not null;default:false"`
	EndorsementLetter          bool `json:"endorsement_letter" gorm:"column:endorsement_letter;not null;default:false"`
	PracticumParentalConsent   bool `json:"practicum_parental_consent" gorm:"column:practicum_parental_consent;not null;default:false"`
	AcceptanceForm             bool `json:"acceptance_form" gorm:"column:acceptance_form;not null;default:false"`
	ReplyForm                  bool `json:"reply_form" gorm:"column:reply_form;not null;default:false"`
	PracticumTrainingAgreement bool `json:"practicum_training_agreement" gorm:"column:practicum_training_agreement;not null;default:false"`
	AttendanceSheet            bool `json:"attendance_sheet" gorm:"column:attendance_sheet;not null;default:false"`
	WeeklyJournal              bool `json:"weekly_journal" gorm:"column:weekly_journal;not null;default:false"`
	TransmittalForm            bool `json:"transmittal_form" gorm:"column:transmittal_form;not null;default:false"`
	EvaluationForm             bool `json:"evaluation_form" gorm:"column:evaluation_form;not null;default:false"`
	OutreachProgramDesign      bool `json:"outreach_program_design" gorm:"column:outreach_program_design;not null;default:false"`
	OutreachPostActivityReport bool `json:"outreach_post_activity_report" gorm:"column:outreach_post_activity_report;not null;default:false"`
	OJTLogSheet                bool `json:"ojt_log_sheet" gorm:"column:ojt_log_sheet;not null;default:false"`
	RequirementsChecklist      bool `json:"requirements_checklist" gorm:"column:requirements_checklist;not null;default:false"`
	CCAHymn                    bool `json:"cca_hymn" gorm:"column:cca_hymn;not null;default:false"`

	StartOfOJT *datatypes.Date `json:"start_of_ojt,omitempty" gorm:"column:start_of_ojt"`
}

func (RequirementModel) TableName() string {
	return "student_requirements"
}

// RequirementFlags lists the sixteen booleans in display order.
func (m RequirementModel) RequirementFlags() []bool {
	return []bool{
		m.PracticumApplication, m.LetterOfIntent, m.EndorsementLetter,
		m.PracticumParentalConsent, m.AcceptanceForm, m.ReplyForm,
		m.PracticumTrainingAgreement, m.AttendanceSheet, m.WeeklyJournal,
		m.TransmittalForm, m.EvaluationForm, m.OutreachProgramDesign,
		m.OutreachPostActivityReport, m.OJTLogSheet, m.RequirementsChecklist,
		m.CCAHymn,
	}
}

// AllDone reports whether every requirement is checked.
func (m RequirementModel) AllDone() bool {
	for _, f := range m.RequirementFlags() {
		if !f {
			return false
		}
	}
	return true
}

// AttendanceModel maps attendance_sheet_dtr: one row per student with the
// monthly practicum hour totals for January through June.
type AttendanceModel struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	StudentID     uuid.UUID `json:"student_id" gorm:"column:student_id;not null;unique"`
	JanuaryHours  int       `json:"january_hours" gorm:"column:january_hours;not null;default:0"`
	FebruaryHours int       `json:"february_hours" gorm:"column:february_hours;not null;default:0"`
	MarchHours    int       `json:"march_hours" gorm:"column:march_hours;not null;default:0"`
	AprilHours    int       `json:"april_hours" gorm:"column:april_hours;not null;default:0"`
	MayHours      int       `json:"may_hours" gorm:"column:may_hours;not null;default:0"`
	JuneHours     int       `json:"june_hours" gorm:"column:june_hours;not null;default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (AttendanceModel) TableName() string {
	return "attendance_sheet_dtr"
}

// TotalHours sums the six monthly columns.
func (m AttendanceModel) TotalHours() int {
	return m.JanuaryHours + m.FebruaryHours + m.MarchHours +
		m.AprilHours + m.MayHours + m.JuneHours
}
