package model

import (
	"github.com/google/uuid"
)

// StudentModel maps the students table.
type StudentModel struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	StudentNo      string    `json:"student_no" gorm:"column:student_no;not null;unique"`
	CCAEmail       string    `json:"cca_email" gorm:"column:cca_email;not null;unique"`
	LastName       string    `json:"last_name" gorm:"column:last_name;not null"`
	FirstName      string    `json:"first_name" gorm:"column:first_name;not null"`
	SecondName     *string   `json:"second_name,omitempty" gorm:"column:second_name"`
	MiddleInitial  *string   `json:"middle_initial,omitempty" gorm:"column:middle_initial"`
	SchoolYear     *string   `json:"school_year,omitempty" gorm:"column:school_year"`
	Program        string    `json:"program" gorm:"column:program;not null"`
	Section        string    `json:"section" gorm:"column:section;not null"`
	Password       string    `json:"-" gorm:"column:password;not null;default:''"`
	ActivationCode string    `json:"-" gorm:"column:activation_code;not null;default:''"`
	RecoveryCode   *string   `json:"-" gorm:"column:recovery_code"`
	ActiveStatus   bool      `json:"active_status" gorm:"column:active_status;not null;default:false"`
	IsPasswordTemp bool      `json:"is_password_temp" gorm:"column:is_password_temp;not null;default:true"`
	ProfilePath    *string   `json:"profile_path,omitempty" gorm:"column:profile_path"`
}

func (StudentModel) TableName() string {
	return "students"
}
