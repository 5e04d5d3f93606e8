package model

import (
	"github.com/google/uuid"
)

// InstructorModel maps the practicum_instructors table.
type InstructorModel struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CCAEmail       string    `json:"cca_email" gorm:"column:cca_email;not null;unique"`
	LastName       string    `json:"last_name" gorm:"column:last_name;not null"`
	FirstName      string    `json:"first_name" gorm:"column:first_name;not null"`
	SecondName     *string   `json:"second_name,omitempty" gorm:"column:second_name"`
	MiddleInitial  *string   `json:"middle_initial,omitempty" gorm:"column:middle_initial"`
	Password       string    `json:"-" gorm:"column:password;not null;default:''"`
	ActivationCode *string   `json:"-" gorm:"column:activation_code"`
	RecoveryCode   *string   `json:"-" gorm:"column:recovery_code"`
	ActiveStatus   bool      `json:"active_status" gorm:"column:active_status;not null;default:false"`
	IsPasswordTemp bool      `json:"is_password_temp" gorm:"column:is_password_temp;not null;default:true"`
	ProfilePath    *string   `json:"profile_path,omitempty" gorm:"column:profile_path"`
}

func (InstructorModel) TableName() string {
	return "practicum_instructors"
}
