package model

import (
	"time"

	"github.com/google/uuid"
)

// Approval values for the city resolution stage.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
)

// ChecklistModel maps company_checklist: one partner company with the four
// paperwork stages. updated_at is maintained by a database trigger.
type ChecklistModel struct {
	ID                         uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyName                string     `json:"company_name" gorm:"column:company_name;not null;default:''"`
	CityResolutionChecked      bool       `json:"city_resolution_checked" gorm:"column:city_resolution_checked;not null;default:false"`
	CityResolutionPassedAt     *time.Time `json:"city_resolution_passed_at,omitempty" gorm:"column:city_resolution_passed_at"`
	CityResolutionStatus       *string    `json:"city_resolution_status,omitempty" gorm:"column:city_resolution_status"`
	CityResolutionReturnedAt   *time.Time `json:"city_resolution_returned_at,omitempty" gorm:"column:city_resolution_returned_at"`
	CompanySigningChecked      bool       `json:"company_signing_checked" gorm:"column:company_signing_checked;not null;default:false"`
	CompanySigningPassedAt     *time.Time `json:"company_signing_passed_at,omitempty" gorm:"column:company_signing_passed_at"`
	OfficePresidentChecked     bool       `json:"office_president_checked" gorm:"column:office_president_checked;not null;default:false"`
	OfficePresidentPassedAt    *time.Time `json:"office_president_passed_at,omitempty" gorm:"column:office_president_passed_at"`
	ProcessedNotarizedChecked  bool       `json:"processed_notarized_checked" gorm:"column:processed_notarized_checked;not null;default:false"`
	ProcessedNotarizedPassedAt *time.Time `json:"processed_notarized_passed_at,omitempty" gorm:"column:processed_notarized_passed_at"`
	CreatedAt                  time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                  time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (ChecklistModel) TableName() string {
	return "company_checklist"
}
