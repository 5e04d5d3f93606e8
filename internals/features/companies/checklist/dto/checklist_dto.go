package dto

import (
	"time"

	"ojtsystem_backend/internals/features/companies/checklist/model"
)

// The checklist travels in camelCase, the shape the frontend table binds to.

type Stage struct {
	Checked  bool       `json:"checked"`
	PassedAt *time.Time `json:"passedAt,omitempty"`
}

type CityResolutionStage struct {
	Checked    bool       `json:"checked"`
	PassedAt   *time.Time `json:"passedAt,omitempty"`
	Approval   *string    `json:"approval,omitempty"`
	ReturnedIn *time.Time `json:"returnedIn,omitempty"`
}

type ChecklistRow struct {
	ID                 string              `json:"id"`
	CompanyName        string              `json:"companyName"`
	CityResolution     CityResolutionStage `json:"cityResolution"`
	CompanySigning     Stage               `json:"companySigning"`
	OfficePresident    Stage               `json:"officePresident"`
	ProcessedNotarized Stage               `json:"processedNotarized"`
}

// FromModel serializes one checklist row.
func FromModel(m model.ChecklistModel) ChecklistRow {
	return ChecklistRow{
		ID:          m.ID.String(),
		CompanyName: m.CompanyName,
		CityResolution: CityResolutionStage{
			Checked:    m.CityResolutionChecked,
			PassedAt:   m.CityResolutionPassedAt,
			Approval:   m.CityResolutionStatus,
			ReturnedIn: m.CityResolutionReturnedAt,
		},
		CompanySigning: Stage{
			Checked:  m.CompanySigningChecked,
			PassedAt: m.CompanySigningPassedAt,
		},
		OfficePresident: Stage{
			Checked:  m.OfficePresidentChecked,
			PassedAt: m.OfficePresidentPassedAt,
		},
		ProcessedNotarized: Stage{
			Checked:  m.ProcessedNotarizedChecked,
			PassedAt: m.ProcessedNotarizedPassedAt,
		},
	}
}

// Normalize enforces the stage rules before a row is stored: an unchecked
// stage keeps no passedAt, approval or returnedIn, and returnedIn only
// survives once the approval is "approved".
func (r *ChecklistRow) Normalize() {
	if !r.CityResolution.Checked {
		r.CityResolution.PassedAt = nil
		r.CityResolution.Approval = nil
		r.CityResolution.ReturnedIn = nil
	} else if r.CityResolution.Approval == nil || *r.CityResolution.Approval != model.ApprovalApproved {
		r.CityResolution.ReturnedIn = nil
	}
	if !r.CompanySigning.Checked {
		r.CompanySigning.PassedAt = nil
	}
	if !r.OfficePresident.Checked {
		r.OfficePresident.PassedAt = nil
	}
	if !r.ProcessedNotarized.Checked {
		r.ProcessedNotarized.PassedAt = nil
	}
}

// ValidApproval accepts nil, pending or approved.
func (r ChecklistRow) ValidApproval() bool {
	if r.CityResolution.Approval == nil {
		return true
	}
	switch *r.CityResolution.Approval {
	case model.ApprovalPending, model.ApprovalApproved:
		return true
	}
	return false
}

// Apply copies the normalized row onto the persistence model.
func (r ChecklistRow) Apply(m *model.ChecklistModel) {
	m.CompanyName = r.CompanyName
	m.CityResolutionChecked = r.CityResolution.Checked
	m.CityResolutionPassedAt = r.CityResolution.PassedAt
	m.CityResolutionStatus = r.CityResolution.Approval
	m.CityResolutionReturnedAt = r.CityResolution.ReturnedIn
	m.CompanySigningChecked = r.CompanySigning.Checked
	m.CompanySigningPassedAt = r.CompanySigning.PassedAt
	m.OfficePresidentChecked = r.OfficePresident.Checked
	m.OfficePresidentPassedAt = r.OfficePresident.PassedAt
	m.ProcessedNotarizedChecked = r.ProcessedNotarized.Checked
	m.ProcessedNotarizedPassedAt = r.ProcessedNotarized.PassedAt
}
