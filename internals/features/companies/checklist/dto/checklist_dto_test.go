package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ojtsystem_backend/internals/features/companies/checklist/model"
)

func tm() *time.Time {
	t := time.Date(2025, 2, 14, 8, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string { return &s }

func TestNormalizeUncheckedStageClearsEverything(t *testing.T) {
	row := ChecklistRow{
		CompanyName: "Acme Corp",
		CityResolution: CityResolutionStage{
			Checked: false, PassedAt: tm(),
			Approval: strPtr(model.ApprovalApproved), ReturnedIn: tm(),
		},
		CompanySigning:     Stage{Checked: false, PassedAt: tm()},
		OfficePresident:    Stage{Checked: false, PassedAt: tm()},
		ProcessedNotarized: Stage{Checked: false, PassedAt: tm()},
	}
	row.Normalize()

	assert.Nil(t, row.CityResolution.PassedAt)
	assert.Nil(t, row.CityResolution.Approval)
	assert.Nil(t, row.CityResolution.ReturnedIn)
	assert.Nil(t, row.CompanySigning.PassedAt)
	assert.Nil(t, row.OfficePresident.PassedAt)
	assert.Nil(t, row.ProcessedNotarized.PassedAt)
}

func TestNormalizeReturnedInRequiresApproval(t *testing.T) {
	row := ChecklistRow{
		CityResolution: CityResolutionStage{
			Checked: true, PassedAt: tm(),
			Approval: strPtr(model.ApprovalPending), ReturnedIn: tm(),
		},
	}
	row.Normalize()
	assert.NotNil(t, row.CityResolution.PassedAt)
	assert.NotNil(t, row.CityResolution.Approval)
	assert.Nil(t, row.CityResolution.ReturnedIn, "pending approval drops returnedIn")

	row.CityResolution.Approval = strPtr(model.ApprovalApproved)
	row.CityResolution.ReturnedIn = tm()
	row.Normalize()
	assert.NotNil(t, row.CityResolution.ReturnedIn, "approved keeps returnedIn")
}

func TestValidApproval(t *testing.T) {
	assert.True(t, ChecklistRow{}.ValidApproval())
	assert.True(t, ChecklistRow{
		CityResolution: CityResolutionStage{Approval: strPtr(model.ApprovalPending)},
	}.ValidApproval())
	assert.True(t, ChecklistRow{
		CityResolution: CityResolutionStage{Approval: strPtr(model.ApprovalApproved)},
	}.ValidApproval())
	assert.False(t, ChecklistRow{
		CityResolution: CityResolutionStage{Approval: strPtr("rejected")},
	}.ValidApproval())
}

func TestRoundTrip(t *testing.T) {
	var m model.ChecklistModel
	row := ChecklistRow{
		CompanyName: "Acme Corp",
		CityResolution: CityResolutionStage{
			Checked: true, PassedAt: tm(),
			Approval: strPtr(model.ApprovalApproved), ReturnedIn: tm(),
		},
		CompanySigning: Stage{Checked: true, PassedAt: tm()},
	}
	row.Apply(&m)

	got := FromModel(m)
	assert.Equal(t, "Acme Corp", got.CompanyName)
	assert.True(t, got.CityResolution.Checked)
	assert.Equal(t, model.ApprovalApproved, *got.CityResolution.Approval)
	assert.NotNil(t, got.CityResolution.ReturnedIn)
	assert.True(t, got.CompanySigning.Checked)
	assert.False(t, got.OfficePresident.Checked)
}
