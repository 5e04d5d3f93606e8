package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allChecked() RequirementModel {
	return RequirementModel{
		PracticumApplication: true, LetterOfIntent: true, EndorsementLetter: true,
		PracticumParentalConsent: true, AcceptanceForm: true, ReplyForm: true,
		PracticumTrainingAgreement: true, AttendanceSheet: true, WeeklyJournal: true,
		TransmittalForm: true, EvaluationForm: true, OutreachProgramDesign: true,
		OutreachPostActivityReport: true, OJTLogSheet: true, RequirementsChecklist: true,
		CCAHymn: true,
	}
}

func TestAllDone(t *testing.T) {
	assert.False(t, RequirementModel{}.AllDone())

	m := allChecked()
	assert.True(t, m.AllDone())
	assert.Len(t, m.RequirementFlags(), 16)

	m.CCAHymn = false
	assert.False(t, m.AllDone(), "one unchecked requirement fails the whole set")
}

func TestTotalHours(t *testing.T) {
	m := AttendanceModel{
		JanuaryHours: 40, FebruaryHours: 80, MarchHours: 60,
		AprilHours: 0, MayHours: 100, JuneHours: 20,
	}
	assert.Equal(t, 300, m.TotalHours())
	assert.Zero(t, AttendanceModel{}.TotalHours())
}
