package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRequirementColumn(t *testing.T) {
	for _, col := range []string{
		"practicum_application", "letter_of_intent", "endorsement_letter",
		"practicum_parental_consent", "acceptance_form", "reply_form",
		"practicum_training_agreement", "attendance_sheet", "weekly_journal",
		"transmittal_form", "evaluation_form", "outreach_program_design",
		"outreach_post_activity_report", "ojt_log_sheet",
		"requirements_checklist", "cca_hymn",
	} {
		assert.True(t, IsRequirementColumn(col), col)
	}
	assert.False(t, IsRequirementColumn("password"))
	assert.False(t, IsRequirementColumn("start_of_ojt"))
	assert.False(t, IsRequirementColumn("dtr_january_hours"))
}

func TestDTRColumn(t *testing.T) {
	col, ok := DTRColumn("dtr_january_hours")
	assert.True(t, ok)
	assert.Equal(t, "january_hours", col)

	col, ok = DTRColumn("dtr_june_hours")
	assert.True(t, ok)
	assert.Equal(t, "june_hours", col)

	_, ok = DTRColumn("dtr_july_hours")
	assert.False(t, ok)
}

func TestParseBoolLiteral(t *testing.T) {
	v, err := ParseBoolLiteral("true")
	assert.NoError(t, err)
	assert.True(t, v)

	v, err = ParseBoolLiteral("false")
	assert.NoError(t, err)
	assert.False(t, v)

	for _, bad := range []string{"TRUE", "1", "yes", "", " true"} {
		_, err := ParseBoolLiteral(bad)
		assert.ErrorIs(t, err, ErrBadValue, bad)
	}
}

func TestParseHours(t *testing.T) {
	n, err := ParseHours("160")
	assert.NoError(t, err)
	assert.Equal(t, 160, n)

	n, err = ParseHours(" 0 ")
	assert.NoError(t, err)
	assert.Zero(t, n)

	for _, bad := range []string{"-1", "8.5", "abc", ""} {
		_, err := ParseHours(bad)
		assert.ErrorIs(t, err, ErrBadValue, bad)
	}
}

func TestParseOJTDate(t *testing.T) {
	d, err := ParseOJTDate("2025-01-15")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), *d)

	d, err = ParseOJTDate("")
	assert.NoError(t, err)
	assert.Nil(t, d, "empty clears the date")

	_, err = ParseOJTDate("15/01/2025")
	assert.ErrorIs(t, err, ErrBadValue)
}
