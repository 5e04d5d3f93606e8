package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"ojtsystem_backend/internals/features/practicum/journal/model"
)

func TestGenerateDueDatesMondays2025(t *testing.T) {
	weeks := GenerateDueDates(2025, time.Monday)

	// January 2025 has Mondays on the 6th, 13th, 20th and 27th.
	jan := weeks[:4]
	require.Equal(t, 1, jan[0].Month)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), jan[0].DueDate)
	assert.Equal(t, 1, jan[0].WeekNo)
	assert.Equal(t, time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC), jan[3].DueDate)
	assert.Equal(t, 4, jan[3].WeekNo)
	assert.Equal(t, 2, weeks[4].Month, "fifth entry rolls into February")
	assert.Equal(t, 1, weeks[4].WeekNo, "week numbering restarts each month")

	// 2025 has 52 Mondays.
	assert.Len(t, weeks, 52)
	for _, w := range weeks {
		assert.Equal(t, time.Monday, w.DueDate.Weekday())
		assert.Equal(t, 2025, w.Year)
	}
}

func TestGenerateDueDatesFiveWeekMonth(t *testing.T) {
	weeks := GenerateDueDates(2025, time.Saturday)
	var march []DueWeek
	for _, w := range weeks {
		if w.Month == 3 {
			march = append(march, w)
		}
	}
	// March 2025 has five Saturdays: 1, 8, 15, 22, 29.
	require.Len(t, march, 5)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), march[0].DueDate)
	assert.Equal(t, 5, march[4].WeekNo)
	assert.Equal(t, time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC), march[4].DueDate)
}

func TestValidSubmissionDay(t *testing.T) {
	assert.True(t, ValidSubmissionDay(0))
	assert.True(t, ValidSubmissionDay(6))
	assert.False(t, ValidSubmissionDay(-1))
	assert.False(t, ValidSubmissionDay(7))
}

func TestCellStatus(t *testing.T) {
	late := "late"
	assert.Equal(t, "pending", CellStatus(false, nil))
	assert.Equal(t, "passed", CellStatus(true, nil))
	assert.Equal(t, "late", CellStatus(true, &late))
}

func TestTargetYear(t *testing.T) {
	assert.Equal(t, 2025, TargetYear("2024 - 2025", 2000))
	assert.Equal(t, 2025, TargetYear("2024-2025", 2000))
	assert.Equal(t, 2024, TargetYear("2024", 2000))
	assert.Equal(t, 2000, TargetYear("", 2000))
	assert.Equal(t, 2000, TargetYear("n/a", 2000))
}

func TestEntryStatusValues(t *testing.T) {
	now := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	t.Run("unchecked clears everything", func(t *testing.T) {
		v := entryStatusValues(false, "late", "was sick", now)
		assert.Nil(t, v["submitted_at"])
		assert.Nil(t, v["status"])
		assert.Nil(t, v["status_note"])
		assert.Equal(t, false, v["status_override"])
	})

	t.Run("plain check submits on time", func(t *testing.T) {
		v := entryStatusValues(true, "", "ignored", now)
		assert.Equal(t, now, v["submitted_at"])
		assert.Nil(t, v["status"])
		assert.Nil(t, v["status_note"])
		assert.Equal(t, false, v["status_override"])
	})

	t.Run("late override records status and note", func(t *testing.T) {
		v := entryStatusValues(true, model.StatusLate, "  was sick  ", now)
		assert.Equal(t, now, v["submitted_at"])
		assert.Equal(t, model.StatusLate, v["status"])
		assert.Equal(t, "was sick", v["status_note"])
		assert.Equal(t, true, v["status_override"])
	})

	t.Run("late_excused with blank note", func(t *testing.T) {
		v := entryStatusValues(true, model.StatusLateExcused, "   ", now)
		assert.Equal(t, model.StatusLateExcused, v["status"])
		assert.Nil(t, v["status_note"])
		assert.Equal(t, true, v["status_override"])
	})

	t.Run("unknown override counts as a plain check", func(t *testing.T) {
		v := entryStatusValues(true, "absent", "note", now)
		assert.Equal(t, now, v["submitted_at"])
		assert.Nil(t, v["status"])
		assert.Nil(t, v["status_note"])
		assert.Equal(t, false, v["status_override"])
	})
}

func TestBuildMatrix(t *testing.T) {
	studentA := uuid.New()
	studentB := uuid.New()
	now := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	late := "late"

	entries := []model.JournalModel{
		{
			ID: uuid.New(), StudentID: studentA, Section: "4A",
			Year: 2025, Month: 1, WeekNo: 1,
			DueDate:     datatypes.Date(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
			SubmittedAt: &now,
		},
		{
			ID: uuid.New(), StudentID: studentB, Section: "4A",
			Year: 2025, Month: 1, WeekNo: 1,
			DueDate:     datatypes.Date(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
			SubmittedAt: &now, Status: &late, StatusOverride: true,
		},
		{
			ID: uuid.New(), StudentID: studentA, Section: "4A",
			Year: 2025, Month: 1, WeekNo: 2,
			DueDate: datatypes.Date(time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)),
		},
	}

	m := BuildMatrix(entries)

	require.Len(t, m.Columns, 2)
	assert.Equal(t, "2025-01-06", m.Columns[0].DueDate)
	assert.Equal(t, "2025-01-13", m.Columns[1].DueDate)

	a := m.Cells[studentA.String()]
	require.NotNil(t, a)
	assert.Equal(t, "passed", a["2025-01-06"].Status)
	assert.Equal(t, "pending", a["2025-01-13"].Status)

	b := m.Cells[studentB.String()]
	require.NotNil(t, b)
	assert.Equal(t, "late", b["2025-01-06"].Status)

	// student B has no entry for week 2: the cell is simply absent
	_, ok := b["2025-01-13"]
	assert.False(t, ok)
}
