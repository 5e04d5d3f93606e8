package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sectionService "ojtsystem_backend/internals/features/practicum/section/service"
)

func TestSectionPairsKeepSchoolYear(t *testing.T) {
	sections := []sectionService.AssignedSection{
		{SectionID: uuid.New(), Section: "4A", SchoolYear: "2024 - 2025"},
		{SectionID: uuid.New(), Section: "4A", SchoolYear: "2025 - 2026"},
		{SectionID: uuid.New(), Section: "4B", SchoolYear: "2024 - 2025"},
	}

	pairs := sectionPairs(sections)
	require.Len(t, pairs, 3)

	// the same section label across two school years yields two distinct
	// tuples; dropping the year half would merge their rosters
	assert.Equal(t, []any{"4A", "2024 - 2025"}, pairs[0])
	assert.Equal(t, []any{"4A", "2025 - 2026"}, pairs[1])
	assert.Equal(t, []any{"4B", "2024 - 2025"}, pairs[2])
	assert.NotEqual(t, pairs[0], pairs[1])
}

func TestSectionPairsEmpty(t *testing.T) {
	assert.Empty(t, sectionPairs(nil))
}
