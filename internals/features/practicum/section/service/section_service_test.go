package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStaffRef(t *testing.T) {
	instID := uuid.New()
	coordID := uuid.New()

	ref, err := ParseStaffRef("inst:" + instID.String())
	require.NoError(t, err)
	require.NotNil(t, ref.InstructorID)
	assert.Equal(t, instID, *ref.InstructorID)
	assert.Nil(t, ref.CoordinatorID)
	assert.False(t, ref.Empty())

	ref, err = ParseStaffRef("coord:" + coordID.String())
	require.NoError(t, err)
	require.NotNil(t, ref.CoordinatorID)
	assert.Equal(t, coordID, *ref.CoordinatorID)
	assert.Nil(t, ref.InstructorID)

	ref, err = ParseStaffRef("  ")
	require.NoError(t, err)
	assert.True(t, ref.Empty(), "blank value clears the assignment")

	for _, bad := range []string{
		"inst:",
		"inst:not-a-uuid",
		"teacher:" + instID.String(),
		instID.String(),
	} {
		_, err := ParseStaffRef(bad)
		assert.ErrorIs(t, err, ErrBadStaffRef, bad)
	}
}
