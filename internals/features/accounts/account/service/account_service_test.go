package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFullName(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second *string
		middle *string
		last   string
		want   string
	}{
		{"all parts", "Juan", strPtr("Miguel"), strPtr("P"), "Dela Cruz", "Juan Miguel P. Dela Cruz"},
		{"no optionals", "Juan", nil, nil, "Dela Cruz", "Juan Dela Cruz"},
		{"literal none", "Juan", strPtr("none"), strPtr("NULL"), "Dela Cruz", "Juan Dela Cruz"},
		{"blank parts", "Juan", strPtr("  "), strPtr(""), "Dela Cruz", "Juan Dela Cruz"},
		{"middle only", "Ana", nil, strPtr("R"), "Reyes", "Ana R. Reyes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FullName(tt.first, tt.second, tt.middle, tt.last))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@cca.edu.ph", NormalizeEmail("  A@CCA.edu.PH "))
}

func TestValidRole(t *testing.T) {
	for _, s := range []string{"student", "coordinator", "instructor"} {
		role, ok := ValidRole(s)
		assert.True(t, ok)
		assert.Equal(t, Role(s), role)
	}
	_, ok := ValidRole("admin")
	assert.False(t, ok)
}

func TestStaffRole(t *testing.T) {
	_, ok := StaffRole("student")
	assert.False(t, ok)
	role, ok := StaffRole("instructor")
	assert.True(t, ok)
	assert.Equal(t, RoleInstructor, role)
}

func TestTableForRole(t *testing.T) {
	assert.Equal(t, "students", TableForRole(RoleStudent))
	assert.Equal(t, "practicum_coordinators", TableForRole(RoleCoordinator))
	assert.Equal(t, "practicum_instructors", TableForRole(RoleInstructor))
	assert.Empty(t, TableForRole(Role("admin")))
}
