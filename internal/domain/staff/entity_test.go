//go:build unit

package staff_test

import (
	"strings"
	"testing"

	"bookwell/internal/domain/staff"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	id := uuid.New()
	tenantID := uuid.New()

	t.Run("success", func(t *testing.T) {
		email := "robin@example.com"
		member, err := staff.NewStaff(id, tenantID, " Robin ", &email, nil, true, nil)
		require.NoError(t, err)
		assert.Equal(t, "Robin", member.Name())
		assert.Equal(t, &email, member.Email())
		assert.Nil(t, member.Phone())
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := staff.NewStaff(id, tenantID, "  ", nil, nil, true, nil)
		assert.ErrorIs(t, err, staff.ErrEmptyStaffName)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := staff.NewStaff(id, tenantID, strings.Repeat("a", staff.MaxStaffNameLength+1), nil, nil, true, nil)
		assert.ErrorIs(t, err, staff.ErrStaffNameTooLong)
	})
}

func TestProvidesService(t *testing.T) {
	id := uuid.New()
	tenantID := uuid.New()
	assigned := uuid.New()
	other := uuid.New()

	t.Run("assigned service", func(t *testing.T) {
		member, err := staff.NewStaff(id, tenantID, "Robin", nil, nil, true, []uuid.UUID{assigned})
		require.NoError(t, err)
		assert.True(t, member.ProvidesService(assigned))
		assert.False(t, member.ProvidesService(other))
	})

	t.Run("duplicate assignments collapse", func(t *testing.T) {
		member, err := staff.NewStaff(id, tenantID, "Robin", nil, nil, true, []uuid.UUID{assigned, assigned})
		require.NoError(t, err)
		assert.True(t, member.ProvidesService(assigned))
	})

	t.Run("no assignments", func(t *testing.T) {
		member, err := staff.NewStaff(id, tenantID, "Robin", nil, nil, true, nil)
		require.NoError(t, err)
		assert.False(t, member.ProvidesService(assigned))
	})
}
