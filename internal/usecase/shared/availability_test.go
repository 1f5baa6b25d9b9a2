//go:build unit

package shared_test

import (
	"context"
	"testing"
	"time"

	"bookwell/internal/domain/appointment"
	"bookwell/internal/usecase/shared"
	sharedmock "bookwell/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var dayStart = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func slotAt(hour, durationMinutes int) (time.Time, time.Time) {
	start := dayStart.Add(time.Duration(hour) * time.Hour)
	return start, start.Add(time.Duration(durationMinutes) * time.Minute)
}

func interval(staffID uuid.UUID, startHour, durationMinutes int, status appointment.Status) shared.AppointmentInterval {
	start, end := slotAt(startHour, durationMinutes)
	return shared.AppointmentInterval{
		ID:      uuid.New(),
		StaffID: staffID,
		Start:   start,
		End:     end,
		Status:  status,
	}
}

func TestIntervalSetConflicts(t *testing.T) {
	staffID := uuid.New()

	t.Run("overlapping active interval conflicts", func(t *testing.T) {
		set := shared.IntervalSet{interval(staffID, 10, 60, appointment.StatusConfirmed)}
		start, end := slotAt(10, 30)
		assert.True(t, set.Conflicts(start, end, nil))
	})

	t.Run("cancelled and no-show intervals never conflict", func(t *testing.T) {
		set := shared.IntervalSet{
			interval(staffID, 10, 60, appointment.StatusCancelled),
			interval(staffID, 10, 60, appointment.StatusNoShow),
		}
		start, end := slotAt(10, 60)
		assert.False(t, set.Conflicts(start, end, nil))
	})

	t.Run("back to back does not conflict", func(t *testing.T) {
		set := shared.IntervalSet{interval(staffID, 10, 60, appointment.StatusPending)}
		start, end := slotAt(11, 60)
		assert.False(t, set.Conflicts(start, end, nil))
	})

	t.Run("excluded appointment is skipped", func(t *testing.T) {
		existing := interval(staffID, 10, 60, appointment.StatusConfirmed)
		set := shared.IntervalSet{existing}
		start, end := slotAt(10, 60)

		assert.True(t, set.Conflicts(start, end, nil))
		assert.False(t, set.Conflicts(start, end, &existing.ID))
	})

	t.Run("pending appointments block the slot", func(t *testing.T) {
		set := shared.IntervalSet{interval(staffID, 14, 30, appointment.StatusPending)}
		start, end := slotAt(14, 30)
		assert.True(t, set.Conflicts(start, end, nil))
	})
}

func TestAvailabilityGuardIsAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	staffID := uuid.New()

	t.Run("free slot", func(t *testing.T) {
		reader := sharedmock.NewMockAppointmentIntervalReader(ctrl)
		reader.EXPECT().
			FindActiveIntervals(gomock.Any(), tenantID, staffID, gomock.Any(), gomock.Any()).
			Return([]shared.AppointmentInterval{interval(staffID, 9, 60, appointment.StatusConfirmed)}, nil)

		guard := shared.NewAvailabilityGuard(reader)
		start, end := slotAt(11, 60)
		ok, err := guard.IsAvailable(context.Background(), tenantID, staffID, start, end, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("occupied slot", func(t *testing.T) {
		reader := sharedmock.NewMockAppointmentIntervalReader(ctrl)
		reader.EXPECT().
			FindActiveIntervals(gomock.Any(), tenantID, staffID, gomock.Any(), gomock.Any()).
			Return([]shared.AppointmentInterval{interval(staffID, 11, 60, appointment.StatusConfirmed)}, nil)

		guard := shared.NewAvailabilityGuard(reader)
		start, end := slotAt(11, 30)
		ok, err := guard.IsAvailable(context.Background(), tenantID, staffID, start, end, nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("reader error propagates", func(t *testing.T) {
		reader := sharedmock.NewMockAppointmentIntervalReader(ctrl)
		reader.EXPECT().
			FindActiveIntervals(gomock.Any(), tenantID, staffID, gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		guard := shared.NewAvailabilityGuard(reader)
		start, end := slotAt(11, 30)
		_, err := guard.IsAvailable(context.Background(), tenantID, staffID, start, end, nil)
		assert.Error(t, err)
	})
}
