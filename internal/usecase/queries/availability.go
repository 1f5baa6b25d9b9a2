package queries

import (
	"context"
	"fmt"
	"time"

	"bookwell/internal/infra"
	"bookwell/internal/pkg/clock"
	"bookwell/internal/pkg/errs"
	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate     = errs.New("invalid date")
	ErrServiceNotFound = errs.New("service not found")
	ErrStaffNotFound   = errs.New("staff not found")
)

const dateFormat = "2006-01-02"

// dayPadding widens the appointment fetch window so bookings shifted across
// day boundaries by the client timezone offset are still seen.
const dayPadding = 24 * time.Hour

type ComputeSlotsInput struct {
	StaffID               uuid.UUID
	ServiceID             uuid.UUID
	Date                  string
	TimezoneOffsetMinutes int
}

type AvailabilityQueries interface {
	// ComputeSlots returns bookable local start times for a staff/service/day
	// as zero-padded "HH:MM" strings, ascending. It is a pure function of the
	// current time and the stored appointments.
	ComputeSlots(ctx context.Context, tenantID uuid.UUID, in ComputeSlotsInput) ([]string, error)
}

type availabilityQueriesImpl struct {
	services shared.ServiceReadStore
	staffs   shared.StaffReadStore
	settings shared.BookingSettingsReadStore
	guard    *shared.AvailabilityGuard
	clock    clock.Clock
	defaults shared.BookingSettings
}

func NewAvailabilityQueries(
	services shared.ServiceReadStore,
	staffs shared.StaffReadStore,
	settings shared.BookingSettingsReadStore,
	guard *shared.AvailabilityGuard,
	clock clock.Clock,
	defaults shared.BookingSettings,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		services: services,
		staffs:   staffs,
		settings: settings,
		guard:    guard,
		clock:    clock,
		defaults: defaults,
	}
}

func (q *availabilityQueriesImpl) ComputeSlots(
	ctx context.Context,
	tenantID uuid.UUID,
	in ComputeSlotsInput,
) ([]string, error) {
	date, err := time.ParseInLocation(dateFormat, in.Date, time.UTC)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	svc, err := q.services.FindByID(ctx, tenantID, in.ServiceID)
	if err != nil || !svc.Active {
		if err == nil || infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to load service")
	}

	member, err := q.staffs.FindByID(ctx, tenantID, in.StaffID)
	if err != nil || !member.Active {
		if err == nil || infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, errs.Wrap(err, "failed to load staff")
	}

	window := q.windowForTenant(ctx, tenantID)

	// The client offset converts local wall-clock candidates to instants:
	// local midnight happens offset minutes before UTC midnight of the date.
	offset := time.Duration(in.TimezoneOffsetMinutes) * time.Minute
	dayStart := date.Add(-offset)
	dayEnd := dayStart.Add(24 * time.Hour)

	// One padded fetch for the whole day; candidates are filtered in memory.
	booked, err := q.guard.Snapshot(ctx, tenantID, in.StaffID, dayStart.Add(-dayPadding), dayEnd.Add(dayPadding))
	if err != nil {
		return nil, errs.Wrap(err, "failed to load appointments")
	}

	now := q.clock.Now()
	duration := time.Duration(svc.DurationMinutes) * time.Minute

	slots := make([]string, 0)
	for minute := window.OpenMinute; minute < window.CloseMinute; minute += window.SlotIntervalMinutes {
		// No spillover past closing time.
		if minute+svc.DurationMinutes > window.CloseMinute {
			break
		}

		start := dayStart.Add(time.Duration(minute) * time.Minute)
		if start.Before(now) {
			continue
		}
		if booked.Conflicts(start, start.Add(duration), nil) {
			continue
		}

		slots = append(slots, fmt.Sprintf("%02d:%02d", minute/60, minute%60))
	}

	return slots, nil
}

func (q *availabilityQueriesImpl) windowForTenant(ctx context.Context, tenantID uuid.UUID) shared.BookingSettings {
	settings, err := q.settings.FindByTenant(ctx, tenantID)
	if err != nil || settings == nil {
		return q.defaults
	}
	return *settings
}
