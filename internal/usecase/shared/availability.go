package shared

import (
	"context"
	"time"

	"bookwell/internal/domain/appointment"

	"github.com/google/uuid"
)

// fetchPadding widens the repository window so appointments shifted by a
// client timezone offset are still fetched.
const fetchPadding = 24 * time.Hour

// AvailabilityGuard decides whether a candidate interval conflicts with any
// active appointment for a staff member. It reads, never locks; the storage
// layer's exclusion constraint closes the read-then-write race at commit time.
type AvailabilityGuard struct {
	appointments AppointmentIntervalReader
}

func NewAvailabilityGuard(appointments AppointmentIntervalReader) *AvailabilityGuard {
	return &AvailabilityGuard{appointments: appointments}
}

// IsAvailable reports whether [start, end) is free for the staff member.
// excludeID skips the appointment being rescheduled.
func (g *AvailabilityGuard) IsAvailable(
	ctx context.Context,
	tenantID, staffID uuid.UUID,
	start, end time.Time,
	excludeID *uuid.UUID,
) (bool, error) {
	set, err := g.Snapshot(ctx, tenantID, staffID, start.Add(-fetchPadding), end.Add(fetchPadding))
	if err != nil {
		return false, err
	}
	return !set.Conflicts(start, end, excludeID), nil
}

// Snapshot fetches the active intervals once so callers checking many
// candidates (the slot calculator) do a single read per day.
func (g *AvailabilityGuard) Snapshot(
	ctx context.Context,
	tenantID, staffID uuid.UUID,
	from, to time.Time,
) (IntervalSet, error) {
	intervals, err := g.appointments.FindActiveIntervals(ctx, tenantID, staffID, from, to)
	if err != nil {
		return nil, err
	}
	return IntervalSet(intervals), nil
}

// IntervalSet is an in-memory collection of active appointment intervals.
type IntervalSet []AppointmentInterval

func (s IntervalSet) Conflicts(start, end time.Time, excludeID *uuid.UUID) bool {
	for _, iv := range s {
		if excludeID != nil && iv.ID == *excludeID {
			continue
		}
		if !iv.Status.IsActive() {
			continue
		}
		if appointment.Overlaps(start, end, iv.Start, iv.End) {
			return true
		}
	}
	return false
}
