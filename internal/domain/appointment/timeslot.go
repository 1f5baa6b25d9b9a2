package appointment

import (
	"errors"
	"time"
)

var ErrInvalidTimeSlot = errors.New("start time must be before end time")

// Overlaps is the single half-open interval predicate used everywhere a
// conflict decision is made. [startA, endA) intersects [startB, endB) iff
// startA < endB && endA > startB; touching boundaries do not overlap.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

// SlotFromStart derives the interval from a start instant and the booked
// service's fixed duration. The end time is never authored directly.
func SlotFromStart(start time.Time, durationMinutes int) (TimeSlot, error) {
	return NewTimeSlot(start, start.Add(time.Duration(durationMinutes)*time.Minute))
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) OverlapsWith(other TimeSlot) bool {
	return Overlaps(ts.start, ts.end, other.start, other.end)
}
