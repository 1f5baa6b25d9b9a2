package appointment

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsActive reports whether an appointment in this status still occupies its
// staff interval. Cancelled and no-show appointments free the slot.
func (s Status) IsActive() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// transitions is the authoritative state machine: pending must be confirmed
// before it can complete, and only non-terminal states can be closed out.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LifecycleEvent identifies the notification trigger emitted on a transition.
type LifecycleEvent string

const (
	EventPendingApproval LifecycleEvent = "PENDING_APPROVAL"
	EventConfirmed       LifecycleEvent = "CONFIRMED"
	EventCancelled       LifecycleEvent = "CANCELLED"
)

// EventForStatus maps a newly applied status to the lifecycle event it emits.
// Completion is a bookkeeping transition and triggers nothing.
func EventForStatus(s Status) (LifecycleEvent, bool) {
	switch s {
	case StatusConfirmed:
		return EventConfirmed, true
	case StatusCancelled, StatusNoShow:
		return EventCancelled, true
	default:
		return "", false
	}
}
