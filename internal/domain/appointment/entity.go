package appointment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrReasonTooLong       = errors.New("cancellation reason too long")
	ErrNotesTooLong        = errors.New("notes too long")
	ErrMissingParticipants = errors.New("user, service and staff are required")
	ErrNonPositivePrice    = errors.New("price cannot be negative")
	ErrZeroDurationService = errors.New("service duration must be positive")
	ErrStartTimeRequired   = errors.New("start time is required")
)

const (
	MaxNotesLength  = 500
	MaxReasonLength = 500
)

type Appointment struct {
	id                 uuid.UUID
	tenantID           uuid.UUID
	userID             uuid.UUID
	serviceID          uuid.UUID
	staffID            uuid.UUID
	slot               TimeSlot
	status             Status
	priceCents         int64
	couponID           *uuid.UUID
	notes              *string
	cancellationReason *string
	confirmationSent   bool
	reminderSent       bool
	createdAt          time.Time
	updatedAt          time.Time
}

// NewAppointment builds a pending appointment. The end time is derived from
// the service duration; callers never supply it.
func NewAppointment(
	tenantID, userID, serviceID, staffID uuid.UUID,
	startTime time.Time,
	serviceDurationMinutes int,
	priceCents int64,
	couponID *uuid.UUID,
	notes *string,
) (*Appointment, error) {
	if userID == uuid.Nil || serviceID == uuid.Nil || staffID == uuid.Nil {
		return nil, ErrMissingParticipants
	}
	if startTime.IsZero() {
		return nil, ErrStartTimeRequired
	}
	if serviceDurationMinutes <= 0 {
		return nil, ErrZeroDurationService
	}
	if priceCents < 0 {
		return nil, ErrNonPositivePrice
	}

	slot, err := SlotFromStart(startTime, serviceDurationMinutes)
	if err != nil {
		return nil, err
	}

	trimmedNotes, err := normalizeText(notes, MaxNotesLength, ErrNotesTooLong)
	if err != nil {
		return nil, err
	}

	return &Appointment{
		id:         uuid.New(),
		tenantID:   tenantID,
		userID:     userID,
		serviceID:  serviceID,
		staffID:    staffID,
		slot:       slot,
		status:     StatusPending,
		priceCents: priceCents,
		couponID:   couponID,
		notes:      trimmedNotes,
	}, nil
}

func Reconstruct(
	id, tenantID, userID, serviceID, staffID uuid.UUID,
	slot TimeSlot,
	status Status,
	priceCents int64,
	couponID *uuid.UUID,
	notes, cancellationReason *string,
	confirmationSent, reminderSent bool,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:                 id,
		tenantID:           tenantID,
		userID:             userID,
		serviceID:          serviceID,
		staffID:            staffID,
		slot:               slot,
		status:             status,
		priceCents:         priceCents,
		couponID:           couponID,
		notes:              notes,
		cancellationReason: cancellationReason,
		confirmationSent:   confirmationSent,
		reminderSent:       reminderSent,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// TransitionTo applies the state machine. It is the only way to change status
// after construction.
func (a *Appointment) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	return nil
}

// Cancel is sugar for a transition to cancelled with a stored reason.
func (a *Appointment) Cancel(reason *string) error {
	trimmed, err := normalizeText(reason, MaxReasonLength, ErrReasonTooLong)
	if err != nil {
		return err
	}
	if err := a.TransitionTo(StatusCancelled); err != nil {
		return err
	}
	a.cancellationReason = trimmed
	return nil
}

// MarkConfirmationSent records that the confirmation notification was handed
// to the transport. The reminder flag is owned by the reminder worker and is
// never set here.
func (a *Appointment) MarkConfirmationSent() { a.confirmationSent = true }

func (a *Appointment) IsActive() bool {
	return a.status.IsActive()
}

func (a *Appointment) ID() uuid.UUID               { return a.id }
func (a *Appointment) TenantID() uuid.UUID         { return a.tenantID }
func (a *Appointment) UserID() uuid.UUID           { return a.userID }
func (a *Appointment) ServiceID() uuid.UUID        { return a.serviceID }
func (a *Appointment) StaffID() uuid.UUID          { return a.staffID }
func (a *Appointment) Slot() TimeSlot              { return a.slot }
func (a *Appointment) Status() Status              { return a.status }
func (a *Appointment) PriceCents() int64           { return a.priceCents }
func (a *Appointment) CouponID() *uuid.UUID        { return a.couponID }
func (a *Appointment) Notes() *string              { return a.notes }
func (a *Appointment) CancellationReason() *string { return a.cancellationReason }
func (a *Appointment) ConfirmationSent() bool      { return a.confirmationSent }
func (a *Appointment) ReminderSent() bool          { return a.reminderSent }
func (a *Appointment) CreatedAt() time.Time        { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time        { return a.updatedAt }

func normalizeText(v *string, maxLen int, tooLong error) (*string, error) {
	if v == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > maxLen {
		return nil, tooLong
	}
	return &trimmed, nil
}
