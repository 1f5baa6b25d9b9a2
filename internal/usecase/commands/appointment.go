package commands

import (
	"context"
	"log/slog"
	"time"

	"bookwell/internal/domain/appointment"
	"bookwell/internal/domain/identity"
	"bookwell/internal/infra"
	"bookwell/internal/infra/repository"
	"bookwell/internal/pkg/clock"
	"bookwell/internal/pkg/errs"
	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrValidation              = errs.New("validation error")
	ErrServiceNotFound         = errs.New("service not found")
	ErrStaffNotFound           = errs.New("staff not found")
	ErrStaffNotAssigned        = errs.New("staff is not assigned to this service")
	ErrSlotTaken               = errs.New("slot already booked")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrInvalidTransition       = errs.New("status transition not allowed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateAppointmentInput struct {
	UserID     uuid.UUID
	ServiceID  uuid.UUID
	StaffID    uuid.UUID
	StartTime  time.Time
	Notes      *string
	CouponCode *string
}

// CancelAppointmentInput identifies who is cancelling so ownership can be
// enforced: customers may only cancel their own bookings.
type CancelAppointmentInput struct {
	ActorID uuid.UUID
	Role    identity.Role
	Reason  *string
	Origin  string
}

type AppointmentCommands interface {
	Create(ctx context.Context, tenantID uuid.UUID, in CreateAppointmentInput) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, next appointment.Status, origin string) (*appointment.Appointment, error)
	Cancel(ctx context.Context, tenantID, id uuid.UUID, in CancelAppointmentInput) (*appointment.Appointment, error)
}

type appointmentUseCaseImpl struct {
	appointments AppointmentRepository
	services     shared.ServiceReadStore
	staffs       shared.StaffReadStore
	coupons      CouponRepository
	couponCheck  CouponValidator
	guard        AvailabilityChecker
	gate         ChannelResolver
	publisher    shared.EventPublisher
	tx           TxManager
	clock        clock.Clock
}

func NewAppointmentUseCase(
	appointments AppointmentRepository,
	services shared.ServiceReadStore,
	staffs shared.StaffReadStore,
	coupons CouponRepository,
	couponCheck CouponValidator,
	guard AvailabilityChecker,
	gate ChannelResolver,
	publisher shared.EventPublisher,
	tx TxManager,
	clock clock.Clock,
) AppointmentCommands {
	return &appointmentUseCaseImpl{
		appointments: appointments,
		services:     services,
		staffs:       staffs,
		coupons:      coupons,
		couponCheck:  couponCheck,
		guard:        guard,
		gate:         gate,
		publisher:    publisher,
		tx:           tx,
		clock:        clock,
	}
}

func (u *appointmentUseCaseImpl) Create(
	ctx context.Context,
	tenantID uuid.UUID,
	in CreateAppointmentInput,
) (*appointment.Appointment, error) {
	if in.UserID == uuid.Nil || in.ServiceID == uuid.Nil || in.StaffID == uuid.Nil || in.StartTime.IsZero() {
		return nil, ErrValidation
	}
	// Availability never offers past slots, so a past start time cannot be
	// booked directly either.
	if in.StartTime.Before(u.clock.Now()) {
		return nil, ErrValidation
	}

	svc, err := u.loadActiveService(ctx, tenantID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	member, err := u.loadActiveStaff(ctx, tenantID, in.StaffID)
	if err != nil {
		return nil, err
	}
	if !staffProvides(member, in.ServiceID) {
		return nil, ErrStaffNotAssigned
	}

	// The end time is always derived from the service's fixed duration.
	slot, err := appointment.SlotFromStart(in.StartTime, svc.DurationMinutes)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	available, err := u.guard.IsAvailable(ctx, tenantID, in.StaffID, slot.Start(), slot.End(), nil)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !available {
		return nil, ErrSlotTaken
	}

	priceCents := svc.PriceCents
	var couponID *uuid.UUID
	if in.CouponCode != nil {
		validation, err := u.couponCheck.Validate(ctx, tenantID, CouponValidationInput{
			Code:            *in.CouponCode,
			OrderTotalCents: svc.PriceCents,
			ServiceIDs:      []uuid.UUID{in.ServiceID},
		})
		if err != nil {
			return nil, err
		}
		priceCents = svc.PriceCents - validation.DiscountCents
		if priceCents < 0 {
			priceCents = 0
		}
		id := validation.Coupon.ID
		couponID = &id
	}

	appt, err := appointment.NewAppointment(
		tenantID,
		in.UserID,
		in.ServiceID,
		in.StaffID,
		in.StartTime,
		svc.DurationMinutes,
		priceCents,
		couponID,
		in.Notes,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	// The insert and the coupon usage increment commit together; a conflict
	// on either rolls back the whole booking.
	err = u.tx.WithinTx(ctx, func(tx repository.DBTX) error {
		if err := u.appointments.Create(ctx, tx, appt); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotTaken
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if couponID != nil {
			if err := u.coupons.IncrementUsage(ctx, tx, tenantID, *couponID); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return ErrInvalidCoupon
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.emitEvent(ctx, appt, appointment.EventPendingApproval, nil, "customer")

	return appt, nil
}

func (u *appointmentUseCaseImpl) UpdateStatus(
	ctx context.Context,
	tenantID, id uuid.UUID,
	next appointment.Status,
	origin string,
) (*appointment.Appointment, error) {
	if !next.IsValid() {
		return nil, ErrValidation
	}

	appt, err := u.loadAppointment(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := appt.TransitionTo(next); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	// Channels are resolved before the write so the confirmation flag can be
	// persisted together with the status change.
	event, hasEvent := appointment.EventForStatus(next)
	var channels []shared.Channel
	if hasEvent {
		channels = u.resolveChannels(ctx, appt, event)
		if event == appointment.EventConfirmed && len(channels) > 0 {
			appt.MarkConfirmationSent()
		}
	}

	if err := u.persistUpdate(ctx, appt); err != nil {
		return nil, err
	}

	if len(channels) > 0 {
		u.enqueue(appt, event, nil, origin, channels)
	}

	return appt, nil
}

func (u *appointmentUseCaseImpl) Cancel(
	ctx context.Context,
	tenantID, id uuid.UUID,
	in CancelAppointmentInput,
) (*appointment.Appointment, error) {
	appt, err := u.loadAppointment(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	// Customers may only cancel their own bookings. The not-found answer
	// does not reveal whether the appointment exists, mirroring the read
	// side.
	if in.Role == identity.RoleCustomer && appt.UserID() != in.ActorID {
		return nil, ErrAppointmentNotFound
	}

	if err := appt.Cancel(in.Reason); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	if err := u.persistUpdate(ctx, appt); err != nil {
		return nil, err
	}

	u.emitEvent(ctx, appt, appointment.EventCancelled, appt.CancellationReason(), in.Origin)

	return appt, nil
}

func (u *appointmentUseCaseImpl) loadActiveService(ctx context.Context, tenantID, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	svc, err := u.services.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !svc.Active {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (u *appointmentUseCaseImpl) loadActiveStaff(ctx context.Context, tenantID, id uuid.UUID) (*shared.StaffSnapshot, error) {
	member, err := u.staffs.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !member.Active {
		return nil, ErrStaffNotFound
	}
	return member, nil
}

func (u *appointmentUseCaseImpl) loadAppointment(ctx context.Context, tenantID, id uuid.UUID) (*appointment.Appointment, error) {
	appt, err := u.appointments.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return appt, nil
}

func (u *appointmentUseCaseImpl) persistUpdate(ctx context.Context, appt *appointment.Appointment) error {
	return u.tx.WithinTx(ctx, func(tx repository.DBTX) error {
		if err := u.appointments.Update(ctx, tx, appt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// emitEvent consults the gate and hands the event to the transport. Booking
// success is independent of notification delivery: every failure here is
// logged and swallowed.
func (u *appointmentUseCaseImpl) emitEvent(
	ctx context.Context,
	appt *appointment.Appointment,
	event appointment.LifecycleEvent,
	reason *string,
	origin string,
) {
	channels := u.resolveChannels(ctx, appt, event)
	if len(channels) == 0 {
		return
	}
	u.enqueue(appt, event, reason, origin, channels)
}

func (u *appointmentUseCaseImpl) resolveChannels(
	ctx context.Context,
	appt *appointment.Appointment,
	event appointment.LifecycleEvent,
) []shared.Channel {
	channels, err := u.gate.Channels(ctx, appt.TenantID(), event)
	if err != nil {
		slog.Warn("failed to resolve notification channels",
			"appointment_id", appt.ID(), "event", event, "error", err)
		return nil
	}
	return channels
}

func (u *appointmentUseCaseImpl) enqueue(
	appt *appointment.Appointment,
	event appointment.LifecycleEvent,
	reason *string,
	origin string,
	channels []shared.Channel,
) {
	u.publisher.Enqueue(shared.NotificationEvent{
		Type:          event,
		AppointmentID: appt.ID(),
		TenantID:      appt.TenantID(),
		Reason:        reason,
		Origin:        origin,
		Channels:      channels,
	})
}

func staffProvides(member *shared.StaffSnapshot, serviceID uuid.UUID) bool {
	for _, sid := range member.ServiceIDs {
		if sid == serviceID {
			return true
		}
	}
	return false
}
