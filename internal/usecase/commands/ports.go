package commands

import (
	"context"
	"time"

	"bookwell/internal/domain/appointment"
	"bookwell/internal/infra/repository"
	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, tx repository.DBTX, appt *appointment.Appointment) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*appointment.Appointment, error)
	Update(ctx context.Context, tx repository.DBTX, appt *appointment.Appointment) error
}

type CouponRepository interface {
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*shared.CouponSnapshot, error)
	// IncrementUsage is the atomic conditional update closing the
	// over-redemption race; it reports infra.KindConflict when the limit is
	// already consumed.
	IncrementUsage(ctx context.Context, tx repository.DBTX, tenantID, id uuid.UUID) error
}

// TxManager runs fn inside a single database transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(tx repository.DBTX) error) error
}

// AvailabilityChecker is the guard's contract as the lifecycle sees it.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, tenantID, staffID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
}

// ChannelResolver is the notification gate's contract.
type ChannelResolver interface {
	Channels(ctx context.Context, tenantID uuid.UUID, event appointment.LifecycleEvent) ([]shared.Channel, error)
}

// CouponValidator resolves a discount code against an order context without
// consuming usage.
type CouponValidator interface {
	Validate(ctx context.Context, tenantID uuid.UUID, in CouponValidationInput) (*CouponValidation, error)
}
