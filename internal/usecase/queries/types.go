package queries

import (
	"context"
	"time"

	"bookwell/internal/domain/identity"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AppointmentView struct {
	ID                 uuid.UUID  `json:"id"`
	TenantID           uuid.UUID  `json:"tenant_id"`
	UserID             uuid.UUID  `json:"user_id"`
	ServiceID          uuid.UUID  `json:"service_id"`
	ServiceName        string     `json:"service_name"`
	StaffID            uuid.UUID  `json:"staff_id"`
	StaffName          string     `json:"staff_name"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            time.Time  `json:"end_time"`
	Status             string     `json:"status"`
	PriceCents         int64      `json:"price_cents"`
	CouponID           *uuid.UUID `json:"coupon_id,omitempty"`
	CouponCode         *string    `json:"coupon_code,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type AppointmentListItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	StaffID     uuid.UUID `json:"staff_id"`
	StaffName   string    `json:"staff_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// Actor identifies who is asking, for tenant scoping and the superadmin
// bypass.
type Actor struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     identity.Role
}

type ListFilter struct {
	UserID  *uuid.UUID
	StaffID *uuid.UUID
	Status  *string
	From    *time.Time
	To      *time.Time
	Limit   int32
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*AppointmentView, error)
	// FindByIDSystem skips tenant scoping; reachable only through the
	// superadmin role.
	FindByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*AppointmentListItem, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context, actor Actor, filter ListFilter) ([]*AppointmentListItem, error)
}
