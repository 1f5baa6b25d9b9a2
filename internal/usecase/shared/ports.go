package shared

import (
	"context"
	"time"

	"bookwell/internal/domain/appointment"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types.
type ServiceSnapshot struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	Name            string
	DurationMinutes int
	PriceCents      int64
	Category        string
	Active          bool
}

type StaffSnapshot struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Name       string
	Email      *string
	Phone      *string
	Active     bool
	ServiceIDs []uuid.UUID
}

type CouponSnapshot struct {
	ID               uuid.UUID
	TenantID         uuid.UUID
	Code             string
	DiscountType     string
	Value            float64
	MinPurchaseCents *int64
	MaxDiscountCents *int64
	UsageLimit       *int32
	UsageCount       int32
	ExpiresAt        *time.Time
	Active           bool
	ProductIDs       []uuid.UUID
	CategoryIDs      []string
	ServiceIDs       []uuid.UUID
}

// AppointmentInterval is the minimal projection the availability check needs.
type AppointmentInterval struct {
	ID      uuid.UUID
	StaffID uuid.UUID
	Start   time.Time
	End     time.Time
	Status  appointment.Status
}

// BookingSettings is a tenant's business window; minutes from local midnight.
type BookingSettings struct {
	OpenMinute          int
	CloseMinute         int
	SlotIntervalMinutes int
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*ServiceSnapshot, error)
}

type StaffReadStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*StaffSnapshot, error)
}

type BookingSettingsReadStore interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*BookingSettings, error)
}

// AppointmentIntervalReader returns active appointments (status outside
// cancelled/no_show) for a staff member whose interval could plausibly
// overlap the given window.
type AppointmentIntervalReader interface {
	FindActiveIntervals(ctx context.Context, tenantID, staffID uuid.UUID, from, to time.Time) ([]AppointmentInterval, error)
}

// FeatureFlagStore reads a tenant's boolean flag map. This service never
// writes flags.
type FeatureFlagStore interface {
	TenantFlags(ctx context.Context, tenantID uuid.UUID) (map[string]bool, error)
}

// NotificationEvent is the payload handed to the notification transport.
type NotificationEvent struct {
	Type          appointment.LifecycleEvent `json:"type"`
	AppointmentID uuid.UUID                  `json:"appointmentId"`
	TenantID      uuid.UUID                  `json:"tenantId"`
	Reason        *string                    `json:"reason,omitempty"`
	Origin        string                     `json:"origin,omitempty"`
	Channels      []Channel                  `json:"channels,omitempty"`
}

// EventPublisher enqueues a lifecycle event. Delivery is best-effort and
// asynchronous; implementations must never block the booking path on broker
// availability.
type EventPublisher interface {
	Enqueue(event NotificationEvent)
}
