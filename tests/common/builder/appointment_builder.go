package builder

import (
	"time"

	"bookwell/internal/domain/appointment"

	"github.com/google/uuid"
)

// AppointmentBuilder assembles valid appointment input so tests only state
// what they change.
type AppointmentBuilder struct {
	tenantID        uuid.UUID
	userID          uuid.UUID
	serviceID       uuid.UUID
	staffID         uuid.UUID
	start           time.Time
	durationMinutes int
	priceCents      int64
	couponID        *uuid.UUID
	notes           *string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		tenantID:        uuid.New(),
		userID:          uuid.New(),
		serviceID:       uuid.New(),
		staffID:         uuid.New(),
		start:           time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		durationMinutes: 60,
		priceCents:      10000,
	}
}

func (b *AppointmentBuilder) WithTenantID(id uuid.UUID) *AppointmentBuilder {
	b.tenantID = id
	return b
}

func (b *AppointmentBuilder) WithUserID(id uuid.UUID) *AppointmentBuilder {
	b.userID = id
	return b
}

func (b *AppointmentBuilder) WithServiceID(id uuid.UUID) *AppointmentBuilder {
	b.serviceID = id
	return b
}

func (b *AppointmentBuilder) WithStaffID(id uuid.UUID) *AppointmentBuilder {
	b.staffID = id
	return b
}

func (b *AppointmentBuilder) WithStart(t time.Time) *AppointmentBuilder {
	b.start = t
	return b
}

func (b *AppointmentBuilder) WithDuration(minutes int) *AppointmentBuilder {
	b.durationMinutes = minutes
	return b
}

func (b *AppointmentBuilder) WithPriceCents(cents int64) *AppointmentBuilder {
	b.priceCents = cents
	return b
}

func (b *AppointmentBuilder) WithCouponID(id uuid.UUID) *AppointmentBuilder {
	b.couponID = &id
	return b
}

func (b *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	b.notes = &notes
	return b
}

func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	return appointment.NewAppointment(
		b.tenantID,
		b.userID,
		b.serviceID,
		b.staffID,
		b.start,
		b.durationMinutes,
		b.priceCents,
		b.couponID,
		b.notes,
	)
}
