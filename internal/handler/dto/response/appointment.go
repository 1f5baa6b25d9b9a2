package response

import (
	"time"

	"bookwell/internal/domain/appointment"
	"bookwell/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	TenantID           uuid.UUID  `json:"tenant_id"`
	UserID             uuid.UUID  `json:"user_id"`
	ServiceID          uuid.UUID  `json:"service_id"`
	ServiceName        string     `json:"service_name,omitempty"`
	StaffID            uuid.UUID  `json:"staff_id"`
	StaffName          string     `json:"staff_name,omitempty"`
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

type AppointmentListResponse struct {
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

// FromAppointment renders a write-side entity, used right after a command.
func FromAppointment(a *appointment.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID(),
		TenantID:           a.TenantID(),
		UserID:             a.UserID(),
		ServiceID:          a.ServiceID(),
		StaffID:            a.StaffID(),
		StartTime:          a.Slot().Start(),
		EndTime:            a.Slot().End(),
		Status:             string(a.Status()),
		PriceCents:         a.PriceCents(),
		CouponID:           a.CouponID(),
		Notes:              a.Notes(),
		CancellationReason: a.CancellationReason(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 v.ID,
		TenantID:           v.TenantID,
		UserID:             v.UserID,
		ServiceID:          v.ServiceID,
		ServiceName:        v.ServiceName,
		StaffID:            v.StaffID,
		StaffName:          v.StaffName,
		StartTime:          v.StartTime,
		EndTime:            v.EndTime,
		Status:             v.Status,
		PriceCents:         v.PriceCents,
		CouponID:           v.CouponID,
		CouponCode:         v.CouponCode,
		Notes:              v.Notes,
		CancellationReason: v.CancellationReason,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromAppointmentListItem(item *queries.AppointmentListItem) *AppointmentListResponse {
	return &AppointmentListResponse{
		ID:          item.ID,
		UserID:      item.UserID,
		ServiceID:   item.ServiceID,
		ServiceName: item.ServiceName,
		StaffID:     item.StaffID,
		StaffName:   item.StaffName,
		StartTime:   item.StartTime,
		EndTime:     item.EndTime,
		Status:      item.Status,
		PriceCents:  item.PriceCents,
		CreatedAt:   item.CreatedAt,
	}
}
