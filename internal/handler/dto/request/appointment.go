package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ServiceID  uuid.UUID `json:"service_id" binding:"required"`
	StaffID    uuid.UUID `json:"staff_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	Notes      *string   `json:"notes,omitempty"`
	CouponCode *string   `json:"coupon_code,omitempty"`
}

// GetCouponCode returns nil for blank codes so the use case treats them as
// absent rather than invalid.
func (r *CreateAppointmentRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}
