package response

import (
	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	Date      string    `json:"date"`
	StaffID   uuid.UUID `json:"staff_id"`
	ServiceID uuid.UUID `json:"service_id"`
	Slots     []string  `json:"slots"`
}
