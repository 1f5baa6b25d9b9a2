package api

import (
	"net/http"
	"strconv"

	resdto "bookwell/internal/handler/dto/response"
	"bookwell/internal/handler/middleware"
	"bookwell/internal/pkg/errs"
	"bookwell/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Get available slots
// @Description List bookable start times for a staff/service/day
// @Tags availability
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param staff_id query string true "Staff ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param tz_offset query int false "Client UTC offset in minutes"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	staffID, err := uuid.Parse(c.Query("staff_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid staff_id format",
		})
		return
	}
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service_id format",
		})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter required",
		})
		return
	}

	tzOffset := 0
	if raw := c.Query("tz_offset"); raw != "" {
		tzOffset, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid tz_offset value",
			})
			return
		}
	}

	slots, err := h.availability.ComputeSlots(c.Request.Context(), tenantID, queries.ComputeSlotsInput{
		StaffID:               staffID,
		ServiceID:             serviceID,
		Date:                  date,
		TimezoneOffsetMinutes: tzOffset,
	})
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		case errs.Is(err, queries.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errs.Is(err, queries.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Date:      date,
		StaffID:   staffID,
		ServiceID: serviceID,
		Slots:     slots,
	})
}
