//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bookwell/internal/domain/appointment"
	"bookwell/internal/domain/coupon"
	"bookwell/internal/domain/identity"
	"bookwell/internal/handler/api"
	reqdto "bookwell/internal/handler/dto/request"
	resdto "bookwell/internal/handler/dto/response"
	"bookwell/internal/pkg/errs"
	"bookwell/internal/usecase/commands"
	"bookwell/internal/usecase/queries"
	"bookwell/tests/common/builder"
	"bookwell/tests/common/httptest"
	"bookwell/tests/common/testutil"
	commandsmock "bookwell/tests/mock/commands"
	queriesmock "bookwell/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	userID       uuid.UUID
	tenantID     uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.tenantID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("tenant_id", s.tenantID)
		c.Set("user_role", identity.RoleCustomer)
		c.Next()
	}

	s.router.POST("/appointments", authMiddleware, s.handler.CreateAppointment)
	s.router.GET("/appointments", authMiddleware, s.handler.ListAppointments)
	s.router.GET("/appointments/:id", authMiddleware, s.handler.GetAppointment)
	s.router.PUT("/appointments/:id/cancel", authMiddleware, s.handler.CancelAppointment)
	s.router.PUT("/appointments/:id/status", authMiddleware, s.handler.UpdateAppointmentStatus)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) builtAppointment() *appointment.Appointment {
	appt, err := builder.NewAppointmentBuilder().
		WithTenantID(s.tenantID).
		WithUserID(s.userID).
		BuildDomain()
	s.Require().NoError(err)
	return appt
}

// ================================================================================
// TestCreateAppointment
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCreateAppointment() {
	url := "/appointments"

	reqBody := reqdto.CreateAppointmentRequest{
		ServiceID: uuid.New(),
		StaffID:   uuid.New(),
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}

	s.Run("success: returns 201 Created for valid request", func() {
		appt := s.builtAppointment()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.tenantID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CreateAppointmentInput) (*appointment.Appointment, error) {
				s.Equal(s.userID, in.UserID)
				s.Equal(reqBody.ServiceID, in.ServiceID)
				s.Equal(reqBody.StaffID, in.StaffID)
				return appt, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(appt.ID(), response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("success: blank coupon code is treated as absent", func() {
		appt := s.builtAppointment()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.tenantID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CreateAppointmentInput) (*appointment.Appointment, error) {
				s.Nil(in.CouponCode)
				return appt, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("coupon_code", "   "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: service_id", mutate: testutil.Field("service_id", nil)},
			{name: "missing field: staff_id", mutate: testutil.Field("staff_id", nil)},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil)},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "tomorrow at ten")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "validation error",
				commandsError:  commands.ErrValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid appointment parameters",
			},
			{
				name:           "service not found",
				commandsError:  commands.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "staff not found",
				commandsError:  commands.ErrStaffNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Staff not found",
			},
			{
				name:           "staff not assigned",
				commandsError:  commands.ErrStaffNotAssigned,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Staff does not provide this service",
			},
			{
				name:           "slot taken",
				commandsError:  commands.ErrSlotTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Time slot is no longer available",
			},
			{
				name:           "coupon not found",
				commandsError:  commands.ErrCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Coupon not found",
			},
			{
				name:           "invalid coupon",
				commandsError:  commands.ErrInvalidCoupon,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "invalid coupon",
			},
			{
				name:           "expired coupon carries the rule message",
				commandsError:  errs.Mark(coupon.ErrCouponExpired, commands.ErrInvalidCoupon),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "coupon has expired",
			},
			{
				name:           "validation error with domain cause attached",
				commandsError:  errs.Mark(appointment.ErrInvalidTimeSlot, commands.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid appointment parameters",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.tenantID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetAppointment
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String()

	returnView := &queries.AppointmentView{
		ID:          appointmentID,
		ServiceName: "Haircut",
		StaffName:   "Robin",
		Status:      "confirmed",
		PriceCents:  4500,
	}

	s.Run("success: returns 200 OK with the view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), appointmentID).
			DoAndReturn(func(_ any, actor queries.Actor, _ uuid.UUID) (*queries.AppointmentView, error) {
				s.Equal(s.userID, actor.UserID)
				s.Equal(s.tenantID, actor.TenantID)
				s.Equal(identity.RoleCustomer, actor.Role)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(appointmentID, response.ID)
		s.Equal("Haircut", response.ServiceName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID")
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), appointmentID).
			Return(nil, queries.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestListAppointments
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestListAppointments() {
	url := "/appointments"

	items := []*queries.AppointmentListItem{
		{ID: uuid.New(), ServiceName: "Haircut", Status: "pending"},
		{ID: uuid.New(), ServiceName: "Massage", Status: "confirmed"},
	}

	s.Run("success: returns the list", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: query filters are forwarded", func() {
		staffID := uuid.New()
		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		filteredURL := url + "?staff_id=" + staffID.String() + "&status=confirmed&from=2026-09-01T00:00:00Z&limit=5"

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ queries.Actor, filter queries.ListFilter) ([]*queries.AppointmentListItem, error) {
				s.Require().NotNil(filter.StaffID)
				s.Equal(staffID, *filter.StaffID)
				s.Require().NotNil(filter.Status)
				s.Equal("confirmed", *filter.Status)
				s.Require().NotNil(filter.From)
				s.True(from.Equal(*filter.From))
				s.Equal(int32(5), filter.Limit)
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, filteredURL, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on bad filters", func() {
		testCases := []struct {
			name   string
			params string
		}{
			{name: "bad staff_id", params: "?staff_id=nope"},
			{name: "unknown status", params: "?status=paused"},
			{name: "bad from timestamp", params: "?from=yesterday"},
			{name: "non-positive limit", params: "?limit=0"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+tc.params, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

// ================================================================================
// TestCancelAppointment
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCancelAppointment() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String() + "/cancel"

	s.Run("success: cancels with a reason", func() {
		appt := s.builtAppointment()
		s.Require().NoError(appt.Cancel(nil))
		reason := "can no longer make it"

		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.tenantID, appointmentID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, in commands.CancelAppointmentInput) (*appointment.Appointment, error) {
				s.Equal(s.userID, in.ActorID)
				s.Equal(identity.RoleCustomer, in.Role)
				s.Equal("customer", in.Origin)
				s.Require().NotNil(in.Reason)
				s.Equal(reason, *in.Reason)
				return appt, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.CancelAppointmentRequest{Reason: &reason}, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("success: empty body cancels without a reason", func() {
		appt := s.builtAppointment()
		s.Require().NoError(appt.Cancel(nil))

		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.tenantID, appointmentID, commands.CancelAppointmentInput{
				ActorID: s.userID,
				Role:    identity.RoleCustomer,
				Origin:  "customer",
			}).
			Return(appt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.tenantID, appointmentID, gomock.Any()).
			Return(nil, commands.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 422 on terminal appointment", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.tenantID, appointmentID, gomock.Any()).
			Return(nil, errs.Mark(appointment.ErrInvalidTransition, commands.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Status transition not allowed")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/appointments/not-a-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID")
	})
}

// ================================================================================
// TestUpdateAppointmentStatus
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestUpdateAppointmentStatus() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String() + "/status"

	s.Run("success: confirms a pending appointment", func() {
		appt := s.builtAppointment()
		s.Require().NoError(appt.TransitionTo(appointment.StatusConfirmed))

		s.mockCommands.EXPECT().
			UpdateStatus(gomock.Any(), s.tenantID, appointmentID, appointment.StatusConfirmed, string(identity.RoleCustomer)).
			Return(appt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.UpdateAppointmentStatusRequest{Status: "confirmed"}, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 Bad Request on missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown status",
				commandsError:  commands.ErrValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid appointment parameters",
			},
			{
				name:           "appointment not found",
				commandsError:  commands.ErrAppointmentNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Appointment not found",
			},
			{
				name:           "invalid transition",
				commandsError:  commands.ErrInvalidTransition,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Status transition not allowed",
			},
			{
				name:           "invalid transition with domain cause attached",
				commandsError:  errs.Mark(appointment.ErrInvalidTransition, commands.ErrInvalidTransition),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Status transition not allowed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					UpdateStatus(gomock.Any(), s.tenantID, appointmentID, gomock.Any(), string(identity.RoleCustomer)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
					reqdto.UpdateAppointmentStatusRequest{Status: "completed"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
