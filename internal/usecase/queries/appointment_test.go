//go:build unit

package queries_test

import (
	"context"
	"testing"

	"bookwell/internal/domain/identity"
	"bookwell/internal/infra"
	"bookwell/internal/usecase/queries"
	queriesmock "bookwell/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	userID := uuid.New()
	appointmentID := uuid.New()

	view := func(owner uuid.UUID) *queries.AppointmentView {
		return &queries.AppointmentView{
			ID:       appointmentID,
			TenantID: tenantID,
			UserID:   owner,
			Status:   "pending",
		}
	}

	t.Run("customer reads own appointment", func(t *testing.T) {
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), tenantID, appointmentID).Return(view(userID), nil)

		q := queries.NewAppointmentQueries(store)
		actor := queries.Actor{UserID: userID, TenantID: tenantID, Role: identity.RoleCustomer}

		got, err := q.GetByID(context.Background(), actor, appointmentID)
		require.NoError(t, err)
		assert.Equal(t, appointmentID, got.ID)
	})

	t.Run("customer cannot read someone else's appointment", func(t *testing.T) {
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), tenantID, appointmentID).Return(view(uuid.New()), nil)

		q := queries.NewAppointmentQueries(store)
		actor := queries.Actor{UserID: userID, TenantID: tenantID, Role: identity.RoleCustomer}

		_, err := q.GetByID(context.Background(), actor, appointmentID)
		assert.ErrorIs(t, err, queries.ErrAppointmentNotFound)
	})

	t.Run("operator reads any appointment in the tenant", func(t *testing.T) {
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), tenantID, appointmentID).Return(view(uuid.New()), nil)

		q := queries.NewAppointmentQueries(store)
		actor := queries.Actor{UserID: userID, TenantID: tenantID, Role: identity.RoleOperator}

		_, err := q.GetByID(context.Background(), actor, appointmentID)
		assert.NoError(t, err)
	})

	t.Run("superadmin bypasses tenant scoping", func(t *testing.T) {
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		store.EXPECT().FindByIDSystem(gomock.Any(), appointmentID).Return(view(uuid.New()), nil)

		q := queries.NewAppointmentQueries(store)
		actor := queries.Actor{UserID: userID, TenantID: uuid.New(), Role: identity.RoleSuperAdmin}

		_, err := q.GetByID(context.Background(), actor, appointmentID)
		assert.NoError(t, err)
	})

	t.Run("not found maps to the sentinel", func(t *testing.T) {
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		store.EXPECT().
			FindByID(gomock.Any(), tenantID, appointmentID).
			Return(nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

		q := queries.NewAppointmentQueries(store)
		actor := queries.Actor{UserID: userID, TenantID: tenantID, Role: identity.RoleAdmin}

		_, err := q.GetByID(context.Background(), actor, appointmentID)
		assert.ErrorIs(t, err, queries.ErrAppointmentNotFound)
	})
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	userID := uuid.New()

	t.Run("customer filter is forced to their own bookings", func(t *testing.T) {
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		store.EXPECT().
			List(gomock.Any(), tenantID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, filter queries.ListFilter) ([]*queries.AppointmentListItem, error) {
				require.NotNil(t, filter.UserID)
				assert.Equal(t, userID, *filter.UserID)
				assert.Equal(t, int32(50), filter.Limit)
				return nil, nil
			})

		q := queries.NewAppointmentQueries(store)
		actor := queries.Actor{UserID: userID, TenantID: tenantID, Role: identity.RoleCustomer}

		// A customer asking for another user's list still gets their own.
		other := uuid.New()
		_, err := q.List(context.Background(), actor, queries.ListFilter{UserID: &other})
		assert.NoError(t, err)
	})

	t.Run("operator filter passes through", func(t *testing.T) {
		staffID := uuid.New()
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		store.EXPECT().
			List(gomock.Any(), tenantID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, filter queries.ListFilter) ([]*queries.AppointmentListItem, error) {
				assert.Nil(t, filter.UserID)
				require.NotNil(t, filter.StaffID)
				assert.Equal(t, staffID, *filter.StaffID)
				assert.Equal(t, int32(10), filter.Limit)
				return []*queries.AppointmentListItem{{ID: uuid.New()}}, nil
			})

		q := queries.NewAppointmentQueries(store)
		actor := queries.Actor{UserID: userID, TenantID: tenantID, Role: identity.RoleOperator}

		items, err := q.List(context.Background(), actor, queries.ListFilter{StaffID: &staffID, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("store error wraps", func(t *testing.T) {
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		store.EXPECT().List(gomock.Any(), tenantID, gomock.Any()).Return(nil, assert.AnError)

		q := queries.NewAppointmentQueries(store)
		actor := queries.Actor{UserID: userID, TenantID: tenantID, Role: identity.RoleAdmin}

		_, err := q.List(context.Background(), actor, queries.ListFilter{})
		assert.Error(t, err)
	})
}
