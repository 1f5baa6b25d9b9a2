package queries

import (
	"context"

	"bookwell/internal/domain/identity"
	"bookwell/internal/infra"
	"bookwell/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAppointmentNotFound = errs.New("appointment not found")

const defaultListLimit = 50

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.findScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	// Customers can only read their own bookings.
	if actor.Role == identity.RoleCustomer && view.UserID != actor.UserID {
		return nil, ErrAppointmentNotFound
	}

	return view, nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context, actor Actor, filter ListFilter) ([]*AppointmentListItem, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if actor.Role == identity.RoleCustomer {
		userID := actor.UserID
		filter.UserID = &userID
	}

	items, err := q.store.List(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list appointments")
	}
	return items, nil
}

func (q *appointmentQueriesImpl) findScoped(ctx context.Context, actor Actor, id uuid.UUID) (*AppointmentView, error) {
	var (
		view *AppointmentView
		err  error
	)
	if actor.Role.CrossTenant() {
		view, err = q.store.FindByIDSystem(ctx, id)
	} else {
		view, err = q.store.FindByID(ctx, actor.TenantID, id)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Wrap(err, "failed to find appointment")
	}
	return view, nil
}
