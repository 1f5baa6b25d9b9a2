package readstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookwell/internal/infra"
	"bookwell/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentReadStore struct {
	db *pgxpool.Pool
}

func NewAppointmentReadStore(db *pgxpool.Pool) *AppointmentReadStore {
	return &AppointmentReadStore{db: db}
}

const appointmentViewColumns = `
a.id, a.tenant_id, a.user_id,
a.service_id, s.name,
a.staff_id, st.name,
a.start_time, a.end_time, a.status, a.price_cents,
a.coupon_id, c.code,
a.notes, a.cancellation_reason,
a.created_at, a.updated_at`

const appointmentViewFrom = `
FROM appointments a
JOIN services s ON s.id = a.service_id
JOIN staff st ON st.id = a.staff_id
LEFT JOIN coupons c ON c.id = a.coupon_id`

func (r *AppointmentReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*queries.AppointmentView, error) {
	query := "SELECT " + appointmentViewColumns + appointmentViewFrom + " WHERE a.tenant_id = $1 AND a.id = $2"
	return scanView(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *AppointmentReadStore) FindByIDSystem(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	query := "SELECT " + appointmentViewColumns + appointmentViewFrom + " WHERE a.id = $1"
	return scanView(r.db.QueryRow(ctx, query, id))
}

// List applies the optional filters in a stable parameter order and returns
// the newest bookings first.
func (r *AppointmentReadStore) List(ctx context.Context, tenantID uuid.UUID, filter queries.ListFilter) ([]*queries.AppointmentListItem, error) {
	var (
		conds = []string{"a.tenant_id = $1"}
		args  = []any{tenantID}
	)
	addCond := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if filter.UserID != nil {
		addCond("a.user_id = $%d", *filter.UserID)
	}
	if filter.StaffID != nil {
		addCond("a.staff_id = $%d", *filter.StaffID)
	}
	if filter.Status != nil {
		addCond("a.status = $%d", *filter.Status)
	}
	if filter.From != nil {
		addCond("a.start_time >= $%d", *filter.From)
	}
	if filter.To != nil {
		addCond("a.start_time < $%d", *filter.To)
	}
	args = append(args, filter.Limit)

	query := fmt.Sprintf(`
SELECT a.id, a.user_id,
       a.service_id, s.name,
       a.staff_id, st.name,
       a.start_time, a.end_time, a.status, a.price_cents, a.created_at
%s
WHERE %s
ORDER BY a.start_time DESC
LIMIT $%d`, appointmentViewFrom, strings.Join(conds, " AND "), len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var items []*queries.AppointmentListItem
	for rows.Next() {
		var item queries.AppointmentListItem
		if err := rows.Scan(
			&item.ID, &item.UserID,
			&item.ServiceID, &item.ServiceName,
			&item.StaffID, &item.StaffName,
			&item.StartTime, &item.EndTime, &item.Status, &item.PriceCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment rows", err)
	}
	return items, nil
}

func scanView(row pgx.Row) (*queries.AppointmentView, error) {
	var v queries.AppointmentView
	err := row.Scan(
		&v.ID, &v.TenantID, &v.UserID,
		&v.ServiceID, &v.ServiceName,
		&v.StaffID, &v.StaffName,
		&v.StartTime, &v.EndTime, &v.Status, &v.PriceCents,
		&v.CouponID, &v.CouponCode,
		&v.Notes, &v.CancellationReason,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan appointment view", err)
	}
	return &v, nil
}
