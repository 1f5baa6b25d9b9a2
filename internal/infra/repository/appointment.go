package repository

import (
	"context"
	"time"

	"bookwell/internal/domain/appointment"
	"bookwell/internal/infra"
	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentRepository struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

const insertAppointmentQuery = `
INSERT INTO appointments (
    id, tenant_id, user_id, service_id, staff_id,
    start_time, end_time, status, price_cents, coupon_id,
    notes, cancellation_reason, confirmation_sent, reminder_sent
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// Create inserts a pending appointment. The exclusion constraint on
// (tenant_id, staff_id, interval) rejects overlapping active bookings at the
// storage level; that violation comes back as a conflict kind.
func (r *AppointmentRepository) Create(ctx context.Context, tx DBTX, appt *appointment.Appointment) error {
	_, err := tx.Exec(ctx, insertAppointmentQuery,
		appt.ID(),
		appt.TenantID(),
		appt.UserID(),
		appt.ServiceID(),
		appt.StaffID(),
		appt.Slot().Start(),
		appt.Slot().End(),
		string(appt.Status()),
		appt.PriceCents(),
		appt.CouponID(),
		appt.Notes(),
		appt.CancellationReason(),
		appt.ConfirmationSent(),
		appt.ReminderSent(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert appointment", err, classifyPgErr(err))
	}
	return nil
}

const selectAppointmentQuery = `
SELECT id, tenant_id, user_id, service_id, staff_id,
       start_time, end_time, status, price_cents, coupon_id,
       notes, cancellation_reason, confirmation_sent, reminder_sent,
       created_at, updated_at
FROM appointments
WHERE tenant_id = $1 AND id = $2`

func (r *AppointmentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*appointment.Appointment, error) {
	row := r.db.QueryRow(ctx, selectAppointmentQuery, tenantID, id)
	return scanAppointment(row)
}

const updateAppointmentQuery = `
UPDATE appointments
SET status = $3,
    cancellation_reason = $4,
    confirmation_sent = $5,
    reminder_sent = $6,
    updated_at = now()
WHERE tenant_id = $1 AND id = $2`

func (r *AppointmentRepository) Update(ctx context.Context, tx DBTX, appt *appointment.Appointment) error {
	tag, err := tx.Exec(ctx, updateAppointmentQuery,
		appt.TenantID(),
		appt.ID(),
		string(appt.Status()),
		appt.CancellationReason(),
		appt.ConfirmationSent(),
		appt.ReminderSent(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err, classifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectIntervalsQuery = `
SELECT id, staff_id, start_time, end_time, status
FROM appointments
WHERE tenant_id = $1
  AND staff_id = $2
  AND status NOT IN ('cancelled', 'no_show')
  AND start_time < $4
  AND end_time > $3
ORDER BY start_time`

// FindActiveIntervals feeds the in-memory availability check. Cancelled and
// no-show rows never block a slot.
func (r *AppointmentRepository) FindActiveIntervals(
	ctx context.Context,
	tenantID, staffID uuid.UUID,
	from, to time.Time,
) ([]shared.AppointmentInterval, error) {
	rows, err := r.db.Query(ctx, selectIntervalsQuery, tenantID, staffID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query appointment intervals", err, classifyPgErr(err))
	}
	defer rows.Close()

	var intervals []shared.AppointmentInterval
	for rows.Next() {
		var (
			iv     shared.AppointmentInterval
			status string
		)
		if err := rows.Scan(&iv.ID, &iv.StaffID, &iv.Start, &iv.End, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment interval", err)
		}
		iv.Status = appointment.Status(status)
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment intervals", err)
	}
	return intervals, nil
}

func scanAppointment(row pgxRow) (*appointment.Appointment, error) {
	var (
		id, tenantID, userID, serviceID, staffID uuid.UUID
		startTime, endTime                       time.Time
		status                                   string
		priceCents                               int64
		couponID                                 *uuid.UUID
		notes, cancellationReason                *string
		confirmationSent, reminderSent           bool
		createdAt, updatedAt                     time.Time
	)

	err := row.Scan(
		&id, &tenantID, &userID, &serviceID, &staffID,
		&startTime, &endTime, &status, &priceCents, &couponID,
		&notes, &cancellationReason, &confirmationSent, &reminderSent,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan appointment", err)
	}

	slot, err := appointment.NewTimeSlot(startTime, endTime)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt appointment interval", err)
	}

	return appointment.Reconstruct(
		id, tenantID, userID, serviceID, staffID,
		slot,
		appointment.Status(status),
		priceCents,
		couponID,
		notes, cancellationReason,
		confirmationSent, reminderSent,
		createdAt, updatedAt,
	), nil
}

type pgxRow interface {
	Scan(dest ...any) error
}
