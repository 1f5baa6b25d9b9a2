package repository

import (
	"context"

	"bookwell/internal/infra"
	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingSettingsRepository struct {
	db *pgxpool.Pool
}

func NewBookingSettingsRepository(db *pgxpool.Pool) *BookingSettingsRepository {
	return &BookingSettingsRepository{db: db}
}

const selectBookingSettingsQuery = `
SELECT open_minute, close_minute, slot_interval_minutes
FROM tenant_booking_settings
WHERE tenant_id = $1`

// FindByTenant returns nil without error when a tenant has no row; callers
// fall back to the configured defaults.
func (r *BookingSettingsRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*shared.BookingSettings, error) {
	var s shared.BookingSettings
	err := r.db.QueryRow(ctx, selectBookingSettingsQuery, tenantID).Scan(
		&s.OpenMinute, &s.CloseMinute, &s.SlotIntervalMinutes,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking settings", err)
	}
	return &s, nil
}
