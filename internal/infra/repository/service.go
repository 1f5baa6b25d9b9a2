package repository

import (
	"context"

	"bookwell/internal/infra"
	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

const selectServiceQuery = `
SELECT id, tenant_id, name, duration_minutes, price_cents, category, active
FROM services
WHERE tenant_id = $1 AND id = $2`

func (r *ServiceRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var s shared.ServiceSnapshot
	err := r.db.QueryRow(ctx, selectServiceQuery, tenantID, id).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.DurationMinutes, &s.PriceCents, &s.Category, &s.Active,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &s, nil
}
