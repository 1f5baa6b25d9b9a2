package repository

import (
	"context"

	"bookwell/internal/infra"
	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffRepository struct {
	db *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

const selectStaffQuery = `
SELECT id, tenant_id, name, email, phone, active
FROM staff
WHERE tenant_id = $1 AND id = $2`

const selectStaffServicesQuery = `
SELECT service_id FROM staff_services WHERE staff_id = $1`

func (r *StaffRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*shared.StaffSnapshot, error) {
	var s shared.StaffSnapshot
	err := r.db.QueryRow(ctx, selectStaffQuery, tenantID, id).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.Email, &s.Phone, &s.Active,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff", err)
	}

	rows, err := r.db.Query(ctx, selectStaffServicesQuery, s.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query staff services", err)
	}
	defer rows.Close()

	for rows.Next() {
		var serviceID uuid.UUID
		if err := rows.Scan(&serviceID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan staff service", err)
		}
		s.ServiceIDs = append(s.ServiceIDs, serviceID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read staff services", err)
	}

	return &s, nil
}
