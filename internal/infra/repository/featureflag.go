package repository

import (
	"context"

	"bookwell/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeatureFlagRepository struct {
	db *pgxpool.Pool
}

func NewFeatureFlagRepository(db *pgxpool.Pool) *FeatureFlagRepository {
	return &FeatureFlagRepository{db: db}
}

const selectTenantFlagsQuery = `
SELECT flag_key, enabled
FROM tenant_feature_flags
WHERE tenant_id = $1`

// TenantFlags returns the full flag map for a tenant. Absent keys mean the
// flag is off; an empty map is a valid result.
func (r *FeatureFlagRepository) TenantFlags(ctx context.Context, tenantID uuid.UUID) (map[string]bool, error) {
	rows, err := r.db.Query(ctx, selectTenantFlagsQuery, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query feature flags", err)
	}
	defer rows.Close()

	flags := make(map[string]bool)
	for rows.Next() {
		var (
			key     string
			enabled bool
		)
		if err := rows.Scan(&key, &enabled); err != nil {
			return nil, infra.WrapRepoErr("failed to scan feature flag", err)
		}
		flags[key] = enabled
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read feature flags", err)
	}
	return flags, nil
}
