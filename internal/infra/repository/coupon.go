package repository

import (
	"context"

	"bookwell/internal/infra"
	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponRepository struct {
	db *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: db}
}

const selectCouponByCodeQuery = `
SELECT id, tenant_id, code, discount_type, value,
       min_purchase_cents, max_discount_cents,
       usage_limit, usage_count, expires_at, active
FROM coupons
WHERE tenant_id = $1 AND code = upper($2)`

func (r *CouponRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*shared.CouponSnapshot, error) {
	var c shared.CouponSnapshot
	err := r.db.QueryRow(ctx, selectCouponByCodeQuery, tenantID, code).Scan(
		&c.ID, &c.TenantID, &c.Code, &c.DiscountType, &c.Value,
		&c.MinPurchaseCents, &c.MaxDiscountCents,
		&c.UsageLimit, &c.UsageCount, &c.ExpiresAt, &c.Active,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}

	if c.ProductIDs, err = r.scopeUUIDs(ctx, "SELECT product_id FROM coupon_products WHERE coupon_id = $1", c.ID); err != nil {
		return nil, err
	}
	if c.ServiceIDs, err = r.scopeUUIDs(ctx, "SELECT service_id FROM coupon_services WHERE coupon_id = $1", c.ID); err != nil {
		return nil, err
	}
	if c.CategoryIDs, err = r.scopeCategories(ctx, c.ID); err != nil {
		return nil, err
	}

	return &c, nil
}

const incrementUsageQuery = `
UPDATE coupons
SET usage_count = usage_count + 1, updated_at = now()
WHERE tenant_id = $1
  AND id = $2
  AND active
  AND (usage_limit IS NULL OR usage_count < usage_limit)`

// IncrementUsage consumes one redemption atomically. A coupon that hit its
// limit between validation and commit matches zero rows, which aborts the
// enclosing transaction with a conflict.
func (r *CouponRepository) IncrementUsage(ctx context.Context, tx DBTX, tenantID, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, incrementUsageQuery, tenantID, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon usage", err, classifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon no longer redeemable", nil, infra.KindConflict)
	}
	return nil
}

func (r *CouponRepository) scopeUUIDs(ctx context.Context, query string, couponID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, query, couponID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query coupon scope", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon scope", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon scope", err)
	}
	return ids, nil
}

func (r *CouponRepository) scopeCategories(ctx context.Context, couponID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT category_id FROM coupon_categories WHERE coupon_id = $1", couponID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query coupon categories", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon category", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon categories", err)
	}
	return ids, nil
}
