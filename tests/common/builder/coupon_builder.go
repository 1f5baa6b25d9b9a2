package builder

import (
	"time"

	"bookwell/internal/domain/coupon"
	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	id               uuid.UUID
	tenantID         uuid.UUID
	code             string
	discountType     coupon.DiscountType
	value            float64
	minPurchaseCents *int64
	maxDiscountCents *int64
	usageLimit       *int32
	usageCount       int32
	expiresAt        *time.Time
	active           bool
	productIDs       []uuid.UUID
	categoryIDs      []string
	serviceIDs       []uuid.UUID
}

// NewCouponBuilder defaults to an unrestricted 20 percent coupon.
func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		id:           uuid.New(),
		tenantID:     uuid.New(),
		code:         "WELCOME20",
		discountType: coupon.DiscountPercent,
		value:        20,
		active:       true,
	}
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.code = code
	return b
}

func (b *CouponBuilder) WithPercent(percent float64) *CouponBuilder {
	b.discountType = coupon.DiscountPercent
	b.value = percent
	return b
}

func (b *CouponBuilder) AsFixed(amountCents int64) *CouponBuilder {
	b.discountType = coupon.DiscountFixed
	b.value = float64(amountCents)
	return b
}

func (b *CouponBuilder) WithMaxDiscountCents(cents int64) *CouponBuilder {
	b.maxDiscountCents = &cents
	return b
}

func (b *CouponBuilder) WithMinPurchaseCents(cents int64) *CouponBuilder {
	b.minPurchaseCents = &cents
	return b
}

func (b *CouponBuilder) WithUsage(count, limit int32) *CouponBuilder {
	b.usageCount = count
	b.usageLimit = &limit
	return b
}

func (b *CouponBuilder) WithExpiry(t time.Time) *CouponBuilder {
	b.expiresAt = &t
	return b
}

func (b *CouponBuilder) AsInactive() *CouponBuilder {
	b.active = false
	return b
}

func (b *CouponBuilder) WithProductIDs(ids ...uuid.UUID) *CouponBuilder {
	b.productIDs = ids
	return b
}

func (b *CouponBuilder) WithCategoryIDs(ids ...string) *CouponBuilder {
	b.categoryIDs = ids
	return b
}

func (b *CouponBuilder) WithServiceIDs(ids ...uuid.UUID) *CouponBuilder {
	b.serviceIDs = ids
	return b
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	discount, err := coupon.NewDiscount(b.discountType, b.value, b.maxDiscountCents)
	if err != nil {
		return nil, err
	}
	return coupon.NewCoupon(
		b.id,
		b.tenantID,
		b.code,
		discount,
		b.minPurchaseCents,
		b.usageLimit,
		b.usageCount,
		b.expiresAt,
		b.active,
		b.productIDs,
		b.categoryIDs,
		b.serviceIDs,
	)
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:               b.id,
		TenantID:         b.tenantID,
		Code:             b.code,
		DiscountType:     string(b.discountType),
		Value:            b.value,
		MinPurchaseCents: b.minPurchaseCents,
		MaxDiscountCents: b.maxDiscountCents,
		UsageLimit:       b.usageLimit,
		UsageCount:       b.usageCount,
		ExpiresAt:        b.expiresAt,
		Active:           b.active,
		ProductIDs:       b.productIDs,
		CategoryIDs:      b.categoryIDs,
		ServiceIDs:       b.serviceIDs,
	}
}
