package commands

import (
	"context"

	"bookwell/internal/domain/coupon"
	"bookwell/internal/infra"
	"bookwell/internal/pkg/clock"
	"bookwell/internal/pkg/errs"
	"bookwell/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound = errs.New("coupon not found")
	ErrInvalidCoupon  = errs.New("invalid coupon")
)

type CouponValidationInput struct {
	Code            string
	OrderTotalCents int64
	ProductIDs      []uuid.UUID
	CategoryIDs     []string
	ServiceIDs      []uuid.UUID
}

type CouponValidation struct {
	Coupon        *shared.CouponSnapshot
	DiscountCents int64
	Message       string
}

type couponResolverImpl struct {
	coupons CouponRepository
	clock   clock.Clock
}

func NewCouponResolver(coupons CouponRepository, clock clock.Clock) CouponValidator {
	return &couponResolverImpl{
		coupons: coupons,
		clock:   clock,
	}
}

// Validate never mutates usage counts; incrementing is the booking
// transaction's explicit step so a price preview cannot consume usage.
func (r *couponResolverImpl) Validate(
	ctx context.Context,
	tenantID uuid.UUID,
	in CouponValidationInput,
) (*CouponValidation, error) {
	code, err := coupon.NewCode(in.Code)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCoupon)
	}

	snap, err := r.coupons.FindByCode(ctx, tenantID, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrCouponNotFound)
	}

	entity, err := snapshotToCoupon(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCoupon)
	}

	pctx := coupon.PurchaseContext{
		OrderTotalCents: in.OrderTotalCents,
		ProductIDs:      in.ProductIDs,
		CategoryIDs:     in.CategoryIDs,
		ServiceIDs:      in.ServiceIDs,
	}
	if err := entity.Validate(r.clock.Now(), pctx); err != nil {
		return nil, errs.Mark(err, ErrInvalidCoupon)
	}

	return &CouponValidation{
		Coupon:        snap,
		DiscountCents: entity.DiscountAmount(in.OrderTotalCents),
		Message:       "coupon applied",
	}, nil
}

func snapshotToCoupon(snap *shared.CouponSnapshot) (*coupon.Coupon, error) {
	discount, err := coupon.NewDiscount(coupon.DiscountType(snap.DiscountType), snap.Value, snap.MaxDiscountCents)
	if err != nil {
		return nil, err
	}

	return coupon.NewCoupon(
		snap.ID,
		snap.TenantID,
		snap.Code,
		discount,
		snap.MinPurchaseCents,
		snap.UsageLimit,
		snap.UsageCount,
		snap.ExpiresAt,
		snap.Active,
		snap.ProductIDs,
		snap.CategoryIDs,
		snap.ServiceIDs,
	)
}
