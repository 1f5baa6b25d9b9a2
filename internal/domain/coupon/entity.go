package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponInactive  = errors.New("coupon is not active")
	ErrCouponExpired   = errors.New("coupon has expired")
	ErrCouponExhausted = errors.New("coupon usage limit reached")
	ErrMinPurchase     = errors.New("order total below minimum purchase amount")
	ErrNotApplicable   = errors.New("coupon does not apply to any item in the order")
	ErrServicesOnly    = errors.New("services-only coupon")
)

// PurchaseContext carries what the order is made of so applicability lists
// can be matched against it.
type PurchaseContext struct {
	OrderTotalCents int64
	ProductIDs      []uuid.UUID
	CategoryIDs     []string
	ServiceIDs      []uuid.UUID
}

type Coupon struct {
	id               uuid.UUID
	tenantID         uuid.UUID
	code             Code
	discount         Discount
	minPurchaseCents *int64
	usageLimit       *int32
	usageCount       int32
	expiresAt        *time.Time
	active           bool
	productIDs       []uuid.UUID
	categoryIDs      []string
	serviceIDs       []uuid.UUID
}

func NewCoupon(
	id, tenantID uuid.UUID,
	code string,
	discount Discount,
	minPurchaseCents *int64,
	usageLimit *int32,
	usageCount int32,
	expiresAt *time.Time,
	active bool,
	productIDs []uuid.UUID,
	categoryIDs []string,
	serviceIDs []uuid.UUID,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:               id,
		tenantID:         tenantID,
		code:             couponCode,
		discount:         discount,
		minPurchaseCents: minPurchaseCents,
		usageLimit:       usageLimit,
		usageCount:       usageCount,
		expiresAt:        expiresAt,
		active:           active,
		productIDs:       productIDs,
		categoryIDs:      categoryIDs,
		serviceIDs:       serviceIDs,
	}, nil
}

// Validate checks every redemption rule except usage consumption, which is the
// caller's explicit responsibility so a price preview never burns usage.
func (c *Coupon) Validate(now time.Time, pctx PurchaseContext) error {
	if !c.active {
		return ErrCouponInactive
	}
	if c.expiresAt != nil && now.After(*c.expiresAt) {
		return ErrCouponExpired
	}
	if c.usageLimit != nil && c.usageCount >= *c.usageLimit {
		return ErrCouponExhausted
	}
	if c.minPurchaseCents != nil && pctx.OrderTotalCents < *c.minPurchaseCents {
		return ErrMinPurchase
	}
	return c.checkApplicability(pctx)
}

// checkApplicability: a coupon with no lists at all applies universally.
// Otherwise at least one declared list must intersect the supplied context.
// A coupon that declares only a services list rejects orders supplying only
// product or category context.
func (c *Coupon) checkApplicability(pctx PurchaseContext) error {
	if len(c.productIDs) == 0 && len(c.categoryIDs) == 0 && len(c.serviceIDs) == 0 {
		return nil
	}

	servicesOnly := len(c.serviceIDs) > 0 && len(c.productIDs) == 0 && len(c.categoryIDs) == 0
	if servicesOnly && len(pctx.ServiceIDs) == 0 && (len(pctx.ProductIDs) > 0 || len(pctx.CategoryIDs) > 0) {
		return ErrServicesOnly
	}

	if intersectsUUID(c.productIDs, pctx.ProductIDs) ||
		intersectsString(c.categoryIDs, pctx.CategoryIDs) ||
		intersectsUUID(c.serviceIDs, pctx.ServiceIDs) {
		return nil
	}
	return ErrNotApplicable
}

// DiscountAmount computes the clamped discount for the given order total.
func (c *Coupon) DiscountAmount(orderTotalCents int64) int64 {
	return c.discount.AmountFor(orderTotalCents)
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) TenantID() uuid.UUID   { return c.tenantID }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) UsageCount() int32     { return c.usageCount }
func (c *Coupon) UsageLimit() *int32    { return c.usageLimit }
func (c *Coupon) ExpiresAt() *time.Time { return c.expiresAt }
func (c *Coupon) Active() bool          { return c.active }

func intersectsUUID(declared, supplied []uuid.UUID) bool {
	if len(declared) == 0 || len(supplied) == 0 {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(declared))
	for _, id := range declared {
		set[id] = struct{}{}
	}
	for _, id := range supplied {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

func intersectsString(declared, supplied []string) bool {
	if len(declared) == 0 || len(supplied) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(declared))
	for _, v := range declared {
		set[v] = struct{}{}
	}
	for _, v := range supplied {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}
