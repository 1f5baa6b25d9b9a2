package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidDiscountType    = errors.New("unknown discount type")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

// NewCode case-normalizes the raw value; lookups are case-insensitive.
func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

func (t DiscountType) IsValid() bool {
	return t == DiscountPercent || t == DiscountFixed
}

type Discount struct {
	kind             DiscountType
	percentOff       float64
	amountOffCents   int64
	maxDiscountCents *int64
}

func NewPercentDiscount(percentOff float64, maxDiscountCents *int64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{kind: DiscountPercent, percentOff: percentOff, maxDiscountCents: maxDiscountCents}, nil
}

func NewFixedDiscount(amountOffCents int64) (Discount, error) {
	if amountOffCents < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountFixed, amountOffCents: amountOffCents}, nil
}

func NewDiscount(kind DiscountType, value float64, maxDiscountCents *int64) (Discount, error) {
	switch kind {
	case DiscountPercent:
		return NewPercentDiscount(value, maxDiscountCents)
	case DiscountFixed:
		return NewFixedDiscount(int64(value))
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Kind() DiscountType { return d.kind }

// AmountFor computes the discount for an order total in cents. The result is
// never negative and never exceeds the order total; percent discounts are
// additionally capped at maxDiscountCents when set.
func (d Discount) AmountFor(orderTotalCents int64) int64 {
	if orderTotalCents <= 0 {
		return 0
	}

	var amount int64
	switch d.kind {
	case DiscountPercent:
		amount = int64(float64(orderTotalCents) * d.percentOff / 100.0)
		if d.maxDiscountCents != nil && amount > *d.maxDiscountCents {
			amount = *d.maxDiscountCents
		}
	case DiscountFixed:
		amount = d.amountOffCents
	}

	if amount < 0 {
		return 0
	}
	if amount > orderTotalCents {
		return orderTotalCents
	}
	return amount
}
