//go:build unit

package commands_test

import (
	"context"
	"testing"

	"bookwell/internal/infra"
	"bookwell/internal/pkg/clock"
	"bookwell/internal/pkg/errs"
	"bookwell/internal/usecase/commands"
	"bookwell/tests/common/builder"
	commandsmock "bookwell/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponResolverValidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	serviceID := uuid.New()

	input := func(code string) commands.CouponValidationInput {
		return commands.CouponValidationInput{
			Code:            code,
			OrderTotalCents: 10000,
			ServiceIDs:      []uuid.UUID{serviceID},
		}
	}

	t.Run("valid coupon returns the discount", func(t *testing.T) {
		coupons := commandsmock.NewMockCouponRepository(ctrl)
		snap := builder.NewCouponBuilder().WithPercent(20).BuildSnapshot()
		coupons.EXPECT().FindByCode(gomock.Any(), tenantID, "WELCOME20").Return(snap, nil)

		resolver := commands.NewCouponResolver(coupons, clock.NewMockClock(testNow))
		validation, err := resolver.Validate(context.Background(), tenantID, input("welcome20"))
		require.NoError(t, err)
		assert.Equal(t, int64(2000), validation.DiscountCents)
		assert.Equal(t, snap, validation.Coupon)
	})

	t.Run("malformed code never hits the store", func(t *testing.T) {
		coupons := commandsmock.NewMockCouponRepository(ctrl)

		resolver := commands.NewCouponResolver(coupons, clock.NewMockClock(testNow))
		_, err := resolver.Validate(context.Background(), tenantID, input("no spaces allowed"))
		assert.True(t, errs.Is(err, commands.ErrInvalidCoupon))
	})

	t.Run("unknown code", func(t *testing.T) {
		coupons := commandsmock.NewMockCouponRepository(ctrl)
		coupons.EXPECT().
			FindByCode(gomock.Any(), tenantID, "MISSING1").
			Return(nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound))

		resolver := commands.NewCouponResolver(coupons, clock.NewMockClock(testNow))
		_, err := resolver.Validate(context.Background(), tenantID, input("MISSING1"))
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("business rule failures surface as invalid coupon", func(t *testing.T) {
		coupons := commandsmock.NewMockCouponRepository(ctrl)
		snap := builder.NewCouponBuilder().WithUsage(5, 5).BuildSnapshot()
		coupons.EXPECT().FindByCode(gomock.Any(), tenantID, "WELCOME20").Return(snap, nil)

		resolver := commands.NewCouponResolver(coupons, clock.NewMockClock(testNow))
		_, err := resolver.Validate(context.Background(), tenantID, input("WELCOME20"))
		assert.True(t, errs.Is(err, commands.ErrInvalidCoupon))
	})

	t.Run("expired at validation time", func(t *testing.T) {
		coupons := commandsmock.NewMockCouponRepository(ctrl)
		snap := builder.NewCouponBuilder().WithExpiry(testNow.Add(-1)).BuildSnapshot()
		coupons.EXPECT().FindByCode(gomock.Any(), tenantID, "WELCOME20").Return(snap, nil)

		resolver := commands.NewCouponResolver(coupons, clock.NewMockClock(testNow))
		_, err := resolver.Validate(context.Background(), tenantID, input("WELCOME20"))
		assert.True(t, errs.Is(err, commands.ErrInvalidCoupon))
	})

	t.Run("scoped coupon rejects unrelated service", func(t *testing.T) {
		coupons := commandsmock.NewMockCouponRepository(ctrl)
		snap := builder.NewCouponBuilder().WithServiceIDs(uuid.New()).BuildSnapshot()
		coupons.EXPECT().FindByCode(gomock.Any(), tenantID, "WELCOME20").Return(snap, nil)

		resolver := commands.NewCouponResolver(coupons, clock.NewMockClock(testNow))
		_, err := resolver.Validate(context.Background(), tenantID, input("WELCOME20"))
		assert.True(t, errs.Is(err, commands.ErrInvalidCoupon))
	})
}
