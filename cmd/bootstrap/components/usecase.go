package components

import (
	"bookwell/internal/infra/notification"
	"bookwell/internal/pkg/clock"
	"bookwell/internal/pkg/config"
	"bookwell/internal/usecase/commands"
	"bookwell/internal/usecase/queries"
	"bookwell/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewAvailabilityGuard,
	shared.NewNotificationGate,
	func(g *shared.AvailabilityGuard) commands.AvailabilityChecker { return g },
	func(g *shared.NotificationGate) commands.ChannelResolver { return g },
	func(p *notification.KafkaPublisher) shared.EventPublisher { return p },
	func(cfg config.Config) shared.BookingSettings {
		return shared.BookingSettings{
			OpenMinute:          cfg.Booking.OpenMinute,
			CloseMinute:         cfg.Booking.CloseMinute,
			SlotIntervalMinutes: cfg.Booking.SlotIntervalMinutes,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCouponResolver,
		commands.NewAppointmentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewAvailabilityQueries,
	),
)
