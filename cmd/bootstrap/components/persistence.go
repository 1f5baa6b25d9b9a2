package components

import (
	"bookwell/internal/infra/flags"
	"bookwell/internal/infra/readstore"
	"bookwell/internal/infra/repository"
	"bookwell/internal/infra/uow"
	"bookwell/internal/pkg/config"
	"bookwell/internal/usecase/commands"
	"bookwell/internal/usecase/queries"
	"bookwell/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	repositoryModule,
	readstoreModule,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPgxTxManager,
			fx.As(new(commands.TxManager)),
		),
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
			fx.As(new(shared.AppointmentIntervalReader)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(shared.ServiceReadStore)),
		),
		fx.Annotate(
			repository.NewStaffRepository,
			fx.As(new(shared.StaffReadStore)),
		),
		fx.Annotate(
			repository.NewBookingSettingsRepository,
			fx.As(new(shared.BookingSettingsReadStore)),
		),
		repository.NewFeatureFlagRepository,
		// Feature flags go through the redis read-through cache; the database
		// store is only its fallback source.
		func(source *repository.FeatureFlagRepository, client *redis.Client, cfg config.Config) shared.FeatureFlagStore {
			return flags.NewCachedFlagStore(source, client, cfg.Redis.FlagTTL)
		},
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
	),
)
