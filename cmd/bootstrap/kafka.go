package bootstrap

import (
	"context"

	"bookwell/internal/infra/notification"
	"bookwell/internal/pkg/config"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewKafkaPublisher,
	),
)

func NewKafkaPublisher(lc fx.Lifecycle, cfg config.Config) *notification.KafkaPublisher {
	publisher, cleanup := notification.NewKafkaPublisher(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher
}
