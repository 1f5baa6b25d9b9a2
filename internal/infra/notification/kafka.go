package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bookwell/internal/pkg/config"
	"bookwell/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

const publishTimeout = 30 * time.Second

// KafkaPublisher delivers lifecycle events to the notification topic.
// Publishing is fire-and-forget: a broker outage is logged, retried in the
// background, and never surfaced to the caller.
type KafkaPublisher struct {
	writer      *kafka.Writer
	maxAttempts uint64
}

func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, func()) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}
	p := &KafkaPublisher{writer: writer, maxAttempts: uint64(cfg.MaxAttempts)}
	cleanup := func() {
		if err := writer.Close(); err != nil {
			slog.Warn("failed to close kafka writer", "error", err)
		}
	}
	return p, cleanup
}

func (p *KafkaPublisher) Enqueue(event shared.NotificationEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to encode notification event", "type", event.Type, "appointment_id", event.AppointmentID, "error", err)
		return
	}

	// Keyed by tenant so each tenant's events stay ordered per partition.
	msg := kafka.Message{
		Key:   []byte(event.TenantID.String()),
		Value: payload,
	}

	go p.deliver(msg, event)
}

func (p *KafkaPublisher) deliver(msg kafka.Message, event shared.NotificationEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), p.maxAttempts)
	err := backoff.Retry(func() error {
		return p.writer.WriteMessages(ctx, msg)
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		slog.Error("dropping notification event after retries",
			"type", event.Type,
			"appointment_id", event.AppointmentID,
			"tenant_id", event.TenantID,
			"error", err,
		)
		return
	}

	slog.Debug("notification event published", "type", event.Type, "appointment_id", event.AppointmentID)
}
