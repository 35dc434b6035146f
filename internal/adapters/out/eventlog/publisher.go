// Package eventlog is the fallback event publisher used when no broker is
// configured: it writes every outbox message to the structured log.
package eventlog

import (
	"context"
	"log/slog"

	"courier/internal/core/domain/model/outbox"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "EventLogPublisher")}
}

func (p *Publisher) Publish(ctx context.Context, messages ...*outbox.Message) error {
	for _, m := range messages {
		p.logger.InfoContext(ctx, "event published",
			"event_id", m.ID().String(),
			"event_type", string(m.EventType()),
			"shipment_id", m.Key(),
			"payload", string(m.Payload()),
		)
	}
	return nil
}
