package ports

import (
	"context"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/outbox"
)

// OutboxRepository stores integration events next to the shipment changes
// that produced them.
type OutboxRepository interface {
	// Add stores messages in the current transaction.
	Add(ctx context.Context, messages ...*outbox.Message) error

	// ListPending returns up to limit unpublished messages, oldest first.
	ListPending(ctx context.Context, limit int) ([]*outbox.Message, error)

	// MarkPublished stamps the given messages as published at the given time.
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to a broker. Publishing must be
// idempotent from the consumer's point of view: a message may be delivered
// again if marking it published fails.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...*outbox.Message) error
}
