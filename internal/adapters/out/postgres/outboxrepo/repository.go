package outboxrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/outbox"
	"courier/internal/pkg/errs"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add inserts the messages in the current transaction.
func (r *GormOutboxRepository) Add(ctx context.Context, messages ...*outbox.Message) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, fromDomain(m))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return fmt.Errorf("insert outbox messages: %w", err)
	}
	return nil
}

// ListPending selects unpublished messages oldest first with
// FOR UPDATE SKIP LOCKED, so concurrent relays never pick the same rows.
func (r *GormOutboxRepository) ListPending(ctx context.Context, limit int) ([]*outbox.Message, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("list pending outbox messages: %w", err)
	}

	messages := make([]*outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("restore outbox message %s: %w", dto.ID, err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// MarkPublished stamps published_at on the given messages.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	err := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ANY(?::uuid[])", pq.Array(raw)).
		Update("published_at", at.UTC()).Error
	if err != nil {
		return fmt.Errorf("mark outbox messages published: %w", err)
	}
	return nil
}
