// Package outboxrepo persists integration events in the outbox_messages
// table, next to the shipment rows they describe.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/outbox"
	"courier/internal/core/domain/model/shipment"
)

// MessageDTO is one outbox_messages row. PublishedAt is NULL until relayed.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID  int64      `gorm:"not null;index"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Value(),
		ShipmentID:  int64(m.ShipmentID()),
		EventType:   string(m.EventType()),
		Payload:     string(m.Payload()),
		OccurredAt:  m.OccurredAt(),
		PublishedAt: m.PublishedAt(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(
		id,
		shipment.ID(dto.ShipmentID),
		outbox.EventType(dto.EventType),
		[]byte(dto.Payload),
		dto.OccurredAt,
		dto.PublishedAt,
	)
}
