// Package outbox holds integration events waiting to be published. A
// Message is written in the same unit of work as the shipment change it
// describes and is relayed to the broker later.
package outbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

// EventType names an integration event.
type EventType string

const (
	ShipmentCreated       EventType = "shipment.created"
	ShipmentStatusChanged EventType = "shipment.status_changed"
)

// Validate checks the event type is known.
func (t EventType) Validate() error {
	switch t {
	case ShipmentCreated, ShipmentStatusChanged:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("event type", fmt.Errorf("%q is not a known event", string(t)))
	}
}

// ShipmentEvent is the JSON payload of every shipment event.
type ShipmentEvent struct {
	ShipmentID     int64     `json:"shipmentId"`
	ClientID       int64     `json:"clientId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	PaymentStatus  bool      `json:"paymentStatus"`
	DeliveryCharge string    `json:"deliveryCharge"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// Message is one outbox row.
type Message struct {
	id          kernel.UUID
	shipmentID  shipment.ID
	eventType   EventType
	payload     []byte
	occurredAt  time.Time
	publishedAt *time.Time
}

// NewShipmentCreated builds the event announcing a new shipment.
func NewShipmentCreated(s *shipment.Shipment) (*Message, error) {
	return newShipmentMessage(s, ShipmentCreated, shipment.Unknown)
}

// NewShipmentStatusChanged builds the event for an accepted update. previous
// is the status before the update; it equals the current status when only
// the payment flag changed.
func NewShipmentStatusChanged(s *shipment.Shipment, previous shipment.Status) (*Message, error) {
	return newShipmentMessage(s, ShipmentStatusChanged, previous)
}

func newShipmentMessage(s *shipment.Shipment, eventType EventType, previous shipment.Status) (*Message, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	event := ShipmentEvent{
		ShipmentID:     int64(s.ID()),
		ClientID:       s.ClientID(),
		Status:         s.Status().String(),
		PaymentStatus:  s.IsPaid(),
		DeliveryCharge: s.DeliveryCharge().StringFixed(2),
		OccurredAt:     s.UpdatedAt(),
	}
	if previous != shipment.Unknown {
		event.PreviousStatus = previous.String()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	return &Message{
		id:         kernel.NewUUID(),
		shipmentID: s.ID(),
		eventType:  eventType,
		payload:    payload,
		occurredAt: s.UpdatedAt(),
	}, nil
}

// RestoreMessage reconstructs a Message from storage.
func RestoreMessage(
	id kernel.UUID,
	shipmentID shipment.ID,
	eventType EventType,
	payload []byte,
	occurredAt time.Time,
	publishedAt *time.Time,
) (*Message, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate(), eventType.Validate()); err != nil {
		return nil, err
	}
	if !json.Valid(payload) {
		return nil, errs.NewValueIsInvalidError("payload")
	}

	return &Message{
		id:          id,
		shipmentID:  shipmentID,
		eventType:   eventType,
		payload:     payload,
		occurredAt:  occurredAt.UTC(),
		publishedAt: publishedAt,
	}, nil
}

func (m *Message) ID() kernel.UUID         { return m.id }
func (m *Message) ShipmentID() shipment.ID { return m.shipmentID }
func (m *Message) EventType() EventType    { return m.eventType }
func (m *Message) Payload() []byte         { return m.payload }
func (m *Message) OccurredAt() time.Time   { return m.occurredAt }
func (m *Message) PublishedAt() *time.Time { return m.publishedAt }

// IsPublished reports whether the relay already delivered the message.
func (m *Message) IsPublished() bool {
	return m.publishedAt != nil
}

// Key returns the partitioning key: all events of one shipment share it, so
// brokers keep them in order.
func (m *Message) Key() string {
	return m.shipmentID.String()
}

// Event decodes the payload.
func (m *Message) Event() (ShipmentEvent, error) {
	var event ShipmentEvent
	if err := json.Unmarshal(m.payload, &event); err != nil {
		return ShipmentEvent{}, fmt.Errorf("unmarshal %s payload: %w", m.eventType, err)
	}
	return event, nil
}
