// Package rabbitmq publishes outbox messages to a RabbitMQ topic exchange.
// The routing key is the event type, e.g. "shipment.status_changed".
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"courier/internal/core/domain/model/outbox"
)

const exchangeKind = "topic"

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.EventPublisher on top of one AMQP channel.
// A channel is not safe for concurrent use; the outbox relay publishes
// from a single goroutine.
type Publisher struct {
	conn     io.Closer
	channel  Channel
	exchange string
}

// NewPublisher dials url, opens a channel and declares a durable topic exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	if strings.TrimSpace(exchange) == "" {
		return nil, fmt.Errorf("rabbitmq: exchange is required")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	p, err := NewPublisherWithChannel(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewPublisherWithChannel declares the exchange on an existing channel.
func NewPublisherWithChannel(ch Channel, exchange string) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		exchange,
		exchangeKind,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq declare exchange %s: %w", exchange, err)
	}

	return &Publisher{channel: ch, exchange: exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, messages ...*outbox.Message) error {
	for _, m := range messages {
		err := p.channel.PublishWithContext(
			ctx,
			p.exchange,
			string(m.EventType()),
			false, // mandatory
			false, // immediate
			toPublishing(m),
		)
		if err != nil {
			return fmt.Errorf("rabbitmq publish %s: %w", m.ID(), err)
		}
	}
	return nil
}

// Close closes the channel and, when the publisher dialed it, the connection.
// The connection is closed even if closing the channel fails.
func (p *Publisher) Close() error {
	var connErr error
	chErr := p.channel.Close()
	if p.conn != nil {
		connErr = p.conn.Close()
	}
	return errors.Join(chErr, connErr)
}

func toPublishing(m *outbox.Message) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    m.ID().String(),
		Type:         string(m.EventType()),
		Timestamp:    m.OccurredAt(),
		Headers:      amqp.Table{"shipment-id": m.Key()},
		Body:         m.Payload(),
	}
}
