// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"strings"
	"time"

	skafka "github.com/segmentio/kafka-go"

	"courier/internal/core/domain/model/outbox"
)

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher. Messages are keyed by shipment
// id and balanced by key hash, so events of one shipment stay ordered on a
// single partition.
type Publisher struct {
	writer Writer
}

// NewPublisher creates a publisher writing to topic on the comma-separated
// list of brokers.
func NewPublisher(brokers, topic string) (*Publisher, error) {
	addrs := splitBrokers(brokers)
	if len(addrs) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("kafka: topic is required")
	}

	return NewPublisherWithWriter(&skafka.Writer{
		Addr:         skafka.TCP(addrs...),
		Topic:        topic,
		Balancer:     &skafka.Hash{},
		RequiredAcks: skafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}), nil
}

// NewPublisherWithWriter allows injecting a test writer.
func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w}
}

func (p *Publisher) Publish(ctx context.Context, messages ...*outbox.Message) error {
	if len(messages) == 0 {
		return nil
	}

	msgs := make([]skafka.Message, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, toKafka(m))
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toKafka(m *outbox.Message) skafka.Message {
	return skafka.Message{
		Key:   []byte(m.Key()),
		Value: m.Payload(),
		Time:  m.OccurredAt(),
		Headers: []skafka.Header{
			{Key: "event-id", Value: []byte(m.ID().String())},
			{Key: "event-type", Value: []byte(m.EventType())},
		},
	}
}

func splitBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
