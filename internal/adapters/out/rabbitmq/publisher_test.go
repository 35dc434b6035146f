package rabbitmq_test

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier/internal/adapters/out/rabbitmq"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/outbox"
	"courier/internal/core/domain/model/shipment"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

type MockConnection struct {
	mock.Mock
}

func (m *MockConnection) Close() error {
	return m.Called().Error(0)
}

func message(t *testing.T) *outbox.Message {
	t.Helper()
	c, err := kernel.NewContact("Sam", "+15550100", "", "1 Main St", "Springfield", "12345")
	require.NoError(t, err)
	w, err := kernel.NewWeight(decimal.RequireFromString("1"))
	require.NoError(t, err)
	d, err := kernel.ParseDimensions("10x10x10")
	require.NoError(t, err)
	p, err := shipment.NewParcel("Gloves", w, d)
	require.NoError(t, err)
	s, err := shipment.NewShipment(3, 7, c, c, p, "", decimal.RequireFromString("7.50"),
		time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	m, err := outbox.NewShipmentCreated(s)
	require.NoError(t, err)
	return m
}

func TestPublisher(t *testing.T) {
	t.Run("should declare a durable topic exchange", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", "shipments", "topic", true, false, false, false, amqp.Table(nil)).Return(nil).Once()

		_, err := rabbitmq.NewPublisherWithChannel(ch, "shipments")

		require.NoError(t, err)
		ch.AssertExpectations(t)
	})

	t.Run("should fail when the exchange cannot be declared", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(errors.New("access refused")).Once()

		_, err := rabbitmq.NewPublisherWithChannel(ch, "shipments")

		require.Error(t, err)
	})

	t.Run("should publish persistent json routed by event type", func(t *testing.T) {
		ctx := t.Context()
		m := message(t)
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		ch.On("PublishWithContext", ctx, "shipments", "shipment.created", false, false,
			mock.MatchedBy(func(p amqp.Publishing) bool {
				return p.ContentType == "application/json" &&
					p.DeliveryMode == amqp.Persistent &&
					p.MessageId == m.ID().String() &&
					p.Headers["shipment-id"] == "000003" &&
					string(p.Body) == string(m.Payload())
			})).Return(nil).Once()

		p, err := rabbitmq.NewPublisherWithChannel(ch, "shipments")
		require.NoError(t, err)

		require.NoError(t, p.Publish(ctx, m))
		ch.AssertExpectations(t)
	})

	t.Run("should stop at the first failed publish", func(t *testing.T) {
		ctx := t.Context()
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything).Return(errors.New("channel closed")).Once()

		p, err := rabbitmq.NewPublisherWithChannel(ch, "shipments")
		require.NoError(t, err)

		err = p.Publish(ctx, message(t), message(t))

		require.Error(t, err)
		ch.AssertNumberOfCalls(t, "PublishWithContext", 1)
	})

	t.Run("should close the channel", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		ch.On("Close").Return(nil).Once()

		p, err := rabbitmq.NewPublisherWithChannel(ch, "shipments")
		require.NoError(t, err)

		require.NoError(t, p.Close())
		assert.True(t, ch.AssertExpectations(t))
	})

	t.Run("should close the connection when the channel fails to close", func(t *testing.T) {
		chErr := errors.New("channel already closed")
		connErr := errors.New("connection reset")
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		ch.On("Close").Return(chErr).Once()
		conn := new(MockConnection)
		conn.On("Close").Return(connErr).Once()

		p, err := rabbitmq.NewPublisherWithChannel(ch, "shipments")
		require.NoError(t, err)
		p.SetConnection(conn)

		err = p.Close()

		require.ErrorIs(t, err, chErr)
		require.ErrorIs(t, err, connErr)
		conn.AssertExpectations(t)
	})
}
