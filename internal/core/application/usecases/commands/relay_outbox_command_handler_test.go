package commands_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/outbox"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

func pendingMessages(t *testing.T, n int) []*outbox.Message {
	t.Helper()
	cmd := validCreateCommand(t)
	out := make([]*outbox.Message, 0, n)
	for i := range n {
		s, err := shipment.NewShipment(shipment.ID(i+1), cmd.ClientID(), cmd.Sender(), cmd.Recipient(),
			cmd.Parcel(), "", decimal.NewFromInt(10), fixedNow)
		require.NoError(t, err)
		msg, err := outbox.NewShipmentCreated(s)
		require.NoError(t, err)
		out = append(out, msg)
	}
	return out
}

func TestNewRelayOutboxCommand(t *testing.T) {
	cmd, err := commands.NewRelayOutboxCommand(50)
	require.NoError(t, err)
	assert.Equal(t, 50, cmd.BatchSize())

	_, err = commands.NewRelayOutboxCommand(0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRelayOutboxCommandHandler_Handle_PublishesBatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)
	msgs := pendingMessages(t, 2)
	ids := []kernel.UUID{msgs[0].ID(), msgs[1].ID()}

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockOutboxUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(repo).Once(),
		repo.On("ListPending", ctx, 10).Return(msgs, nil).Once(),
		publisher.On("Publish", ctx, msgs).Return(nil).Once(),
		repo.On("MarkPublished", ctx, ids, fixedNow).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRelayOutboxCommandHandler(factory, publisher, fixedClock)
	n, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockOutboxUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(repo).Once()
	repo.On("ListPending", ctx, 10).Return([]*outbox.Message{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRelayOutboxCommandHandler(factory, publisher, fixedClock)
	n, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, n)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRelayOutboxCommandHandler_Handle_PublishFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)
	msgs := pendingMessages(t, 1)
	boom := errors.New("broker down")

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockOutboxUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(repo).Once()
	repo.On("ListPending", ctx, 10).Return(msgs, nil).Once()
	publisher.On("Publish", ctx, msgs).Return(boom).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRelayOutboxCommandHandler(factory, publisher, fixedClock)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
