package memory

import (
	"context"
	"time"

	"courier/internal/core/domain/model/outbox"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"
)

type staged struct {
	state       shipment.State
	isNew       bool
	baseVersion int64
}

// UnitOfWork stages writes until Commit. Without Begin every write is
// applied immediately, like an autocommit statement.
type UnitOfWork struct {
	store  *Store
	active bool

	changes   map[shipment.ID]staged
	messages  []*outbox.Message
	published map[string]time.Time

	held   map[shipment.ID]struct{}
	claims []string
}

// Begin starts a transaction. Calling Begin again while one is active is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.active {
		return nil
	}

	uow.active = true
	uow.changes = make(map[shipment.ID]staged)
	uow.messages = nil
	uow.published = make(map[string]time.Time)
	uow.held = make(map[shipment.ID]struct{})
	uow.claims = nil
	return nil
}

// Commit applies the staged writes atomically and releases entity locks.
// A version conflict found at this point discards the whole unit of work.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	defer uow.end()

	return uow.store.apply(uow.changes, uow.messages, uow.published)
}

// Rollback discards staged writes and releases entity locks. Without an
// active transaction it does nothing.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}
	uow.end()
	return nil
}

func (uow *UnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return &shipmentRepository{uow: uow}
}

func (uow *UnitOfWork) OutboxRepository() ports.OutboxRepository {
	return &outboxRepository{uow: uow}
}

func (uow *UnitOfWork) end() {
	for id := range uow.held {
		uow.store.unlock(id)
	}
	uow.store.release(uow.claims)

	uow.active = false
	uow.changes = nil
	uow.messages = nil
	uow.published = nil
	uow.held = nil
	uow.claims = nil
}

// write stages a change, or applies it at once outside a transaction.
func (uow *UnitOfWork) write(id shipment.ID, change staged) error {
	if !uow.active {
		return uow.store.apply(map[shipment.ID]staged{id: change}, nil, nil)
	}

	if prev, ok := uow.changes[id]; ok {
		change.isNew = prev.isNew
		change.baseVersion = prev.baseVersion
	}
	uow.changes[id] = change
	return nil
}

// current returns the shipment state visible to this unit of work.
func (uow *UnitOfWork) current(id shipment.ID) (shipment.State, bool) {
	if uow.active {
		if change, ok := uow.changes[id]; ok {
			return change.state, true
		}
	}
	return uow.store.committed(id)
}
