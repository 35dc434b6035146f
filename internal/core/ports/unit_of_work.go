package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle; Rollback after
// Commit is a no-op so it can always be deferred.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and releases entity locks.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction and releases entity locks.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns the registry bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// OutboxRepository returns the outbox bound to the current transaction.
	OutboxRepository() OutboxRepository
}
