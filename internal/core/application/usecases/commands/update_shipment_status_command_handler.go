package commands

import (
	"context"

	"courier/internal/core/domain/model/outbox"
	"courier/internal/core/domain/model/shipment"
)

// UpdateShipmentStatusCommandHandler drives the shipment state machine.
//
// The shipment is loaded with GetForUpdate, so concurrent updates of the same
// shipment are applied one after another; the registry's version check is a
// second line of defence. The ledger record, the row update and the outbox
// event commit in one transaction.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      Clock
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status updates.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory, clock Clock) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle applies the update and returns the updated shipment.
//
// Errors:
//   - errs.ObjectNotFoundError: unknown shipment id
//   - errs.NoChangeError: status and payment already match
//   - errs.StatusIsInvalidError: the shipment is terminal
//   - errs.VersionIsInvalidError: the row changed concurrently
func (h *UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.ApplyStatus(cmd.Status(), cmd.Paid(), h.clock.now()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	event, err := outbox.NewShipmentStatusChanged(aggregate, previous)
	if err != nil {
		return nil, err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
