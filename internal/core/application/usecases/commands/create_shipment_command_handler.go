package commands

import (
	"context"

	"courier/internal/core/domain/model/outbox"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
)

// CreateShipmentCommandHandler prices and registers a new shipment.
//
// Flow: compute the charge, reserve an id, construct the shipment in
// PENDING_PICKUP with its first ledger record, store it together with a
// shipment.created outbox event, commit.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	fees       services.FeeCalculator
	clock      Clock
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	fees services.FeeCalculator,
	clock Clock,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		fees:       fees,
		clock:      clock,
	}
}

// Handle creates the shipment and returns it as stored.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	charge, err := h.fees.Compute(cmd.Parcel().Weight(), cmd.Parcel().Dimensions())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	id, err := shipmentRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := shipment.NewShipment(
		id,
		cmd.ClientID(),
		cmd.Sender(),
		cmd.Recipient(),
		cmd.Parcel(),
		cmd.SpecialInstructions(),
		charge,
		h.clock.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = shipmentRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	event, err := outbox.NewShipmentCreated(created)
	if err != nil {
		return nil, err
	}
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
