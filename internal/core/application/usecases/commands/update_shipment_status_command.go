package commands

import (
	"errors"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand is an administrator's request to set a
// shipment's status and payment flag.
type UpdateShipmentStatusCommand struct {
	shipmentID shipment.ID
	status     shipment.Status
	paid       bool

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand validates the shipment id and target status.
func NewUpdateShipmentStatusCommand(
	shipmentID shipment.ID,
	status shipment.Status,
	paid bool,
) (UpdateShipmentStatusCommand, error) {
	if err := errors.Join(shipmentID.Validate(), status.Validate()); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		shipmentID: shipmentID,
		status:     status,
		paid:       paid,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func (c UpdateShipmentStatusCommand) ShipmentID() shipment.ID { return c.shipmentID }
func (c UpdateShipmentStatusCommand) Status() shipment.Status { return c.status }
func (c UpdateShipmentStatusCommand) Paid() bool              { return c.paid }
