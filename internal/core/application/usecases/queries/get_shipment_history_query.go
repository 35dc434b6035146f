package queries

import (
	"errors"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery retrieves one shipment with its tracking history.
// When ownerID is set, shipments of other clients are reported as not found.
type GetShipmentHistoryQuery struct {
	shipmentID shipment.ID
	ownerID    *int64

	guard guard.ConstructorGuard
}

func NewGetShipmentHistoryQuery(shipmentID shipment.ID, ownerID *int64) (GetShipmentHistoryQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentHistoryQuery{}, err
	}
	return GetShipmentHistoryQuery{
		shipmentID: shipmentID,
		ownerID:    ownerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

func (q GetShipmentHistoryQuery) ShipmentID() shipment.ID {
	return q.shipmentID
}

func (q GetShipmentHistoryQuery) OwnerID() *int64 {
	return q.ownerID
}

// GetShipmentHistoryQueryResponse is the shipment and its ledger, newest
// record first.
type GetShipmentHistoryQueryResponse struct {
	Shipment *shipment.Shipment
	History  []shipment.Record
}
