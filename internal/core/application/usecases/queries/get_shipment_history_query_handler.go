package queries

import (
	"context"

	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// GetShipmentHistoryQueryHandler reads a shipment and its tracking history.
type GetShipmentHistoryQueryHandler struct {
	reader ports.ShipmentReader
}

func NewGetShipmentHistoryQueryHandler(reader ports.ShipmentReader) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{reader: reader}
}

// Handle returns errs.ObjectNotFoundError for unknown ids and for shipments
// the owner restriction hides.
func (h GetShipmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentHistoryQuery,
) (GetShipmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentHistoryQueryResponse{}, err
	}

	found, err := h.reader.Get(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentHistoryQueryResponse{}, err
	}

	if owner := query.OwnerID(); owner != nil && found.ClientID() != *owner {
		return GetShipmentHistoryQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID())
	}

	return GetShipmentHistoryQueryResponse{
		Shipment: found,
		History:  found.History().Chronological(),
	}, nil
}
