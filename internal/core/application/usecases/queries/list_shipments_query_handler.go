package queries

import (
	"context"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"
)

// ListShipmentsQueryHandler lists shipments from the registry.
type ListShipmentsQueryHandler struct {
	reader ports.ShipmentReader
}

func NewListShipmentsQueryHandler(reader ports.ShipmentReader) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{reader: reader}
}

// Handle returns the matching shipments; no match is an empty slice.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]*shipment.Shipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.reader.List(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	if found == nil {
		found = make([]*shipment.Shipment, 0)
	}
	return found, nil
}
