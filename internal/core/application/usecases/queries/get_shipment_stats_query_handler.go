package queries

import (
	"context"

	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
)

// GetShipmentStatsQueryHandler recomputes the statistics on every call.
type GetShipmentStatsQueryHandler struct {
	reader ports.ShipmentReader
	stats  services.ShipmentStatistics
}

func NewGetShipmentStatsQueryHandler(
	reader ports.ShipmentReader,
	stats services.ShipmentStatistics,
) GetShipmentStatsQueryHandler {
	return GetShipmentStatsQueryHandler{reader: reader, stats: stats}
}

func (h GetShipmentStatsQueryHandler) Handle(ctx context.Context, query GetShipmentStatsQuery) (services.Stats, error) {
	if err := query.Validate(); err != nil {
		return services.Stats{}, err
	}

	found, err := h.reader.List(ctx, query.Filter())
	if err != nil {
		return services.Stats{}, err
	}
	return h.stats.Compute(found), nil
}
