package queries

import (
	"errors"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrGetShipmentStatsQueryIsNotConstructed = errors.New(
	"GetShipmentStatsQuery must be created via NewGetShipmentStatsQuery constructor",
)

// GetShipmentStatsQuery computes dashboard aggregates over the shipments a
// filter selects.
type GetShipmentStatsQuery struct {
	filter shipment.Filter

	guard guard.ConstructorGuard
}

func NewGetShipmentStatsQuery(filter shipment.Filter) (GetShipmentStatsQuery, error) {
	if err := filter.Validate(); err != nil {
		return GetShipmentStatsQuery{}, err
	}
	return GetShipmentStatsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatsQueryIsNotConstructed)
}

func (q GetShipmentStatsQuery) Filter() shipment.Filter {
	return q.filter
}
