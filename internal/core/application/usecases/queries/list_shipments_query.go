package queries

import (
	"errors"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery lists shipments matching a filter, newest first.
type ListShipmentsQuery struct {
	filter shipment.Filter

	guard guard.ConstructorGuard
}

func NewListShipmentsQuery(filter shipment.Filter) (ListShipmentsQuery, error) {
	if err := filter.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}
	return ListShipmentsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Filter() shipment.Filter {
	return q.filter
}
