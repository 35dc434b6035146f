package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrCalculateFeeQueryIsNotConstructed = errors.New(
	"CalculateFeeQuery must be created via NewCalculateFeeQuery constructor",
)

// CalculateFeeQuery asks for a delivery fee quote without creating anything.
type CalculateFeeQuery struct {
	weight     kernel.Weight
	dimensions kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewCalculateFeeQuery validates weight (> 0) and dimensions ("LxWxH").
func NewCalculateFeeQuery(weight decimal.Decimal, dimensions string) (CalculateFeeQuery, error) {
	w, wErr := kernel.NewWeight(weight)
	d, dErr := kernel.ParseDimensions(dimensions)
	if err := errors.Join(wErr, dErr); err != nil {
		return CalculateFeeQuery{}, err
	}

	return CalculateFeeQuery{weight: w, dimensions: d, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateFeeQuery) Validate() error {
	return q.guard.Validate(ErrCalculateFeeQueryIsNotConstructed)
}

func (q CalculateFeeQuery) Weight() kernel.Weight {
	return q.weight
}

func (q CalculateFeeQuery) Dimensions() kernel.Dimensions {
	return q.dimensions
}
