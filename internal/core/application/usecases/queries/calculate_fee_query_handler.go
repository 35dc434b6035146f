package queries

import (
	"context"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/services"
)

// CalculateFeeQueryHandler quotes delivery fees with the configured schedule.
type CalculateFeeQueryHandler struct {
	fees services.FeeCalculator
}

func NewCalculateFeeQueryHandler(fees services.FeeCalculator) CalculateFeeQueryHandler {
	return CalculateFeeQueryHandler{fees: fees}
}

// Handle returns the fee a shipment with this parcel would be charged.
func (h CalculateFeeQueryHandler) Handle(_ context.Context, query CalculateFeeQuery) (decimal.Decimal, error) {
	if err := query.Validate(); err != nil {
		return decimal.Zero, err
	}
	return h.fees.Compute(query.Weight(), query.Dimensions())
}
