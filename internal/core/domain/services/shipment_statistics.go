package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

// DefaultDelayThreshold is how long a shipment may stay before delivery
// before it counts as delayed.
const DefaultDelayThreshold = 72 * time.Hour

// Stats are the dashboard aggregates over a set of shipments.
type Stats struct {
	Total     int
	Delivered int
	InTransit int
	Delayed   int
	Revenue   decimal.Decimal
}

// ShipmentStatistics computes Stats at read time; nothing is cached.
//
// Definitions:
//   - InTransit: PICKED_UP, IN_TRANSIT or OUT_FOR_DELIVERY
//   - Delayed: PENDING_PICKUP, PICKED_UP or IN_TRANSIT and
//     updatedAt - createdAt greater than the threshold
//   - Revenue: sum of delivery charges of paid shipments, in any status
type ShipmentStatistics struct {
	delayThreshold time.Duration
}

// NewShipmentStatistics creates the service with a positive delay threshold.
func NewShipmentStatistics(delayThreshold time.Duration) (ShipmentStatistics, error) {
	if delayThreshold <= 0 {
		return ShipmentStatistics{}, errs.NewValueIsInvalidErrorWithCause(
			"delay threshold",
			fmt.Errorf("%s is not greater than 0", delayThreshold),
		)
	}
	return ShipmentStatistics{delayThreshold: delayThreshold}, nil
}

// DelayThreshold returns the configured threshold.
func (s ShipmentStatistics) DelayThreshold() time.Duration {
	return s.delayThreshold
}

// Compute aggregates shipments. An empty input yields zero Stats.
func (s ShipmentStatistics) Compute(shipments []*shipment.Shipment) Stats {
	stats := Stats{Revenue: decimal.Zero}

	for _, sh := range shipments {
		if sh == nil {
			continue
		}
		stats.Total++

		switch {
		case sh.Status() == shipment.Delivered:
			stats.Delivered++
		case sh.Status().IsInTransit():
			stats.InTransit++
		}

		if sh.IsDelayed(s.delayThreshold) {
			stats.Delayed++
		}
		if sh.IsPaid() {
			stats.Revenue = stats.Revenue.Add(sh.DeliveryCharge())
		}
	}

	return stats
}

// Delayed returns the shipments that count as delayed, in input order.
func (s ShipmentStatistics) Delayed(shipments []*shipment.Shipment) []*shipment.Shipment {
	var out []*shipment.Shipment
	for _, sh := range shipments {
		if sh != nil && sh.IsDelayed(s.delayThreshold) {
			out = append(out, sh)
		}
	}
	return out
}
