// Package ports defines the contracts between the shipment domain and
// infrastructure: repositories, the unit of work and event publishing.
package ports

import (
	"context"

	"courier/internal/core/domain/model/shipment"
)

// ShipmentReader is the read side of the shipment registry. Reads never take
// entity locks.
type ShipmentReader interface {
	// Get retrieves a shipment with its full tracking history.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id shipment.ID) (*shipment.Shipment, error)

	// List returns the shipments matching filter, newest id first.
	// No match is an empty slice, not an error.
	List(ctx context.Context, filter shipment.Filter) ([]*shipment.Shipment, error)
}

// ShipmentRepository is the shipment registry bound to a unit of work.
type ShipmentRepository interface {
	ShipmentReader

	// NextID reserves a new, unique, monotonically increasing shipment id.
	NextID(ctx context.Context) (shipment.ID, error)

	// Add persists a new shipment and its initial ledger record.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists the mutable fields and appends unsaved ledger records.
	// It succeeds only if the stored version equals aggregate.Version();
	// otherwise it returns errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetForUpdate retrieves a shipment and locks it against concurrent
	// updates until the unit of work ends.
	GetForUpdate(ctx context.Context, id shipment.ID) (*shipment.Shipment, error)
}
