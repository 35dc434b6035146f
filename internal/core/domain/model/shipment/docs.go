// Package shipment provides the Shipment aggregate root of the courier
// service: its status state machine and its tracking history ledger.
//
// The package includes:
//   - Shipment: the aggregate root owning sender, recipient, parcel, charge,
//     payment flag and lifecycle timestamps
//   - Status: the closed set of lifecycle states and the transition policy
//   - History and Record: the append-only ledger of status changes
//   - Parcel: the package being shipped (description, weight, dimensions)
//   - Filter: the search criteria used to list shipments
//
// Key business rules:
//   - A new shipment starts in PENDING_PICKUP with exactly one ledger record
//     stamped with the shipment creation time
//   - The delivery charge is set once at creation and never recomputed
//   - Non-terminal shipments may move to any other status; DELIVERED,
//     CANCELLED and RETURNED are terminal and keep their status forever
//     (the payment flag may still change)
//   - Every accepted update appends one ledger record; timestamps
//     never decrease
//   - An update identical to the current state is rejected as no change
package shipment
