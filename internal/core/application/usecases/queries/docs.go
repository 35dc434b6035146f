// Package queries contains read-only operations over the shipment registry.
// Query handlers never open a unit of work and never lock shipments.
package queries
