// Package services contains stateless domain services of the courier
// service: logic that does not belong to a single Shipment.
//
// The package includes:
//   - FeeCalculator: prices a parcel from its weight and volumetric weight
//   - ShipmentStatistics: the dashboard aggregates over a set of shipments
//
// Both services are pure and safe for concurrent use.
package services
