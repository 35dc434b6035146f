// Package kernel provides the value objects shared by the shipment domain.
//
// The package includes:
//   - Dimensions: package size in whole centimetres, parsed from "LxWxH"
//   - Weight: positive package weight in kilograms
//   - Contact: a sender or recipient (name, phone, optional email, address)
//   - UUID: identifier of integration events
//
// Every value object is immutable and built through its constructor; the
// zero value fails Validate.
package kernel
