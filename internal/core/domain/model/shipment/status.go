package shipment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	PENDING_PICKUP ─> PICKED_UP ─> IN_TRANSIT ─> OUT_FOR_DELIVERY ─> DELIVERED
//	       │               │            │               │
//	       └───────────────┴────────────┴───────────────┴──> CANCELLED | RETURNED
//
// The forward path is the usual one, but an administrator may move a
// non-terminal shipment to any other status. DELIVERED, CANCELLED and
// RETURNED are terminal: once reached the status never changes again.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPickup is the initial status of every shipment.
	PendingPickup

	// PickedUp means the courier collected the package from the sender.
	PickedUp

	// InTransit means the package is moving between hubs.
	InTransit

	// OutForDelivery means the package left the last hub for the recipient.
	OutForDelivery

	// Delivered is terminal: the recipient received the package.
	Delivered

	// Cancelled is terminal: the shipment was cancelled before delivery.
	Cancelled

	// Returned is terminal: the package went back to the sender.
	Returned
)

// getStatusStrings returns a map of valid Status values to their wire names.
func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPickup:  "PENDING_PICKUP",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Returned:       "RETURNED",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{PendingPickup, PickedUp, InTransit, OutForDelivery, Delivered, Cancelled, Returned}
}

// ParseStatus converts a wire name such as "IN_TRANSIT" to a Status.
// Names are matched exactly; anything else is a StatusIsInvalidError.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewStatusIsInvalidError(s)
}

// Validate checks if the Status value is one of the known statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewStatusIsInvalidErrorWithCause(
			s.String(),
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further status change is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Returned
}

// IsInTransit reports whether the package is somewhere between pickup and
// delivery. The dashboard counts these as "in transit".
func (s Status) IsInTransit() bool {
	return s == PickedUp || s == InTransit || s == OutForDelivery
}

// CanBeDelayed reports whether a shipment in this status is eligible for the
// delayed-shipment metric. OUT_FOR_DELIVERY is not.
func (s Status) CanBeDelayed() bool {
	return s == PendingPickup || s == PickedUp || s == InTransit
}

// ValidateTransition checks that the status may change to target.
//
// Rules:
//   - target must be a valid status
//   - a terminal status may only "move" to itself
//   - any non-terminal status may move to any valid status
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() && target != s {
		return errs.NewStatusIsInvalidErrorWithCause(
			target.String(),
			fmt.Errorf("%s is terminal and cannot change to %s", s, target),
		)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler using the wire name.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the wire name.
func (s *Status) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}
