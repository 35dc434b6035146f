package shipment

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// MaxSpecialInstructionsLength is the longest accepted special instructions
// text, counted in characters.
const MaxSpecialInstructionsLength = 500

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// ID is the integer identity of a shipment. It is handed out by the registry
// before the aggregate is constructed.
type ID int64

// Validate checks that the id is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipment id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

// String returns the 6-digit zero-padded display form, e.g. "000042".
func (id ID) String() string {
	return fmt.Sprintf("%06d", int64(id))
}

// Shipment is the aggregate root of the courier service. It owns the
// shipment's parties and parcel, its delivery charge and payment flag, the
// status state machine and the tracking history ledger.
//
// Shipment follows these invariants:
//   - deliveryCharge is set once at creation and never recomputed
//   - status moves only as allowed by Status.ValidateTransition
//   - updatedAt changes on every accepted mutation and never goes backwards
//   - every accepted update appends exactly one ledger record
//   - timestamps are UTC with microsecond precision
type Shipment struct {
	id                  ID
	clientID            int64
	sender              kernel.Contact
	recipient           kernel.Contact
	parcel              Parcel
	specialInstructions string
	status              Status
	deliveryCharge      decimal.Decimal
	paid                bool
	createdAt           time.Time
	updatedAt           time.Time

	// version is the optimistic concurrency token of the stored row.
	version int64

	history History

	isConstructed bool
}

// NewShipment creates a shipment in PENDING_PICKUP with one ledger record
// stamped at now. The charge must already be computed by the fee calculator.
//
// Example:
//
//	id, _ := repo.NextID(ctx)
//	s, err := shipment.NewShipment(id, clientID, sender, recipient, parcel, "", charge, time.Now())
//	if err != nil {
//	    return nil, err
//	}
func NewShipment(
	id ID,
	clientID int64,
	sender kernel.Contact,
	recipient kernel.Contact,
	parcel Parcel,
	specialInstructions string,
	deliveryCharge decimal.Decimal,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        PendingPickup,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setClientID(clientID),
		s.setSender(sender),
		s.setRecipient(recipient),
		s.setParcel(parcel),
		s.setSpecialInstructions(specialInstructions),
		s.setDeliveryCharge(deliveryCharge),
		s.setCreatedAt(now),
	); err != nil {
		return nil, err
	}

	s.updatedAt = s.createdAt
	s.history = newHistory(s.createdAt)

	return s, nil
}

// State is the full persisted state of a shipment, used to restore it.
// History must be in insertion order (oldest first).
type State struct {
	ID                  ID
	ClientID            int64
	Sender              kernel.Contact
	Recipient           kernel.Contact
	Parcel              Parcel
	SpecialInstructions string
	Status              Status
	DeliveryCharge      decimal.Decimal
	Paid                bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int64
	History             []Record
}

// RestoreShipment reconstructs a Shipment from persistent storage. All field
// invariants are checked again, including the ledger invariants and that
// the last ledger record matches the current status.
func RestoreShipment(state State) (*Shipment, error) {
	s := &Shipment{
		paid:          state.Paid,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(state.ID),
		s.setClientID(state.ClientID),
		s.setSender(state.Sender),
		s.setRecipient(state.Recipient),
		s.setParcel(state.Parcel),
		s.setSpecialInstructions(state.SpecialInstructions),
		s.setDeliveryCharge(state.DeliveryCharge),
		s.setCreatedAt(state.CreatedAt),
		s.setStatus(state.Status),
		s.setVersion(state.Version),
	); err != nil {
		return nil, err
	}

	s.updatedAt = normalizeTime(state.UpdatedAt)
	if s.updatedAt.Before(s.createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"updated at",
			fmt.Errorf("%s is before created at %s", s.updatedAt, s.createdAt),
		)
	}

	history, err := restoreHistory(s.createdAt, state.History)
	if err != nil {
		return nil, err
	}
	if last := history.Last().Status(); last != s.status {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"tracking history",
			fmt.Errorf("last record is %s but shipment is %s", last, s.status),
		)
	}
	s.history = history

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by id.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id == other.id
}

func (s *Shipment) ID() ID                          { return s.id }
func (s *Shipment) ClientID() int64                 { return s.clientID }
func (s *Shipment) Sender() kernel.Contact          { return s.sender }
func (s *Shipment) Recipient() kernel.Contact       { return s.recipient }
func (s *Shipment) Parcel() Parcel                  { return s.parcel }
func (s *Shipment) SpecialInstructions() string     { return s.specialInstructions }
func (s *Shipment) Status() Status                  { return s.status }
func (s *Shipment) DeliveryCharge() decimal.Decimal { return s.deliveryCharge }
func (s *Shipment) IsPaid() bool                    { return s.paid }
func (s *Shipment) CreatedAt() time.Time            { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time            { return s.updatedAt }
func (s *Shipment) Version() int64                  { return s.version }

// History returns the tracking history ledger.
func (s *Shipment) History() History {
	return History{records: s.history.Records()}
}

// State returns a snapshot of the shipment suitable for RestoreShipment.
func (s *Shipment) State() State {
	return State{
		ID:                  s.id,
		ClientID:            s.clientID,
		Sender:              s.sender,
		Recipient:           s.recipient,
		Parcel:              s.parcel,
		SpecialInstructions: s.specialInstructions,
		Status:              s.status,
		DeliveryCharge:      s.deliveryCharge,
		Paid:                s.paid,
		CreatedAt:           s.createdAt,
		UpdatedAt:           s.updatedAt,
		Version:             s.version,
		History:             s.history.Records(),
	}
}

// ApplyStatus moves the shipment to target and sets the payment flag.
//
// Business rules:
//   - target and paid identical to the current state is a NoChangeError and
//     nothing is modified
//   - a terminal shipment cannot change status (StatusIsInvalidError), but
//     its payment flag can still be updated
//   - now is clamped to the previous updatedAt so the ledger never goes back
//     in time
//   - every accepted update appends one ledger record with the new status,
//     including a payment-only change
//
// Example:
//
//	if err := s.ApplyStatus(shipment.Delivered, true, time.Now()); err != nil {
//	    return err
//	}
func (s *Shipment) ApplyStatus(target Status, paid bool, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == s.status && paid == s.paid {
		return errs.NewNoChangeError("shipment", s.id)
	}

	if err := s.status.ValidateTransition(target); err != nil {
		return err
	}

	now = normalizeTime(now)
	if now.Before(s.updatedAt) {
		now = s.updatedAt
	}

	s.history.append(target, now)
	s.status = target
	s.paid = paid
	s.updatedAt = now

	return nil
}

// IsDelayed reports whether the shipment is still before delivery and took
// longer than threshold between creation and its last update.
func (s *Shipment) IsDelayed(threshold time.Duration) bool {
	return s.status.CanBeDelayed() && s.updatedAt.Sub(s.createdAt) > threshold
}

// MarkPersisted records what the registry wrote: the stored version and the
// ids given to the ledger records appended since the last load.
func (s *Shipment) MarkPersisted(version int64, recordIDs []int64) error {
	if version < s.version {
		return errs.NewVersionIsInvalidErrorWithCause(
			"shipment",
			fmt.Errorf("stored version %d is older than %d", version, s.version),
		)
	}
	if err := s.history.assignIDs(recordIDs); err != nil {
		return err
	}
	s.version = version
	return nil
}

func (s *Shipment) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setClientID(clientID int64) error {
	if clientID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("client id", fmt.Errorf("%d is not greater than 0", clientID))
	}
	s.clientID = clientID
	return nil
}

func (s *Shipment) setSender(sender kernel.Contact) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	s.sender = sender
	return nil
}

func (s *Shipment) setRecipient(recipient kernel.Contact) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	s.recipient = recipient
	return nil
}

func (s *Shipment) setParcel(parcel Parcel) error {
	if err := parcel.Validate(); err != nil {
		return err
	}
	s.parcel = parcel
	return nil
}

func (s *Shipment) setSpecialInstructions(instructions string) error {
	if n := utf8.RuneCountInString(instructions); n > MaxSpecialInstructionsLength {
		return errs.NewValueIsOutOfRangeError("special instructions length", n, 0, MaxSpecialInstructionsLength)
	}
	s.specialInstructions = instructions
	return nil
}

func (s *Shipment) setDeliveryCharge(charge decimal.Decimal) error {
	if charge.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("delivery charge", fmt.Errorf("%s is negative", charge))
	}
	s.deliveryCharge = charge
	return nil
}

func (s *Shipment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	s.createdAt = normalizeTime(createdAt)
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setVersion(version int64) error {
	if version <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}
	s.version = version
	return nil
}
