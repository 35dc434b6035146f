package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// ContactDetails is the raw contact data of a sender or recipient.
type ContactDetails struct {
	Name       string
	Phone      string
	Email      string
	Address    string
	City       string
	PostalCode string
}

// CreateShipmentCommand represents a client's request to ship a package.
// Raw input is validated into domain value objects by the constructor, so a
// constructed command always describes a shippable parcel.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(userID, sender, recipient,
//	    "Books", decimal.RequireFromString("2.5"), "30x20x15", "")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, fees, time.Now)
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct {
	clientID            int64
	sender              kernel.Contact
	recipient           kernel.Contact
	parcel              shipment.Parcel
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the request. All problems are reported
// together; contact problems are prefixed with "sender" or "recipient".
func NewCreateShipmentCommand(
	clientID int64,
	sender ContactDetails,
	recipient ContactDetails,
	description string,
	weight decimal.Decimal,
	dimensions string,
	specialInstructions string,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setClientID(clientID),
		command.setSender(sender),
		command.setRecipient(recipient),
		command.setParcel(description, weight, dimensions),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) ClientID() int64             { return c.clientID }
func (c CreateShipmentCommand) Sender() kernel.Contact      { return c.sender }
func (c CreateShipmentCommand) Recipient() kernel.Contact   { return c.recipient }
func (c CreateShipmentCommand) Parcel() shipment.Parcel     { return c.parcel }
func (c CreateShipmentCommand) SpecialInstructions() string { return c.specialInstructions }

func (c *CreateShipmentCommand) setClientID(clientID int64) error {
	if clientID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("client id", fmt.Errorf("%d is not greater than 0", clientID))
	}
	c.clientID = clientID
	return nil
}

func (c *CreateShipmentCommand) setSender(d ContactDetails) error {
	contact, err := newContact(d)
	if err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	c.sender = contact
	return nil
}

func (c *CreateShipmentCommand) setRecipient(d ContactDetails) error {
	contact, err := newContact(d)
	if err != nil {
		return fmt.Errorf("recipient: %w", err)
	}
	c.recipient = contact
	return nil
}

func (c *CreateShipmentCommand) setParcel(description string, weight decimal.Decimal, dimensions string) error {
	w, wErr := kernel.NewWeight(weight)
	d, dErr := kernel.ParseDimensions(dimensions)
	if err := errors.Join(wErr, dErr); err != nil {
		return err
	}

	parcel, err := shipment.NewParcel(description, w, d)
	if err != nil {
		return err
	}
	c.parcel = parcel
	return nil
}

func newContact(d ContactDetails) (kernel.Contact, error) {
	return kernel.NewContact(d.Name, d.Phone, d.Email, d.Address, d.City, d.PostalCode)
}
