package kernel

import (
	"errors"
	"net/mail"
	"strings"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when validating a zero-value Contact.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError("contact must be created via NewContact")

// Contact identifies one end of a shipment: the sender or the recipient.
// Email is optional; every other field is required.
type Contact struct {
	name       string
	phone      string
	email      string
	address    string
	city       string
	postalCode string
	guard      guard.ConstructorGuard
}

// NewContact creates a Contact. Surrounding whitespace is trimmed.
// All validation failures are reported together.
func NewContact(name, phone, email, address, city, postalCode string) (Contact, error) {
	c := Contact{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setRequired(&c.name, "name", name),
		setRequired(&c.phone, "phone", phone),
		c.setEmail(email),
		setRequired(&c.address, "address", address),
		setRequired(&c.city, "city", city),
		setRequired(&c.postalCode, "postal code", postalCode),
	); err != nil {
		return Contact{}, err
	}

	return c, nil
}

// Validate checks that Contact was created through NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

func (c Contact) Name() string       { return c.name }
func (c Contact) Phone() string      { return c.phone }
func (c Contact) Email() string      { return c.email }
func (c Contact) Address() string    { return c.address }
func (c Contact) City() string       { return c.city }
func (c Contact) PostalCode() string { return c.postalCode }

func (c *Contact) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}

func setRequired(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
