package shipment

import (
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when validating a zero-value Parcel.
var ErrParcelIsNotConstructed = errs.NewValueIsRequiredError("parcel must be created via NewParcel")

// Parcel is the package carried by a shipment.
type Parcel struct {
	description string
	weight      kernel.Weight
	dimensions  kernel.Dimensions
	guard       guard.ConstructorGuard
}

// NewParcel creates a Parcel from a non-empty description and validated
// weight and dimensions.
func NewParcel(description string, weight kernel.Weight, dimensions kernel.Dimensions) (Parcel, error) {
	p := Parcel{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setDescription(description),
		p.setWeight(weight),
		p.setDimensions(dimensions),
	); err != nil {
		return Parcel{}, err
	}

	return p, nil
}

// Validate checks that Parcel was created through NewParcel.
func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p Parcel) Description() string {
	return p.description
}

func (p Parcel) Weight() kernel.Weight {
	return p.weight
}

func (p Parcel) Dimensions() kernel.Dimensions {
	return p.dimensions
}

func (p *Parcel) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("package description")
	}
	p.description = description
	return nil
}

func (p *Parcel) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	p.dimensions = dimensions
	return nil
}
