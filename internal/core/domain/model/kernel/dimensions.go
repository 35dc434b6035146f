package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when validating a zero-value Dimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions or ParseDimensions")

const dimensionsSeparator = "x"

// Dimensions is the size of a package in whole centimetres.
//
// Example:
//
//	dims, err := kernel.ParseDimensions("30x20x15")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dims.Volume()) // 9000
type Dimensions struct {
	length int
	width  int
	height int
	guard  guard.ConstructorGuard
}

// NewDimensions creates Dimensions from three positive integers (cm).
func NewDimensions(length, width, height int) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setSide("length", &d.length, length),
		setSide("width", &d.width, width),
		setSide("height", &d.height, height),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// ParseDimensions parses the "LxWxH" notation. The separator is
// case-insensitive and spaces around each side are ignored; every side must
// be a positive integer written without a sign.
func ParseDimensions(s string) (Dimensions, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), dimensionsSeparator)
	if len(parts) != 3 {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause(
			"dimensions",
			fmt.Errorf("%q must be three positive integers separated by %q", s, dimensionsSeparator),
		)
	}

	sides := make([]int, 0, len(parts))
	for _, part := range parts {
		side, err := parseSide(strings.TrimSpace(part))
		if err != nil {
			return Dimensions{}, errs.NewValueIsInvalidErrorWithCause(
				"dimensions",
				fmt.Errorf("%q: %w", s, err),
			)
		}
		sides = append(sides, side)
	}

	return NewDimensions(sides[0], sides[1], sides[2])
}

func parseSide(s string) (int, error) {
	if s == "" {
		return 0, errors.New("side is empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("side %q is not a positive integer", s)
		}
	}
	return strconv.Atoi(s)
}

// Validate checks that Dimensions was created through a constructor.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) Length() int {
	return d.length
}

func (d Dimensions) Width() int {
	return d.width
}

func (d Dimensions) Height() int {
	return d.height
}

// Volume returns length*width*height in cubic centimetres. The product is
// exact for any accepted sides.
func (d Dimensions) Volume() decimal.Decimal {
	return decimal.NewFromInt(int64(d.length)).
		Mul(decimal.NewFromInt(int64(d.width))).
		Mul(decimal.NewFromInt(int64(d.height)))
}

// String returns the canonical "LxWxH" form.
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.length, d.width, d.height)
}

func setSide(name string, dst *int, value int) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"dimensions",
			fmt.Errorf("%s %d is not greater than 0", name, value),
		)
	}
	*dst = value
	return nil
}
