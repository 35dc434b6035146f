package kernel

import (
	"fmt"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWeightIsNotConstructed is returned when validating a zero-value Weight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight")

// Weight is the actual weight of a package in kilograms. It is always positive.
type Weight struct {
	kg    decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight. Zero and negative values are rejected, never clamped.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if !kg.IsPositive() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s is not greater than 0", kg.String()),
		)
	}

	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that Weight was created through NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Kilograms returns the weight in kilograms.
func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

func (w Weight) String() string {
	return w.kg.String() + "kg"
}
