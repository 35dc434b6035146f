package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// FeeSchedule holds the tariff used to price shipments.
type FeeSchedule struct {
	// BaseFee is charged for every shipment.
	BaseFee decimal.Decimal

	// PerKgRate is charged per kilogram of chargeable weight.
	PerKgRate decimal.Decimal

	// VolumetricDivisor converts cubic centimetres to volumetric kilograms.
	VolumetricDivisor int
}

// DefaultFeeSchedule returns the standard tariff: 5.00 base, 2.50 per kg,
// volumetric divisor 5000.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		BaseFee:           decimal.RequireFromString("5.00"),
		PerKgRate:         decimal.RequireFromString("2.50"),
		VolumetricDivisor: 5000,
	}
}

// Validate checks that fees are non-negative and the divisor is positive.
func (s FeeSchedule) Validate() error {
	var errList []error
	if s.BaseFee.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"base fee", fmt.Errorf("%s is negative", s.BaseFee)))
	}
	if s.PerKgRate.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"per kg rate", fmt.Errorf("%s is negative", s.PerKgRate)))
	}
	if s.VolumetricDivisor <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"volumetric divisor", fmt.Errorf("%d is not greater than 0", s.VolumetricDivisor)))
	}
	return errors.Join(errList...)
}

// FeeCalculator prices a parcel.
//
// Formula:
//
//	volumetric = L*W*H / divisor
//	chargeable = max(weight, volumetric)
//	charge     = round2(baseFee + chargeable*perKgRate)
//
// Rounding is half away from zero. The calculator holds no mutable state.
//
// Example:
//
//	calc, _ := services.NewFeeCalculator(services.DefaultFeeSchedule())
//	fee, err := calc.Calculate(decimal.RequireFromString("2.5"), "30x20x15")
//	// fee == 11.25 (volumetric 1.8 < actual 2.5)
type FeeCalculator struct {
	schedule FeeSchedule
}

// NewFeeCalculator creates a FeeCalculator for a validated schedule.
func NewFeeCalculator(schedule FeeSchedule) (FeeCalculator, error) {
	if err := schedule.Validate(); err != nil {
		return FeeCalculator{}, err
	}
	return FeeCalculator{schedule: schedule}, nil
}

// Schedule returns the tariff the calculator was built with.
func (c FeeCalculator) Schedule() FeeSchedule {
	return c.schedule
}

// Calculate validates raw input and computes the charge. Weight must be
// positive and dimensions must be in "LxWxH" form.
func (c FeeCalculator) Calculate(weight decimal.Decimal, dimensions string) (decimal.Decimal, error) {
	w, wErr := kernel.NewWeight(weight)
	d, dErr := kernel.ParseDimensions(dimensions)
	if err := errors.Join(wErr, dErr); err != nil {
		return decimal.Zero, err
	}
	return c.Compute(w, d)
}

// Compute calculates the charge for already validated weight and dimensions.
func (c FeeCalculator) Compute(weight kernel.Weight, dimensions kernel.Dimensions) (decimal.Decimal, error) {
	if err := errors.Join(weight.Validate(), dimensions.Validate()); err != nil {
		return decimal.Zero, err
	}
	if c.schedule.VolumetricDivisor <= 0 {
		return decimal.Zero, c.schedule.Validate()
	}

	volumetric := c.VolumetricWeight(dimensions)
	chargeable := decimal.Max(weight.Kilograms(), volumetric)

	return c.schedule.BaseFee.Add(chargeable.Mul(c.schedule.PerKgRate)).Round(2), nil
}

// VolumetricWeight returns L*W*H divided by the schedule's divisor.
func (c FeeCalculator) VolumetricWeight(dimensions kernel.Dimensions) decimal.Decimal {
	return dimensions.Volume().
		Div(decimal.NewFromInt(int64(c.schedule.VolumetricDivisor)))
}
