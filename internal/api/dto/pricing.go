package dto

import (
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
	"github.com/shopspring/decimal"
)

type CalculatePricingRequest struct {
	// BasePrice is the per-delivery-cycle price as a decimal string, e.g. "120.00"
	BasePrice     string                  `json:"base_price" binding:"required"`
	DurationUnits int                     `json:"duration_units" binding:"required"`
	Frequency     types.DeliveryFrequency `json:"frequency" binding:"required"`
}

func (r *CalculatePricingRequest) Validate() error {
	if err := r.Frequency.Validate(); err != nil {
		return err
	}
	if _, err := r.ParseBasePrice(); err != nil {
		return err
	}
	if r.DurationUnits <= 0 {
		return ierr.NewError("invalid duration").
			WithHint("Duration must be a positive number of months or weeks").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ParseBasePrice parses the base price string, rejecting malformed and
// negative values
func (r *CalculatePricingRequest) ParseBasePrice() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(r.BasePrice)
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHintf("Invalid base price %q", r.BasePrice).
			Mark(ierr.ErrValidation)
	}
	if price.IsNegative() {
		return decimal.Zero, ierr.NewError("invalid base price").
			WithHint("Base price must not be negative").
			Mark(ierr.ErrValidation)
	}
	return price, nil
}

type PricingResponse struct {
	*types.PricingResult
	Frequency     types.DeliveryFrequency `json:"frequency"`
	DurationUnits int                     `json:"duration_units"`
}

type ListDurationOptionsResponse struct {
	Frequency types.DeliveryFrequency `json:"frequency"`
	Options   []types.DurationOption  `json:"options"`
}
