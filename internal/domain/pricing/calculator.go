package pricing

import (
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Calculator computes duration pricing from the injected duration tables.
// It is stateless and safe for concurrent use.
type Calculator struct {
	config types.DiscountConfig
}

func NewCalculator(config types.DiscountConfig) *Calculator {
	return &Calculator{config: config}
}

// Calculate returns the itemized price breakdown for basePrice per delivery
// cycle over the chosen duration. Durations present in the configured table
// use their published tier; anything else goes through the fallback ladder.
// Amounts are rounded to 2 decimal places.
func (c *Calculator) Calculate(basePrice decimal.Decimal, durationUnits int, frequency types.DeliveryFrequency) (*types.PricingResult, error) {
	if err := frequency.Validate(); err != nil {
		return nil, err
	}
	if basePrice.IsNegative() {
		return nil, ierr.NewError("invalid base price").
			WithHint("Base price must not be negative").
			WithReportableDetails(map[string]any{
				"base_price": basePrice,
			}).
			Mark(ierr.ErrValidation)
	}
	if durationUnits <= 0 {
		return nil, ierr.NewError("invalid duration").
			WithHint("Duration must be a positive number of months or weeks").
			WithReportableDetails(map[string]any{
				"duration_units": durationUnits,
			}).
			Mark(ierr.ErrValidation)
	}

	option, found := c.config.LookupOption(frequency, durationUnits)

	// Weekly options may carry an explicit week count for the price
	// multiplier; everything else multiplies by the duration itself.
	multiplier := durationUnits
	if frequency == types.DeliveryFrequencyWeekly && found && option.Weeks > 0 {
		multiplier = option.Weeks
	}

	var percentage int
	var tier types.DiscountTier
	if found {
		percentage = option.DiscountPercentage
		tier = option.Tier
	} else {
		percentage, tier = FallbackTier(durationUnits, frequency)
	}

	originalPrice := basePrice.Mul(decimal.NewFromInt(int64(multiplier))).Round(2)
	discountAmount := originalPrice.Mul(decimal.NewFromInt(int64(percentage))).Div(oneHundred).Round(2)
	finalPrice := originalPrice.Sub(discountAmount)

	return &types.PricingResult{
		OriginalPrice:      originalPrice,
		DiscountPercentage: percentage,
		DiscountAmount:     discountAmount,
		FinalPrice:         finalPrice,
		DiscountTier:       tier,
	}, nil
}

// FallbackTier is the discount ladder for custom durations outside the
// published tables. Kept separate from the exact-match lookup so the two
// algorithms stay independently testable.
func FallbackTier(durationUnits int, frequency types.DeliveryFrequency) (int, types.DiscountTier) {
	switch frequency {
	case types.DeliveryFrequencyMonthly:
		switch {
		case durationUnits >= 12:
			return 20, types.DiscountTierPlatinum
		case durationUnits >= 6:
			return 12, types.DiscountTierGold
		case durationUnits >= 4:
			return 8, types.DiscountTierSilver
		case durationUnits >= 3:
			return 5, types.DiscountTierBronze
		}
	case types.DeliveryFrequencyWeekly:
		switch {
		case durationUnits >= 3:
			return 10, types.DiscountTierSilver
		case durationUnits >= 2:
			return 5, types.DiscountTierBronze
		}
	}
	return 0, types.DiscountTierNone
}

// Options returns the configured duration table for the given frequency
func (c *Calculator) Options(frequency types.DeliveryFrequency) ([]types.DurationOption, error) {
	return c.config.Options(frequency)
}
