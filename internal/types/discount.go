package types

import (
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DiscountTier is a named discount band associated with a subscription duration
type DiscountTier string

const (
	DiscountTierNone     DiscountTier = "none"
	DiscountTierBronze   DiscountTier = "bronze"
	DiscountTierSilver   DiscountTier = "silver"
	DiscountTierGold     DiscountTier = "gold"
	DiscountTierPlatinum DiscountTier = "platinum"
)

// Validate validates the discount tier
func (t DiscountTier) Validate() error {
	allowed := []DiscountTier{
		DiscountTierNone,
		DiscountTierBronze,
		DiscountTierSilver,
		DiscountTierGold,
		DiscountTierPlatinum,
	}

	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid discount tier").
			WithHint("Invalid discount tier").
			WithReportableDetails(map[string]any{
				"tier":          t,
				"allowed_tiers": allowed,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// String returns the string representation of the discount tier
func (t DiscountTier) String() string {
	return string(t)
}

// DurationOption is one row of the fixed per-frequency duration table.
// DurationUnits is months for monthly plans and weeks for weekly plans.
type DurationOption struct {
	DurationUnits int `json:"duration_units" mapstructure:"duration_units"`

	// Weeks overrides the price multiplier for weekly options when the
	// option spans a different number of weeks than its duration units.
	Weeks int `json:"weeks,omitempty" mapstructure:"weeks"`

	// DiscountPercentage is a whole percentage in [0, 100]
	DiscountPercentage int `json:"discount_percentage" mapstructure:"discount_percentage"`

	Tier DiscountTier `json:"tier" mapstructure:"tier"`
}

// Validate validates the duration option
func (o DurationOption) Validate() error {
	if o.DurationUnits <= 0 {
		return ierr.NewError("invalid duration option").
			WithHint("Duration units must be positive").
			Mark(ierr.ErrValidation)
	}
	if o.DiscountPercentage < 0 || o.DiscountPercentage > 100 {
		return ierr.NewError("invalid duration option").
			WithHint("Discount percentage must be between 0 and 100").
			WithReportableDetails(map[string]any{
				"discount_percentage": o.DiscountPercentage,
			}).
			Mark(ierr.ErrValidation)
	}
	return o.Tier.Validate()
}

// DiscountConfig holds the fixed duration tables per frequency. It is
// injected configuration, owned by the config layer rather than the
// pricing calculator.
type DiscountConfig struct {
	Monthly []DurationOption `json:"monthly" mapstructure:"monthly"`
	Weekly  []DurationOption `json:"weekly" mapstructure:"weekly"`
}

// DefaultDiscountConfig returns the published duration tables:
// monthly 1/3/6/12 months at 0/5/12/20 percent and weekly 1/2/3 weeks
// at 0/5/10 percent.
func DefaultDiscountConfig() DiscountConfig {
	return DiscountConfig{
		Monthly: []DurationOption{
			{DurationUnits: 1, DiscountPercentage: 0, Tier: DiscountTierNone},
			{DurationUnits: 3, DiscountPercentage: 5, Tier: DiscountTierBronze},
			{DurationUnits: 6, DiscountPercentage: 12, Tier: DiscountTierGold},
			{DurationUnits: 12, DiscountPercentage: 20, Tier: DiscountTierPlatinum},
		},
		Weekly: []DurationOption{
			{DurationUnits: 1, Weeks: 1, DiscountPercentage: 0, Tier: DiscountTierNone},
			{DurationUnits: 2, Weeks: 2, DiscountPercentage: 5, Tier: DiscountTierBronze},
			{DurationUnits: 3, Weeks: 3, DiscountPercentage: 10, Tier: DiscountTierSilver},
		},
	}
}

// Validate validates all options in the config
func (c DiscountConfig) Validate() error {
	for _, opt := range append(append([]DurationOption{}, c.Monthly...), c.Weekly...) {
		if err := opt.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Options returns the duration table for the given frequency
func (c DiscountConfig) Options(f DeliveryFrequency) ([]DurationOption, error) {
	switch f {
	case DeliveryFrequencyMonthly:
		return c.Monthly, nil
	case DeliveryFrequencyWeekly:
		return c.Weekly, nil
	default:
		return nil, f.Validate()
	}
}

// LookupOption returns the option matching the duration exactly, if any
func (c DiscountConfig) LookupOption(f DeliveryFrequency, durationUnits int) (DurationOption, bool) {
	options, err := c.Options(f)
	if err != nil {
		return DurationOption{}, false
	}
	return lo.Find(options, func(o DurationOption) bool {
		return o.DurationUnits == durationUnits
	})
}

// PricingResult is the itemized price breakdown for a chosen duration.
// All amounts are rounded to 2 decimal places and
// FinalPrice = OriginalPrice - DiscountAmount always holds.
type PricingResult struct {
	OriginalPrice      decimal.Decimal `json:"original_price"`
	DiscountPercentage int             `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	FinalPrice         decimal.Decimal `json:"final_price"`
	DiscountTier       DiscountTier    `json:"discount_type"`
}
