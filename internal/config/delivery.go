package config

import (
	"strings"
	"time"

	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

// DeliveryConfig holds the delivery cadence and eligibility policy windows.
// These are business policy, deliberately tunable without code changes.
type DeliveryConfig struct {
	WeeklyStepDays     int    `mapstructure:"weekly_step_days"`
	MonthlyStepDays    int    `mapstructure:"monthly_step_days"`
	ExcludedWeekday    string `mapstructure:"excluded_weekday"`
	PauseNoticeHours   int    `mapstructure:"pause_notice_hours"`
	ReactivationMonths int    `mapstructure:"reactivation_months"`
	RenewalWarningDays int    `mapstructure:"renewal_warning_days"`
}

// PricingConfig holds the per-frequency duration tables. Empty tables fall
// back to the published defaults.
type PricingConfig struct {
	Monthly []types.DurationOption `mapstructure:"monthly"`
	Weekly  []types.DurationOption `mapstructure:"weekly"`
}

// DefaultDeliveryConfig mirrors types.DefaultSchedulePolicy and
// types.DefaultEligibilityPolicy for use in GetDefaultConfig
func DefaultDeliveryConfig() DeliveryConfig {
	return DeliveryConfig{
		WeeklyStepDays:     7,
		MonthlyStepDays:    2,
		ExcludedWeekday:    "sunday",
		PauseNoticeHours:   24,
		ReactivationMonths: 3,
		RenewalWarningDays: 5,
	}
}

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// SchedulePolicy converts the config into the policy consumed by the
// schedule calculator
func (c DeliveryConfig) SchedulePolicy() (types.SchedulePolicy, error) {
	weekday, ok := weekdaysByName[strings.ToLower(c.ExcludedWeekday)]
	if !ok {
		return types.SchedulePolicy{}, ierr.NewError("invalid excluded weekday").
			WithHintf("Unknown weekday %q", c.ExcludedWeekday).
			Mark(ierr.ErrValidation)
	}

	policy := types.SchedulePolicy{
		WeeklyStepDays:  c.WeeklyStepDays,
		MonthlyStepDays: c.MonthlyStepDays,
		ExcludedWeekday: weekday,
	}
	if err := policy.Validate(); err != nil {
		return types.SchedulePolicy{}, err
	}
	return policy, nil
}

// EligibilityPolicy converts the config into the policy consumed by the
// eligibility evaluator
func (c DeliveryConfig) EligibilityPolicy() types.EligibilityPolicy {
	return types.EligibilityPolicy{
		PauseNoticeHours:   c.PauseNoticeHours,
		ReactivationMonths: c.ReactivationMonths,
		RenewalWarningDays: c.RenewalWarningDays,
	}
}

// DiscountConfig returns the configured duration tables, falling back to
// the published defaults when a table is not configured
func (c PricingConfig) DiscountConfig() types.DiscountConfig {
	cfg := types.DefaultDiscountConfig()
	if len(c.Monthly) > 0 {
		cfg.Monthly = c.Monthly
	}
	if len(c.Weekly) > 0 {
		cfg.Weekly = c.Weekly
	}
	return cfg
}
