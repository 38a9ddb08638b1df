package types

import (
	"time"

	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/samber/lo"
)

// DeliveryFrequency represents the cadence class of a subscription.
// Note that the "monthly" cadence is an alternate-day delivery policy
// (see SchedulePolicy.MonthlyStepDays), not a calendar-month recurrence.
type DeliveryFrequency string

const (
	DeliveryFrequencyWeekly  DeliveryFrequency = "weekly"
	DeliveryFrequencyMonthly DeliveryFrequency = "monthly"
)

// Validate validates the delivery frequency
func (f DeliveryFrequency) Validate() error {
	allowed := []DeliveryFrequency{
		DeliveryFrequencyWeekly,
		DeliveryFrequencyMonthly,
	}

	if !lo.Contains(allowed, f) {
		return ierr.NewError("invalid delivery frequency").
			WithHint("Invalid delivery frequency").
			WithReportableDetails(map[string]any{
				"frequency":           f,
				"allowed_frequencies": allowed,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// String returns the string representation of the delivery frequency
func (f DeliveryFrequency) String() string {
	return string(f)
}

// SchedulePolicy holds the delivery cadence rules. The step sizes and the
// excluded weekday come from configuration so they can be tuned without
// code changes.
type SchedulePolicy struct {
	// WeeklyStepDays is the number of days between weekly deliveries
	WeeklyStepDays int `json:"weekly_step_days"`

	// MonthlyStepDays is the number of days between deliveries on the
	// monthly plan. The default of 2 yields roughly 14 deliveries per
	// 30 day window.
	MonthlyStepDays int `json:"monthly_step_days"`

	// ExcludedWeekday is the day of the week on which deliveries never
	// happen. A computed date landing on it is pushed forward one day.
	ExcludedWeekday time.Weekday `json:"excluded_weekday"`
}

// DefaultSchedulePolicy returns the delivery policy in effect for the
// juice subscription plans: weekly every 7 days, monthly every 2 days,
// no Sunday deliveries.
func DefaultSchedulePolicy() SchedulePolicy {
	return SchedulePolicy{
		WeeklyStepDays:  7,
		MonthlyStepDays: 2,
		ExcludedWeekday: time.Sunday,
	}
}

// Validate validates the schedule policy
func (p SchedulePolicy) Validate() error {
	if p.WeeklyStepDays <= 0 || p.MonthlyStepDays <= 0 {
		return ierr.NewError("invalid schedule policy").
			WithHint("Cadence step days must be positive").
			WithReportableDetails(map[string]any{
				"weekly_step_days":  p.WeeklyStepDays,
				"monthly_step_days": p.MonthlyStepDays,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// StepDays returns the cadence step in days for the given frequency
func (p SchedulePolicy) StepDays(f DeliveryFrequency) (int, error) {
	switch f {
	case DeliveryFrequencyWeekly:
		return p.WeeklyStepDays, nil
	case DeliveryFrequencyMonthly:
		return p.MonthlyStepDays, nil
	default:
		return 0, f.Validate()
	}
}
