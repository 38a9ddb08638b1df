package types

import (
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/samber/lo"
)

// EligibilityPolicy holds the fixed time windows that gate subscription
// actions. Like SchedulePolicy it is injected configuration.
type EligibilityPolicy struct {
	// PauseNoticeHours is the minimum notice before the next delivery
	// required to allow a pause.
	PauseNoticeHours int `json:"pause_notice_hours"`

	// ReactivationMonths is the grace period after pausing during which
	// a subscription can be resumed.
	ReactivationMonths int `json:"reactivation_months"`

	// RenewalWarningDays is how many days before expiry the subscription
	// is surfaced as expiring soon.
	RenewalWarningDays int `json:"renewal_warning_days"`
}

// DefaultEligibilityPolicy returns the published policy windows:
// 24 hour pause notice, 3 month reactivation window, 5 day renewal warning.
func DefaultEligibilityPolicy() EligibilityPolicy {
	return EligibilityPolicy{
		PauseNoticeHours:   24,
		ReactivationMonths: 3,
		RenewalWarningDays: 5,
	}
}

// Validate validates the eligibility policy
func (p EligibilityPolicy) Validate() error {
	if p.PauseNoticeHours < 0 || p.ReactivationMonths <= 0 || p.RenewalWarningDays < 0 {
		return ierr.NewError("invalid eligibility policy").
			WithHint("Policy windows must be positive").
			WithReportableDetails(map[string]any{
				"pause_notice_hours":   p.PauseNoticeHours,
				"reactivation_months":  p.ReactivationMonths,
				"renewal_warning_days": p.RenewalWarningDays,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PauseEligibility is the decision for a pause request
type PauseEligibility struct {
	Allowed bool `json:"can_pause"`

	// Reason is set only when the pause is not allowed
	Reason string `json:"reason,omitempty"`

	// HoursRemaining is the whole number of hours until the next delivery,
	// floored, never negative.
	HoursRemaining int `json:"hours_remaining"`
}

// ReactivationEligibility is the decision for a reactivation request
type ReactivationEligibility struct {
	Allowed bool `json:"can_reactivate"`

	// Reason is set only when reactivation is not allowed
	Reason string `json:"reason,omitempty"`

	// DaysRemaining is the number of days left in the reactivation
	// window, rounded up. Zero when the window has passed.
	DaysRemaining int `json:"days_left"`
}

// RenewalState classifies how close a subscription is to its end date
type RenewalState string

const (
	RenewalStateActive       RenewalState = "active"
	RenewalStateExpiringSoon RenewalState = "expiring_soon"
	RenewalStateExpired      RenewalState = "expired"
)

// Validate validates the renewal state
func (s RenewalState) Validate() error {
	allowed := []RenewalState{
		RenewalStateActive,
		RenewalStateExpiringSoon,
		RenewalStateExpired,
	}

	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid renewal state").
			WithHint("Invalid renewal state").
			WithReportableDetails(map[string]any{
				"state":          s,
				"allowed_states": allowed,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// String returns the string representation of the renewal state
func (s RenewalState) String() string {
	return string(s)
}

// RenewalStatus pairs the renewal state with the day count and a message
// that calling surfaces may display verbatim.
type RenewalStatus struct {
	State    RenewalState `json:"status"`
	DaysLeft int          `json:"days_left"`
	Message  string       `json:"message"`
}
