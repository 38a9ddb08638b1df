package eligibility

import (
	"fmt"
	"time"

	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

// Evaluator answers time-windowed eligibility questions from the injected
// policy. Every check is a pure function of the supplied timestamps, so
// callers pass in their own clock reading and the evaluator stays
// deterministic and trivially testable.
type Evaluator struct {
	policy types.EligibilityPolicy
}

func NewEvaluator(policy types.EligibilityPolicy) *Evaluator {
	return &Evaluator{policy: policy}
}

// CanPause decides whether a subscription may be paused given its next
// delivery date. The notice boundary is inclusive: exactly
// PauseNoticeHours of remaining time is still allowed.
func (e *Evaluator) CanPause(nextDeliveryDate, now time.Time) types.PauseEligibility {
	hours := nextDeliveryDate.Sub(now).Hours()

	if hours >= float64(e.policy.PauseNoticeHours) {
		return types.PauseEligibility{
			Allowed:        true,
			HoursRemaining: int(hours),
		}
	}

	if hours <= 0 {
		return types.PauseEligibility{
			Allowed:        false,
			Reason:         "Cannot pause: the next delivery is already due",
			HoursRemaining: 0,
		}
	}

	remaining := int(hours)
	return types.PauseEligibility{
		Allowed: false,
		Reason: fmt.Sprintf(
			"Cannot pause: only %d hours remain before the next delivery, at least %d hours notice is required",
			remaining, e.policy.PauseNoticeHours,
		),
		HoursRemaining: remaining,
	}
}

// CanReactivate decides whether a paused subscription may be resumed.
// The deadline is pausedAt plus the reactivation window in calendar
// months (day-of-month clamped); reaching the deadline to the second
// closes the window.
func (e *Evaluator) CanReactivate(pausedAt, now time.Time) types.ReactivationEligibility {
	deadline := types.AddClampedDate(pausedAt, 0, e.policy.ReactivationMonths, 0)

	if !now.Before(deadline) {
		return types.ReactivationEligibility{
			Allowed: false,
			Reason: fmt.Sprintf(
				"Cannot reactivate: the %d month reactivation window has passed",
				e.policy.ReactivationMonths,
			),
			DaysRemaining: 0,
		}
	}

	return types.ReactivationEligibility{
		Allowed:       true,
		DaysRemaining: types.CeilDaysBetween(now, deadline),
	}
}

// ExpiryStatus classifies a subscription against its end date. A past end
// date reports as expired with zero days left; an end date within the
// renewal warning window reports as expiring soon.
func (e *Evaluator) ExpiryStatus(subscriptionEndDate, now time.Time) types.RenewalStatus {
	daysLeft := types.CeilDaysBetween(now, subscriptionEndDate)

	switch {
	case daysLeft < 0:
		return types.RenewalStatus{
			State:    types.RenewalStateExpired,
			DaysLeft: 0,
			Message:  "Your subscription has expired. Renew to resume deliveries.",
		}
	case daysLeft <= e.policy.RenewalWarningDays:
		return types.RenewalStatus{
			State:    types.RenewalStateExpiringSoon,
			DaysLeft: daysLeft,
			Message:  fmt.Sprintf("Your subscription expires in %d days. Renew now to keep your deliveries coming.", daysLeft),
		}
	default:
		return types.RenewalStatus{
			State:    types.RenewalStateActive,
			DaysLeft: daysLeft,
			Message:  "Your subscription is active.",
		}
	}
}
