package types

import (
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/samber/lo"
)

// SubscriptionStatus is the delivery lifecycle status of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// subscriptionTransitions lists the allowed status transitions.
// Cancellation is terminal; expired subscriptions can only come back
// through a renewal.
var subscriptionTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionStatusActive:    {SubscriptionStatusPaused, SubscriptionStatusCancelled, SubscriptionStatusExpired},
	SubscriptionStatusPaused:    {SubscriptionStatusActive, SubscriptionStatusCancelled, SubscriptionStatusExpired},
	SubscriptionStatusExpired:   {SubscriptionStatusActive},
	SubscriptionStatusCancelled: {},
}

// Validate validates the subscription status
func (s SubscriptionStatus) Validate() error {
	allowed := []SubscriptionStatus{
		SubscriptionStatusActive,
		SubscriptionStatusPaused,
		SubscriptionStatusCancelled,
		SubscriptionStatusExpired,
	}

	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid subscription status").
			WithHint("Invalid subscription status").
			WithReportableDetails(map[string]any{
				"status":           s,
				"allowed_statuses": allowed,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// CanTransitionTo reports whether the transition from s to target is allowed
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	return lo.Contains(subscriptionTransitions[s], target)
}

// String returns the string representation of the subscription status
func (s SubscriptionStatus) String() string {
	return string(s)
}
