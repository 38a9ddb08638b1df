package dto

import (
	"time"

	"github.com/anishchandragiri369/studio-sub000/internal/domain/subscription"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
	"github.com/shopspring/decimal"
)

type CreateSubscriptionRequest struct {
	// UserID may be omitted when the request is authenticated; it then
	// defaults to the caller's identity.
	UserID        string                  `json:"user_id"`
	PlanID        string                  `json:"plan_id" binding:"required"`
	Frequency     types.DeliveryFrequency `json:"frequency" binding:"required"`
	BasePrice     string                  `json:"base_price" binding:"required"`
	DurationUnits int                     `json:"duration_units" binding:"required"`

	// StartDate defaults to the time of the request
	StartDate *time.Time `json:"start_date,omitempty"`
}

func (r *CreateSubscriptionRequest) Validate() error {
	if err := r.Frequency.Validate(); err != nil {
		return err
	}
	if r.PlanID == "" {
		return ierr.NewError("plan_id is required").
			WithHint("Plan ID is required").
			Mark(ierr.ErrValidation)
	}
	if r.DurationUnits <= 0 {
		return ierr.NewError("invalid duration").
			WithHint("Duration must be a positive number of months or weeks").
			Mark(ierr.ErrValidation)
	}
	if _, err := r.ParseBasePrice(); err != nil {
		return err
	}
	return nil
}

// ParseBasePrice parses the base price string, rejecting malformed and
// negative values
func (r *CreateSubscriptionRequest) ParseBasePrice() (decimal.Decimal, error) {
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

type SubscriptionResponse struct {
	*subscription.Subscription
}

type ListSubscriptionsResponse struct {
	Items []*SubscriptionResponse `json:"items"`
	Total int                     `json:"total"`
}

// PauseSubscriptionResponse carries the eligibility decision and, when
// the pause went through, the updated subscription.
type PauseSubscriptionResponse struct {
	types.PauseEligibility
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
}

// ReactivateSubscriptionResponse carries the eligibility decision and,
// when reactivation went through, the updated subscription with its
// recomputed next delivery date.
type ReactivateSubscriptionResponse struct {
	types.ReactivationEligibility
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
}

type RenewalStatusResponse struct {
	SubscriptionID string `json:"subscription_id"`
	types.RenewalStatus
}

type UpcomingDeliveriesResponse struct {
	SubscriptionID string      `json:"subscription_id"`
	Deliveries     []time.Time `json:"deliveries"`
}
