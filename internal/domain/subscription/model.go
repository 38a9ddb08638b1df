package subscription

import (
	"time"

	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// Subscription is a juice delivery subscription. The scheduling and
// pricing engines never touch this struct directly; they are handed
// plain timestamps and amounts from it and the service layer writes the
// computed values back.
type Subscription struct {
	// ID is the unique identifier for the subscription
	ID string `db:"id" json:"id"`

	// UserID is the identifier of the owning customer account
	UserID string `db:"user_id" json:"user_id"`

	// PlanID identifies the juice plan this subscription delivers
	PlanID string `db:"plan_id" json:"plan_id"`

	// SubscriptionStatus is the delivery lifecycle status
	SubscriptionStatus types.SubscriptionStatus `db:"subscription_status" json:"subscription_status"`

	// DeliveryFrequency is the cadence class, weekly or monthly
	DeliveryFrequency types.DeliveryFrequency `db:"delivery_frequency" json:"delivery_frequency"`

	// BasePrice is the per-delivery-cycle price before any duration discount
	BasePrice decimal.Decimal `db:"base_price" json:"base_price"`

	// DurationUnits is the chosen duration, months for monthly plans and
	// weeks for weekly plans
	DurationUnits int `db:"duration_units" json:"duration_units"`

	// StartDate is when deliveries begin
	StartDate time.Time `db:"start_date" json:"start_date"`

	// EndDate is when the subscription expires
	EndDate time.Time `db:"end_date" json:"end_date"`

	// NextDeliveryDate is the next scheduled delivery
	NextDeliveryDate time.Time `db:"next_delivery_date" json:"next_delivery_date"`

	// PausedAt is set while the subscription is paused and cleared on
	// reactivation
	PausedAt *time.Time `db:"paused_at" json:"paused_at,omitempty"`

	types.BaseModel
}

// Validate validates the subscription fields
func (s *Subscription) Validate() error {
	if s.UserID == "" {
		return ierr.NewError("user_id is required").
			WithHint("User ID is required").
			Mark(ierr.ErrValidation)
	}
	if s.PlanID == "" {
		return ierr.NewError("plan_id is required").
			WithHint("Plan ID is required").
			Mark(ierr.ErrValidation)
	}
	if err := s.DeliveryFrequency.Validate(); err != nil {
		return err
	}
	if err := s.SubscriptionStatus.Validate(); err != nil {
		return err
	}
	if s.BasePrice.IsNegative() {
		return ierr.NewError("invalid base price").
			WithHint("Base price must not be negative").
			Mark(ierr.ErrValidation)
	}
	if s.DurationUnits <= 0 {
		return ierr.NewError("invalid duration").
			WithHint("Duration must be a positive number of months or weeks").
			Mark(ierr.ErrValidation)
	}
	if !s.EndDate.After(s.StartDate) {
		return ierr.NewError("invalid dates").
			WithHint("End date must be after start date").
			Mark(ierr.ErrValidation)
	}
	return nil
}
