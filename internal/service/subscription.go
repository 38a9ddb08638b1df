package service

import (
	"context"
	"time"

	"github.com/anishchandragiri369/studio-sub000/internal/api/dto"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/eligibility"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/schedule"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/subscription"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

// TxManager runs a function inside a storage transaction. The engine
// itself is pure; read-compute-write sequences on the subscription row
// are made atomic here, by the storage layer.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoopTxManager runs the function directly, for stores that have no
// transaction semantics.
type NoopTxManager struct{}

func (NoopTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type SubscriptionService interface {
	Create(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Get(ctx context.Context, id string) (*dto.SubscriptionResponse, error)
	ListByUser(ctx context.Context, userID string) (*dto.ListSubscriptionsResponse, error)
	Pause(ctx context.Context, id string) (*dto.PauseSubscriptionResponse, error)
	Reactivate(ctx context.Context, id string) (*dto.ReactivateSubscriptionResponse, error)
	RenewalStatus(ctx context.Context, id string) (*dto.RenewalStatusResponse, error)
	UpcomingDeliveries(ctx context.Context, id string, count int) (*dto.UpcomingDeliveriesResponse, error)
}

type subscriptionService struct {
	repo        subscription.Repository
	tx          TxManager
	schedule    *schedule.Calculator
	eligibility *eligibility.Evaluator
	logger      *logger.Logger
}

func NewSubscriptionService(
	repo subscription.Repository,
	tx TxManager,
	scheduleCalc *schedule.Calculator,
	eligibilityEval *eligibility.Evaluator,
	logger *logger.Logger,
) SubscriptionService {
	return &subscriptionService{
		repo:        repo,
		tx:          tx,
		schedule:    scheduleCalc,
		eligibility: eligibilityEval,
		logger:      logger,
	}
}

func (s *subscriptionService) Create(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	basePrice, err := req.ParseBasePrice()
	if err != nil {
		return nil, err
	}

	userID := req.UserID
	if userID == "" {
		userID = types.GetUserID(ctx)
	}

	startDate := time.Now().UTC()
	if req.StartDate != nil {
		startDate = req.StartDate.UTC()
	}

	endDate := subscriptionEndDate(startDate, req.Frequency, req.DurationUnits)

	nextDelivery, err := s.schedule.NextDeliveryDate(startDate, req.Frequency)
	if err != nil {
		return nil, err
	}

	sub := &subscription.Subscription{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		UserID:             userID,
		PlanID:             req.PlanID,
		SubscriptionStatus: types.SubscriptionStatusActive,
		DeliveryFrequency:  req.Frequency,
		BasePrice:          basePrice,
		DurationUnits:      req.DurationUnits,
		StartDate:          startDate,
		EndDate:            endDate,
		NextDeliveryDate:   nextDelivery,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Infow("created subscription",
		"subscription_id", sub.ID,
		"user_id", sub.UserID,
		"frequency", sub.DeliveryFrequency,
		"next_delivery_date", sub.NextDeliveryDate,
	)

	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) Get(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	sub, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) ListByUser(ctx context.Context, userID string) (*dto.ListSubscriptionsResponse, error) {
	if userID == "" {
		return nil, ierr.NewError("user_id is required").
			WithHint("User ID is required").
			Mark(ierr.ErrValidation)
	}

	subs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListSubscriptionsResponse{
		Items: make([]*dto.SubscriptionResponse, len(subs)),
		Total: len(subs),
	}
	for i, sub := range subs {
		resp.Items[i] = &dto.SubscriptionResponse{Subscription: sub}
	}
	return resp, nil
}

// Pause pauses an active subscription provided enough notice remains
// before the next delivery. An ineligible request is not an error: the
// decision and reason are returned for the caller to surface.
func (s *subscriptionService) Pause(ctx context.Context, id string) (*dto.PauseSubscriptionResponse, error) {
	var resp *dto.PauseSubscriptionResponse

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		sub, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}

		if sub.SubscriptionStatus != types.SubscriptionStatusActive {
			return ierr.NewError("subscription is not active").
				WithHintf("Only active subscriptions can be paused, this one is %s", sub.SubscriptionStatus).
				Mark(ierr.ErrInvalidOperation)
		}

		now := time.Now().UTC()
		decision := s.eligibility.CanPause(sub.NextDeliveryDate, now)
		if !decision.Allowed {
			resp = &dto.PauseSubscriptionResponse{PauseEligibility: decision}
			return nil
		}

		sub.SubscriptionStatus = types.SubscriptionStatusPaused
		sub.PausedAt = &now
		sub.UpdatedAt = now
		sub.UpdatedBy = types.GetUserID(ctx)

		if err := s.repo.Update(ctx, sub); err != nil {
			return err
		}

		s.logger.Infow("paused subscription", "subscription_id", sub.ID, "paused_at", now)

		resp = &dto.PauseSubscriptionResponse{
			PauseEligibility: decision,
			Subscription:     &dto.SubscriptionResponse{Subscription: sub},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Reactivate resumes a paused subscription while the reactivation window
// is still open, recomputing the next delivery date from the time of
// reactivation.
func (s *subscriptionService) Reactivate(ctx context.Context, id string) (*dto.ReactivateSubscriptionResponse, error) {
	var resp *dto.ReactivateSubscriptionResponse

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		sub, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}

		if sub.SubscriptionStatus != types.SubscriptionStatusPaused || sub.PausedAt == nil {
			return ierr.NewError("subscription is not paused").
				WithHintf("Only paused subscriptions can be reactivated, this one is %s", sub.SubscriptionStatus).
				Mark(ierr.ErrInvalidOperation)
		}

		now := time.Now().UTC()
		decision := s.eligibility.CanReactivate(*sub.PausedAt, now)
		if !decision.Allowed {
			resp = &dto.ReactivateSubscriptionResponse{ReactivationEligibility: decision}
			return nil
		}

		nextDelivery, err := s.schedule.NextDeliveryDate(now, sub.DeliveryFrequency)
		if err != nil {
			return err
		}

		sub.SubscriptionStatus = types.SubscriptionStatusActive
		sub.PausedAt = nil
		sub.NextDeliveryDate = nextDelivery
		sub.UpdatedAt = now
		sub.UpdatedBy = types.GetUserID(ctx)

		if err := s.repo.Update(ctx, sub); err != nil {
			return err
		}

		s.logger.Infow("reactivated subscription",
			"subscription_id", sub.ID,
			"next_delivery_date", nextDelivery,
		)

		resp = &dto.ReactivateSubscriptionResponse{
			ReactivationEligibility: decision,
			Subscription:            &dto.SubscriptionResponse{Subscription: sub},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *subscriptionService) RenewalStatus(ctx context.Context, id string) (*dto.RenewalStatusResponse, error) {
	sub, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	status := s.eligibility.ExpiryStatus(sub.EndDate, time.Now().UTC())
	return &dto.RenewalStatusResponse{
		SubscriptionID: sub.ID,
		RenewalStatus:  status,
	}, nil
}

func (s *subscriptionService) UpcomingDeliveries(ctx context.Context, id string, count int) (*dto.UpcomingDeliveriesResponse, error) {
	if count <= 0 {
		count = 5
	}
	if count > dto.MaxPreviewDeliveries {
		return nil, ierr.NewError("invalid delivery count").
			WithHintf("At most %d deliveries can be previewed", dto.MaxPreviewDeliveries).
			Mark(ierr.ErrValidation)
	}

	sub, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// The stored next delivery is the first occurrence; the calculator
	// produces its successors.
	successors, err := s.schedule.Upcoming(sub.NextDeliveryDate, sub.DeliveryFrequency, count-1)
	if err != nil {
		return nil, err
	}

	deliveries := append([]time.Time{sub.NextDeliveryDate}, successors...)
	return &dto.UpcomingDeliveriesResponse{
		SubscriptionID: sub.ID,
		Deliveries:     deliveries,
	}, nil
}

// subscriptionEndDate computes the expiry date for a chosen duration:
// calendar months (clamped) for monthly plans, whole weeks for weekly
// plans.
func subscriptionEndDate(startDate time.Time, frequency types.DeliveryFrequency, durationUnits int) time.Time {
	if frequency == types.DeliveryFrequencyMonthly {
		return types.AddClampedDate(startDate, 0, durationUnits, 0)
	}
	return startDate.AddDate(0, 0, 7*durationUnits)
}
