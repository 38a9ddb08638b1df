package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/anishchandragiri369/studio-sub000/internal/api/dto"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/eligibility"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/schedule"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/testutil"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

type SubscriptionServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *testutil.InMemorySubscriptionStore
	service SubscriptionService
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceSuite))
}

func (s *SubscriptionServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	s.store = testutil.NewInMemorySubscriptionStore()

	log, err := logger.NewLogger()
	s.Require().NoError(err)

	s.service = NewSubscriptionService(
		s.store,
		NoopTxManager{},
		schedule.NewCalculator(types.DefaultSchedulePolicy()),
		eligibility.NewEvaluator(types.DefaultEligibilityPolicy()),
		log,
	)
}

func (s *SubscriptionServiceSuite) createSubscription(frequency types.DeliveryFrequency, durationUnits int) *dto.SubscriptionResponse {
	resp, err := s.service.Create(s.ctx, dto.CreateSubscriptionRequest{
		PlanID:        "plan_orange_classic",
		Frequency:     frequency,
		BasePrice:     "120.00",
		DurationUnits: durationUnits,
	})
	s.Require().NoError(err)
	s.Require().NotNil(resp)
	return resp
}

func (s *SubscriptionServiceSuite) TestCreate() {
	start := time.Date(2025, time.June, 25, 10, 0, 0, 0, time.UTC)
	resp, err := s.service.Create(s.ctx, dto.CreateSubscriptionRequest{
		PlanID:        "plan_orange_classic",
		Frequency:     types.DeliveryFrequencyMonthly,
		BasePrice:     "120.00",
		DurationUnits: 6,
		StartDate:     &start,
	})
	s.NoError(err)
	s.Require().NotNil(resp)

	sub := resp.Subscription
	s.Equal(types.SubscriptionStatusActive, sub.SubscriptionStatus)
	s.Equal(types.DefaultUserID, sub.UserID)
	s.True(sub.NextDeliveryDate.Equal(time.Date(2025, time.June, 27, 10, 0, 0, 0, time.UTC)))
	s.True(sub.EndDate.Equal(time.Date(2025, time.December, 25, 10, 0, 0, 0, time.UTC)))
	s.Nil(sub.PausedAt)

	stored, err := s.store.Get(s.ctx, sub.ID)
	s.NoError(err)
	s.Equal(sub.ID, stored.ID)
}

func (s *SubscriptionServiceSuite) TestCreateWeeklyEndDate() {
	start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	resp, err := s.service.Create(s.ctx, dto.CreateSubscriptionRequest{
		PlanID:        "plan_green_detox",
		Frequency:     types.DeliveryFrequencyWeekly,
		BasePrice:     "69.00",
		DurationUnits: 3,
		StartDate:     &start,
	})
	s.NoError(err)
	s.True(resp.Subscription.EndDate.Equal(start.AddDate(0, 0, 21)))
}

func (s *SubscriptionServiceSuite) TestCreateValidation() {
	_, err := s.service.Create(s.ctx, dto.CreateSubscriptionRequest{
		PlanID:        "plan_orange_classic",
		Frequency:     types.DeliveryFrequency("daily"),
		BasePrice:     "120.00",
		DurationUnits: 6,
	})
	s.Error(err)

	_, err = s.service.Create(s.ctx, dto.CreateSubscriptionRequest{
		PlanID:        "plan_orange_classic",
		Frequency:     types.DeliveryFrequencyMonthly,
		BasePrice:     "not-a-number",
		DurationUnits: 6,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SubscriptionServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.ctx, "subs_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SubscriptionServiceSuite) TestListByUser() {
	s.createSubscription(types.DeliveryFrequencyMonthly, 3)
	s.createSubscription(types.DeliveryFrequencyWeekly, 2)

	resp, err := s.service.ListByUser(s.ctx, types.DefaultUserID)
	s.NoError(err)
	s.Equal(2, resp.Total)
	s.Len(resp.Items, 2)

	_, err = s.service.ListByUser(s.ctx, "")
	s.Error(err)
}

func (s *SubscriptionServiceSuite) TestPause() {
	// A fresh subscription's next delivery is at least two days out, well
	// past the notice requirement.
	created := s.createSubscription(types.DeliveryFrequencyMonthly, 6)

	resp, err := s.service.Pause(s.ctx, created.Subscription.ID)
	s.NoError(err)
	s.Require().NotNil(resp)
	s.True(resp.Allowed)
	s.Require().NotNil(resp.Subscription)
	s.Equal(types.SubscriptionStatusPaused, resp.Subscription.Subscription.SubscriptionStatus)
	s.NotNil(resp.Subscription.Subscription.PausedAt)
}

func (s *SubscriptionServiceSuite) TestPauseInsufficientNotice() {
	created := s.createSubscription(types.DeliveryFrequencyMonthly, 6)

	sub, err := s.store.Get(s.ctx, created.Subscription.ID)
	s.Require().NoError(err)
	sub.NextDeliveryDate = time.Now().UTC().Add(10 * time.Hour)
	s.Require().NoError(s.store.Update(s.ctx, sub))

	resp, err := s.service.Pause(s.ctx, sub.ID)
	s.NoError(err)
	s.Require().NotNil(resp)
	s.False(resp.Allowed)
	s.Contains(resp.Reason, "hours")
	s.Nil(resp.Subscription)

	// The refusal must leave the subscription untouched.
	after, err := s.store.Get(s.ctx, sub.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, after.SubscriptionStatus)
	s.Nil(after.PausedAt)
}

func (s *SubscriptionServiceSuite) TestPauseNonActive() {
	created := s.createSubscription(types.DeliveryFrequencyMonthly, 6)

	_, err := s.service.Pause(s.ctx, created.Subscription.ID)
	s.Require().NoError(err)

	_, err = s.service.Pause(s.ctx, created.Subscription.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SubscriptionServiceSuite) TestReactivate() {
	created := s.createSubscription(types.DeliveryFrequencyMonthly, 6)

	_, err := s.service.Pause(s.ctx, created.Subscription.ID)
	s.Require().NoError(err)

	resp, err := s.service.Reactivate(s.ctx, created.Subscription.ID)
	s.NoError(err)
	s.Require().NotNil(resp)
	s.True(resp.Allowed)
	s.Require().NotNil(resp.Subscription)

	sub := resp.Subscription.Subscription
	s.Equal(types.SubscriptionStatusActive, sub.SubscriptionStatus)
	s.Nil(sub.PausedAt)
	s.True(sub.NextDeliveryDate.After(time.Now().UTC()))
	s.NotEqual(time.Sunday, sub.NextDeliveryDate.Weekday())
}

func (s *SubscriptionServiceSuite) TestReactivateWindowPassed() {
	created := s.createSubscription(types.DeliveryFrequencyMonthly, 6)

	_, err := s.service.Pause(s.ctx, created.Subscription.ID)
	s.Require().NoError(err)

	sub, err := s.store.Get(s.ctx, created.Subscription.ID)
	s.Require().NoError(err)
	pausedAt := time.Now().UTC().AddDate(0, -4, 0)
	sub.PausedAt = &pausedAt
	s.Require().NoError(s.store.Update(s.ctx, sub))

	resp, err := s.service.Reactivate(s.ctx, sub.ID)
	s.NoError(err)
	s.Require().NotNil(resp)
	s.False(resp.Allowed)
	s.Contains(resp.Reason, "window has passed")
	s.Nil(resp.Subscription)

	after, err := s.store.Get(s.ctx, sub.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusPaused, after.SubscriptionStatus)
}

func (s *SubscriptionServiceSuite) TestReactivateNonPaused() {
	created := s.createSubscription(types.DeliveryFrequencyMonthly, 6)

	_, err := s.service.Reactivate(s.ctx, created.Subscription.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SubscriptionServiceSuite) TestRenewalStatus() {
	created := s.createSubscription(types.DeliveryFrequencyMonthly, 6)

	resp, err := s.service.RenewalStatus(s.ctx, created.Subscription.ID)
	s.NoError(err)
	s.Equal(types.RenewalStateActive, resp.State)

	sub, err := s.store.Get(s.ctx, created.Subscription.ID)
	s.Require().NoError(err)
	sub.EndDate = time.Now().UTC().AddDate(0, 0, 3)
	s.Require().NoError(s.store.Update(s.ctx, sub))

	resp, err = s.service.RenewalStatus(s.ctx, sub.ID)
	s.NoError(err)
	s.Equal(types.RenewalStateExpiringSoon, resp.State)
	s.Equal(3, resp.DaysLeft)

	sub.EndDate = time.Now().UTC().AddDate(0, 0, -2)
	s.Require().NoError(s.store.Update(s.ctx, sub))

	resp, err = s.service.RenewalStatus(s.ctx, sub.ID)
	s.NoError(err)
	s.Equal(types.RenewalStateExpired, resp.State)
	s.Equal(0, resp.DaysLeft)
}

func (s *SubscriptionServiceSuite) TestUpcomingDeliveries() {
	created := s.createSubscription(types.DeliveryFrequencyWeekly, 3)

	resp, err := s.service.UpcomingDeliveries(s.ctx, created.Subscription.ID, 5)
	s.NoError(err)
	s.Len(resp.Deliveries, 5)
	s.True(resp.Deliveries[0].Equal(created.Subscription.NextDeliveryDate))

	for i := 1; i < len(resp.Deliveries); i++ {
		s.True(resp.Deliveries[i].After(resp.Deliveries[i-1]))
		s.NotEqual(time.Sunday, resp.Deliveries[i].Weekday())
	}

	// Zero falls back to the default of five.
	resp, err = s.service.UpcomingDeliveries(s.ctx, created.Subscription.ID, 0)
	s.NoError(err)
	s.Len(resp.Deliveries, 5)

	_, err = s.service.UpcomingDeliveries(s.ctx, created.Subscription.ID, dto.MaxPreviewDeliveries+1)
	s.Error(err)
}
