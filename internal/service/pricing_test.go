package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/anishchandragiri369/studio-sub000/internal/api/dto"
	"github.com/anishchandragiri369/studio-sub000/internal/cache"
	"github.com/anishchandragiri369/studio-sub000/internal/config"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/pricing"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/testutil"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

type PricingServiceSuite struct {
	suite.Suite
	ctx     context.Context
	service PricingService
}

func TestPricingService(t *testing.T) {
	suite.Run(t, new(PricingServiceSuite))
}

func (s *PricingServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()

	log, err := logger.NewLogger()
	s.Require().NoError(err)

	s.service = NewPricingService(
		pricing.NewCalculator(types.DefaultDiscountConfig()),
		cache.NewInMemoryCache(config.GetDefaultConfig()),
		log,
	)
}

func (s *PricingServiceSuite) TestCalculate() {
	resp, err := s.service.Calculate(s.ctx, dto.CalculatePricingRequest{
		BasePrice:     "120.00",
		DurationUnits: 6,
		Frequency:     types.DeliveryFrequencyMonthly,
	})
	s.NoError(err)
	s.Require().NotNil(resp)

	s.True(resp.OriginalPrice.Equal(decimal.RequireFromString("720.00")))
	s.Equal(12, resp.DiscountPercentage)
	s.True(resp.FinalPrice.Equal(decimal.RequireFromString("633.60")))
	s.Equal(types.DiscountTierGold, resp.DiscountTier)
	s.Equal(types.DeliveryFrequencyMonthly, resp.Frequency)
}

func (s *PricingServiceSuite) TestCalculateInvalidRequest() {
	_, err := s.service.Calculate(s.ctx, dto.CalculatePricingRequest{
		BasePrice:     "-5.00",
		DurationUnits: 3,
		Frequency:     types.DeliveryFrequencyMonthly,
	})
	s.Error(err)

	_, err = s.service.Calculate(s.ctx, dto.CalculatePricingRequest{
		BasePrice:     "120.00",
		DurationUnits: 3,
		Frequency:     types.DeliveryFrequency("daily"),
	})
	s.Error(err)
}

func (s *PricingServiceSuite) TestListOptions() {
	resp, err := s.service.ListOptions(s.ctx, types.DeliveryFrequencyMonthly)
	s.NoError(err)
	s.Require().NotNil(resp)
	s.Len(resp.Options, 4)
	s.Equal(types.DeliveryFrequencyMonthly, resp.Frequency)

	// A second call is served from the cache and must match.
	again, err := s.service.ListOptions(s.ctx, types.DeliveryFrequencyMonthly)
	s.NoError(err)
	s.Equal(resp, again)

	_, err = s.service.ListOptions(s.ctx, types.DeliveryFrequency("daily"))
	s.Error(err)
}
