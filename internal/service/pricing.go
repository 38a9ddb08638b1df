package service

import (
	"context"

	"github.com/anishchandragiri369/studio-sub000/internal/api/dto"
	"github.com/anishchandragiri369/studio-sub000/internal/cache"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/pricing"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

type PricingService interface {
	Calculate(ctx context.Context, req dto.CalculatePricingRequest) (*dto.PricingResponse, error)
	ListOptions(ctx context.Context, frequency types.DeliveryFrequency) (*dto.ListDurationOptionsResponse, error)
}

type pricingService struct {
	calculator *pricing.Calculator
	cache      cache.Cache
	logger     *logger.Logger
}

func NewPricingService(calculator *pricing.Calculator, cache cache.Cache, logger *logger.Logger) PricingService {
	return &pricingService{calculator: calculator, cache: cache, logger: logger}
}

func (s *pricingService) Calculate(ctx context.Context, req dto.CalculatePricingRequest) (*dto.PricingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	basePrice, err := req.ParseBasePrice()
	if err != nil {
		return nil, err
	}

	result, err := s.calculator.Calculate(basePrice, req.DurationUnits, req.Frequency)
	if err != nil {
		return nil, err
	}

	return &dto.PricingResponse{
		PricingResult: result,
		Frequency:     req.Frequency,
		DurationUnits: req.DurationUnits,
	}, nil
}

func (s *pricingService) ListOptions(ctx context.Context, frequency types.DeliveryFrequency) (*dto.ListDurationOptionsResponse, error) {
	if err := frequency.Validate(); err != nil {
		return nil, err
	}

	key := cache.GenerateKey(cache.PrefixPricingOptions, frequency)
	if cached, found := s.cache.Get(ctx, key); found {
		if resp, ok := cached.(*dto.ListDurationOptionsResponse); ok {
			return resp, nil
		}
	}

	options, err := s.calculator.Options(frequency)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListDurationOptionsResponse{
		Frequency: frequency,
		Options:   options,
	}
	s.cache.Set(ctx, key, resp, cache.DefaultExpiration)
	return resp, nil
}
