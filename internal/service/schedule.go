package service

import (
	"context"
	"time"

	"github.com/anishchandragiri369/studio-sub000/internal/api/dto"
	"github.com/anishchandragiri369/studio-sub000/internal/cache"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/schedule"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
)

type ScheduleService interface {
	NextDelivery(ctx context.Context, req dto.NextDeliveryRequest) (*dto.NextDeliveryResponse, error)
	Preview(ctx context.Context, req dto.SchedulePreviewRequest) (*dto.SchedulePreviewResponse, error)
}

type scheduleService struct {
	calculator *schedule.Calculator
	cache      cache.Cache
	logger     *logger.Logger
}

func NewScheduleService(calculator *schedule.Calculator, cache cache.Cache, logger *logger.Logger) ScheduleService {
	return &scheduleService{calculator: calculator, cache: cache, logger: logger}
}

func (s *scheduleService) NextDelivery(ctx context.Context, req dto.NextDeliveryRequest) (*dto.NextDeliveryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	next, err := s.calculator.NextDeliveryDate(req.ReferenceDate, req.Frequency)
	if err != nil {
		return nil, err
	}

	return &dto.NextDeliveryResponse{
		DeliveryDate: next,
		Frequency:    req.Frequency,
	}, nil
}

// Preview generates the upcoming deliveries for a start date, either a
// fixed count or every occurrence before an end date. Previews are pure
// functions of the request so responses are cached by their parameters.
func (s *scheduleService) Preview(ctx context.Context, req dto.SchedulePreviewRequest) (*dto.SchedulePreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := previewCacheKey(req)
	if cached, found := s.cache.Get(ctx, key); found {
		if resp, ok := cached.(*dto.SchedulePreviewResponse); ok {
			return resp, nil
		}
	}

	var deliveries []time.Time
	var err error
	if req.EndDate != nil {
		deliveries, err = s.calculator.UpcomingUntil(req.StartDate, req.Frequency, *req.EndDate, dto.MaxPreviewDeliveries)
	} else {
		deliveries, err = s.calculator.Upcoming(req.StartDate, req.Frequency, req.Count)
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.SchedulePreviewResponse{
		Frequency:  req.Frequency,
		Deliveries: deliveries,
	}
	s.cache.Set(ctx, key, resp, cache.DefaultExpiration)
	return resp, nil
}

func previewCacheKey(req dto.SchedulePreviewRequest) string {
	end := ""
	if req.EndDate != nil {
		end = req.EndDate.UTC().Format(time.RFC3339)
	}
	return cache.GenerateKey(cache.PrefixDeliveryPreview,
		req.Frequency,
		req.StartDate.UTC().Format(time.RFC3339),
		req.Count,
		end,
	)
}
