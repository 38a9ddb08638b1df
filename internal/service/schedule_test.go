package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/anishchandragiri369/studio-sub000/internal/api/dto"
	"github.com/anishchandragiri369/studio-sub000/internal/cache"
	"github.com/anishchandragiri369/studio-sub000/internal/config"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/schedule"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/testutil"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

type ScheduleServiceSuite struct {
	suite.Suite
	ctx     context.Context
	service ScheduleService
}

func TestScheduleService(t *testing.T) {
	suite.Run(t, new(ScheduleServiceSuite))
}

func (s *ScheduleServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()

	log, err := logger.NewLogger()
	s.Require().NoError(err)

	s.service = NewScheduleService(
		schedule.NewCalculator(types.DefaultSchedulePolicy()),
		cache.NewInMemoryCache(config.GetDefaultConfig()),
		log,
	)
}

func (s *ScheduleServiceSuite) TestNextDelivery() {
	resp, err := s.service.NextDelivery(s.ctx, dto.NextDeliveryRequest{
		ReferenceDate: time.Date(2025, time.June, 25, 0, 0, 0, 0, time.UTC),
		Frequency:     types.DeliveryFrequencyMonthly,
	})
	s.NoError(err)
	s.True(resp.DeliveryDate.Equal(time.Date(2025, time.June, 27, 0, 0, 0, 0, time.UTC)))

	_, err = s.service.NextDelivery(s.ctx, dto.NextDeliveryRequest{
		ReferenceDate: time.Date(2025, time.June, 25, 0, 0, 0, 0, time.UTC),
		Frequency:     types.DeliveryFrequency("daily"),
	})
	s.Error(err)
}

func (s *ScheduleServiceSuite) TestPreviewByCount() {
	resp, err := s.service.Preview(s.ctx, dto.SchedulePreviewRequest{
		StartDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Frequency: types.DeliveryFrequencyMonthly,
		Count:     5,
	})
	s.NoError(err)
	s.Len(resp.Deliveries, 5)
	s.True(resp.Deliveries[0].Equal(time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC)))
	s.True(resp.Deliveries[4].Equal(time.Date(2025, time.July, 11, 0, 0, 0, 0, time.UTC)))
}

func (s *ScheduleServiceSuite) TestPreviewByEndDate() {
	endDate := time.Date(2025, time.July, 8, 0, 0, 0, 0, time.UTC)
	resp, err := s.service.Preview(s.ctx, dto.SchedulePreviewRequest{
		StartDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Frequency: types.DeliveryFrequencyMonthly,
		EndDate:   &endDate,
	})
	s.NoError(err)
	s.Len(resp.Deliveries, 3)
	for _, d := range resp.Deliveries {
		s.True(d.Before(endDate))
	}

	// A second identical request is served from the cache and must match.
	again, err := s.service.Preview(s.ctx, dto.SchedulePreviewRequest{
		StartDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Frequency: types.DeliveryFrequencyMonthly,
		EndDate:   &endDate,
	})
	s.NoError(err)
	s.Equal(resp, again)
}

func (s *ScheduleServiceSuite) TestPreviewFarFutureEndDate() {
	// The per-request cap applies to the end-date variant too: a date
	// range spanning decades must be rejected, not expanded.
	endDate := time.Date(2075, time.July, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.service.Preview(s.ctx, dto.SchedulePreviewRequest{
		StartDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Frequency: types.DeliveryFrequencyMonthly,
		EndDate:   &endDate,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ScheduleServiceSuite) TestPreviewValidation() {
	start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	endDate := start.AddDate(0, 1, 0)

	// Neither count nor end date.
	_, err := s.service.Preview(s.ctx, dto.SchedulePreviewRequest{
		StartDate: start,
		Frequency: types.DeliveryFrequencyMonthly,
	})
	s.Error(err)

	// Both at once.
	_, err = s.service.Preview(s.ctx, dto.SchedulePreviewRequest{
		StartDate: start,
		Frequency: types.DeliveryFrequencyMonthly,
		Count:     5,
		EndDate:   &endDate,
	})
	s.Error(err)

	// Over the preview cap.
	_, err = s.service.Preview(s.ctx, dto.SchedulePreviewRequest{
		StartDate: start,
		Frequency: types.DeliveryFrequencyMonthly,
		Count:     dto.MaxPreviewDeliveries + 1,
	})
	s.Error(err)
}
