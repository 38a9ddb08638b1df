package schedule

import (
	"time"

	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

// Calculator computes delivery dates under the configured cadence and
// excluded-day rules. It is stateless and safe for concurrent use.
type Calculator struct {
	policy types.SchedulePolicy
}

func NewCalculator(policy types.SchedulePolicy) *Calculator {
	return &Calculator{policy: policy}
}

// NextDeliveryDate returns the next valid delivery date after the
// reference date. The cadence step is added first; if the result lands
// on the excluded weekday it is pushed forward a single day. The push is
// applied at most once per call: with step sizes of at least 2 days the
// pushed date can never land on the excluded day again.
func (c *Calculator) NextDeliveryDate(referenceDate time.Time, frequency types.DeliveryFrequency) (time.Time, error) {
	step, err := c.policy.StepDays(frequency)
	if err != nil {
		return time.Time{}, err
	}

	next := referenceDate.AddDate(0, 0, step)
	if next.Weekday() == c.policy.ExcludedWeekday {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}

// Upcoming returns the next count delivery dates starting after startDate,
// in strictly ascending order.
func (c *Calculator) Upcoming(startDate time.Time, frequency types.DeliveryFrequency, count int) ([]time.Time, error) {
	if count < 0 {
		return nil, ierr.NewError("invalid delivery count").
			WithHint("Delivery count must not be negative").
			WithReportableDetails(map[string]any{
				"count": count,
			}).
			Mark(ierr.ErrValidation)
	}

	dates := make([]time.Time, 0, count)
	current := startDate
	for i := 0; i < count; i++ {
		next, err := c.NextDeliveryDate(current, frequency)
		if err != nil {
			return nil, err
		}
		dates = append(dates, next)
		current = next
	}
	return dates, nil
}

// UpcomingUntil returns every delivery date after startDate and strictly
// before endDate, in ascending order. An endDate at or before startDate
// yields an empty schedule. The window must not contain more than limit
// deliveries: the date range is caller-supplied, so the limit is what
// keeps a far-future endDate from producing an unbounded schedule.
func (c *Calculator) UpcomingUntil(startDate time.Time, frequency types.DeliveryFrequency, endDate time.Time, limit int) ([]time.Time, error) {
	if err := frequency.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ierr.NewError("invalid delivery limit").
			WithHint("Delivery limit must be positive").
			WithReportableDetails(map[string]any{
				"limit": limit,
			}).
			Mark(ierr.ErrValidation)
	}

	var dates []time.Time
	current := startDate
	for {
		next, err := c.NextDeliveryDate(current, frequency)
		if err != nil {
			return nil, err
		}
		if !next.Before(endDate) {
			break
		}
		if len(dates) == limit {
			return nil, ierr.NewError("delivery window too large").
				WithHintf("The requested date range contains more than %d deliveries", limit).
				WithReportableDetails(map[string]any{
					"start_date": startDate,
					"end_date":   endDate,
					"limit":      limit,
				}).
				Mark(ierr.ErrValidation)
		}
		dates = append(dates, next)
		current = next
	}
	return dates, nil
}
