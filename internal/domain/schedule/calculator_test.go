package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDeliveryDate(t *testing.T) {
	calc := NewCalculator(types.DefaultSchedulePolicy())

	tests := []struct {
		name      string
		reference time.Time
		frequency types.DeliveryFrequency
		want      time.Time
	}{
		{
			name:      "monthly midweek",
			reference: date(2025, time.June, 25), // Wednesday
			frequency: types.DeliveryFrequencyMonthly,
			want:      date(2025, time.June, 27), // Friday
		},
		{
			name:      "monthly from saturday",
			reference: date(2025, time.June, 28), // Saturday
			frequency: types.DeliveryFrequencyMonthly,
			want:      date(2025, time.June, 30), // Monday
		},
		{
			name:      "monthly landing on sunday is pushed to monday",
			reference: date(2025, time.July, 4), // Friday, +2 hits Sunday Jul 6
			frequency: types.DeliveryFrequencyMonthly,
			want:      date(2025, time.July, 7),
		},
		{
			name:      "weekly step",
			reference: date(2025, time.July, 1), // Tuesday
			frequency: types.DeliveryFrequencyWeekly,
			want:      date(2025, time.July, 8),
		},
		{
			name:      "weekly from sunday lands on sunday and is pushed",
			reference: date(2025, time.June, 29), // Sunday
			frequency: types.DeliveryFrequencyWeekly,
			want:      date(2025, time.July, 7), // Jul 6 is Sunday
		},
		{
			name:      "monthly across month boundary",
			reference: date(2025, time.July, 31),
			frequency: types.DeliveryFrequencyMonthly,
			want:      date(2025, time.August, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.NextDeliveryDate(tt.reference, tt.frequency)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.NotEqual(t, time.Sunday, got.Weekday())
		})
	}
}

func TestNextDeliveryDateInvalidFrequency(t *testing.T) {
	calc := NewCalculator(types.DefaultSchedulePolicy())

	_, err := calc.NextDeliveryDate(date(2025, time.June, 25), types.DeliveryFrequency("daily"))
	assert.Error(t, err)
}

func TestUpcoming(t *testing.T) {
	calc := NewCalculator(types.DefaultSchedulePolicy())

	got, err := calc.Upcoming(date(2025, time.July, 1), types.DeliveryFrequencyMonthly, 5)
	require.NoError(t, err)

	want := []time.Time{
		date(2025, time.July, 3),
		date(2025, time.July, 5),
		date(2025, time.July, 7),
		date(2025, time.July, 9),
		date(2025, time.July, 11),
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].Equal(want[i]), "delivery %d: got %v, want %v", i, got[i], want[i])
	}
}

func TestUpcomingUntil(t *testing.T) {
	calc := NewCalculator(types.DefaultSchedulePolicy())

	got, err := calc.UpcomingUntil(date(2025, time.July, 1), types.DeliveryFrequencyMonthly, date(2025, time.July, 8), 100)
	require.NoError(t, err)

	// Strictly before the end date: Jul 3, Jul 5, Jul 7.
	require.Len(t, got, 3)
	assert.True(t, got[2].Equal(date(2025, time.July, 7)))
}

func TestUpcomingUntilLimit(t *testing.T) {
	calc := NewCalculator(types.DefaultSchedulePolicy())

	// A window holding exactly the limit is fine.
	got, err := calc.UpcomingUntil(date(2025, time.July, 1), types.DeliveryFrequencyWeekly, date(2025, time.July, 30), 4)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	// One occurrence over the limit is rejected, not truncated.
	_, err = calc.UpcomingUntil(date(2025, time.July, 1), types.DeliveryFrequencyWeekly, date(2025, time.August, 6), 4)
	assert.Error(t, err)

	// A far-future end date must not produce an unbounded schedule.
	_, err = calc.UpcomingUntil(date(2025, time.July, 1), types.DeliveryFrequencyMonthly, date(2075, time.July, 1), 100)
	assert.Error(t, err)

	_, err = calc.UpcomingUntil(date(2025, time.July, 1), types.DeliveryFrequencyMonthly, date(2025, time.August, 1), 0)
	assert.Error(t, err)
}

func TestUpcomingNeverFallsOnSunday(t *testing.T) {
	calc := NewCalculator(types.DefaultSchedulePolicy())

	for _, frequency := range []types.DeliveryFrequency{
		types.DeliveryFrequencyMonthly,
		types.DeliveryFrequencyWeekly,
	} {
		start := date(2025, time.January, 1)
		for offset := 0; offset < 60; offset++ {
			deliveries, err := calc.Upcoming(start.AddDate(0, 0, offset), frequency, 30)
			require.NoError(t, err)

			previous := start.AddDate(0, 0, offset)
			for _, d := range deliveries {
				assert.NotEqual(t, time.Sunday, d.Weekday(), "%s delivery %v falls on Sunday", frequency, d)
				assert.True(t, d.After(previous), "%s schedule not strictly increasing at %v", frequency, d)
				previous = d
			}
		}
	}
}
