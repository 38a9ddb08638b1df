package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

var now = time.Date(2025, time.June, 25, 8, 0, 0, 0, time.UTC)

func TestCanPause(t *testing.T) {
	eval := NewEvaluator(types.DefaultEligibilityPolicy())

	t.Run("exactly at the notice boundary is allowed", func(t *testing.T) {
		got := eval.CanPause(now.Add(24*time.Hour), now)

		assert.True(t, got.Allowed)
		assert.Empty(t, got.Reason)
		assert.Equal(t, 24, got.HoursRemaining)
	})

	t.Run("well before the next delivery is allowed", func(t *testing.T) {
		got := eval.CanPause(now.Add(72*time.Hour), now)

		assert.True(t, got.Allowed)
		assert.Equal(t, 72, got.HoursRemaining)
	})

	t.Run("one minute short of the boundary is refused", func(t *testing.T) {
		got := eval.CanPause(now.Add(24*time.Hour-time.Minute), now)

		assert.False(t, got.Allowed)
		assert.Contains(t, got.Reason, "23 hours")
		assert.Equal(t, 23, got.HoursRemaining)
	})

	t.Run("ten hours remaining names the shortfall", func(t *testing.T) {
		got := eval.CanPause(now.Add(10*time.Hour), now)

		assert.False(t, got.Allowed)
		assert.Contains(t, got.Reason, "10 hours")
		assert.Contains(t, got.Reason, "24 hours")
		assert.Equal(t, 10, got.HoursRemaining)
	})

	t.Run("delivery already due", func(t *testing.T) {
		got := eval.CanPause(now.Add(-2*time.Hour), now)

		assert.False(t, got.Allowed)
		assert.Contains(t, got.Reason, "already due")
		assert.Equal(t, 0, got.HoursRemaining)
	})
}

func TestCanReactivate(t *testing.T) {
	eval := NewEvaluator(types.DefaultEligibilityPolicy())

	t.Run("within the window", func(t *testing.T) {
		pausedAt := now.AddDate(0, -1, 0)
		got := eval.CanReactivate(pausedAt, now)

		assert.True(t, got.Allowed)
		// Deadline is 2025-08-25 08:00, exactly 61 days out.
		assert.Equal(t, 61, got.DaysRemaining)
	})

	t.Run("one second before the deadline", func(t *testing.T) {
		pausedAt := now.AddDate(0, -3, 0).Add(time.Second)
		got := eval.CanReactivate(pausedAt, now)

		assert.True(t, got.Allowed)
		assert.Equal(t, 1, got.DaysRemaining)
	})

	t.Run("exactly at the deadline is closed", func(t *testing.T) {
		pausedAt := now.AddDate(0, -3, 0)
		got := eval.CanReactivate(pausedAt, now)

		assert.False(t, got.Allowed)
		assert.Contains(t, got.Reason, "3 month")
		assert.Equal(t, 0, got.DaysRemaining)
	})

	t.Run("long past the deadline", func(t *testing.T) {
		pausedAt := now.AddDate(0, -6, 0)
		got := eval.CanReactivate(pausedAt, now)

		assert.False(t, got.Allowed)
		assert.Equal(t, 0, got.DaysRemaining)
	})

	t.Run("paused at end of month clamps the deadline", func(t *testing.T) {
		// Nov 30 + 3 months clamps to Feb 28.
		pausedAt := time.Date(2025, time.November, 30, 8, 0, 0, 0, time.UTC)
		clock := time.Date(2026, time.February, 28, 8, 0, 0, 0, time.UTC)
		got := eval.CanReactivate(pausedAt, clock)

		assert.False(t, got.Allowed)
	})
}

func TestExpiryStatus(t *testing.T) {
	eval := NewEvaluator(types.DefaultEligibilityPolicy())

	tests := []struct {
		name         string
		endDate      time.Time
		wantState    types.RenewalState
		wantDaysLeft int
	}{
		{"far from expiry", now.AddDate(0, 0, 30), types.RenewalStateActive, 30},
		{"just outside the warning window", now.AddDate(0, 0, 6), types.RenewalStateActive, 6},
		{"at the warning boundary", now.AddDate(0, 0, 5), types.RenewalStateExpiringSoon, 5},
		{"expires tomorrow", now.AddDate(0, 0, 1), types.RenewalStateExpiringSoon, 1},
		{"ended earlier today", now.Add(-time.Hour), types.RenewalStateExpiringSoon, 0},
		{"ended yesterday", now.Add(-25 * time.Hour), types.RenewalStateExpired, 0},
		{"long expired", now.AddDate(0, 0, -40), types.RenewalStateExpired, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eval.ExpiryStatus(tt.endDate, now)

			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.wantDaysLeft, got.DaysLeft)
			assert.NotEmpty(t, got.Message)
		})
	}
}
