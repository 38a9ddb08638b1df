package types

import (
	"math"
	"time"
)

// AddClampedDate adds the given years, months and days to t, clamping the
// day of month to the last valid day of the target month instead of letting
// it spill over (Jan 31 + 1 month = Feb 28/29, not Mar 2/3). Used for the
// reactivation window, where "3 months after pausing" must never drift into
// a fourth month.
func AddClampedDate(t time.Time, years, months, days int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	newY := y + years
	newM := time.Month(int(m) + months)

	// Normalize the month into [1, 12], carrying into the year
	for newM > 12 {
		newM -= 12
		newY++
	}
	for newM < 1 {
		newM += 12
		newY--
	}

	// Find the last valid day of the new month
	firstOfNextMonth := time.Date(newY, newM+1, 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfNextMonth.Add(-24 * time.Hour).Day()

	newD := d + days
	if newD > lastDay {
		newD = lastDay
	}

	return time.Date(newY, newM, newD, h, min, sec, t.Nanosecond(), t.Location())
}

// CeilDaysBetween returns the number of days from `from` to `to`, rounded
// up, negative when `to` is in the past.
func CeilDaysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
