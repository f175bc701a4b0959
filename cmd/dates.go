package cmd

import (
	"time"
)

// seasonalWeights is the per-month acceptance probability used when biasing
// generated dates toward busier retail months (holiday season, early summer).
var seasonalWeights = map[time.Month]float64{
	time.January:   0.14,
	time.February:  0.10,
	time.March:     0.08,
	time.April:     0.09,
	time.May:       0.13,
	time.June:      0.15,
	time.July:      0.11,
	time.August:    0.09,
	time.September: 0.08,
	time.October:   0.10,
	time.November:  0.11,
	time.December:  0.16,
}

// maxDateRetries bounds the rejection sampling loop. Exceeding it means every
// month weight is tiny; the last candidate is then accepted unweighted rather
// than spinning forever.
const maxDateRetries = 1000

// biasedDate draws a calendar date after start via rejection sampling: a
// uniform candidate offset is accepted with probability equal to its month's
// weight, otherwise redrawn. A nil monthWeights selects seasonalWeights.
// The window is clamped to at least 2 days so start==end still yields an
// offset of one day.
func biasedDate(g *GenContext, start, end time.Time, monthWeights map[time.Month]float64) time.Time {
	if monthWeights == nil {
		monthWeights = seasonalWeights
	}
	window := daysBetween(start, end)
	if window < 2 {
		window = 2
	}

	var candidate time.Time
	for i := 0; i < maxDateRetries; i++ {
		offset := 1 + g.intn(window-1)
		candidate = start.AddDate(0, 0, offset)
		if monthWeights[candidate.Month()] >= g.float64() {
			return candidate
		}
	}
	return candidate
}

// daysBetween returns the number of whole calendar days from start to end.
func daysBetween(start, end time.Time) int {
	return int(truncateDay(end).Sub(truncateDay(start)).Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
