package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBiasedDateStaysInWindow(t *testing.T) {
	g := testGenContext(11)
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2000; i++ {
		d := biasedDate(g, start, end, nil)
		assert.True(t, d.After(start), "date %s not after start", d)
		assert.True(t, d.Before(end), "date %s not before end", d)
	}
}

func TestBiasedDateDegenerateWindow(t *testing.T) {
	g := testGenContext(12)
	start := time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC)

	// start == end clamps the window so the draw still lands one day ahead.
	d := biasedDate(g, start, start, nil)
	assert.Equal(t, start.AddDate(0, 0, 1), d)
}

func TestBiasedDateZeroWeightsTerminates(t *testing.T) {
	g := testGenContext(13)
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	zero := make(map[time.Month]float64)
	d := biasedDate(g, start, end, zero)
	assert.True(t, d.After(start))
	assert.True(t, d.Before(end.AddDate(0, 0, 1)))
}

func TestBiasedDateFavorsHeavyMonths(t *testing.T) {
	g := testGenContext(14)
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	counts := make(map[time.Month]int)
	for i := 0; i < 20000; i++ {
		counts[biasedDate(g, start, end, nil).Month()]++
	}
	// December (0.16) should land well above September (0.08).
	assert.Greater(t, counts[time.December], counts[time.September])
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "ten days",
			start: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, time.January, 11, 0, 0, 0, 0, time.UTC),
			want:  10,
		},
		{
			name:  "same day",
			start: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, time.January, 1, 23, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "full year",
			start: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:  365,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysBetween(tt.start, tt.end))
		})
	}
}
