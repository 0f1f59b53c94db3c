package forecast

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-12-10 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "2024-13-01", "10/12/2024", "2024-02-30", "yesterday"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDateInput, bad)
	}
}

func TestDateRange(t *testing.T) {
	start := time.Date(2024, 2, 27, 18, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)

	seq := DateRange(start, end)
	got := slices.Collect(seq)
	want := []time.Time{
		time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, want, got)

	// restartable
	assert.Equal(t, want, slices.Collect(seq))
	assert.Equal(t, len(want), DaysBetween(start, end))
}

func TestDateRange_EarlyStopAndInverted(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var taken []time.Time
	for d := range DateRange(start, start.AddDate(1, 0, 0)) {
		if len(taken) == 3 {
			break
		}
		taken = append(taken, d)
	}
	assert.Len(t, taken, 3)

	assert.Empty(t, slices.Collect(DateRange(start, start.AddDate(0, 0, -1))))
	assert.Zero(t, DaysBetween(start, start.AddDate(0, 0, -1)))
}

func TestDaysBetween_WideRanges(t *testing.T) {
	tests := map[string]struct {
		start, end time.Time
		want       int
	}{
		"same day":       {start: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), end: time.Date(2024, 12, 10, 23, 0, 0, 0, time.UTC), want: 1},
		"leap year":      {start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), end: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), want: 366},
		"four centuries": {start: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), end: time.Date(2399, 12, 31, 0, 0, 0, 0, time.UTC), want: 146097},
		"whole calendar": {start: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), end: time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC), want: 3652059},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.start, tt.end))
		})
	}
}
