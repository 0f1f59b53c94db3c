package forecast

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used on every boundary.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDateInput indicates a date string could not be parsed.
var ErrInvalidDateInput = errors.New("invalid date input")

// ParseDate parses an ISO calendar date into UTC midnight.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDateInput)
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDateInput, value, err)
	}
	return t, nil
}

// FormatDate renders the calendar date of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day truncates t to the UTC midnight of its own calendar date, ignoring the
// clock and location it carries.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange yields every calendar day from start to end inclusive. The
// sequence is empty when start is after end and can be ranged over again.
func DateRange(start, end time.Time) iter.Seq[time.Time] {
	first, last := Day(start), Day(end)
	return func(yield func(time.Time) bool) {
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// DaysBetween counts the calendar days in the inclusive range, zero when
// inverted.
func DaysBetween(start, end time.Time) int {
	first, last := Day(start), Day(end)
	if first.After(last) {
		return 0
	}
	return int((last.Unix()-first.Unix())/secondsPerDay) + 1
}
