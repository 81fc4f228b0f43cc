package core

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidTime marks a wall-clock string that is not "HH:MM".
var ErrInvalidTime = errors.New("invalid time")

// DateLayout is the calendar-date format used everywhere: ISO dates sort
// lexicographically, which is what the range filters rely on.
const DateLayout = "2006-01-02"

const clockLayout = "15:04"

// HoursBetween returns the duration between two same-day "HH:MM" wall-clock
// strings in hours, rounded to 2 decimal places. The result is signed: an end
// before the start yields a negative value rather than wrapping past
// midnight. Callers that want to reject that case must check it themselves.
func HoursBetween(start, end string) (float64, error) {
	s, err := time.Parse(clockLayout, start)
	if err != nil {
		return 0, fmt.Errorf("%w: start %q", ErrInvalidTime, start)
	}
	e, err := time.Parse(clockLayout, end)
	if err != nil {
		return 0, fmt.Errorf("%w: end %q", ErrInvalidTime, end)
	}
	return Round2(e.Sub(s).Seconds() / 3600), nil
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidDayOfWeek reports whether s is one of the seven English weekday names.
func ValidDayOfWeek(s string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s == d.String() {
			return true
		}
	}
	return false
}

// DateOf formats t as a calendar date.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthStartOf returns the first-of-month date for t, used for the
// "this month" dashboard window.
func MonthStartOf(t time.Time) string {
	return t.Format("2006-01") + "-01"
}
