package domain

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted textual date form: zero-padded DD/MM/YYYY.
const DateLayout = "02/01/2006"

const secondsPerDay = 24 * 60 * 60

// ParseDate parses text in DateLayout into a UTC calendar date.
func ParseDate(text string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, &OpError{
			Op:   "date.parse",
			Kind: KindInvalidDateFormat,
			Err:  fmt.Errorf("%q (use DD/MM/YYYY): %w", text, ErrInvalidDateFormat),
		}
	}
	return t, nil
}

// FormatDate renders a date back into DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the whole-day difference to - from. Both values are UTC
// midnights produced by ParseDate, so the difference of their Unix seconds is a
// whole number of days. time.Duration would saturate beyond ~292 years.
func DaysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}
