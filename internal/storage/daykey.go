package storage

import (
	"time"

	"github.com/carlamendes/bloom/internal/constants"
)

// DayKey derives the physical key for a daily-partitioned record from its
// logical key and a calendar date. Daily counters "reset" implicitly: a new
// date simply has no stored value yet.
func DayKey(logical string, day time.Time) string {
	return logical + "_" + FormatDay(day)
}

// FormatDay renders a calendar date in the storage date format (YYYY-MM-DD),
// dropping the time component.
func FormatDay(day time.Time) string {
	return day.Format(constants.DateFormat)
}

// ParseDay parses a stored YYYY-MM-DD date string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}
