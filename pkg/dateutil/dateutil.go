package dateutil

import (
	"fmt"
	"time"
)

// Weekday index convention used across the planner: 0=Monday .. 6=Sunday.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Midnight normalizes a date-time to 00:00:00 UTC on the same calendar day.
// All date-set keys go through this so that equal days compare equal.
func Midnight(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekdayIndex converts time.Weekday (Sunday=0) to the Monday-based
// convention above (0=Monday .. 6=Sunday).
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// NextDay returns the calendar day after date, normalized to UTC midnight.
func NextDay(date time.Time) time.Time {
	return Midnight(date).AddDate(0, 0, 1)
}

// PrevDay returns the calendar day before date, normalized to UTC midnight.
func PrevDay(date time.Time) time.Time {
	return Midnight(date).AddDate(0, 0, -1)
}

// DaysBetween returns the inclusive day count of the span [start, end].
func DaysBetween(start, end time.Time) int {
	return int(Midnight(end).Sub(Midnight(start)).Hours()/24) + 1
}

// IsSameDay returns true if two dates are on the same calendar day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// ParseDate parses a date string in one of several accepted formats and
// normalizes the result to UTC midnight.
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"01/02/2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return Midnight(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}
