package planner

import (
	"time"

	"github.com/username/holiday-planner/pkg/dateutil"
)

// OffDaySet is a set of calendar days on which no work happens. Keys are
// normalized to UTC midnight; use the methods rather than raw map access.
type OffDaySet map[time.Time]struct{}

// NewOffDaySet builds a set from the given dates.
func NewOffDaySet(dates ...time.Time) OffDaySet {
	set := make(OffDaySet, len(dates))
	for _, d := range dates {
		set.Add(d)
	}
	return set
}

// Add inserts the calendar day of date into the set.
func (s OffDaySet) Add(date time.Time) {
	s[dateutil.Midnight(date)] = struct{}{}
}

// Contains reports whether the calendar day of date is in the set.
func (s OffDaySet) Contains(date time.Time) bool {
	_, ok := s[dateutil.Midnight(date)]
	return ok
}

// Clone returns an independent copy of the set.
func (s OffDaySet) Clone() OffDaySet {
	clone := make(OffDaySet, len(s)+1)
	for d := range s {
		clone[d] = struct{}{}
	}
	return clone
}

// BuildOffDays merges the supplied holiday dates with every date of the
// year whose weekday is not worked, and optionally with every Sunday.
// Holiday dates outside the target year pass through unfiltered; they can
// never coincide with a candidate of the year, so they are inert in the
// scan. Neither the holidays slice nor any caller state is mutated.
func BuildOffDays(year int, holidays []time.Time, working WorkingDaySet, includeSundays bool) OffDaySet {
	off := NewOffDaySet(holidays...)

	for _, d := range YearDates(year) {
		if includeSundays && dateutil.WeekdayIndex(d) == dateutil.Sunday {
			off.Add(d)
		}
		if !working.Contains(d) {
			off.Add(d)
		}
	}

	return off
}
