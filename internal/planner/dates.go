package planner

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/username/holiday-planner/pkg/dateutil"
)

// WorkingDaySet holds the weekday indices (0=Monday .. 6=Sunday) that are
// nominally worked. An empty set is permitted and simply yields no
// suggestions.
type WorkingDaySet map[int]struct{}

// ParseWorkingDays parses a comma-separated list of weekday indices,
// e.g. "0,1,2,3,4" for Monday through Friday.
func ParseWorkingDays(list string) (WorkingDaySet, error) {
	set := make(WorkingDaySet)

	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		idx, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid working day %q: expected integer 0 (Monday) to 6 (Sunday)", token)
		}
		if idx < dateutil.Monday || idx > dateutil.Sunday {
			return nil, fmt.Errorf("working day index %d out of range 0..6", idx)
		}

		set[idx] = struct{}{}
	}

	return set, nil
}

// Contains reports whether the weekday of date is a working weekday.
func (ws WorkingDaySet) Contains(date time.Time) bool {
	_, ok := ws[dateutil.WeekdayIndex(date)]
	return ok
}

// Indices returns the member weekday indices in ascending order.
func (ws WorkingDaySet) Indices() []int {
	indices := make([]int, 0, len(ws))
	for idx := range ws {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

func (ws WorkingDaySet) String() string {
	parts := make([]string, 0, len(ws))
	for _, idx := range ws.Indices() {
		parts = append(parts, strconv.Itoa(idx))
	}
	return strings.Join(parts, ",")
}

// YearDates returns every date of the year from January 1 to December 31
// in ascending order, normalized to UTC midnight. The length is 366 for
// Gregorian leap years and 365 otherwise.
func YearDates(year int) []time.Time {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	dates := make([]time.Time, 0, 366)
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		dates = append(dates, current)
	}
	return dates
}

// TotalWorkingDays counts the dates of the year whose weekday is in the
// working-day set. Holidays are not subtracted; the count mirrors the
// attendance denominator used for the impact percentage.
func TotalWorkingDays(year int, working WorkingDaySet) int {
	total := 0
	for _, d := range YearDates(year) {
		if working.Contains(d) {
			total++
		}
	}
	return total
}

// LeaveImpactPercent returns the attendance impact of one leave day as a
// percentage of the year's working days. Zero working days yields zero.
func LeaveImpactPercent(totalWorkingDays int) float64 {
	if totalWorkingDays <= 0 {
		return 0
	}
	return 100.0 / float64(totalWorkingDays)
}
