// Package holiday provides the pluggable sources that supply public-holiday
// dates to the planner: an iCalendar file, a CSV file with a configurable
// row-parsing strategy, or a built-in regional holiday calendar. Sources can
// be merged with MultiSource.
package holiday

import (
	"sort"
	"time"

	"github.com/username/holiday-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// Source supplies holiday dates. Implementations return unique calendar
// days normalized to UTC midnight, in ascending order. The year is a hint
// for generated calendars; file-backed sources return whatever the file
// holds, including dates outside that year.
type Source interface {
	Holidays(year int) ([]time.Time, error)
}

// MultiSource merges several sources into one. The result is the union of
// the member results; duplicates collapse.
type MultiSource struct {
	sources []Source
	logger  *zap.Logger
}

// NewMultiSource creates a merging source over the given members.
func NewMultiSource(logger *zap.Logger, sources ...Source) *MultiSource {
	return &MultiSource{
		sources: sources,
		logger:  logger,
	}
}

// Holidays returns the union of all member sources. Any member failure
// fails the whole load.
func (m *MultiSource) Holidays(year int) ([]time.Time, error) {
	var all []time.Time

	for _, src := range m.sources {
		dates, err := src.Holidays(year)
		if err != nil {
			return nil, err
		}
		all = append(all, dates...)
	}

	merged := uniqueSorted(all)
	m.logger.Debug("Merged holiday sources",
		zap.Int("sources", len(m.sources)),
		zap.Int("holidays", len(merged)))

	return merged, nil
}

// uniqueSorted normalizes, deduplicates and sorts a date slice.
func uniqueSorted(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))

	for _, d := range dates {
		day := dateutil.Midnight(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
