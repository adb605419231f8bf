package holiday

import (
	"fmt"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/us"
	"github.com/username/holiday-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// RegionSource generates public-holiday dates for a year from a built-in
// national holiday calendar, so the planner can run without any input file.
type RegionSource struct {
	region   string
	calendar *cal.BusinessCalendar
	logger   *zap.Logger
}

// NewRegionSource creates a RegionSource for a supported country code.
func NewRegionSource(region string, logger *zap.Logger) (*RegionSource, error) {
	defs, err := regionHolidays(region)
	if err != nil {
		return nil, err
	}

	calendar := cal.NewBusinessCalendar()
	calendar.AddHoliday(defs...)

	return &RegionSource{
		region:   strings.ToLower(region),
		calendar: calendar,
		logger:   logger,
	}, nil
}

// Holidays returns every observed holiday day of the year, ascending.
func (s *RegionSource) Holidays(year int) ([]time.Time, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if _, observed, _ := s.calendar.IsHoliday(d); observed {
			dates = append(dates, dateutil.Midnight(d))
		}
	}

	s.logger.Info("Built-in holiday calendar evaluated",
		zap.String("region", s.region),
		zap.Int("year", year),
		zap.Int("holidays", len(dates)))

	return dates, nil
}

func regionHolidays(region string) ([]*cal.Holiday, error) {
	switch strings.ToLower(region) {
	case "us":
		return us.Holidays, nil
	case "gb":
		return gb.Holidays, nil
	case "de":
		return de.Holidays, nil
	case "ca":
		return ca.Holidays, nil
	case "fr":
		return fr.Holidays, nil
	default:
		return nil, fmt.Errorf("unsupported holiday region '%s' (supported: us, gb, de, ca, fr)", region)
	}
}
