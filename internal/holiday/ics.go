package holiday

import (
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/username/holiday-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// ICSSource reads holiday dates from an iCalendar file. Each VEVENT
// contributes its start day; date-time starts are truncated to the day.
type ICSSource struct {
	filePath string
	logger   *zap.Logger
}

// NewICSSource creates a new ICSSource for the given file path.
func NewICSSource(filePath string, logger *zap.Logger) *ICSSource {
	return &ICSSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Holidays parses the calendar file. An unreadable file or calendar
// structure is fatal; an event without a usable start date is skipped with
// a warning and the rest of the file is still honored.
func (s *ICSSource) Holidays(_ int) ([]time.Time, error) {
	f, err := os.Open(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer f.Close()

	cal, err := ics.ParseCalendar(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar file %s: %w", s.filePath, err)
	}

	var dates []time.Time
	for _, event := range cal.Events() {
		start, err := event.GetStartAt()
		if err != nil {
			// All-day events carry DTSTART;VALUE=DATE
			start, err = event.GetAllDayStartAt()
		}
		if err != nil {
			s.logger.Warn("Skipping event without usable start date",
				zap.String("file", s.filePath),
				zap.String("uid", event.Id()),
				zap.Error(err))
			continue
		}

		dates = append(dates, dateutil.Midnight(start))
	}

	holidays := uniqueSorted(dates)
	s.logger.Info("Calendar file loaded",
		zap.String("file", s.filePath),
		zap.Int("events", len(cal.Events())),
		zap.Int("holidays", len(holidays)))

	return holidays, nil
}
