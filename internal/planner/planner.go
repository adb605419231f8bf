package planner

import (
	"fmt"
	"time"

	"github.com/username/holiday-planner/internal/holiday"
	"go.uber.org/zap"
)

// Planner wires a holiday source into the off-day computation and runs the
// full suggestion pipeline for a year.
type Planner struct {
	source holiday.Source
	logger *zap.Logger
}

// Params are the inputs of a single planning run.
type Params struct {
	Year           int
	WorkingDays    WorkingDaySet
	Threshold      int
	IncludeSundays bool
}

// Report is the result of a planning run.
type Report struct {
	Year               int
	HolidayCount       int
	OffDayCount        int
	TotalWorkingDays   int
	LeaveImpactPercent float64
	Blocks             []Block
	Suggestions        []Suggestion
}

// NewPlanner creates a new planner over the given holiday source.
func NewPlanner(source holiday.Source, logger *zap.Logger) *Planner {
	return &Planner{
		source: source,
		logger: logger,
	}
}

// Plan loads the holidays, builds the year's off-day set and produces the
// leave suggestions plus the run totals.
func (p *Planner) Plan(params Params) (*Report, error) {
	p.logger.Info("Starting planning run",
		zap.Int("year", params.Year),
		zap.String("working_days", params.WorkingDays.String()),
		zap.Int("threshold", params.Threshold),
		zap.Bool("include_sundays", params.IncludeSundays))

	holidays, err := p.source.Holidays(params.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	if n := countOutOfYear(holidays, params.Year); n > 0 {
		// Such dates stay in the set but can never match a candidate.
		p.logger.Debug("Holiday source returned dates outside target year",
			zap.Int("year", params.Year),
			zap.Int("count", n))
	}

	off := BuildOffDays(params.Year, holidays, params.WorkingDays, params.IncludeSundays)
	p.logger.Info("Off-day set built",
		zap.Int("holidays", len(holidays)),
		zap.Int("off_days", len(off)))

	suggestions := Suggest(params.Year, off, params.WorkingDays, params.Threshold)
	totalWorking := TotalWorkingDays(params.Year, params.WorkingDays)

	p.logger.Info("Planning run finished",
		zap.Int("suggestions", len(suggestions)),
		zap.Int("total_working_days", totalWorking))

	return &Report{
		Year:               params.Year,
		HolidayCount:       len(holidays),
		OffDayCount:        len(off),
		TotalWorkingDays:   totalWorking,
		LeaveImpactPercent: LeaveImpactPercent(totalWorking),
		Blocks:             YearBlocks(params.Year, off),
		Suggestions:        suggestions,
	}, nil
}

func countOutOfYear(holidays []time.Time, year int) int {
	n := 0
	for _, h := range holidays {
		if h.Year() != year {
			n++
		}
	}
	return n
}
