package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/username/holiday-planner/internal/config"
	"github.com/username/holiday-planner/internal/planner"
)

func suggestCmd() *cobra.Command {
	var (
		year           int
		workingDays    string
		threshold      int
		includeSundays bool
		source         string
		file           string
		region         string
		teeOutput      string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest single leave days that create long off-day blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			outWriter = os.Stdout
			if teeOutput != "" {
				if err := os.MkdirAll(filepath.Dir(teeOutput), 0o755); err != nil {
					return fmt.Errorf("failed to create tee path: %w", err)
				}
				f, err := os.OpenFile(teeOutput, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open tee-output file: %w", err)
				}
				defer f.Close()
				outWriter = io.MultiWriter(os.Stdout, f)
				outPrintf("📝 Output is mirrored to %s\n", teeOutput)
			}
			defer func() {
				outWriter = os.Stdout
			}()

			// Load config
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Flags override the config file when set
			flags := cmd.Flags()
			if flags.Changed("year") {
				cfg.Planner.Year = year
			}
			if flags.Changed("working-days") {
				cfg.Planner.WorkingDays = workingDays
			}
			if flags.Changed("threshold") {
				cfg.Planner.Threshold = threshold
			}
			if flags.Changed("include-sundays") {
				cfg.Planner.IncludeSundays = includeSundays
			}
			if flags.Changed("source") {
				cfg.Holidays.Source = source
			}
			if flags.Changed("file") {
				cfg.Holidays.File = file
			}
			if flags.Changed("region") {
				cfg.Holidays.Region = region
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			cfg.ExpandEnvVars()

			working, err := planner.ParseWorkingDays(cfg.Planner.WorkingDays)
			if err != nil {
				return fmt.Errorf("failed to parse working days: %w", err)
			}

			src, err := buildSource(cfg)
			if err != nil {
				return err
			}

			report, err := planner.NewPlanner(src, logger).Plan(planner.Params{
				Year:           cfg.Planner.Year,
				WorkingDays:    working,
				Threshold:      cfg.Planner.Threshold,
				IncludeSundays: cfg.Planner.IncludeSundays,
			})
			if err != nil {
				return err
			}

			renderReport(report, working, cfg.Planner.Threshold)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to plan for (default from config)")
	cmd.Flags().StringVar(&workingDays, "working-days", "", "Comma-separated working day indices, 0=Monday .. 6=Sunday")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "Minimum off-day block length to report")
	cmd.Flags().BoolVar(&includeSundays, "include-sundays", false, "Treat every Sunday of the year as off")
	cmd.Flags().StringVar(&source, "source", "", "Holiday source: ics, csv or region (comma-separated to merge)")
	cmd.Flags().StringVar(&file, "file", "", "Holidays file for the ics/csv sources")
	cmd.Flags().StringVar(&region, "region", "", "Country code for the region source (us, gb, de, ca, fr)")
	cmd.Flags().StringVar(&teeOutput, "tee-output", "", "Mirror output to file (empty to disable)")

	return cmd
}

func renderReport(report *planner.Report, working planner.WorkingDaySet, threshold int) {
	outPrintf("\n✨ Long Holiday Suggestions — %d\n", report.Year)
	outPrintln("═══════════════════════════════════════════════════════")
	outPrintf("  Working weekdays: %s  Threshold: %d days\n", working.String(), threshold)
	outPrintf("  Holidays: %d  Off days: %d  Working days in year: %d\n",
		report.HolidayCount, report.OffDayCount, report.TotalWorkingDays)

	if len(report.Suggestions) == 0 {
		outPrintln("\nNo potential long holiday suggestions found for the given parameters.")
		return
	}

	for _, s := range report.Suggestions {
		outPrintf("\n  📅 Take leave on %s (%s)\n",
			s.LeaveDay.Format("2006-01-02"), s.LeaveDay.Weekday())
		outPrintf("     ➡️  Off from %s to %s (%d days total)\n",
			s.Block.Start.Format("2006-01-02"),
			s.Block.End.Format("2006-01-02"),
			s.Block.Length)
		outPrintf("     📉 Attendance impact: ~%.2f%% per leave day\n",
			report.LeaveImpactPercent)
	}

	outPrintf("\nFound %d suggestion(s).\n", len(report.Suggestions))
}
