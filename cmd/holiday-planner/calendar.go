package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/holiday-planner/internal/config"
	"github.com/username/holiday-planner/internal/planner"
)

func calendarCmd() *cobra.Command {
	var (
		year           int
		workingDays    string
		includeSundays bool
		minLength      int
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the year's existing off-day blocks without taking any leave",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("year") {
				cfg.Planner.Year = year
			}
			if flags.Changed("working-days") {
				cfg.Planner.WorkingDays = workingDays
			}
			if flags.Changed("include-sundays") {
				cfg.Planner.IncludeSundays = includeSundays
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

			outPrintf("\n📆 Off-day blocks — %d (showing blocks of %d+ days)\n", report.Year, minLength)
			outPrintln("═══════════════════════════════════════════════════════")

			shown := 0
			for _, b := range report.Blocks {
				if b.Length < minLength {
					continue
				}
				outPrintf("  • %s (%s to %s)\n", b, b.Start.Weekday(), b.End.Weekday())
				shown++
			}

			if shown == 0 {
				outPrintln("No off-day blocks of that length in the year.")
				return nil
			}

			outPrintf("\n%d block(s), %d off days in total.\n", shown, report.OffDayCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to inspect (default from config)")
	cmd.Flags().StringVar(&workingDays, "working-days", "", "Comma-separated working day indices, 0=Monday .. 6=Sunday")
	cmd.Flags().BoolVar(&includeSundays, "include-sundays", false, "Treat every Sunday of the year as off")
	cmd.Flags().IntVar(&minLength, "min-length", 1, "Only show blocks of at least this many days")

	return cmd
}
