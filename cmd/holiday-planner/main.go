package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/holiday-planner/internal/config"
	"github.com/username/holiday-planner/internal/holiday"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
	outWriter  io.Writer = os.Stdout
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "holiday-planner",
		Short: "Long Holiday Planner",
		Long:  "Find the single leave days that stretch weekends and public holidays into long off-day blocks",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (standard locations are searched when empty)")

	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(calendarCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildSource assembles the configured holiday source; several configured
// types are merged into one.
func buildSource(cfg *config.Config) (holiday.Source, error) {
	var sources []holiday.Source

	for _, name := range cfg.Holidays.Sources() {
		switch name {
		case "ics":
			logger.Info("Using iCalendar holiday source",
				zap.String("file", cfg.Holidays.File))
			sources = append(sources, holiday.NewICSSource(cfg.Holidays.File, logger))

		case "csv":
			parser, err := holiday.NewRowParser(cfg.Holidays.CSVParser)
			if err != nil {
				return nil, err
			}
			logger.Info("Using CSV holiday source",
				zap.String("file", cfg.Holidays.File),
				zap.String("parser", cfg.Holidays.CSVParser))
			sources = append(sources, holiday.NewCSVSource(cfg.Holidays.File, parser, logger))

		case "region":
			src, err := holiday.NewRegionSource(cfg.Holidays.Region, logger)
			if err != nil {
				return nil, err
			}
			logger.Info("Using built-in regional holiday source",
				zap.String("region", cfg.Holidays.Region))
			sources = append(sources, src)

		default:
			return nil, fmt.Errorf("unknown holiday source: %s", name)
		}
	}

	if len(sources) == 1 {
		return sources[0], nil
	}
	return holiday.NewMultiSource(logger, sources...), nil
}

func outPrintf(format string, a ...interface{}) {
	if outWriter == nil {
		outWriter = os.Stdout
	}
	fmt.Fprintf(outWriter, format, a...)
}

func outPrintln(a ...interface{}) {
	if outWriter == nil {
		outWriter = os.Stdout
	}
	fmt.Fprintln(outWriter, a...)
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
