package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Planner  PlannerConfig  `mapstructure:"planner"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// PlannerConfig holds the planning parameters.
type PlannerConfig struct {
	Year           int    `mapstructure:"year"`
	WorkingDays    string `mapstructure:"working_days"` // comma-separated, 0=Monday .. 6=Sunday
	Threshold      int    `mapstructure:"threshold"`
	IncludeSundays bool   `mapstructure:"include_sundays"`
}

// HolidaysConfig selects where holiday dates come from.
type HolidaysConfig struct {
	Source    string `mapstructure:"source"` // "ics", "csv" or "region"; comma-separated to merge
	File      string `mapstructure:"file"`
	CSVParser string `mapstructure:"csv_parser"` // "strict" or "flexible"
	Region    string `mapstructure:"region"`     // for the region source: us, gb, de, ca, fr
}

// LogConfig holds logging configuration.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. When no explicit path is given the
// usual locations are searched and a missing file falls back to defaults.
func Load(configPath string) (*Config, error) {
	// Pick up a local .env before viper resolves the environment
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// Read environment variables
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.holiday-planner")
		v.AddConfigPath("/etc/holiday-planner")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
			// No config file anywhere: defaults plus flags are enough
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("planner.year", time.Now().Year())
	v.SetDefault("planner.working_days", "0,1,2,3,4")
	v.SetDefault("planner.threshold", 4)
	v.SetDefault("planner.include_sundays", false)
	v.SetDefault("holidays.source", "region")
	v.SetDefault("holidays.csv_parser", "strict")
	v.SetDefault("holidays.region", "us")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Planner.Year <= 0 {
		return fmt.Errorf("planner.year must be positive")
	}
	if strings.TrimSpace(c.Planner.WorkingDays) == "" {
		return fmt.Errorf("planner.working_days is required")
	}

	sources := c.Holidays.Sources()
	if len(sources) == 0 {
		return fmt.Errorf("holidays.source is required")
	}
	for _, source := range sources {
		switch source {
		case "ics", "csv":
			if c.Holidays.File == "" {
				return fmt.Errorf("holidays.file is required for the %s source", source)
			}
		case "region":
			if c.Holidays.Region == "" {
				return fmt.Errorf("holidays.region is required for the region source")
			}
		default:
			return fmt.Errorf("holidays.source must be 'ics', 'csv' or 'region', got '%s'", source)
		}
	}

	switch c.Holidays.CSVParser {
	case "", "strict", "flexible":
	default:
		return fmt.Errorf("holidays.csv_parser must be 'strict' or 'flexible', got '%s'", c.Holidays.CSVParser)
	}

	return nil
}

// Sources returns the configured holiday source types in order.
func (c *HolidaysConfig) Sources() []string {
	var sources []string
	for _, s := range strings.Split(c.Source, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			sources = append(sources, s)
		}
	}
	return sources
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Holidays.File = os.ExpandEnv(c.Holidays.File)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
