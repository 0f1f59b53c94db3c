package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/mamadbah2/demandcast/internal/service/forecast"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Forecast ForecastConfig
	Refresh  RefreshConfig
	LogLevel string
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
	// MaxRangeDays bounds the span of a single daily range request.
	MaxRangeDays int
}

// ForecastConfig controls the synthetic series generator.
type ForecastConfig struct {
	// LastActualDate is the last day with observed data.
	LastActualDate time.Time
	HistoryStart   time.Time
	HistoryEnd     time.Time
	// NoiseSeed makes the generated noise reproducible when non-zero.
	NoiseSeed uint64
}

// RefreshConfig holds scheduler-related settings.
type RefreshConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		_ = godotenv.Load()
	}

	lastActual, err := dateFromEnv("LAST_ACTUAL_DATE", "2024-12-10")
	if err != nil {
		return nil, err
	}
	historyStart, err := dateFromEnv("HISTORY_START", "2022-12-10")
	if err != nil {
		return nil, err
	}
	historyEnd, err := dateFromEnv("HISTORY_END", "2025-12-31")
	if err != nil {
		return nil, err
	}

	var seed uint64
	if raw := os.Getenv("NOISE_SEED"); raw != "" {
		seed, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("NOISE_SEED must be an unsigned integer: %w", err)
		}
	}

	maxRangeDays, err := strconv.Atoi(getenvWithDefault("MAX_RANGE_DAYS", "3660"))
	if err != nil {
		return nil, fmt.Errorf("MAX_RANGE_DAYS must be an integer: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getenvWithDefault("APP_PORT", "8080"),
			MaxRangeDays: maxRangeDays,
		},
		Forecast: ForecastConfig{
			LastActualDate: lastActual,
			HistoryStart:   historyStart,
			HistoryEnd:     historyEnd,
			NoiseSeed:      seed,
		},
		Refresh: RefreshConfig{
			CronSchedule: getenvWithDefault("REFRESH_CRON_SCHEDULE", "0 0 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
		LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Server.MaxRangeDays <= 0 {
		return fmt.Errorf("MAX_RANGE_DAYS must be positive, got %d", c.Server.MaxRangeDays)
	}

	if c.Forecast.LastActualDate.IsZero() {
		return errors.New("LAST_ACTUAL_DATE must be provided")
	}

	if c.Forecast.HistoryStart.After(c.Forecast.HistoryEnd) {
		return fmt.Errorf("HISTORY_START %s is after HISTORY_END %s",
			forecast.FormatDate(c.Forecast.HistoryStart), forecast.FormatDate(c.Forecast.HistoryEnd))
	}

	if c.Refresh.CronSchedule == "" {
		return errors.New("REFRESH_CRON_SCHEDULE must be provided")
	}
	if _, err := cron.ParseStandard(c.Refresh.CronSchedule); err != nil {
		return fmt.Errorf("REFRESH_CRON_SCHEDULE is invalid: %w", err)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Refresh.Timezone == "" {
		return nil, errors.New("TIMEZONE must be provided")
	}
	loc, err := time.LoadLocation(c.Refresh.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q is unknown: %w", c.Refresh.Timezone, err)
	}
	return loc, nil
}

func dateFromEnv(key, fallback string) (time.Time, error) {
	value, err := forecast.ParseDate(getenvWithDefault(key, fallback))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
