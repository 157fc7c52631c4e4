package config

import (
	"os"
	"strconv"

	"misweep/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data  DataConfig
	Sweep SweepConfig
}

// DataConfig holds data source settings for the CLI driver
type DataConfig struct {
	File    string // optional CSV/XLSX input, synthetic data when empty
	ColumnX string
	ColumnY string
}

// SweepConfig holds default sweep parameters; CLI flags override these
type SweepConfig struct {
	BinsX      int
	BinsY      int
	MaxWorkers int
	Seed       int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			File:    os.Getenv("MISWEEP_DATA_FILE"),
			ColumnX: getEnvOrDefault("MISWEEP_COLUMN_X", ""),
			ColumnY: getEnvOrDefault("MISWEEP_COLUMN_Y", ""),
		},
	}

	binsX, err := getEnvInt("MISWEEP_BINS_X", 10)
	if err != nil {
		return nil, err
	}
	binsY, err := getEnvInt("MISWEEP_BINS_Y", 10)
	if err != nil {
		return nil, err
	}
	workers, err := getEnvInt("MISWEEP_MAX_WORKERS", 0)
	if err != nil {
		return nil, err
	}
	seed, err := getEnvInt64("MISWEEP_SEED", 0)
	if err != nil {
		return nil, err
	}

	config.Sweep = SweepConfig{
		BinsX:      binsX,
		BinsY:      binsY,
		MaxWorkers: workers,
		Seed:       seed,
	}

	if config.Sweep.BinsX < 1 || config.Sweep.BinsY < 1 {
		return nil, errors.ConfigInvalid("bin counts must be at least 1")
	}

	return config, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer for %s", key)
	}
	return parsed, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer for %s", key)
	}
	return parsed, nil
}
