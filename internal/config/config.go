package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration, read from PLAYTIME_* variables
type Config struct {
	// DBPath is the SQLite file shared by every component
	DBPath string `env:"DB_PATH" envDefault:"playtime.db"`

	// TariffPath is the TOML tariff table
	TariffPath string `env:"TARIFF_PATH" envDefault:"configs/tariff.toml"`

	// WatchdogInterval is the time between expiry sweeps
	WatchdogInterval time.Duration `env:"WATCHDOG_INTERVAL" envDefault:"30s"`

	// LowTimeThreshold is the remaining time that triggers the low-time warning
	LowTimeThreshold time.Duration `env:"LOW_TIME_THRESHOLD" envDefault:"2m"`

	// MinReservation is the shortest duration that can be reserved
	MinReservation time.Duration `env:"MIN_RESERVATION" envDefault:"15m"`

	// BusyRetries bounds the retries of a write that found the store busy
	BusyRetries int `env:"BUSY_RETRIES" envDefault:"3"`

	// BusyBackoff is multiplied by the attempt number between retries
	BusyBackoff time.Duration `env:"BUSY_BACKOFF" envDefault:"100ms"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`

	// Operator is the default operator id for CLI commands
	Operator string `env:"OPERATOR" envDefault:"operator"`
}

// Prefix is prepended to every variable name
const Prefix = "PLAYTIME_"

// Load reads an optional dotenv file and then parses the environment.
// Variables already set in the environment win over the file.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the env tags cannot express
func (c *Config) Validate() error {
	if c.WatchdogInterval <= 0 {
		return errors.New("watchdog interval must be positive")
	}
	if c.LowTimeThreshold < 0 {
		return errors.New("low time threshold must not be negative")
	}
	if c.MinReservation <= 0 {
		return errors.New("minimum reservation must be positive")
	}
	if c.BusyRetries < 0 {
		return errors.New("busy retries must not be negative")
	}
	return nil
}
