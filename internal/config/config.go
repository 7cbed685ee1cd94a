package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv
const (
	EnvCount    = "INTERM_COUNT"
	EnvMaxDelay = "INTERM_MAX_DELAY"
	EnvFancy    = "INTERM_FANCY"
	EnvLogFile  = "INTERM_LOG_FILE"
	EnvNoColor  = "NO_COLOR"
	EnvDebug    = "DEBUG"
)

// DefaultEnvFile is loaded by Load when present
const DefaultEnvFile = ".env"

// ErrInvalidConfig is returned when a value fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of the download demo
type Config struct {
	// Count is the number of simulated downloads
	Count int
	// MaxDelay bounds the random per-step delay of each download
	MaxDelay time.Duration
	// Fancy renders gradient progress bars instead of plain ones
	Fancy bool
	// NoColor disables styling
	NoColor bool
	// LogFile enables file logging when non-empty
	LogFile string
	Debug   bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Count:    10,
		MaxDelay: 200 * time.Millisecond,
	}
}

// Load reads env files that exist (DefaultEnvFile when none are given),
// then resolves the configuration from the environment. Variables already
// set in the environment win over the files.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("failed to stat env file %s: %w", file, err)
		}
		if err := godotenv.Load(file); err != nil {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	return FromEnv(Default())
}

// FromEnv overrides base with any INTERM_* variables that are set
func FromEnv(base Config) (Config, error) {
	cfg := base

	if v := os.Getenv(EnvCount); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvCount, v)
		}
		cfg.Count = count
	}

	if v := os.Getenv(EnvMaxDelay); v != "" {
		delay, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not a duration", ErrInvalidConfig, EnvMaxDelay, v)
		}
		cfg.MaxDelay = delay
	}

	if v := os.Getenv(EnvFancy); v != "" {
		fancy, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q must be 'true' or 'false'", ErrInvalidConfig, EnvFancy, v)
		}
		cfg.Fancy = fancy
	}

	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if os.Getenv(EnvNoColor) != "" {
		cfg.NoColor = true
	}
	if os.Getenv(EnvDebug) != "" {
		cfg.Debug = true
	}

	return cfg, nil
}

// Validate checks that the configuration can drive the demo
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfig, c.Count)
	}
	if c.MaxDelay < 0 {
		return fmt.Errorf("%w: max delay must not be negative, got %s", ErrInvalidConfig, c.MaxDelay)
	}
	return nil
}
