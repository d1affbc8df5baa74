// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvSeed      = "NINETYNINE_SEED"
	EnvLogLevel  = "NINETYNINE_LOG_LEVEL"
	EnvLogFormat = "NINETYNINE_LOG_FORMAT"
	EnvWorkers   = "NINETYNINE_WORKERS"
	EnvGames     = "NINETYNINE_GAMES"
	EnvMaxSteps  = "NINETYNINE_MAX_STEPS"
)

// Config holds runtime settings for the CLI, sessions and rollouts.
type Config struct {
	Seed      uint64 // 0 = ambient randomness
	LogLevel  string
	LogFormat string // "text" or "json"
	Workers   int    // rollout workers; 0 = runtime.NumCPU()
	Games     int    // rollout games
	MaxSteps  int    // per-game step cap for rollouts
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Games:     1000,
		MaxSteps:  1000,
	}
}

// Load reads an optional .env file (or the given files) and overlays the
// environment onto Default. A missing .env is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", strings.Join(files, ", "), err)
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overlays any set variables onto cfg.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	for _, iv := range []struct {
		name string
		dst  *int
	}{
		{EnvWorkers, &c.Workers},
		{EnvGames, &c.Games},
		{EnvMaxSteps, &c.MaxSteps},
	} {
		v, ok := lookup(iv.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", iv.name, err)
		}
		*iv.dst = n
	}
	return nil
}

// Validate checks ranges and the log settings.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format %q: want text or json", c.LogFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers = %d: must be >= 0", c.Workers)
	}
	if c.Games < 0 {
		return fmt.Errorf("games = %d: must be >= 0", c.Games)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps = %d: must be > 0", c.MaxSteps)
	}
	return nil
}

// EffectiveWorkers resolves Workers = 0 to the CPU count.
func (c Config) EffectiveWorkers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// NewLogger builds a logrus logger from the log settings.
func (c Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.New()
	logger.SetLevel(level)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
