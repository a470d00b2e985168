// Package config loads runtime settings: built-in defaults, then an optional
// YAML settings file, then WINTERNIGHT_* environment variables, optionally
// seeded from a .env file. Command-line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a setting is out of range.
var ErrInvalid = errors.New("invalid config")

const envPrefix = "WINTERNIGHT_"

// Config holds every tunable of a session.
type Config struct {
	Environment    string        `yaml:"environment"` // "development" or "production"
	LogLevel       string        `yaml:"log_level"`
	LogFile        string        `yaml:"log_file"` // empty discards logs, "-" writes to stderr
	RunLog         bool          `yaml:"run_log"`
	FPS            int           `yaml:"fps"`
	MoveTime       float64       `yaml:"move_time"`
	FastMoveTime   float64       `yaml:"fast_move_time"`
	FastMove       bool          `yaml:"fast_move"`
	InteractRadius float64       `yaml:"interact_radius"`
	KeyHold        time.Duration `yaml:"key_hold"`
}

// Default returns the shipped settings.
func Default() Config {
	return Config{
		Environment:    "development",
		LogLevel:       "info",
		FPS:            60,
		MoveTime:       0.25,
		FastMoveTime:   0.1,
		InteractRadius: 12,
		KeyHold:        150 * time.Millisecond,
	}
}

// Load returns the defaults overlaid with the settings file at path (skipped
// when path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadDotEnv exports the KEY=value lines of path into the process
// environment ahead of Load. Variables already set win. A missing file is
// ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("LOG_FILE", c.LogFile)

	var err error
	if c.RunLog, err = envBool("RUN_LOG", c.RunLog); err != nil {
		return err
	}
	if c.FastMove, err = envBool("FAST_MOVE", c.FastMove); err != nil {
		return err
	}
	if v := getEnv("FPS", ""); v != "" {
		if c.FPS, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("%sFPS: %w", envPrefix, err)
		}
	}
	if c.MoveTime, err = envFloat("MOVE_TIME", c.MoveTime); err != nil {
		return err
	}
	if c.FastMoveTime, err = envFloat("FAST_MOVE_TIME", c.FastMoveTime); err != nil {
		return err
	}
	if c.InteractRadius, err = envFloat("INTERACT_RADIUS", c.InteractRadius); err != nil {
		return err
	}
	if v := getEnv("KEY_HOLD", ""); v != "" {
		if c.KeyHold, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("%sKEY_HOLD: %w", envPrefix, err)
		}
	}
	return nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Environment != "development" && c.Environment != "production":
		return fmt.Errorf("%w: environment %q", ErrInvalid, c.Environment)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.MoveTime <= 0 || c.FastMoveTime <= 0:
		return fmt.Errorf("%w: move times must be positive", ErrInvalid)
	case c.InteractRadius < 0:
		return fmt.Errorf("%w: interact radius %v", ErrInvalid, c.InteractRadius)
	case c.KeyHold <= 0:
		return fmt.Errorf("%w: key hold %v", ErrInvalid, c.KeyHold)
	}
	return nil
}

// Level returns the slog level named by LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func envBool(key string, def bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s%s: %w", envPrefix, key, err)
	}
	return b, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s%s: %w", envPrefix, key, err)
	}
	return f, nil
}
