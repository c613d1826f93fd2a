// Package config reads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverRedis    Driver = "redis"
	DriverMemory   Driver = "memory"
)

type Config struct {
	Storage StorageConfig
	Logging LoggingConfig
	Game    GameConfig
}

type StorageConfig struct {
	Driver      Driver        `env:"TREK_STORAGE_DRIVER" envDefault:"sqlite"`
	Root        string        `env:"TREK_STORAGE_ROOT"`
	PostgresDSN string        `env:"TREK_POSTGRES_DSN"`
	RedisURL    string        `env:"TREK_REDIS_URL"`
	ConnTimeout time.Duration `env:"TREK_STORAGE_TIMEOUT" envDefault:"5s"`
}

type LoggingConfig struct {
	Level      string `env:"TREK_LOG_LEVEL" envDefault:"info"`
	JSONFormat bool   `env:"TREK_LOG_JSON" envDefault:"false"`
}

type GameConfig struct {
	Seed     uint64 `env:"TREK_SEED" envDefault:"0"`
	Resume   bool   `env:"TREK_RESUME" envDefault:"false"`
	Autosave bool   `env:"TREK_AUTOSAVE" envDefault:"true"`
	Sound    bool   `env:"TREK_SOUND" envDefault:"true"`
}

// LoadDotenv copies the given .env files, or ./.env by default, into the process
// environment. A missing file is not an error. Call it before Load and log the
// error once logging is set up.
func LoadDotenv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read .env: %w", err)
	}
	return nil
}

// Load parses the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses a fixed environment. The process environment is ignored.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: parse env: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings and fills in the storage root.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.PostgresDSN) == "" {
			return fmt.Errorf("%w: TREK_POSTGRES_DSN is required for the postgres driver", ErrInvalid)
		}
	case DriverRedis:
		if strings.TrimSpace(c.Storage.RedisURL) == "" {
			return fmt.Errorf("%w: TREK_REDIS_URL is required for the redis driver", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: TREK_STORAGE_DRIVER %q", ErrInvalid, c.Storage.Driver)
	}

	if _, ok := levels[strings.ToLower(c.Logging.Level)]; !ok {
		return fmt.Errorf("%w: TREK_LOG_LEVEL %q", ErrInvalid, c.Logging.Level)
	}
	if c.Storage.ConnTimeout <= 0 {
		return fmt.Errorf("%w: TREK_STORAGE_TIMEOUT must be positive", ErrInvalid)
	}

	if c.Storage.Root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("%w: TREK_STORAGE_ROOT unset and no home directory: %w", ErrInvalid, err)
		}
		c.Storage.Root = filepath.Join(home, ".trek")
	}
	return nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured level.
func (l LoggingConfig) SlogLevel() slog.Level {
	return levels[strings.ToLower(l.Level)]
}

// DatabasePath is the sqlite file inside the storage root.
func (s StorageConfig) DatabasePath() string {
	return filepath.Join(s.Root, "trek.db")
}

// LogPath is the log file inside the storage root.
func (s StorageConfig) LogPath() string {
	return filepath.Join(s.Root, "trek.log")
}
