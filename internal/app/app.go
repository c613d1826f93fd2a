// Package app wires configuration, logging and storage into a game session.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spacehole-rogue/supertrek/internal/config"
	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/logging"
	"github.com/spacehole-rogue/supertrek/internal/session"
	"github.com/spacehole-rogue/supertrek/internal/storage"
	"github.com/spacehole-rogue/supertrek/internal/storage/postgres"
	"github.com/spacehole-rogue/supertrek/internal/storage/redis"
	"github.com/spacehole-rogue/supertrek/internal/storage/sqlite"
)

// App holds the process-wide resources shared by a front-end.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Store  game.Store

	closers []io.Closer
}

// Bootstrap loads configuration from .env and the environment and opens everything.
// A broken .env file is logged once the log file is open.
func Bootstrap(ctx context.Context) (*App, error) {
	dotenvErr := config.LoadDotenv()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	a, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if dotenvErr != nil {
		a.Logger.Warn("could not read .env file", "error", dotenvErr)
	}
	return a, nil
}

// New opens logging and storage for cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.Storage.Root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	logger, logCloser := logging.Init(cfg.Logging, cfg.Storage.LogPath())
	a := &App{Config: cfg, Logger: logger}

	store, closer, err := OpenStore(ctx, cfg.Storage)
	if err != nil {
		logger.Error("open store", "driver", cfg.Storage.Driver, "error", err)
		_ = logCloser.Close()
		return nil, err
	}
	a.Store = store
	a.closers = append(a.closers, closer, logCloser)
	logger.Info("storage ready", "driver", cfg.Storage.Driver)
	return a, nil
}

// OpenStore returns the save game backend named by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.StorageConfig) (game.Store, io.Closer, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
	defer cancel()

	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.DatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.DriverPostgres:
		s, err := postgres.Open(ctx, cfg.PostgresDSN, postgres.DefaultPool)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.DriverRedis:
		s, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.DriverMemory:
		s := storage.NewMemory()
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown storage driver %q", config.ErrInvalid, cfg.Driver)
	}
}

// NewSession builds a session whose log wraps at width columns.
func (a *App) NewSession(width int) *session.Session {
	var rng game.Rand
	if seed := a.Config.Game.Seed; seed != 0 {
		rng = game.NewRand(seed)
	}
	return session.New(session.Config{
		Options: game.Options{
			Rand:   rng,
			Store:  a.Store,
			Logger: a.Logger,
		},
		LogSize:  500,
		Width:    width,
		Resume:   a.Config.Game.Resume,
		Autosave: a.Config.Game.Autosave,
	})
}

// Close releases the store, then the log file.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
