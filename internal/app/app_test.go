package app

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/spacehole-rogue/supertrek/internal/config"
	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/storage"
	"github.com/spacehole-rogue/supertrek/internal/storage/sqlite"
)

func testConfig(t *testing.T, driver config.Driver) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{
		"TREK_STORAGE_ROOT":   t.TempDir(),
		"TREK_STORAGE_DRIVER": string(driver),
		"TREK_SEED":           "5",
	})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func TestOpenStoreDrivers(t *testing.T) {
	ctx := context.Background()

	cfg := testConfig(t, config.DriverSQLite)
	store, closer, err := OpenStore(ctx, cfg.Storage)
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	if _, ok := store.(*sqlite.Store); !ok {
		t.Fatalf("sqlite driver opened %T", store)
	}
	closer.Close()
	if _, err := os.Stat(cfg.Storage.DatabasePath()); err != nil {
		t.Fatalf("database file: %v", err)
	}

	store, _, err = OpenStore(ctx, testConfig(t, config.DriverMemory).Storage)
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, ok := store.(*storage.Memory); !ok {
		t.Fatalf("memory driver opened %T", store)
	}

	bad := cfg.Storage
	bad.Driver = "tape"
	if _, _, err := OpenStore(ctx, bad); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("unknown driver = %v, want ErrInvalid", err)
	}
}

func TestNewSessionIsSeeded(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.DriverMemory)
	a, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer a.Close()

	first := a.NewSession(80)
	first.Start(ctx)
	second := a.NewSession(80)
	second.Start(ctx)
	if first.View() != second.View() {
		t.Fatal("same seed produced different galaxies")
	}
	first.Close(ctx)
	second.Close(ctx)

	if _, err := a.Store.Load(ctx, game.DefaultSlot); err != nil {
		t.Fatalf("autosave missing: %v", err)
	}
	if _, err := os.Stat(cfg.Storage.LogPath()); err != nil {
		t.Fatalf("log file: %v", err)
	}
}
