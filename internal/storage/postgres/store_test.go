package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/spacehole-rogue/supertrek/internal/game"
)

func TestOpenRequiresDSN(t *testing.T) {
	if _, err := Open(context.Background(), "", DefaultPool); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

// Runs against a live server when TREK_TEST_POSTGRES_DSN is set.
func TestStoreAgainstServer(t *testing.T) {
	dsn := os.Getenv("TREK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TREK_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	store, err := Open(ctx, dsn, DefaultPool)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	if _, err := store.db.ExecContext(ctx, `DELETE FROM save_slots`); err != nil {
		t.Fatalf("reset table: %v", err)
	}

	snap := game.NewGalaxy(game.NewRand(6)).Snapshot()
	if err := store.Save(ctx, 5, snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, 5)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Quadrants != snap.Quadrants || got.Energy != snap.Energy {
		t.Fatal("loaded snapshot differs")
	}
	if _, err := store.Load(ctx, 2); !errors.Is(err, game.ErrSlotNotFound) {
		t.Fatalf("Load missing = %v", err)
	}
	slots, err := store.Slots(ctx)
	if err != nil || len(slots) != 1 || slots[0] != 5 {
		t.Fatalf("slots = %v, %v", slots, err)
	}
}
