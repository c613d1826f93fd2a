package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/spacehole-rogue/supertrek/internal/game"
)

func sampleSnapshot(seed uint64) *game.Snapshot {
	g := game.NewGalaxy(game.NewRand(seed))
	g.Damage[game.Phasers] = 3
	g.Quadrants[2][5].Scanned = true
	return g.Snapshot()
}

// normalize treats an empty ship list and a missing one alike.
func normalize(s *game.Snapshot) *game.Snapshot {
	if len(s.Ships) == 0 {
		s.Ships = nil
	}
	return s
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 10; seed++ {
		want := sampleSnapshot(seed)
		data, err := Encode(want)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !reflect.DeepEqual(normalize(got), normalize(want)) {
			t.Fatalf("seed %d: round trip mismatch:\n got %+v\nwant %+v", seed, got, want)
		}
	}
}

func TestCodecWithShips(t *testing.T) {
	t.Parallel()

	want := sampleSnapshot(3)
	want.Ships = []game.EnemyShip{{Sector: game.Coord{X: 1, Y: 6}, Shield: 321}}
	data, err := Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got.Ships, want.Ships) {
		t.Fatalf("ships = %+v, want %+v", got.Ships, want.Ships)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := Decode([]byte("not a frame")); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestSlotKeys(t *testing.T) {
	t.Parallel()

	for _, s := range []game.Slot{game.DefaultSlot, 0, 4, game.MaxSlot} {
		got, err := ParseSlotKey(SlotKey(s))
		if err != nil || got != s {
			t.Fatalf("ParseSlotKey(SlotKey(%v)) = %v, %v", s, got, err)
		}
	}
	for _, key := range []string{"trek:slot:10", "trek:slot:x", "other:3"} {
		if _, err := ParseSlotKey(key); err == nil {
			t.Fatalf("ParseSlotKey(%q) accepted", key)
		}
	}
	if SlotKey(game.DefaultSlot) != "trek:slot:default" {
		t.Fatalf("default key = %q", SlotKey(game.DefaultSlot))
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()
	if _, err := m.Load(ctx, 2); !errors.Is(err, game.ErrSlotNotFound) {
		t.Fatalf("Load = %v, want ErrSlotNotFound", err)
	}

	snap := sampleSnapshot(5)
	for _, s := range []game.Slot{7, game.DefaultSlot, 2} {
		if err := m.Save(ctx, s, snap); err != nil {
			t.Fatalf("save %v: %v", s, err)
		}
	}
	if err := m.Save(ctx, 11, snap); err == nil {
		t.Fatal("saved an out of range slot")
	}

	slots, err := m.Slots(ctx)
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	if !reflect.DeepEqual(slots, []game.Slot{2, 7}) {
		t.Fatalf("slots = %v, want [2 7]", slots)
	}

	got, err := m.Load(ctx, game.DefaultSlot)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Energy != snap.Energy || got.Quadrants != snap.Quadrants {
		t.Fatal("loaded snapshot differs")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := m.Save(cancelled, 1, snap); !errors.Is(err, context.Canceled) {
		t.Fatalf("Save with cancelled ctx = %v", err)
	}
}

func TestMemoryBacksEngine(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemory()
	engine := game.NewEngine(game.Options{Rand: game.NewRand(8), Store: store, Display: game.NewMessageLog(50, 80)})
	if err := engine.SaveDefault(ctx); err != nil {
		t.Fatalf("SaveDefault: %v", err)
	}
	want := engine.Snapshot()

	other := game.NewEngine(game.Options{Rand: game.NewRand(9), Store: store, Display: game.NewMessageLog(50, 80)})
	if err := other.LoadDefault(ctx); err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if !reflect.DeepEqual(normalize(other.Snapshot()), normalize(want)) {
		t.Fatal("engine state differs after loading through the codec")
	}
}
