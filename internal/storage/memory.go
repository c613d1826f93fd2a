package storage

import (
	"context"
	"sync"

	"github.com/spacehole-rogue/supertrek/internal/game"
)

// Memory keeps encoded slots in process. Used when no persistent driver is configured.
type Memory struct {
	mu    sync.Mutex
	slots map[game.Slot][]byte
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[game.Slot][]byte)}
}

func (m *Memory) Save(ctx context.Context, slot game.Slot, snap *game.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := CheckSlot(slot); err != nil {
		return err
	}
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.slots[slot] = data
	m.mu.Unlock()
	return nil
}

func (m *Memory) Load(ctx context.Context, slot game.Slot) (*game.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	data, ok := m.slots[slot]
	m.mu.Unlock()
	if !ok {
		return nil, game.ErrSlotNotFound
	}
	return Decode(data)
}

func (m *Memory) Slots(ctx context.Context) ([]game.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	slots := make([]game.Slot, 0, len(m.slots))
	for s := range m.slots {
		slots = append(slots, s)
	}
	return UserSlots(slots), nil
}

func (m *Memory) Close() error { return nil }
