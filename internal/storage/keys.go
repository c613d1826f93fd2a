package storage

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spacehole-rogue/supertrek/internal/game"
)

// KeyPrefix namespaces save slots in key-value backends.
const KeyPrefix = "trek:slot:"

// SlotKey returns the key a slot is stored under.
func SlotKey(slot game.Slot) string {
	return KeyPrefix + slot.String()
}

// ParseSlotKey is the inverse of SlotKey.
func ParseSlotKey(key string) (game.Slot, error) {
	name, ok := strings.CutPrefix(key, KeyPrefix)
	if !ok {
		return 0, fmt.Errorf("slot key %q: missing prefix", key)
	}
	if name == game.DefaultSlot.String() {
		return game.DefaultSlot, nil
	}
	n, err := strconv.Atoi(name)
	if err != nil || !game.Slot(n).Valid() {
		return 0, fmt.Errorf("slot key %q: bad slot", key)
	}
	return game.Slot(n), nil
}

// CheckSlot rejects slots outside the default and user range.
func CheckSlot(slot game.Slot) error {
	if !slot.Valid() {
		return fmt.Errorf("slot %d out of range", int(slot))
	}
	return nil
}

// UserSlots drops the default slot and sorts the rest.
func UserSlots(slots []game.Slot) []game.Slot {
	out := make([]game.Slot, 0, len(slots))
	for _, s := range slots {
		if s != game.DefaultSlot {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
