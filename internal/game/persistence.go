package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Slot names a saved game. User slots run 0 to MaxSlot.
type Slot int

const (
	DefaultSlot Slot = -1 // used for autosave and resume
	MaxSlot     Slot = 9
)

// ErrSlotNotFound is returned by a Store for a slot that was never saved.
var ErrSlotNotFound = errors.New("save slot not found")

// Valid reports whether s is the default slot or a user slot.
func (s Slot) Valid() bool {
	return s == DefaultSlot || (s >= 0 && s <= MaxSlot)
}

func (s Slot) String() string {
	if s == DefaultSlot {
		return "default"
	}
	return strconv.Itoa(int(s))
}

// Store persists snapshots by slot. Slots lists the occupied user slots in order.
type Store interface {
	Save(ctx context.Context, slot Slot, snap *Snapshot) error
	Load(ctx context.Context, slot Slot) (*Snapshot, error)
	Slots(ctx context.Context) ([]Slot, error)
}

// SaveDefault writes the current game to the default slot.
func (e *Engine) SaveDefault(ctx context.Context) error {
	return e.save(ctx, DefaultSlot)
}

// LoadDefault resumes the game in the default slot. When nothing was ever saved there
// the current game is saved first, so the call always leaves a default slot behind.
func (e *Engine) LoadDefault(ctx context.Context) error {
	err := e.load(ctx, DefaultSlot)
	if errors.Is(err, ErrSlotNotFound) {
		if err := e.save(ctx, DefaultSlot); err != nil {
			return err
		}
		err = e.load(ctx, DefaultSlot)
	}
	return err
}

func (e *Engine) save(ctx context.Context, slot Slot) error {
	if e.store == nil {
		return errNoStore
	}
	if err := e.store.Save(ctx, slot, e.state.Snapshot()); err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	e.log.Info("game saved", "slot", slot.String())
	return nil
}

func (e *Engine) load(ctx context.Context, slot Slot) error {
	if e.store == nil {
		return errNoStore
	}
	snap, err := e.store.Load(ctx, slot)
	if err != nil {
		return fmt.Errorf("load slot %s: %w", slot, err)
	}
	if err := e.Restore(snap); err != nil {
		return fmt.Errorf("load slot %s: %w", slot, err)
	}
	e.log.Info("game loaded", "slot", slot.String())
	e.printMission()
	return nil
}

var errNoStore = errors.New("no save game store configured")

// askSlot prompts for a user slot number. ok is false after an invalid entry.
func (e *Engine) askSlot(ctx context.Context, prompt string) (Slot, bool, error) {
	n, ok, err := e.askInt(ctx, prompt)
	if err != nil || !ok {
		return 0, false, err
	}
	slot := Slot(n)
	if slot < 0 || slot > MaxSlot {
		e.out.Add("Invalid save slot ", MsgWarning)
		return 0, false, nil
	}
	return slot, true, nil
}

func (e *Engine) saveGame(ctx context.Context) error {
	slot, ok, err := e.askSlot(ctx, "Enter save slot (0-9) ")
	if err != nil || !ok {
		return err
	}
	if err := e.save(ctx, slot); err != nil {
		return e.storageFailed(ctx, err)
	}
	e.out.Add(fmt.Sprintf("Game saved in slot %d.", slot), MsgInfo)
	e.out.Add("", MsgInfo)
	return nil
}

func (e *Engine) loadGame(ctx context.Context) error {
	var occupied []string
	if e.store != nil {
		slots, err := e.store.Slots(ctx)
		if err != nil {
			return e.storageFailed(ctx, err)
		}
		for _, s := range slots {
			occupied = append(occupied, s.String())
		}
	}

	slot, ok, err := e.askSlot(ctx, "Enter save slot ("+strings.Join(occupied, ",")+") ")
	if err != nil || !ok {
		return err
	}
	err = e.load(ctx, slot)
	switch {
	case err == nil:
	case errors.Is(err, ErrSlotNotFound):
		e.out.Add("Selected slot does not exist ", MsgWarning)
	default:
		return e.storageFailed(ctx, err)
	}
	return nil
}

// storageFailed reports a store error to the operator and the log. Only a finished
// context is passed back to the caller.
func (e *Engine) storageFailed(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	e.log.Error("storage", "err", err)
	e.out.Add("Unable to access saved games.", MsgCritical)
	e.out.Add("", MsgInfo)
	return nil
}
