// Package redis stores save slots as Redis string keys.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/storage"
)

type Store struct {
	client *redis.Client
}

// Open parses url, connects and pings with a short timeout.
func Open(ctx context.Context, url string) (*Store, error) {
	logger := slog.With("component", "redis", "operation", "connect")

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("connected", "addr", opts.Addr)
	return New(client), nil
}

// New wraps an existing client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *Store) Save(ctx context.Context, slot game.Slot, snap *game.Snapshot) error {
	if err := storage.CheckSlot(slot); err != nil {
		return err
	}
	data, err := storage.Encode(snap)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, storage.SlotKey(slot), data, 0).Err(); err != nil {
		return fmt.Errorf("put slot %s: %w", slot, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, slot game.Slot) (*game.Snapshot, error) {
	data, err := s.client.Get(ctx, storage.SlotKey(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, game.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get slot %s: %w", slot, err)
	}
	return storage.Decode(data)
}

func (s *Store) Slots(ctx context.Context) ([]game.Slot, error) {
	var slots []game.Slot
	iter := s.client.Scan(ctx, 0, storage.KeyPrefix+"*", 32).Iterator()
	for iter.Next(ctx) {
		slot, err := storage.ParseSlotKey(iter.Val())
		if err != nil {
			continue
		}
		slots = append(slots, slot)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return storage.UserSlots(slots), nil
}
