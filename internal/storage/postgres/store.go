// Package postgres stores save slots in a PostgreSQL table.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS save_slots (
    slot INTEGER PRIMARY KEY,
    data BYTEA NOT NULL,
    saved_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Pool bounds the connection pool. One player rarely needs more than a couple.
type Pool struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

var DefaultPool = Pool{MaxOpenConns: 4, MaxIdleConns: 2, ConnMaxLifetime: 5 * time.Minute}

type Store struct {
	db *sql.DB
}

// Open connects with dsn, pings and ensures the table exists.
func Open(ctx context.Context, dsn string, pool Pool) (*Store, error) {
	logger := slog.With("component", "postgres", "operation", "connect")
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("close after ping failure", "close_error", closeErr, "ping_error", err)
		}
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create save_slots: %w", err)
	}
	logger.Info("connected", "max_open_conns", pool.MaxOpenConns)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Save(ctx context.Context, slot game.Slot, snap *game.Snapshot) error {
	if err := storage.CheckSlot(slot); err != nil {
		return err
	}
	data, err := storage.Encode(snap)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO save_slots (slot, data, saved_at) VALUES ($1, $2, now())
ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, saved_at = EXCLUDED.saved_at`,
		int(slot), data)
	if err != nil {
		return fmt.Errorf("put slot %s: %w", slot, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, slot game.Slot) (*game.Snapshot, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM save_slots WHERE slot = $1`, int(slot)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, game.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get slot %s: %w", slot, err)
	}
	return storage.Decode(data)
}

func (s *Store) Slots(ctx context.Context) ([]game.Slot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slot FROM save_slots WHERE slot >= 0 ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var slots []game.Slot
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, game.Slot(n))
	}
	return slots, rows.Err()
}
