package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Store keys. Each state container owns exactly one key and rewrites its
// whole blob on every save; no two containers share a key.
const (
	KeyGame          = "game"
	KeyCheckIn       = "checkin"
	KeyDailyGoals    = "daily_goals"
	KeySetupGoals    = "setup_goals"
	KeyMorningRitual = "ritual_morning"
	KeyEveningRitual = "ritual_evening"
	KeyQuests        = "quests"
	KeyInventory     = "inventory"
	KeyMessages      = "messages"
	KeyProfile       = "profile"
)

// Store persists whole-state JSON blobs keyed per state container.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load unmarshals the blob for key into v. Returns false when the key has
// never been saved; the caller keeps its defaults in that case.
func (s *Store) Load(ctx context.Context, key string, v any) (bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM stores WHERE store_key = ?`, key)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("store load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return false, fmt.Errorf("store decode %s: %w", key, err)
	}
	return true, nil
}

// Save marshals v and rewrites the blob for key.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO stores (store_key, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(store_key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
	`, key, string(payload))
	if err != nil {
		return fmt.Errorf("store save %s: %w", key, err)
	}
	return nil
}

// Delete drops the blob for key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM stores WHERE store_key = ?`, key); err != nil {
		return fmt.Errorf("store delete %s: %w", key, err)
	}
	return nil
}
