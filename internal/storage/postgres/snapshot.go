package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/fage2e/internal/storage"
)

// SnapshotStore is a storage.Store backed by the snapshots table.
type SnapshotStore struct {
	db    *pgxpool.Pool
	owned bool
}

// NewSnapshotStore creates a SnapshotStore backed by the given pool.
//
// Precondition: db must be a valid, open connection pool and the snapshots
// migration must have been applied.
func NewSnapshotStore(db *pgxpool.Pool) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Get returns the blob stored under key.
//
// Postcondition: Returns storage.ErrNotFound when no row matches.
func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := storage.CheckKey(key); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT data FROM snapshots WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("selecting snapshot: %w", err)
	}
	return data, nil
}

// Set upserts the blob under key.
func (s *SnapshotStore) Set(ctx context.Context, key string, data []byte) error {
	if err := storage.CheckKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO snapshots (key, data) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}
	return nil
}

// Delete removes the row for key.
//
// Postcondition: Returns storage.ErrNotFound when no row was deleted.
func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	if err := storage.CheckKey(key); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM snapshots WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
