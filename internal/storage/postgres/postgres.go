// Package postgres persists snapshots in PostgreSQL using pgx v5.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/fage2e/internal/config"
)

// ErrNotMigrated is returned by Open when the snapshots table is missing.
var ErrNotMigrated = errors.New("snapshots table missing: run cmd/migrate first")

// Connect opens a pgx pool sized from cfg and pings it.
//
// Precondition: cfg must contain valid database connection parameters.
// Postcondition: Returns a reachable pool or a non-nil error; on error no
// pool is left open.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

// Open connects and returns a SnapshotStore that owns the pool.
//
// Postcondition: Returns ErrNotMigrated when the schema has not been applied.
// The caller must Close the returned store.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*SnapshotStore, error) {
	pool, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s := &SnapshotStore{db: pool, owned: true}
	if err := s.Ready(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Ready reports whether the snapshots table exists.
func (s *SnapshotStore) Ready(ctx context.Context) error {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT to_regclass('snapshots') IS NOT NULL`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking snapshots table: %w", err)
	}
	if !exists {
		return ErrNotMigrated
	}
	return nil
}

// Close releases the pool when the store opened it. Stores built with
// NewSnapshotStore leave the pool to its owner.
func (s *SnapshotStore) Close() {
	if s.owned {
		s.db.Close()
	}
}
