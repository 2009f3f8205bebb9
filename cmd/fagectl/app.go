package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/fage2e/internal/config"
	"github.com/cory-johannsen/fage2e/internal/game/dice"
	"github.com/cory-johannsen/fage2e/internal/game/level"
	"github.com/cory-johannsen/fage2e/internal/observability"
	"github.com/cory-johannsen/fage2e/internal/snapshot"
	"github.com/cory-johannsen/fage2e/internal/storage"
	"github.com/cory-johannsen/fage2e/internal/storage/memory"
	"github.com/cory-johannsen/fage2e/internal/storage/postgres"
	"github.com/cory-johannsen/fage2e/internal/storage/redis"
	"github.com/cory-johannsen/fage2e/internal/storage/sqlite"
)

// app holds what every command needs. Fields left nil are built by setup.
type app struct {
	configPath string
	envFile    string
	verbose    bool

	logger *zap.Logger
	drafts *snapshot.Store[*level.Level1]
	roller *dice.Roller
	out    io.Writer

	closers []func()
}

// setup loads the environment and configuration, then opens the draft store.
func (a *app) setup(ctx context.Context) error {
	if a.out == nil {
		a.out = os.Stdout
	}
	if a.drafts != nil {
		if a.logger == nil {
			a.logger = zap.NewNop()
		}
		if a.roller == nil {
			a.roller = dice.NewLoggedRoller(dice.NewCryptoSource(), a.logger)
		}
		return nil
	}

	// A missing .env file is normal; any other failure is not.
	if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", a.envFile, err)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	a.logger = logger.Named("fagectl")
	a.closers = append(a.closers, func() { _ = logger.Sync() })

	blobs, err := a.openBlobs(ctx, cfg)
	if err != nil {
		return err
	}
	a.drafts = snapshot.New[*level.Level1](blobs, snapshot.JSON{}, a.logger)
	a.roller = dice.NewLoggedRoller(dice.NewCryptoSource(), a.logger)
	a.logger.Debug("draft store ready", zap.String("backend", cfg.Storage.Backend))
	return nil
}

func (a *app) openBlobs(ctx context.Context, cfg config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		a.logger.Warn("memory backend keeps drafts only for this invocation")
		return memory.New(), nil
	case config.BackendPostgres:
		s, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s.Close)
		return s, nil
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		return redis.New(client, cfg.Redis.TTL), nil
	case config.BackendSQLite:
		s, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = s.Close() })
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func newLevel1() *level.Level1 { return &level.Level1{} }
