// Package redis persists snapshots in Redis using go-redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cory-johannsen/fage2e/internal/config"
	"github.com/cory-johannsen/fage2e/internal/storage"
)

// KeyPrefix namespaces every snapshot key.
const KeyPrefix = "fage:snapshot:"

// Store is a storage.Store backed by Redis string keys.
type Store struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewClient builds a client from cfg. Redis connects lazily, so no I/O happens here.
//
// Precondition: cfg.Addr must be non-empty.
func NewClient(cfg config.RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis: addr is required")
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), nil
}

// New returns a Store using client. A zero ttl stores keys without expiry.
func New(client goredis.UniversalClient, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := storage.CheckKey(key); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("getting snapshot: %w", err)
	}
	return data, nil
}

func (s *Store) Set(ctx context.Context, key string, data []byte) error {
	if err := storage.CheckKey(key); err != nil {
		return err
	}
	if err := s.client.Set(ctx, KeyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("setting snapshot: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := storage.CheckKey(key); err != nil {
		return err
	}
	n, err := s.client.Del(ctx, KeyPrefix+key).Result()
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
