// Package snapshot persists in-progress values, such as unfinished advancement
// trees, through a storage.Store.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/fage2e/internal/storage"
)

// Store reads and writes values of type T.
type Store[T any] struct {
	blobs  storage.Store
	codec  Codec
	logger *zap.Logger
}

// New returns a Store writing through blobs with codec. A nil logger disables logging.
//
// Precondition: blobs and codec must be non-nil.
func New[T any](blobs storage.Store, codec Codec, logger *zap.Logger) *Store[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store[T]{blobs: blobs, codec: codec, logger: logger}
}

// NewKey returns a fresh random key.
func NewKey() string {
	return uuid.NewString()
}

// Get returns the value stored under key. A missing key yields init() and
// no error. Any other failure is logged and returned alongside init().
func (s *Store[T]) Get(ctx context.Context, key string, init func() T) (T, error) {
	data, err := s.blobs.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Info("snapshot not found", zap.String("key", key))
		return init(), nil
	}
	if err != nil {
		s.logger.Error("loading snapshot", zap.String("key", key), zap.Error(err))
		return init(), fmt.Errorf("loading snapshot %s: %w", key, err)
	}
	v := init()
	if err := s.codec.Unmarshal(data, &v); err != nil {
		s.logger.Error("decoding snapshot",
			zap.String("key", key),
			zap.String("codec", s.codec.Name()),
			zap.Error(err),
		)
		return init(), fmt.Errorf("decoding snapshot %s: %w", key, err)
	}
	s.logger.Debug("snapshot loaded", zap.String("key", key), zap.Int("bytes", len(data)))
	return v, nil
}

// Load is Get without a default: a missing key returns storage.ErrNotFound.
func (s *Store[T]) Load(ctx context.Context, key string) (T, error) {
	var v T
	data, err := s.blobs.Get(ctx, key)
	if err != nil {
		return v, fmt.Errorf("loading snapshot %s: %w", key, err)
	}
	if err := s.codec.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decoding snapshot %s: %w", key, err)
	}
	return v, nil
}

// Set persists v under key. Failures are logged and returned; the caller's
// in-memory value is unaffected.
func (s *Store[T]) Set(ctx context.Context, key string, v T) error {
	data, err := s.codec.Marshal(v)
	if err != nil {
		s.logger.Error("encoding snapshot", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("encoding snapshot %s: %w", key, err)
	}
	if err := s.blobs.Set(ctx, key, data); err != nil {
		s.logger.Error("saving snapshot", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("saving snapshot %s: %w", key, err)
	}
	s.logger.Debug("snapshot saved", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// Delete removes key.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	if err := s.blobs.Delete(ctx, key); err != nil {
		return fmt.Errorf("deleting snapshot %s: %w", key, err)
	}
	return nil
}
